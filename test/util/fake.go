/*
Copyright 2026 KubeNexus Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package util provides v1 node and pod fixture builders for tests of the
// kubenexus scheduler.
package util

import (
	"fmt"

	v1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/kube-nexus/kubenexus-scheduler/pkg/scheduler"
)

// NewNode builds a bare v1.Node fixture.
func NewNode(name string) *v1.Node {
	return &v1.Node{ObjectMeta: metav1.ObjectMeta{Name: name}}
}

// PodOption mutates a pod fixture under construction.
type PodOption func(*v1.Pod)

// WithPriority sets the pod's scheduling priority.
func WithPriority(priority int32) PodOption {
	return func(p *v1.Pod) { p.Spec.Priority = &priority }
}

// WithGroup annotates the pod as a member of a pod group with the given
// minimum-available threshold.
func WithGroup(groupName string, minAvailable int) PodOption {
	return func(p *v1.Pod) {
		if p.Annotations == nil {
			p.Annotations = map[string]string{}
		}
		p.Annotations[scheduler.GroupNameAnnotation] = groupName
		p.Annotations[scheduler.MinAvailableAnnotation] = fmt.Sprintf("%d", minAvailable)
	}
}

// Running marks the pod as bound to nodeName and in the Running phase.
func Running(nodeName string) PodOption {
	return func(p *v1.Pod) {
		p.Spec.NodeName = nodeName
		p.Status.Phase = v1.PodRunning
	}
}

// NewPendingPod builds a v1.Pod fixture in the Pending phase, scheduled
// by kubenexus-scheduler, with opts applied in order.
func NewPendingPod(name, namespace string, opts ...PodOption) *v1.Pod {
	pod := &v1.Pod{
		ObjectMeta: metav1.ObjectMeta{Name: name, Namespace: namespace},
		Spec:       v1.PodSpec{SchedulerName: scheduler.SchedulerName},
		Status:     v1.PodStatus{Phase: v1.PodPending},
	}
	for _, opt := range opts {
		opt(pod)
	}
	return pod
}
