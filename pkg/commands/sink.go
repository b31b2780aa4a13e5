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

// Package commands is the command-sink collaborator: it turns a
// scheduler.Actions value into Bind and Evict API calls against a live
// cluster.
package commands

import (
	"context"
	"fmt"

	policyv1 "k8s.io/api/policy/v1"
	v1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/klog/v2"

	"github.com/kube-nexus/kubenexus-scheduler/pkg/metrics"
	"github.com/kube-nexus/kubenexus-scheduler/pkg/scheduler"
)

// gracePeriodSeconds is the grace period used for evictions issued by this
// scheduler: pods preempted to make room for a higher-priority gang are
// removed immediately rather than waiting out their normal termination
// grace period.
var gracePeriodSeconds int64 = 0

// Sink applies scheduler.Actions against a Kubernetes cluster.
type Sink struct {
	client kubernetes.Interface
}

// NewSink builds a Sink backed by client.
func NewSink(client kubernetes.Interface) *Sink {
	return &Sink{client: client}
}

// Apply issues every eviction in actions before any binding, per the
// ordering guarantee that bindings may target nodes whose occupants must
// first be asked to vacate. A failure on one command is logged and does
// not prevent the rest of the cycle's commands from being attempted; the
// next driver cycle observes the real post-state and reconciles.
func (s *Sink) Apply(ctx context.Context, namespace string, actions scheduler.Actions) {
	for _, podName := range actions.Evictions {
		if err := s.evict(ctx, namespace, podName); err != nil {
			klog.ErrorS(err, "evict failed", "namespace", namespace, "pod", podName)
			metrics.CommandErrorsTotal.WithLabelValues("evict").Inc()
		}
	}
	for _, b := range actions.Bindings {
		if err := s.bind(ctx, namespace, b.PodName, b.NodeName); err != nil {
			klog.ErrorS(err, "bind failed", "namespace", namespace, "pod", b.PodName, "node", b.NodeName)
			metrics.CommandErrorsTotal.WithLabelValues("bind").Inc()
		}
	}
}

// bind assigns podName to nodeName via the Kubernetes binding subresource.
func (s *Sink) bind(ctx context.Context, namespace, podName, nodeName string) error {
	binding := &v1.Binding{
		ObjectMeta: metav1.ObjectMeta{
			Name:      podName,
			Namespace: namespace,
		},
		Target: v1.ObjectReference{
			Kind: "Node",
			Name: nodeName,
		},
	}
	if err := s.client.CoreV1().Pods(namespace).Bind(ctx, binding, metav1.CreateOptions{}); err != nil {
		return fmt.Errorf("bind pod %s/%s to node %s: %w", namespace, podName, nodeName, err)
	}
	return nil
}

// evict requests that podName vacate its node via the policy/v1 Eviction
// subresource, with a zero grace period.
func (s *Sink) evict(ctx context.Context, namespace, podName string) error {
	eviction := &policyv1.Eviction{
		ObjectMeta: metav1.ObjectMeta{
			Name:      podName,
			Namespace: namespace,
		},
		DeleteOptions: &metav1.DeleteOptions{
			GracePeriodSeconds: &gracePeriodSeconds,
		},
	}
	if err := s.client.CoreV1().Pods(namespace).EvictV1(ctx, eviction); err != nil {
		return fmt.Errorf("evict pod %s/%s: %w", namespace, podName, err)
	}
	return nil
}
