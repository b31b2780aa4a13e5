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

// Package clusterstate is the state-source collaborator: it turns live
// Kubernetes API objects into the pure pkg/scheduler data model.
package clusterstate

import (
	v1 "k8s.io/api/core/v1"

	"github.com/kube-nexus/kubenexus-scheduler/pkg/scheduler"
)

// translatePod converts a *v1.Pod into a scheduler.Pod. Missing fields are
// treated as their zero value, matching the core's contract that absent
// data is absent, never an error.
func translatePod(pod *v1.Pod) scheduler.Pod {
	var priority int32
	if pod.Spec.Priority != nil {
		priority = *pod.Spec.Priority
	}

	return scheduler.Pod{
		Name:          pod.Name,
		SchedulerName: pod.Spec.SchedulerName,
		NodeName:      pod.Spec.NodeName,
		Phase:         translatePhase(pod.Status.Phase),
		Priority:      priority,
		Annotations:   pod.Annotations,
	}
}

// translatePhase maps a Kubernetes pod phase onto the three-way
// classification the core cares about. Anything other than Pending and
// Running is Other and contributes no occupancy.
func translatePhase(phase v1.PodPhase) scheduler.Phase {
	switch phase {
	case v1.PodPending:
		return scheduler.Pending
	case v1.PodRunning:
		return scheduler.Running
	default:
		return scheduler.Other
	}
}

// translateNode converts a *v1.Node into a scheduler.Node.
func translateNode(node *v1.Node) scheduler.Node {
	return scheduler.Node{Name: node.Name}
}
