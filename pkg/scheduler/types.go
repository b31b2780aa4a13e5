/*
Copyright 2024 KubeNexus Authors.

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

// Package scheduler implements the KubeNexus gang-scheduling decision
// engine: a pure function from a snapshot of cluster state to a set of
// bindings and evictions. It has no dependency on Kubernetes API types or
// transport; callers translate to and from those at the edges (see
// pkg/clusterstate and pkg/commands).
package scheduler

import (
	"strconv"
	"time"
)

const (
	// SchedulerName is the conventional value of a pod's
	// spec.schedulerName for this scheduler, used by the test fixtures.
	// A running instance takes its name from configuration (pkg/config),
	// which defaults to "unknown".
	SchedulerName = "kubenexus-scheduler"

	// GroupNameAnnotation identifies the pod-group a pod belongs to. Pods
	// without this annotation (or with an empty value) are their own
	// singleton group, keyed by pod name.
	GroupNameAnnotation = "custom-scheduling.k8s.io/group-name"

	// MinAvailableAnnotation carries the minimum number of a group's pods
	// that must be running-or-newly-bound for the group to count as
	// admitted. A missing or malformed value defaults to 1.
	MinAvailableAnnotation = "custom-scheduling.k8s.io/min-available"

	// defaultMinAvailable is used whenever the annotation is absent,
	// empty, or fails to parse as a base-10 32-bit signed integer.
	defaultMinAvailable = 1
)

// Phase classifies a Pod for the purposes of this scheduler. Any value
// other than Pending or Running is Other and contributes no occupancy.
type Phase int

const (
	// Other covers any pod phase this scheduler does not act on.
	Other Phase = iota
	// Pending pods are candidates for binding.
	Pending
	// Running pods occupy a node, provided NodeName is also set.
	Running
)

// Node is a worker machine, identified by a unique name. It carries no
// other attributes relevant to the core.
type Node struct {
	Name string
}

// Pod is a workload unit considered by this scheduler.
type Pod struct {
	Name          string
	SchedulerName string
	NodeName      string
	Phase         Phase
	Priority      int32
	Annotations   map[string]string
}

// IsRunning reports whether p occupies a node: phase Running with a
// non-empty NodeName. A Running pod with no NodeName is semantically
// inconsistent and is treated as occupying nothing.
func (p Pod) IsRunning() bool {
	return p.Phase == Running && p.NodeName != ""
}

// IsPending reports whether p is a placement candidate.
func (p Pod) IsPending() bool {
	return p.Phase == Pending
}

// GroupKey returns the pod-group key: the GroupNameAnnotation value if
// present and non-empty, otherwise the pod's own name.
func (p Pod) GroupKey() string {
	if key := p.Annotations[GroupNameAnnotation]; key != "" {
		return key
	}
	return p.Name
}

// minAvailable parses the pod's MinAvailableAnnotation, defaulting to 1 on
// any parse failure (including a missing annotation). Negative and zero
// values are permitted: they make the group's threshold trivially met.
func (p Pod) minAvailable() int {
	raw, ok := p.Annotations[MinAvailableAnnotation]
	if !ok {
		return defaultMinAvailable
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return defaultMinAvailable
	}
	return int(v)
}

// Snapshot is an immutable view of cluster state at one instant. The core
// never mutates it.
type Snapshot struct {
	Nodes     []Node
	Pods      []Pod
	Namespace string
	Timestamp time.Time
}

// PodGroup is a set of pods sharing a group key, with aggregates computed
// once at construction time.
type PodGroup struct {
	GroupKey     string
	RunningPods  []Pod
	PendingPods  []Pod
	MaxPriority  int32
	MinAvailable int
}

// NumPending is the number of pending pods in the group.
func (g PodGroup) NumPending() int {
	return len(g.PendingPods)
}

// nodePriority is the priority attached to a node slot: either the
// priority of the group running on it, or the sentinel "free" value. It
// is a tagged variant rather than a numeric sentinel so comparisons never
// need sentinel arithmetic.
type nodePriority struct {
	free  bool
	value int32
}

// freePriority is the node-priority sentinel: it compares below every
// real priority, however small.
var freePriority = nodePriority{free: true}

// occupied returns the node priority of a group's slot occupancy.
func occupied(p int32) nodePriority {
	return nodePriority{free: false, value: p}
}

// less implements the total order used to sort node slots: FREE first,
// then ascending by priority.
func (n nodePriority) less(other nodePriority) bool {
	if n.free != other.free {
		return n.free
	}
	if n.free {
		return false
	}
	return n.value < other.value
}

// affordable reports whether a pending group of the given max priority may
// take a slot with this occupant priority, given whether preemption is
// enabled.
func (n nodePriority) affordable(groupMaxPriority int32, preemptEnabled bool) bool {
	if n.free {
		return true
	}
	return preemptEnabled && groupMaxPriority > n.value
}

// NodeSlot pairs a node with the priority of whatever currently occupies
// it (or the FREE sentinel).
type NodeSlot struct {
	Node     Node
	priority nodePriority
}

// Actions is the core's output: an ordered pair of eviction and binding
// lists. Callers must preserve this order — evictions precede bindings.
type Actions struct {
	Evictions []string
	Bindings  []Binding
}

// Binding assigns a pending pod to a node.
type Binding struct {
	PodName  string
	NodeName string
}
