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

package scheduler

import "sort"

// buildNodeSlots attaches to each node the priority of the group
// currently occupying it via a Running pod of this scheduler, or the FREE
// sentinel if unoccupied (including when the node is occupied only by a
// pod of a foreign scheduler — that occupancy is outside this scheduler's
// authority, so the node is still a candidate). The result is sorted
// ascending by (occupantPriority, nodeName), which is what makes
// preemption a local comparison: the cheapest slots sort first.
func buildNodeSlots(nodes []Node, groups map[string]*PodGroup) []NodeSlot {
	nodeToPriority := make(map[string]int32, len(nodes))
	for _, g := range groups {
		for _, p := range g.RunningPods {
			nodeToPriority[p.NodeName] = g.MaxPriority
		}
	}

	slots := make([]NodeSlot, len(nodes))
	for i, n := range nodes {
		if pr, ok := nodeToPriority[n.Name]; ok {
			slots[i] = NodeSlot{Node: n, priority: occupied(pr)}
		} else {
			slots[i] = NodeSlot{Node: n, priority: freePriority}
		}
	}

	sort.SliceStable(slots, func(i, j int) bool {
		if slots[i].priority.less(slots[j].priority) {
			return true
		}
		if slots[j].priority.less(slots[i].priority) {
			return false
		}
		return slots[i].Node.Name < slots[j].Node.Name
	})

	return slots
}
