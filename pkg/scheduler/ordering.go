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

// orderGroups totally orders the groups that have at least one pending
// pod, by (-maxPriority, -numPending, groupKey): highest priority first,
// larger pending groups first within a priority tier, then lexicographic
// by name. Groups with no pending pods are already satisfied and are
// dropped here rather than in the caller, since they never attempt
// admission.
func orderGroups(groups map[string]*PodGroup) []*PodGroup {
	ordered := make([]*PodGroup, 0, len(groups))
	for _, g := range groups {
		if g.NumPending() > 0 {
			ordered = append(ordered, g)
		}
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.MaxPriority != b.MaxPriority {
			return a.MaxPriority > b.MaxPriority
		}
		if a.NumPending() != b.NumPending() {
			return a.NumPending() > b.NumPending()
		}
		return a.GroupKey < b.GroupKey
	})

	return ordered
}
