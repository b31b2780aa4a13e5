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

// buildPodGroups folds in-scope pods into PodGroups keyed by GroupKey.
// Partitioning is total and disjoint over the Pending and Running pods;
// pods in any other phase contribute no occupancy and are not members of
// any group (a group with no running and no pending pods would otherwise
// have no well-defined maxPriority, and per the data model empty groups
// never occur). Groups are returned in no particular order; callers that
// need a deterministic order should use orderGroups.
func buildPodGroups(pods []Pod) map[string]*PodGroup {
	groups := make(map[string]*PodGroup)
	seen := make(map[string]bool)

	for _, p := range pods {
		if !p.IsRunning() && !p.IsPending() {
			continue
		}

		key := p.GroupKey()
		g, ok := groups[key]
		if !ok {
			g = &PodGroup{GroupKey: key}
			groups[key] = g
		}

		if !seen[key] || p.Priority > g.MaxPriority {
			g.MaxPriority = p.Priority
		}
		seen[key] = true

		switch {
		case p.IsRunning():
			g.RunningPods = append(g.RunningPods, p)
		case p.IsPending():
			g.PendingPods = append(g.PendingPods, p)
		}
	}

	for _, g := range groups {
		g.MinAvailable = computeMinAvailable(g.PendingPods)
	}

	return groups
}

// computeMinAvailable is the max of each pending pod's min-available
// annotation, defaulting to 1 when the group has no pending pods (it is
// already satisfied) or when every pending pod's annotation is absent or
// malformed.
func computeMinAvailable(pending []Pod) int {
	if len(pending) == 0 {
		return defaultMinAvailable
	}
	max := pending[0].minAvailable()
	for _, p := range pending[1:] {
		if v := p.minAvailable(); v > max {
			max = v
		}
	}
	return max
}
