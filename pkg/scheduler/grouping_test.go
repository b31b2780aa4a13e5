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

import "testing"

func TestBuildPodGroupsSkipsOtherPhasePods(t *testing.T) {
	pods := []Pod{
		{Name: "succeeded-pod", Phase: Other},
	}

	groups := buildPodGroups(pods)

	if len(groups) != 0 {
		t.Errorf("got %d groups, want 0 (a pod with no running/pending members forms no group)", len(groups))
	}
}

func TestBuildPodGroupsMaxPriorityAcrossRunningAndPending(t *testing.T) {
	pods := []Pod{
		{Name: "running-low", Phase: Running, NodeName: "node-a", Priority: 1, Annotations: groupAnnotation("g")},
		{Name: "pending-high", Phase: Pending, Priority: 9, Annotations: groupAnnotation("g")},
		{Name: "pending-mid", Phase: Pending, Priority: 5, Annotations: groupAnnotation("g")},
	}

	groups := buildPodGroups(pods)

	g, ok := groups["g"]
	if !ok {
		t.Fatal("group \"g\" not found")
	}
	if g.MaxPriority != 9 {
		t.Errorf("MaxPriority = %d, want 9", g.MaxPriority)
	}
	if len(g.RunningPods) != 1 || len(g.PendingPods) != 2 {
		t.Errorf("RunningPods=%d PendingPods=%d, want 1 and 2", len(g.RunningPods), len(g.PendingPods))
	}
}

func TestBuildPodGroupsMinAvailableIsMaxAcrossPending(t *testing.T) {
	pods := []Pod{
		{Name: "a", Phase: Pending, Annotations: minAvail("g", "2")},
		{Name: "b", Phase: Pending, Annotations: minAvail("g", "5")},
	}

	groups := buildPodGroups(pods)

	if groups["g"].MinAvailable != 5 {
		t.Errorf("MinAvailable = %d, want 5", groups["g"].MinAvailable)
	}
}

func TestBuildPodGroupsSingletonDefaultsToOwnName(t *testing.T) {
	pods := []Pod{{Name: "solo", Phase: Pending}}

	groups := buildPodGroups(pods)

	if _, ok := groups["solo"]; !ok {
		t.Error("expected a group keyed by the pod's own name")
	}
}
