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

// filterInScope returns the subset of pods whose SchedulerName matches
// schedulerName. Classification into Pending/Running/Other happens later,
// via Pod.IsPending/Pod.IsRunning; filterInScope only narrows by ownership.
func filterInScope(schedulerName string, pods []Pod) []Pod {
	inScope := make([]Pod, 0, len(pods))
	for _, p := range pods {
		if p.SchedulerName == schedulerName {
			inScope = append(inScope, p)
		}
	}
	return inScope
}
