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

// Decide computes the placement and eviction actions for one scheduling
// cycle. It is a pure, synchronous function: it mutates nothing in
// snapshot and holds no state across calls, so concurrent invocations on
// disjoint snapshots are independent and repeated invocations on the same
// snapshot produce byte-identical output.
//
// schedulerName selects the pods this call is responsible for. preempt
// controls whether a pending group may evict a lower-priority occupant to
// claim its slot; when false, only free slots are ever used and
// Actions.Evictions is always empty.
func Decide(schedulerName string, snapshot Snapshot, preempt bool) Actions {
	inScope := filterInScope(schedulerName, snapshot.Pods)

	nodeToRunningOccupant := make(map[string]string, len(inScope))
	for _, p := range inScope {
		if p.IsRunning() {
			nodeToRunningOccupant[p.NodeName] = p.Name
		}
	}

	groups := buildPodGroups(inScope)
	slots := buildNodeSlots(snapshot.Nodes, groups)
	ordered := orderGroups(groups)

	w := &walk{
		slots:                 slots,
		nodeToRunningOccupant: nodeToRunningOccupant,
		preempt:               preempt,
	}
	for _, g := range ordered {
		w.admitGroup(g)
	}

	return Actions{
		Evictions: w.evictions,
		Bindings:  w.bindings,
	}
}

// walk carries the state threaded through the group-by-group admission
// pass: which slot to try next, and the actions accumulated so far.
type walk struct {
	slots                 []NodeSlot
	next                  int
	nodeToRunningOccupant map[string]string
	preempt               bool

	evictions []string
	bindings  []Binding
}

// admitGroup attempts to admit one pod group against the remaining slots,
// per the admission check and placement rule in the scheduling spec. A
// group that fails admission emits nothing and does not advance w.next —
// it is neither retried later in this cycle nor does it block
// lower-priority groups from attempting their own slots.
func (w *walk) admitGroup(g *PodGroup) {
	need := g.MinAvailable - len(g.RunningPods)
	if need < 0 {
		need = 0
	}
	if need == 0 {
		return
	}

	if w.next+need > len(w.slots) {
		return
	}
	lastSlot := w.slots[w.next+need-1]
	if !lastSlot.priority.affordable(g.MaxPriority, w.preempt) {
		return
	}

	k := len(g.PendingPods)
	if remaining := len(w.slots) - w.next; k > remaining {
		k = remaining
	}

	placed := 0
	for i := 0; i < k; i++ {
		slot := w.slots[w.next+i]
		if !slot.priority.affordable(g.MaxPriority, w.preempt) {
			break
		}

		pod := g.PendingPods[i]
		w.bindings = append(w.bindings, Binding{PodName: pod.Name, NodeName: slot.Node.Name})
		if !slot.priority.free {
			if victim, ok := w.nodeToRunningOccupant[slot.Node.Name]; ok {
				w.evictions = append(w.evictions, victim)
			}
		}
		placed++
	}

	w.next += placed
}
