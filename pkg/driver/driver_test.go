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

package driver

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/kube-nexus/kubenexus-scheduler/pkg/scheduler"
)

type fakeSource struct {
	mu       sync.Mutex
	snapshot scheduler.Snapshot
	err      error
	calls    int
}

func (f *fakeSource) GetSnapshot(namespace string) (scheduler.Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return scheduler.Snapshot{}, f.err
	}
	return f.snapshot, nil
}

type fakeSink struct {
	mu      sync.Mutex
	applied []scheduler.Actions
}

func (f *fakeSink) Apply(ctx context.Context, namespace string, actions scheduler.Actions) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.applied = append(f.applied, actions)
}

func (f *fakeSink) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.applied)
}

func TestRunExecutesCycleImmediately(t *testing.T) {
	source := &fakeSource{}
	sink := &fakeSink{}
	d := &Driver{
		SchedulerName: "kubenexus-scheduler",
		Namespace:     "default",
		Interval:      time.Hour,
		Source:        source,
		Sink:          sink,
	}

	ctx, cancel := context.WithCancel(context.Background())
	go d.Run(ctx)
	defer cancel()

	deadline := time.After(time.Second)
	for sink.count() == 0 {
		select {
		case <-deadline:
			t.Fatal("timed out waiting for first cycle")
		case <-time.After(time.Millisecond):
		}
	}
	cancel()
}

func TestRunStopsOnContextCancel(t *testing.T) {
	source := &fakeSource{}
	sink := &fakeSink{}
	d := &Driver{
		Interval: 10 * time.Millisecond,
		Source:   source,
		Sink:     sink,
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		d.Run(ctx)
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after context cancellation")
	}
}

func TestRunCycleSkipsApplyOnSnapshotError(t *testing.T) {
	source := &fakeSource{err: errors.New("api unavailable")}
	sink := &fakeSink{}
	d := &Driver{
		Interval: time.Hour,
		Source:   source,
		Sink:     sink,
	}

	d.runCycle(context.Background())

	if sink.count() != 0 {
		t.Errorf("Apply called %d times, want 0 when snapshot fails", sink.count())
	}
}

func TestRunCycleAppliesDecideOutput(t *testing.T) {
	source := &fakeSource{
		snapshot: scheduler.Snapshot{
			Namespace: "default",
			Nodes:     []scheduler.Node{{Name: "node-a"}},
			Pods: []scheduler.Pod{
				{Name: "pod-a", SchedulerName: "kubenexus-scheduler", Phase: scheduler.Pending},
			},
		},
	}
	sink := &fakeSink{}
	d := &Driver{
		SchedulerName: "kubenexus-scheduler",
		Namespace:     "default",
		Interval:      time.Hour,
		Source:        source,
		Sink:          sink,
	}

	d.runCycle(context.Background())

	if sink.count() != 1 {
		t.Fatalf("Apply called %d times, want 1", sink.count())
	}
	if len(sink.applied[0].Bindings) != 1 {
		t.Errorf("Bindings = %d, want 1", len(sink.applied[0].Bindings))
	}
}
