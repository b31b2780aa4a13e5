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

// Package driver runs the scheduler's snapshot-decide-apply loop on a
// fixed interval, outside the in-tree kube-scheduler framework.
package driver

import (
	"context"
	"time"

	"k8s.io/klog/v2"

	"github.com/kube-nexus/kubenexus-scheduler/pkg/commands"
	"github.com/kube-nexus/kubenexus-scheduler/pkg/metrics"
	"github.com/kube-nexus/kubenexus-scheduler/pkg/scheduler"
)

// StateSource produces a current snapshot of cluster state. It is
// satisfied by *clusterstate.Source; defined here as an interface so the
// driver can be tested without a live cluster.
type StateSource interface {
	GetSnapshot(namespace string) (scheduler.Snapshot, error)
}

// CommandSink applies the actions decide() computes. It is satisfied by
// *commands.Sink.
type CommandSink interface {
	Apply(ctx context.Context, namespace string, actions scheduler.Actions)
}

// Driver runs scheduling cycles for a single scheduler instance on a
// fixed interval until its context is canceled.
type Driver struct {
	SchedulerName     string
	Namespace         string
	PreemptionEnabled bool
	Interval          time.Duration

	Source StateSource
	Sink   CommandSink
}

// Run blocks, executing one scheduling cycle immediately and then every
// Interval, until ctx is canceled. Cycles never overlap: runCycle is
// called synchronously from the loop, so the next tick is only received
// after the previous cycle has finished. Ticks that fall due during a
// long cycle are dropped by the ticker rather than queued.
func (d *Driver) Run(ctx context.Context) {
	d.runCycle(ctx)

	ticker := time.NewTicker(d.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.runCycle(ctx)
		}
	}
}

// runCycle executes one full snapshot-decide-apply cycle. Errors
// retrieving the snapshot are logged and the cycle is abandoned; the
// next tick retries against fresh state.
func (d *Driver) runCycle(ctx context.Context) {
	start := time.Now()

	snapshot, err := d.Source.GetSnapshot(d.Namespace)
	if err != nil {
		klog.ErrorS(err, "get snapshot failed", "namespace", d.Namespace)
		metrics.CyclesTotal.WithLabelValues("snapshot_error").Inc()
		return
	}

	decideStart := time.Now()
	actions := scheduler.Decide(d.SchedulerName, snapshot, d.PreemptionEnabled)
	metrics.DecideDuration.WithLabelValues(d.Namespace).Observe(time.Since(decideStart).Seconds())

	if len(actions.Evictions) > 0 || len(actions.Bindings) > 0 {
		klog.InfoS("scheduling cycle produced actions",
			"namespace", d.Namespace,
			"evictions", len(actions.Evictions),
			"bindings", len(actions.Bindings))
	}

	metrics.BindingsTotal.WithLabelValues(d.Namespace).Add(float64(len(actions.Bindings)))
	metrics.EvictionsTotal.WithLabelValues(d.Namespace).Add(float64(len(actions.Evictions)))

	d.Sink.Apply(ctx, d.Namespace, actions)

	metrics.CyclesTotal.WithLabelValues("ok").Inc()
	metrics.CycleDuration.WithLabelValues(d.Namespace).Observe(time.Since(start).Seconds())
}
