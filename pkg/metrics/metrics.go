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

// Package metrics provides Prometheus instrumentation for the scheduling
// driver loop.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CyclesTotal counts completed driver cycles, labeled by outcome
	// ("ok" or "snapshot_error").
	CyclesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kubenexus_scheduling_cycles_total",
			Help: "Total number of scheduling cycles run by the driver loop.",
		},
		[]string{"result"},
	)

	// CycleDuration tracks how long a full snapshot-decide-apply cycle
	// takes.
	CycleDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "kubenexus_scheduling_cycle_duration_seconds",
			Help:    "Duration of a full scheduling cycle in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"namespace"},
	)

	// DecideDuration tracks the pure decision function's latency in
	// isolation from snapshot retrieval and command application.
	DecideDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "kubenexus_decide_duration_seconds",
			Help:    "Duration of the decide() core computation in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"namespace"},
	)

	// BindingsTotal counts bindings emitted by decide(), labeled by
	// namespace.
	BindingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kubenexus_bindings_total",
			Help: "Total number of pod bindings emitted.",
		},
		[]string{"namespace"},
	)

	// EvictionsTotal counts evictions emitted by decide(), labeled by
	// namespace.
	EvictionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kubenexus_evictions_total",
			Help: "Total number of pod evictions emitted.",
		},
		[]string{"namespace"},
	)

	// CommandErrorsTotal counts failed Bind/Evict API calls, labeled by
	// the command kind ("bind" or "evict").
	CommandErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kubenexus_command_errors_total",
			Help: "Total number of failed bind/evict API calls.",
		},
		[]string{"command"},
	)
)
