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

// Package config resolves the scheduler's runtime configuration from
// environment variables and command-line flags, with flags taking
// precedence over the environment when both are set.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/pflag"
)

const (
	envSchedulerName     = "SCHEDULER_NAME"
	envNamespace         = "POD_NAMESPACE"
	envPreemptionEnabled = "SCHEDULER_PREEMPTION_ENABLED"
	envCycleInterval     = "SCHEDULER_CYCLE_INTERVAL"
	envMetricsAddr       = "SCHEDULER_METRICS_ADDR"

	// defaultCycleInterval mirrors the original driver's poll period.
	defaultCycleInterval = 5 * time.Second
	defaultMetricsAddr   = ":9090"
	// defaultUnknown matches the original driver's os.environ.get(..., "unknown")
	// fallback for scheduler name and namespace.
	defaultUnknown = "unknown"
)

// Config is the resolved set of values the driver and its collaborators
// need to run one instance of the scheduler.
type Config struct {
	// SchedulerName selects which pods this instance is responsible for;
	// it is compared against each pod's spec.schedulerName.
	SchedulerName string
	// Namespace scopes every snapshot and command to a single namespace.
	// Empty means all namespaces.
	Namespace string
	// PreemptionEnabled controls whether decide() may evict lower-priority
	// occupants to admit a higher-priority pending group.
	PreemptionEnabled bool
	// Interval is the time between driver cycles.
	Interval time.Duration
	// MetricsAddr is the listen address for the Prometheus /metrics
	// endpoint.
	MetricsAddr string
	// Kubeconfig is the path to a kubeconfig file; empty means in-cluster
	// config.
	Kubeconfig string
}

// Flags holds the pflag.FlagSet-bound values used to resolve a Config.
// Flags that were never set on the command line fall back to their
// environment variable, then to a hardcoded default.
type Flags struct {
	SchedulerName     string
	Namespace         string
	PreemptionEnabled bool
	Interval          time.Duration
	MetricsAddr       string
	Kubeconfig        string

	set *pflag.FlagSet
}

// BindFlags registers the scheduler's flags on fs and returns a Flags
// that Resolve reads back after fs.Parse has run.
func BindFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{set: fs}
	fs.StringVar(&f.SchedulerName, "scheduler-name", "", "name this scheduler instance answers to (env "+envSchedulerName+")")
	fs.StringVar(&f.Namespace, "namespace", "", "namespace to schedule within, empty for all namespaces (env "+envNamespace+")")
	fs.BoolVar(&f.PreemptionEnabled, "preempt", true, "allow evicting lower-priority pods to admit higher-priority groups (env "+envPreemptionEnabled+")")
	fs.DurationVar(&f.Interval, "interval", 0, "time between scheduling cycles (env "+envCycleInterval+")")
	fs.StringVar(&f.MetricsAddr, "metrics-addr", "", "listen address for the Prometheus metrics endpoint (env "+envMetricsAddr+")")
	fs.StringVar(&f.Kubeconfig, "kubeconfig", "", "path to a kubeconfig file; empty uses in-cluster config")
	return f
}

// Resolve builds a Config from f, falling back to environment variables
// for any flag not passed on the command line, and finally to hardcoded
// defaults. A flag is considered "set" (and so takes precedence over its
// environment variable) only if it was actually passed on the command
// line; this lets an unset boolean flag fall through to the environment
// instead of always resolving to false.
func (f *Flags) Resolve() (Config, error) {
	cfg := Config{
		SchedulerName:     defaultUnknown,
		Namespace:         defaultUnknown,
		PreemptionEnabled: true,
		Interval:          defaultCycleInterval,
		MetricsAddr:       defaultMetricsAddr,
	}

	if v, ok := lookupString(envSchedulerName); ok {
		cfg.SchedulerName = v
	}
	if f.changed("scheduler-name") {
		cfg.SchedulerName = f.SchedulerName
	}

	if v, ok := lookupString(envNamespace); ok {
		cfg.Namespace = v
	}
	if f.changed("namespace") {
		cfg.Namespace = f.Namespace
	}

	if v, ok := os.LookupEnv(envPreemptionEnabled); ok {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse %s=%q: %w", envPreemptionEnabled, v, err)
		}
		cfg.PreemptionEnabled = parsed
	}
	if f.changed("preempt") {
		cfg.PreemptionEnabled = f.PreemptionEnabled
	}

	if v, ok := os.LookupEnv(envCycleInterval); ok {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse %s=%q: %w", envCycleInterval, v, err)
		}
		cfg.Interval = parsed
	}
	if f.changed("interval") {
		cfg.Interval = f.Interval
	}

	if v, ok := lookupString(envMetricsAddr); ok {
		cfg.MetricsAddr = v
	}
	if f.changed("metrics-addr") {
		cfg.MetricsAddr = f.MetricsAddr
	}

	cfg.Kubeconfig = f.Kubeconfig
	if cfg.Kubeconfig == "" {
		cfg.Kubeconfig = os.Getenv("KUBECONFIG")
	}

	return cfg, nil
}

func (f *Flags) changed(name string) bool {
	if f.set == nil {
		return false
	}
	flag := f.set.Lookup(name)
	return flag != nil && flag.Changed
}

func lookupString(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
