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

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
	"k8s.io/klog/v2"

	"github.com/kube-nexus/kubenexus-scheduler/pkg/clusterstate"
	"github.com/kube-nexus/kubenexus-scheduler/pkg/commands"
	"github.com/kube-nexus/kubenexus-scheduler/pkg/config"
	"github.com/kube-nexus/kubenexus-scheduler/pkg/driver"
)

func main() {
	if err := newSchedulerCommand().Execute(); err != nil {
		klog.ErrorS(err, "scheduler command failed")
		os.Exit(1)
	}
}

func newSchedulerCommand() *cobra.Command {
	var flags *config.Flags

	cmd := &cobra.Command{
		Use:   "kubenexus-scheduler",
		Short: "Gang-aware pod scheduler for kubenexus workloads",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), flags)
		},
	}

	flags = config.BindFlags(cmd.Flags())
	return cmd
}

func run(ctx context.Context, flags *config.Flags) error {
	cfg, err := flags.Resolve()
	if err != nil {
		return err
	}

	klog.InfoS("kubenexus-scheduler starting",
		"schedulerName", cfg.SchedulerName,
		"namespace", cfg.Namespace,
		"preemptionEnabled", cfg.PreemptionEnabled,
		"interval", cfg.Interval)

	client, err := buildClient(cfg.Kubeconfig)
	if err != nil {
		return err
	}

	source := clusterstate.NewSource(client)

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := source.Start(ctx); err != nil {
		return err
	}

	go serveMetrics(cfg.MetricsAddr)

	d := &driver.Driver{
		SchedulerName:     cfg.SchedulerName,
		Namespace:         cfg.Namespace,
		PreemptionEnabled: cfg.PreemptionEnabled,
		Interval:          cfg.Interval,
		Source:            source,
		Sink:              commands.NewSink(client),
	}
	d.Run(ctx)

	klog.InfoS("kubenexus-scheduler stopped")
	return nil
}

// buildClient resolves a Kubernetes clientset, preferring an explicit
// kubeconfig path and falling back to in-cluster configuration.
func buildClient(kubeconfig string) (kubernetes.Interface, error) {
	var restConfig *rest.Config
	var err error

	if kubeconfig != "" {
		restConfig, err = clientcmd.BuildConfigFromFlags("", kubeconfig)
	} else {
		restConfig, err = rest.InClusterConfig()
	}
	if err != nil {
		return nil, err
	}

	return kubernetes.NewForConfig(restConfig)
}

func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	klog.InfoS("metrics server listening", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		klog.ErrorS(err, "metrics server stopped")
	}
}
