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

package clusterstate

import (
	"context"
	"fmt"
	"time"

	"k8s.io/apimachinery/pkg/labels"
	"k8s.io/client-go/informers"
	coreinformers "k8s.io/client-go/informers/core/v1"
	"k8s.io/client-go/kubernetes"
	corelisters "k8s.io/client-go/listers/core/v1"

	"github.com/kube-nexus/kubenexus-scheduler/pkg/scheduler"
)

// DefaultResyncPeriod is how often the informer caches backing a Source
// do a full resync against the API server, independent of the driver's
// own polling cycle.
const DefaultResyncPeriod = 30 * time.Second

// Source is the state-source collaborator described in the scheduling
// design: it produces a scheduler.Snapshot on demand from informer
// caches kept warm in the background.
type Source struct {
	factory      informers.SharedInformerFactory
	podInformer  coreinformers.PodInformer
	nodeInformer coreinformers.NodeInformer
	podLister    corelisters.PodLister
	nodeLister   corelisters.NodeLister
}

// NewSource builds a Source backed by a shared informer factory for the
// given clientset. Call Start before the first GetSnapshot call.
func NewSource(client kubernetes.Interface) *Source {
	factory := informers.NewSharedInformerFactory(client, DefaultResyncPeriod)
	return &Source{
		factory:      factory,
		podInformer:  factory.Core().V1().Pods(),
		nodeInformer: factory.Core().V1().Nodes(),
		podLister:    factory.Core().V1().Pods().Lister(),
		nodeLister:   factory.Core().V1().Nodes().Lister(),
	}
}

// Start begins the informers and blocks until their caches have synced
// once, or ctx is done.
func (s *Source) Start(ctx context.Context) error {
	s.factory.Start(ctx.Done())
	synced := s.factory.WaitForCacheSync(ctx.Done())
	for informerType, ok := range synced {
		if !ok {
			return fmt.Errorf("cache for %v never synced", informerType)
		}
	}
	return nil
}

// GetSnapshot lists pods in namespace and all nodes from the informer
// caches and translates them into a scheduler.Snapshot. namespace may be
// metav1.NamespaceAll ("") to span every namespace.
func (s *Source) GetSnapshot(namespace string) (scheduler.Snapshot, error) {
	pods, err := s.podLister.Pods(namespace).List(labels.Everything())
	if err != nil {
		return scheduler.Snapshot{}, fmt.Errorf("list pods in namespace %q: %w", namespace, err)
	}

	nodes, err := s.nodeLister.List(labels.Everything())
	if err != nil {
		return scheduler.Snapshot{}, fmt.Errorf("list nodes: %w", err)
	}

	snapshot := scheduler.Snapshot{
		Nodes:     make([]scheduler.Node, 0, len(nodes)),
		Pods:      make([]scheduler.Pod, 0, len(pods)),
		Namespace: namespace,
		Timestamp: time.Now(),
	}
	for _, n := range nodes {
		snapshot.Nodes = append(snapshot.Nodes, translateNode(n))
	}
	for _, p := range pods {
		snapshot.Pods = append(snapshot.Pods, translatePod(p))
	}

	return snapshot, nil
}

// HasSynced reports whether the pod and node informers have completed
// their initial list. Exposed for health checks.
func (s *Source) HasSynced() bool {
	return s.podInformer.Informer().HasSynced() && s.nodeInformer.Informer().HasSynced()
}
