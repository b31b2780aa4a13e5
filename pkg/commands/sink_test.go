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

package commands

import (
	"context"
	"testing"

	v1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	clientsetfake "k8s.io/client-go/kubernetes/fake"
	clienttesting "k8s.io/client-go/testing"

	"github.com/kube-nexus/kubenexus-scheduler/pkg/scheduler"
)

func TestApplyIssuesEvictionsBeforeBindings(t *testing.T) {
	pods := []runtime.Object{
		&v1.Pod{ObjectMeta: metav1.ObjectMeta{Name: "victim", Namespace: "default"}},
		&v1.Pod{ObjectMeta: metav1.ObjectMeta{Name: "pending-a", Namespace: "default"}},
	}
	client := clientsetfake.NewSimpleClientset(pods...)

	var order []string
	client.PrependReactor("create", "pods", func(action clienttesting.Action) (bool, runtime.Object, error) {
		switch a := action.(type) {
		case clienttesting.CreateActionImpl:
			if a.GetSubresource() == "binding" {
				order = append(order, "bind")
			} else if a.GetSubresource() == "eviction" {
				order = append(order, "evict")
			}
		}
		return false, nil, nil
	})

	sink := NewSink(client)
	actions := scheduler.Actions{
		Evictions: []string{"victim"},
		Bindings:  []scheduler.Binding{{PodName: "pending-a", NodeName: "node-a"}},
	}

	sink.Apply(context.Background(), "default", actions)

	if len(order) != 2 || order[0] != "evict" || order[1] != "bind" {
		t.Errorf("command order = %v, want [evict bind]", order)
	}
}

func TestApplyContinuesAfterEvictError(t *testing.T) {
	client := clientsetfake.NewSimpleClientset(
		&v1.Pod{ObjectMeta: metav1.ObjectMeta{Name: "pending-a", Namespace: "default"}},
	)

	bound := false
	client.PrependReactor("create", "pods", func(action clienttesting.Action) (bool, runtime.Object, error) {
		if a, ok := action.(clienttesting.CreateActionImpl); ok {
			switch a.GetSubresource() {
			case "eviction":
				return true, nil, context.DeadlineExceeded
			case "binding":
				bound = true
			}
		}
		return false, nil, nil
	})

	sink := NewSink(client)
	actions := scheduler.Actions{
		Evictions: []string{"missing-pod"},
		Bindings:  []scheduler.Binding{{PodName: "pending-a", NodeName: "node-a"}},
	}

	sink.Apply(context.Background(), "default", actions)

	if !bound {
		t.Error("bind was not attempted after evict failed")
	}
}
