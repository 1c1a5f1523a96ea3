// Copyright (c) 2021 The DAS developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package metrics counts validator outcomes for off-chain checker
// deployments. Metrics are noop unless InitializePrometheusMetrics ran, so
// sandboxed builds pay nothing.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "das"

// CountM a monotonically increasing counter.
type CountM interface {
	Add(delta int64)
}

// CountVecM a counter partitioned by labels.
type CountVecM interface {
	AddWithLabel(delta int64, labels map[string]string)
}

type metrics struct {
	sync.Mutex
	enabled     bool
	registry    *prometheus.Registry
	counters    map[string]CountM
	counterVecs map[string]CountVecM
}

var store = &metrics{
	registry:    prometheus.NewRegistry(),
	counters:    make(map[string]CountM),
	counterVecs: make(map[string]CountVecM),
}

// InitializePrometheusMetrics switches the package from noop to prometheus
// backed collection.
func InitializePrometheusMetrics() {
	store.Lock()
	defer store.Unlock()
	store.enabled = true
}

// HTTPHandler exposes the collected metrics.
func HTTPHandler() http.Handler {
	return promhttp.HandlerFor(store.registry, promhttp.HandlerOpts{})
}

// Counter returns the counter registered under name, creating it on first use.
func Counter(name string) CountM {
	store.Lock()
	defer store.Unlock()
	if c, ok := store.counters[name]; ok {
		return c
	}
	var c CountM
	if store.enabled {
		pc := prometheus.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: name})
		store.registry.MustRegister(pc)
		c = &promCounter{pc}
	} else {
		c = noopMeter{}
	}
	store.counters[name] = c
	return c
}

// CounterVec returns the labeled counter registered under name, creating it
// on first use.
func CounterVec(name string, labels []string) CountVecM {
	store.Lock()
	defer store.Unlock()
	if c, ok := store.counterVecs[name]; ok {
		return c
	}
	var c CountVecM
	if store.enabled {
		pc := prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: namespace, Name: name}, labels)
		store.registry.MustRegister(pc)
		c = &promCounterVec{pc}
	} else {
		c = noopMeter{}
	}
	store.counterVecs[name] = c
	return c
}

type noopMeter struct{}

func (noopMeter) Add(int64)                             {}
func (noopMeter) AddWithLabel(int64, map[string]string) {}

type promCounter struct {
	counter prometheus.Counter
}

func (c *promCounter) Add(delta int64) {
	c.counter.Add(float64(delta))
}

type promCounterVec struct {
	vec *prometheus.CounterVec
}

func (c *promCounterVec) AddWithLabel(delta int64, labels map[string]string) {
	c.vec.With(labels).Add(float64(delta))
}
