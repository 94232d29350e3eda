// Package metrics records lookup outcomes as Prometheus counters and writes
// them in the node-exporter textfile format. Nothing here listens on a port.
package metrics

import (
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ericfisherdev/fishledger/internal/domain/model"
	"github.com/ericfisherdev/fishledger/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.LookupRecorder = (*LookupMetrics)(nil)

// LookupMetrics counts lookups by outcome and sums the units seen per species
// across successful lookups.
type LookupMetrics struct {
	registry *prometheus.Registry
	lookups  *prometheus.CounterVec
	units    *prometheus.CounterVec
}

// NewLookupMetrics creates counters on a private registry.
func NewLookupMetrics() *LookupMetrics {
	m := &LookupMetrics{
		registry: prometheus.NewRegistry(),
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fishledger",
			Name:      "lookups_total",
			Help:      "Withdrawal lookups by outcome.",
		}, []string{"outcome"}),
		units: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fishledger",
			Name:      "looked_up_units_total",
			Help:      "Units per species in successfully decoded withdrawals.",
		}, []string{"species_index"}),
	}
	m.registry.MustRegister(m.lookups, m.units)

	// Pre-create every outcome so the textfile always lists all four.
	for _, o := range []driven.LookupOutcome{
		driven.LookupFound, driven.LookupNotFound, driven.LookupDecodeError, driven.LookupStoreError,
	} {
		m.lookups.WithLabelValues(string(o))
	}
	return m
}

// RecordLookup implements driven.LookupRecorder.
func (m *LookupMetrics) RecordLookup(outcome driven.LookupOutcome, v model.QuantityVector) {
	m.lookups.WithLabelValues(string(outcome)).Inc()
	for i, q := range v {
		if q > 0 {
			m.units.WithLabelValues(strconv.Itoa(i)).Add(float64(q))
		}
	}
}

// Registry exposes the underlying registry for tests and custom exporters.
func (m *LookupMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile atomically writes all counters to path.
func (m *LookupMetrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("write metrics textfile %s: %w", path, err)
	}
	return nil
}
