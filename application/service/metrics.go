package service

import (
	"errors"
	"fmt"

	"github.com/helixml/periodic/domain/dataset"
	"github.com/prometheus/client_golang/prometheus"
)

// Load outcomes recorded per record.
const (
	outcomeCommitted = "committed"
	outcomeSkipped   = "skipped"
	outcomeDefaulted = "defaulted"
)

// LoadMetrics counts loaded records by kind and outcome.
type LoadMetrics struct {
	records *prometheus.CounterVec
}

// NewLoadMetrics creates the load counters and registers them with reg.
// A nil reg leaves the counters unregistered. Registering twice on the same
// registry reuses the collector already there.
func NewLoadMetrics(reg prometheus.Registerer) (*LoadMetrics, error) {
	records := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "periodic",
		Name:      "load_records_total",
		Help:      "Source records processed by the bulk loader, by kind and outcome.",
	}, []string{"kind", "outcome"})

	if reg != nil {
		if err := reg.Register(records); err != nil {
			var already prometheus.AlreadyRegisteredError
			if !errors.As(err, &already) {
				return nil, fmt.Errorf("register load metrics: %w", err)
			}
			existing, ok := already.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				return nil, fmt.Errorf("register load metrics: unexpected collector %T", already.ExistingCollector)
			}
			records = existing
		}
	}
	return &LoadMetrics{records: records}, nil
}

func (m *LoadMetrics) observe(kind dataset.Kind, outcome string) {
	if m == nil {
		return
	}
	m.records.WithLabelValues(kind.String(), outcome).Inc()
}

// Collector exposes the underlying counters.
func (m *LoadMetrics) Collector() *prometheus.CounterVec {
	return m.records
}
