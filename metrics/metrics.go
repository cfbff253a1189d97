package metrics

import (
	"github.com/mmdatafocus/kitchen_totals/models"
	"github.com/prometheus/client_golang/prometheus"
)

type Registry struct {
	reg            *prometheus.Registry
	RecordsLoaded  *prometheus.CounterVec
	InvalidRecords *prometheus.CounterVec
	OrdersTotalled prometheus.Counter
	RunDurationSec prometheus.Gauge
	Runs           *prometheus.CounterVec
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	loaded := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "kitchen_records_loaded_total"}, []string{"kind"})
	invalid := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "kitchen_records_invalid_total"}, []string{"kind"})
	totalled := prometheus.NewCounter(prometheus.CounterOpts{Name: "kitchen_orders_totalled_total"})
	duration := prometheus.NewGauge(prometheus.GaugeOpts{Name: "kitchen_run_duration_seconds"})
	runs := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "kitchen_runs_total"}, []string{"outcome"})

	r.MustRegister(loaded, invalid, totalled, duration, runs)
	return &Registry{
		reg:            r,
		RecordsLoaded:  loaded,
		InvalidRecords: invalid,
		OrdersTotalled: totalled,
		RunDurationSec: duration,
		Runs:           runs,
	}
}

func (r *Registry) Loaded(kind models.EntityKind, n int) {
	r.RecordsLoaded.WithLabelValues(kind.String()).Add(float64(n))
}

func (r *Registry) Invalid(kind models.EntityKind) {
	r.InvalidRecords.WithLabelValues(kind.String()).Inc()
}

func (r *Registry) Gatherer() prometheus.Gatherer { return r.reg }

// WriteToTextfile dumps every metric in the text exposition format, for node_exporter's textfile collector.
func (r *Registry) WriteToTextfile(filename string) error {
	return prometheus.WriteToTextfile(filename, r.reg)
}
