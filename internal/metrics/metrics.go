// Package metrics instruments dashboard stores and data generation with
// Prometheus collectors.
package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/inaiurai/admindemo/internal/store"
)

const namespace = "admindemo"

// Recorder implements store.Observer and records generation timings.
type Recorder struct {
	actions    *prometheus.CounterVec
	records    *prometheus.GaugeVec
	generation *prometheus.HistogramVec
}

var _ store.Observer = (*Recorder)(nil)

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		actions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "store",
				Name:      "actions_total",
				Help:      "Store actions applied, by store and action kind",
			},
			[]string{"store", "action"},
		),
		records: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "store",
				Name:      "records",
				Help:      "Records currently held by a store",
			},
			[]string{"store"},
		),
		generation: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "generation_duration_seconds",
				Help:      "Time taken to generate one entity collection",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8), // 100µs to ~1.6s
			},
			[]string{"kind"},
		),
	}
	for _, c := range []prometheus.Collector{r.actions, r.records, r.generation} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
	}
	return r, nil
}

func (r *Recorder) ObserveAction(storeName string, kind store.ActionKind, records int) {
	r.actions.WithLabelValues(storeName, string(kind)).Inc()
	r.records.WithLabelValues(storeName).Set(float64(records))
}

func (r *Recorder) ObserveGeneration(kind string, d time.Duration) {
	r.generation.WithLabelValues(kind).Observe(d.Seconds())
}

// WriteText gathers every family from g and writes it in the Prometheus text
// exposition format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
