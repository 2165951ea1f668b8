package observability

import (
	"context"

	"github.com/aretw0/rewind/pkg/history"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "rewind"

// Metrics records every command outcome and the resulting timeline size.
type Metrics struct {
	Commands  *prometheus.CounterVec
	Guarded   *prometheus.CounterVec
	PastLen   prometheus.Histogram
	FutureLen prometheus.Histogram
}

// NewMetrics creates the collectors and registers them on reg.
// A nil reg leaves the collectors unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	buckets := prometheus.ExponentialBuckets(1, 4, 8)
	m := &Metrics{
		Commands: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "commands_total",
				Help:      "Total number of history commands by kind and outcome",
			},
			[]string{"kind", "outcome"},
		),
		Guarded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "guarded_total",
				Help:      "Undo or redo requests refused because the trail was empty",
			},
			[]string{"kind"},
		),
		PastLen: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "past_length",
			Help:      "Number of undo checkpoints after each command",
			Buckets:   buckets,
		}),
		FutureLen: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "future_length",
			Help:      "Number of redo checkpoints after each command",
			Buckets:   buckets,
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Commands, m.Guarded, m.PastLen, m.FutureLen)
	}
	return m
}

// Hooks returns lifecycle hooks feeding the collectors.
func (m *Metrics) Hooks() history.LifecycleHooks {
	return history.LifecycleHooks{
		OnCommand: func(_ context.Context, e *history.Event) {
			m.Commands.WithLabelValues(e.Kind.String(), e.Outcome.String()).Inc()
			m.PastLen.Observe(float64(e.PastLen))
			m.FutureLen.Observe(float64(e.FutureLen))
		},
		OnGuarded: func(_ context.Context, e *history.Event) {
			m.Guarded.WithLabelValues(e.Kind.String()).Inc()
		},
	}
}
