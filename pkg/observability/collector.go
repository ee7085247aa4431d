package observability

import (
	"github.com/aretw0/fsm"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "fsm"

// Move results used as the "result" label.
const (
	ResultAccepted = "accepted"
	ResultRejected = "rejected"
)

// Collector counts walker starts and moves for one machine.
// It implements prometheus.Collector.
type Collector struct {
	walkers *prometheus.CounterVec
	moves   *prometheus.CounterVec
}

// NewCollector creates a collector whose series carry machine as the "machine" label.
func NewCollector(machine string) *Collector {
	labels := prometheus.Labels{"machine": machine}
	return &Collector{
		walkers: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Name:        "walkers_started_total",
				Help:        "Total number of walkers started, by initial state",
				ConstLabels: labels,
			},
			[]string{"state"},
		),
		moves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Name:        "moves_total",
				Help:        "Total number of walker moves, by source, destination and result",
				ConstLabels: labels,
			},
			[]string{"from", "to", "result"},
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.walkers.Describe(ch)
	c.moves.Describe(ch)
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.walkers.Collect(ch)
	c.moves.Collect(ch)
}

// Hooks returns lifecycle hooks that record into this collector.
func (c *Collector) Hooks() fsm.LifecycleHooks {
	return fsm.LifecycleHooks{
		OnStart: func(e *fsm.StartEvent) {
			c.walkers.WithLabelValues(e.State.Name()).Inc()
		},
		OnMove: func(e *fsm.MoveEvent) {
			c.moves.WithLabelValues(e.From.Name(), e.To.Name(), ResultAccepted).Inc()
		},
		OnReject: func(e *fsm.MoveEvent) {
			c.moves.WithLabelValues(e.From.Name(), e.To.Name(), ResultRejected).Inc()
		},
	}
}
