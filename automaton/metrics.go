package automaton

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	generationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "automaton_generations_total",
		Help: "Number of generations computed by the in-place engine.",
	})
	aliveCells = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "automaton_alive_cells",
		Help: "Alive cells in the most recently rendered generation.",
	})
	stepSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "automaton_step_seconds",
		Help:    "Time spent computing one generation.",
		Buckets: prometheus.ExponentialBuckets(1e-7, 4, 10),
	})
	verifiedInstancesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "automaton_verified_instances_total",
		Help: "Verification instances by outcome.",
	}, []string{"outcome"})
)
