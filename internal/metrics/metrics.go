// Package metrics counts mana pool operations by outcome.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Operation outcomes
const (
	OutcomeOK           = "ok"
	OutcomeDenied       = "denied"
	OutcomeInsufficient = "insufficient"
	OutcomeInvalid      = "invalid"
	OutcomeError        = "error"
	OutcomeNoop         = "noop"
)

// Recorder counts operation outcomes. A nil *Recorder is valid and records nothing.
type Recorder struct {
	operations *prometheus.CounterVec
}

// NewRecorder registers the mana collectors on reg
func NewRecorder(reg prometheus.Registerer) *Recorder {
	operations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mana",
		Name:      "operations_total",
		Help:      "Mana pool operations by operation and outcome.",
	}, []string{"operation", "outcome"})

	reg.MustRegister(operations)

	return &Recorder{operations: operations}
}

// Record counts one operation
func (r *Recorder) Record(operation, outcome string) {
	if r == nil {
		return
	}
	r.operations.WithLabelValues(operation, outcome).Inc()
}

// Operations exposes the underlying counter
func (r *Recorder) Operations() *prometheus.CounterVec {
	if r == nil {
		return nil
	}
	return r.operations
}
