// SPDX-License-Identifier: MIT

package heuristic

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts verdicts per heuristic.
type Metrics struct {
	Verdicts *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Verdicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "codenum",
			Subsystem: "heuristic",
			Name:      "verdicts_total",
			Help:      "Heuristic verdicts by heuristic name and verdict.",
		}, []string{"heuristic", "verdict"}),
	}
	reg.MustRegister(m.Verdicts)

	return m
}

func (m *Metrics) observe(name string, v Verdict) {
	if m == nil {
		return
	}
	m.Verdicts.WithLabelValues(name, v.String()).Inc()
}
