// SPDX-License-Identifier: MIT

package lindep

import "github.com/prometheus/client_golang/prometheus"

const (
	metricsNamespace = "codenum"
	metricsSubsystem = "lindep"
)

// Metrics holds the Prometheus collectors of a Database. One Metrics may be
// shared by several databases; the gauge then tracks the last writer.
type Metrics struct {
	Lookups  *prometheus.CounterVec
	Searches prometheus.Counter
	Entries  prometheus.Gauge
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "lookups_total",
			Help:      "Linear-dependence cache lookups by result (hit or miss).",
		}, []string{"result"}),
		Searches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "searches_total",
			Help:      "Brute-force zero-combination searches performed.",
		}),
		Entries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "entries",
			Help:      "Number of cached column prefixes.",
		}),
	}
	reg.MustRegister(m.Lookups, m.Searches, m.Entries)

	return m
}
