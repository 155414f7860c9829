// SPDX-License-Identifier: MIT

package lindep

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Option configures a Database.
type Option func(*options)

type options struct {
	logger  logrus.FieldLogger
	metrics *Metrics
}

func defaultOptions() options {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return options{logger: l}
}

// WithLogger sets the logger used for search diagnostics. Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("lindep: WithLogger(nil)")
	}
	return func(o *options) {
		o.logger = l
	}
}

// WithMetrics attaches Prometheus collectors. Panics on nil.
func WithMetrics(m *Metrics) Option {
	if m == nil {
		panic("lindep: WithMetrics(nil)")
	}
	return func(o *options) {
		o.metrics = m
	}
}
