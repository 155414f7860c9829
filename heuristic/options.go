// SPDX-License-Identifier: MIT

package heuristic

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Option configures a heuristic or a Combined.
type Option func(*options)

type options struct {
	logger  logrus.FieldLogger
	metrics *Metrics
}

func newOptions(opts []Option) options {
	l := logrus.New()
	l.SetOutput(io.Discard)
	o := options{logger: l}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithLogger sets the logger for rejected-on-failure diagnostics.
// Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("heuristic: WithLogger(nil)")
	}
	return func(o *options) {
		o.logger = l
	}
}

// WithMetrics attaches verdict counters. Only Combined records verdicts.
// Panics on nil.
func WithMetrics(m *Metrics) Option {
	if m == nil {
		panic("heuristic: WithMetrics(nil)")
	}
	return func(o *options) {
		o.metrics = m
	}
}
