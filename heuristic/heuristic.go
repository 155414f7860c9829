// SPDX-License-Identifier: MIT

package heuristic

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/codenum/code"
)

// Verdict is the outcome of evaluating one candidate.
type Verdict uint8

const (
	Reject Verdict = iota
	Accept
	NotApplicable
)

// String implements fmt.Stringer.
func (v Verdict) String() string {
	switch v {
	case Reject:
		return "reject"
	case Accept:
		return "accept"
	case NotApplicable:
		return "not_applicable"
	default:
		return fmt.Sprintf("Verdict(%d)", uint8(v))
	}
}

// Heuristic judges a candidate code. Evaluate must not return errors; a
// failing collaborator means Reject.
type Heuristic interface {
	Name() string
	Evaluate(c code.Code) Verdict
}

// Check reports whether h accepts c. NotApplicable counts as a rejection,
// and a panic inside h is recovered as a rejection.
func Check(h Heuristic, c code.Code) bool {
	return evaluate(h, c, nil) == Accept
}

// evaluate runs h.Evaluate, converting a panic into Reject.
func evaluate(h Heuristic, c code.Code, logger logrus.FieldLogger) (v Verdict) {
	defer func() {
		if r := recover(); r != nil {
			if logger != nil {
				logger.WithFields(logrus.Fields{
					"action":    "heuristic_panic",
					"heuristic": h.Name(),
					"kind":      c.Kind().String(),
				}).Debugf("recovered: %v", r)
			}
			v = Reject
		}
	}()

	return h.Evaluate(c)
}

// Func adapts a plain function to Heuristic.
type Func struct {
	name string
	fn   func(code.Code) Verdict
}

// NewFunc returns a Heuristic named name that delegates to fn.
func NewFunc(name string, fn func(code.Code) Verdict) *Func {
	return &Func{name: name, fn: fn}
}

// Name implements Heuristic.
func (f *Func) Name() string { return f.name }

// Evaluate implements Heuristic.
func (f *Func) Evaluate(c code.Code) Verdict { return f.fn(c) }

// base carries the name and logger every concrete heuristic needs.
type base struct {
	name   string
	logger logrus.FieldLogger
}

func newBase(name string, opts []Option) base {
	o := newOptions(opts)

	return base{name: name, logger: o.logger}
}

// Name implements Heuristic.
func (b base) Name() string { return b.name }

// fail logs a collaborator failure and rejects.
func (b base) fail(c code.Code, op string, err error) Verdict {
	b.logger.WithFields(logrus.Fields{
		"action":    "heuristic_collaborator_failed",
		"heuristic": b.name,
		"operation": op,
		"code":      describe(c),
	}).WithError(err).Debug("rejecting candidate")

	return Reject
}

// describe renders c for logs. The collaborator behind c may be the one
// that failed, so a panic while formatting falls back to the kind alone.
func describe(c code.Code) (s string) {
	defer func() {
		if recover() != nil {
			s = c.Kind().String()
		}
	}()

	return c.String()
}

// levelEnabled reports whether l would emit entries at lvl. Loggers that
// hide their level are assumed to emit.
func levelEnabled(l logrus.FieldLogger, lvl logrus.Level) bool {
	switch v := l.(type) {
	case *logrus.Logger:
		return v.IsLevelEnabled(lvl)
	case *logrus.Entry:
		return v.Logger.IsLevelEnabled(lvl)
	default:
		return true
	}
}

// verdict maps a boolean test to Accept/Reject.
func verdict(ok bool) Verdict {
	if ok {
		return Accept
	}

	return Reject
}
