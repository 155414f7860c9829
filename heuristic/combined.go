// SPDX-License-Identifier: MIT

package heuristic

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/codenum/code"
)

// NameCombined is the name a Combined reports.
const NameCombined = "combined"

type ranked struct {
	priority int
	h        Heuristic
}

// Combined is the conjunction of its heuristics, evaluated in ascending
// priority order (ties keep registration order). It implements Heuristic.
type Combined struct {
	entries []ranked
	logger  logrus.FieldLogger
	metrics *Metrics
}

// NewCombined returns an empty conjunction, which accepts everything.
func NewCombined(opts ...Option) *Combined {
	o := newOptions(opts)

	return &Combined{logger: o.logger, metrics: o.metrics}
}

// Add registers h at the given priority. Smaller priorities run first.
func (c *Combined) Add(priority int, h Heuristic) error {
	if h == nil {
		return ErrNilHeuristic
	}
	i := sort.Search(len(c.entries), func(i int) bool { return c.entries[i].priority > priority })
	c.entries = append(c.entries, ranked{})
	copy(c.entries[i+1:], c.entries[i:])
	c.entries[i] = ranked{priority: priority, h: h}

	return nil
}

// Len returns the number of registered heuristics.
func (c *Combined) Len() int { return len(c.entries) }

// Names returns the heuristic names in evaluation order.
func (c *Combined) Names() []string {
	names := make([]string, len(c.entries))
	for i, e := range c.entries {
		names[i] = e.h.Name()
	}

	return names
}

// Name implements Heuristic.
func (c *Combined) Name() string { return NameCombined }

// Evaluate runs every heuristic in order and stops at the first one that
// does not accept. The result is Accept or Reject, never NotApplicable.
func (c *Combined) Evaluate(cd code.Code) Verdict {
	for _, e := range c.entries {
		v := evaluate(e.h, cd, c.logger)
		c.metrics.observe(e.h.Name(), v)
		if v != Accept {
			if levelEnabled(c.logger, logrus.TraceLevel) {
				c.logger.WithFields(logrus.Fields{
					"action":    "heuristic_pruned",
					"heuristic": e.h.Name(),
					"verdict":   v.String(),
					"code":      describe(cd),
				}).Trace("candidate pruned")
			}

			return Reject
		}
	}

	return Accept
}

// Check reports whether every heuristic accepts cd.
func (c *Combined) Check(cd code.Code) bool {
	return c.Evaluate(cd) == Accept
}
