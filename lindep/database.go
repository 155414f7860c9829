// SPDX-License-Identifier: MIT
// Package: codenum/lindep
//
// database.go — the shared linear-dependence cache.
//
// Lookup protocol for (columns, maxDelay, bound):
//  1. Build the canonical key: per-column polynomial keys (truncated at
//     their degree), sorted, joined, suffixed with maxDelay.
//  2. Read-locked lookup. An entry answers the query when it holds a found
//     weight, or when its exhaustive-search bound reaches `bound`.
//  3. Otherwise run the search under singleflight for that key, resuming at
//     searchedUpTo+1 so that earlier work is never repeated, and store the
//     widened entry.

package lindep

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/codenum/combin"
	"github.com/katalvlaran/codenum/gf2"
)

// Column is one column of a polynomial parity-check matrix, top to bottom.
type Column []*gf2.Poly

// Result is the cached knowledge about one column prefix.
type Result struct {
	// Weight is the minimal weight of a zero combination, 0 when none has
	// been found.
	Weight int
	// SearchedUpTo is the largest weight that has been searched exhaustively.
	SearchedUpTo int
}

// Found reports whether a zero combination is known.
func (r Result) Found() bool { return r.Weight > 0 }

// covers reports whether r answers a query up to bound.
func (r Result) covers(bound int) bool { return r.Found() || r.SearchedUpTo >= bound }

// Stats is a snapshot of cache counters.
type Stats struct {
	Hits     int64
	Misses   int64
	Searches int64
	Entries  int
}

// Database is a concurrency-safe, grow-only memo of zero-combination
// searches. The zero value is not usable; call NewDatabase.
type Database struct {
	mu      sync.RWMutex
	entries map[string]Result
	flight  singleflight.Group

	logger  logrus.FieldLogger
	metrics *Metrics

	hits     atomic.Int64
	misses   atomic.Int64
	searches atomic.Int64
}

// NewDatabase returns an empty database.
func NewDatabase(opts ...Option) *Database {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Database{
		entries: make(map[string]Result),
		logger:  o.logger,
		metrics: o.metrics,
	}
}

// Len returns the number of cached prefixes.
func (db *Database) Len() int {
	db.mu.RLock()
	defer db.mu.RUnlock()

	return len(db.entries)
}

// Stats returns a snapshot of the counters.
func (db *Database) Stats() Stats {
	return Stats{
		Hits:     db.hits.Load(),
		Misses:   db.misses.Load(),
		Searches: db.searches.Load(),
		Entries:  db.Len(),
	}
}

// Lookup returns the cached entry for cols without searching.
func (db *Database) Lookup(cols []Column, maxDelay int) (Result, bool, error) {
	if err := validate(cols, maxDelay); err != nil {
		return Result{}, false, err
	}
	r, ok := db.get(Key(cols, maxDelay))

	return r, ok, nil
}

// MinZeroCombination returns what is known about the minimal zero
// combination of cols with coefficient degree ≤ maxDelay, searching every
// weight up to bound that has not been searched before. The returned
// Result either has Found() true (Weight is exact) or SearchedUpTo ≥ bound.
func (db *Database) MinZeroCombination(cols []Column, maxDelay, bound int) (Result, error) {
	if err := validate(cols, maxDelay); err != nil {
		return Result{}, err
	}
	key := Key(cols, maxDelay)

	if r, ok := db.get(key); ok && r.covers(bound) {
		db.hits.Add(1)
		db.observeLookup("hit")

		return r, nil
	}
	db.misses.Add(1)
	db.observeLookup("miss")

	for {
		v, err, _ := db.flight.Do(key, func() (interface{}, error) {
			return db.extend(key, cols, maxDelay, bound), nil
		})
		if err != nil {
			return Result{}, err
		}
		// A shared in-flight search may have used a smaller bound.
		if r := v.(Result); r.covers(bound) {
			return r, nil
		}
	}
}

// extend widens the entry for key up to bound. Runs inside singleflight.
func (db *Database) extend(key string, cols []Column, maxDelay, bound int) Result {
	r, _ := db.get(key)
	if r.covers(bound) {
		return r
	}

	start := time.Now()
	from := r.SearchedUpTo + 1
	w := search(cols, maxDelay, from, bound)
	db.searches.Add(1)
	if db.metrics != nil {
		db.metrics.Searches.Inc()
	}

	r = Result{Weight: w, SearchedUpTo: bound}
	if w > 0 {
		r.SearchedUpTo = w
	}

	db.mu.Lock()
	db.entries[key] = r
	n := len(db.entries)
	db.mu.Unlock()
	if db.metrics != nil {
		db.metrics.Entries.Set(float64(n))
	}

	db.logger.WithFields(logrus.Fields{
		"action":   "lindep_search",
		"columns":  len(cols),
		"from":     from,
		"bound":    bound,
		"weight":   w,
		"duration": time.Since(start),
	}).Debug("zero-combination search finished")

	return r
}

func (db *Database) get(key string) (Result, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	r, ok := db.entries[key]

	return r, ok
}

func (db *Database) observeLookup(result string) {
	if db.metrics != nil {
		db.metrics.Lookups.WithLabelValues(result).Inc()
	}
}

// Key returns the canonical cache key of cols. Column order does not matter:
// a zero combination of a permutation of the columns is a permutation of the
// same coefficient tuple.
func Key(cols []Column, maxDelay int) string {
	keys := make([]string, len(cols))
	for i, col := range cols {
		parts := make([]string, len(col))
		for r, p := range col {
			parts[r] = p.Key()
		}
		keys[i] = strings.Join(parts, ",")
	}
	sort.Strings(keys)

	return strings.Join(keys, "|") + "#" + strconv.Itoa(maxDelay)
}

func validate(cols []Column, maxDelay int) error {
	if len(cols) == 0 {
		return fmt.Errorf("no columns: %w", ErrBadColumns)
	}
	if maxDelay < 0 {
		return fmt.Errorf("maxDelay=%d: %w", maxDelay, ErrBadColumns)
	}
	height := len(cols[0])
	if height == 0 {
		return fmt.Errorf("empty column: %w", ErrBadColumns)
	}
	for i, col := range cols {
		if len(col) != height {
			return fmt.Errorf("column %d has height %d, want %d: %w", i, len(col), height, ErrBadColumns)
		}
		for _, p := range col {
			if p == nil {
				return fmt.Errorf("column %d holds a nil polynomial: %w", i, ErrBadColumns)
			}
		}
	}

	return nil
}

// search brute-forces weights from..to and returns the first weight with a
// zero combination, or 0.
//
// Each of the len(cols)·(maxDelay+1) coefficient slots is one tap D^t on
// one column j. A weight-w candidate is a w-subset of slots; its row sums
// are Σ over chosen (j,t) of D^t·h_{r,j}, which is Σ_j h_{r,j}·c_j for the
// coefficient polynomials c_j the subset describes.
func search(cols []Column, maxDelay, from, to int) int {
	if from < 1 {
		from = 1
	}
	span := maxDelay + 1
	slots := len(cols) * span
	height := len(cols[0])

	// shifted[s][r] = D^t · h_{r,j} for slot s = j·span + t.
	shifted := make([][]*gf2.Poly, slots)
	for j, col := range cols {
		for t := 0; t < span; t++ {
			tap := gf2.PolyFromCoeffs(t)
			row := make([]*gf2.Poly, height)
			for r, h := range col {
				row[r] = h.Mul(tap)
			}
			shifted[j*span+t] = row
		}
	}

	sums := make([]*gf2.Poly, height)
	for w := from; w <= to && w <= slots; w++ {
		c, err := combin.NewCombination(slots, w)
		if err != nil {
			return 0
		}
		for chosen := range c.All() {
			for r := range sums {
				sums[r] = gf2.NewPoly()
			}
			for _, s := range chosen {
				for r := range sums {
					sums[r].Add(shifted[s][r])
				}
			}
			zero := true
			for _, p := range sums {
				if !p.IsZero() {
					zero = false
					break
				}
			}
			if zero {
				return w
			}
		}
	}

	return 0
}
