// SPDX-License-Identifier: MIT
// Package: codenum/heuristic
//
// config.go — declarative heuristic pipelines.
//
// Example document:
//
//	free_distance: 6
//	rows_count: 12
//	heuristics:
//	  - name: non_degenerate_blocks
//	    priority: 0
//	  - name: griesmer
//	    priority: 1
//	  - name: linear_dependence
//	    priority: 5
//
// Targets are shared by every rule that needs them; Build validates that
// each listed rule has the targets it reads.

package heuristic

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/codenum/lindep"
)

// Config declares a Combined pipeline.
type Config struct {
	// FreeDistance is the target free distance for convolutional rules.
	FreeDistance int `yaml:"free_distance"`
	// MinDistance is the target minimum distance for block and tail-biting rules.
	MinDistance int `yaml:"min_distance"`
	// StateComplexity is the maximal accepted trellis state complexity.
	StateComplexity int `yaml:"state_complexity"`
	// RowsCount is the number of information bits for zero_tail_distance.
	RowsCount int `yaml:"rows_count"`
	// CheckIndependence enables the span-form check of block rules.
	CheckIndependence bool `yaml:"check_independence"`

	Heuristics []Entry `yaml:"heuristics"`
}

// Entry is one rule of the pipeline.
type Entry struct {
	Name     string `yaml:"name"`
	Priority int    `yaml:"priority"`
}

// LoadConfig decodes a YAML pipeline from r. Unknown fields are rejected.
func LoadConfig(r io.Reader) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("LoadConfig: empty document: %w", ErrBadConfig)
		}
		return Config{}, fmt.Errorf("LoadConfig: %v: %w", err, ErrBadConfig)
	}

	return cfg, nil
}

// ParseConfig decodes a YAML pipeline from data.
func ParseConfig(data []byte) (Config, error) {
	return LoadConfig(bytes.NewReader(data))
}

// KnownNames returns every rule name Build accepts, in documentation order.
func KnownNames() []string {
	return []string{
		NameMinDistance,
		NameStateComplexity,
		NameNonDegenerateBlocks,
		NameRowWeight,
		NameZeroTailDistance,
		NameFreeDistance,
		NameGriesmer,
		NameTailBitingWeight,
		NameLinearDependence,
	}
}

// Build instantiates every listed rule and registers it on a new Combined.
// db is required only when linear_dependence is listed. opts are passed to
// the Combined and to every rule.
func (cfg Config) Build(db *lindep.Database, opts ...Option) (*Combined, error) {
	if len(cfg.Heuristics) == 0 {
		return nil, fmt.Errorf("Build: no heuristics listed: %w", ErrBadConfig)
	}

	comb := NewCombined(opts...)
	for _, e := range cfg.Heuristics {
		h, err := cfg.build(e.Name, db, opts)
		if err != nil {
			return nil, err
		}
		if err := comb.Add(e.Priority, h); err != nil {
			return nil, err
		}
	}

	return comb, nil
}

func (cfg Config) build(name string, db *lindep.Database, opts []Option) (Heuristic, error) {
	needFree := func() error {
		if cfg.FreeDistance < 1 {
			return fmt.Errorf("Build: %s needs free_distance >= 1: %w", name, ErrBadConfig)
		}
		return nil
	}
	needMin := func() error {
		if cfg.MinDistance < 1 {
			return fmt.Errorf("Build: %s needs min_distance >= 1: %w", name, ErrBadConfig)
		}
		return nil
	}

	switch name {
	case NameMinDistance:
		if err := needMin(); err != nil {
			return nil, err
		}
		return NewMinDistance(cfg.MinDistance, cfg.CheckIndependence, opts...), nil
	case NameStateComplexity:
		if cfg.StateComplexity < 0 {
			return nil, fmt.Errorf("Build: %s needs state_complexity >= 0: %w", name, ErrBadConfig)
		}
		return NewStateComplexity(cfg.StateComplexity, cfg.CheckIndependence, opts...), nil
	case NameNonDegenerateBlocks:
		return NewNonDegenerateBlocks(opts...), nil
	case NameRowWeight:
		if err := needFree(); err != nil {
			return nil, err
		}
		return NewRowWeight(cfg.FreeDistance, opts...), nil
	case NameZeroTailDistance:
		if err := needFree(); err != nil {
			return nil, err
		}
		if cfg.RowsCount < 1 {
			return nil, fmt.Errorf("Build: %s needs rows_count >= 1: %w", name, ErrBadConfig)
		}
		return NewZeroTailDistance(cfg.FreeDistance, cfg.RowsCount, opts...), nil
	case NameFreeDistance:
		if err := needFree(); err != nil {
			return nil, err
		}
		return NewFreeDistance(cfg.FreeDistance, opts...), nil
	case NameGriesmer:
		if err := needFree(); err != nil {
			return nil, err
		}
		return NewGriesmer(cfg.FreeDistance, opts...), nil
	case NameTailBitingWeight:
		if err := needMin(); err != nil {
			return nil, err
		}
		return NewTailBitingWeight(cfg.MinDistance, opts...), nil
	case NameLinearDependence:
		if err := needFree(); err != nil {
			return nil, err
		}
		if db == nil {
			return nil, fmt.Errorf("Build: %s needs a database: %w", name, ErrBadConfig)
		}
		return NewLinearDependence(cfg.FreeDistance, db, opts...), nil
	default:
		return nil, fmt.Errorf("Build: %q: %w", name, ErrUnknownHeuristic)
	}
}
