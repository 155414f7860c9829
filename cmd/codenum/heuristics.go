// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/codenum/gf2"
	"github.com/katalvlaran/codenum/heuristic"
	"github.com/katalvlaran/codenum/lindep"
)

func (c *cli) heuristicsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "heuristics",
		Short: "inspect heuristic pipelines",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "print every heuristic name a config may use",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, name := range heuristic.KnownNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "validate CONFIG",
		Short: "build a YAML pipeline and print its evaluation order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			cfg, err := heuristic.LoadConfig(f)
			if err != nil {
				return err
			}
			comb, err := cfg.Build(lindep.NewDatabase(lindep.WithLogger(c.logger)), heuristic.WithLogger(c.logger))
			if err != nil {
				return err
			}
			for i, name := range comb.Names() {
				fmt.Fprintf(cmd.OutOrStdout(), "%d. %s\n", i+1, name)
			}
			c.logger.WithFields(logrus.Fields{
				"action": "heuristics_validate",
				"config": args[0],
				"rules":  comb.Len(),
			}).Info("pipeline is valid")

			return nil
		},
	})

	return cmd
}

func (c *cli) lindepCmd() *cobra.Command {
	var delay, bound int
	cmd := &cobra.Command{
		Use:   "lindep COLUMN...",
		Short: "minimal zero combination of parity-check columns",
		Long: "Each COLUMN lists its polynomials top to bottom, comma separated, " +
			"coefficients lowest degree first (\"101,11\" is [1+D², 1+D]).",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cols := make([]lindep.Column, len(args))
			for i, a := range args {
				for _, s := range strings.Split(a, ",") {
					p, err := gf2.ParsePoly(s)
					if err != nil {
						return fmt.Errorf("column %d: %w", i+1, err)
					}
					cols[i] = append(cols[i], p)
				}
			}

			db := lindep.NewDatabase(lindep.WithLogger(c.logger))
			r, err := db.MinZeroCombination(cols, delay, bound)
			if err != nil {
				return err
			}
			if r.Found() {
				fmt.Fprintf(cmd.OutOrStdout(), "weight %d\n", r.Weight)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "none up to weight %d\n", r.SearchedUpTo)
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&delay, "delay", 0, "maximal degree of the coefficient polynomials")
	cmd.Flags().IntVar(&bound, "bound", 4, "largest weight to search")

	return cmd
}
