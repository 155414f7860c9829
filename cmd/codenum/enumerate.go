// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/codenum/codeenum"
	"github.com/katalvlaran/codenum/combin"
	"github.com/katalvlaran/codenum/gf2"
)

// atoi parses every positional argument as an int.
func atoi(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out[i] = v
	}

	return out, nil
}

func ints(v []int) (string, error) { return fmt.Sprint(v), nil }

// flatMatrix renders a matrix on one line, rows separated by spaces.
func flatMatrix(m *gf2.BitMatrix) (string, error) { return strings.ReplaceAll(m.String(), "\n", " "), nil }

func (c *cli) combinationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "combinations N K",
		Short: "k-subsets of {0..n-1} in lexicographic order",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := atoi(args)
			if err != nil {
				return err
			}
			it, err := combin.NewCombination(v[0], v[1])
			if err != nil {
				return err
			}
			return emit(c, cmd, it.All(), ints)
		},
	}
}

func (c *cli) partitionsCmd() *cobra.Command {
	var upper, lower int
	cmd := &cobra.Command{
		Use:   "partitions NUMBER COUNT",
		Short: "ordered decompositions of NUMBER into COUNT bounded summands",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := atoi(args)
			if err != nil {
				return err
			}
			var it *combin.SumDecomposition
			if cmd.Flags().Changed("upper") || cmd.Flags().Changed("lower") {
				if !cmd.Flags().Changed("upper") {
					upper = max(v[0], 1)
				}
				it, err = combin.NewSumDecomposition(v[0], v[1], upper, lower)
			} else {
				it, err = combin.NewSumDecompositionDefault(v[0], v[1])
			}
			if err != nil {
				return err
			}
			return emit(c, cmd, it.All(), ints)
		},
	}
	cmd.Flags().IntVar(&upper, "upper", 0, "inclusive upper bound per summand (default NUMBER)")
	cmd.Flags().IntVar(&lower, "lower", 0, "inclusive lower bound per summand")

	return cmd
}

func (c *cli) matricesCmd() *cobra.Command {
	var profiles bool
	cmd := &cobra.Command{
		Use:   "matrices K N",
		Short: "K×N binary matrices up to column permutation",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := atoi(args)
			if err != nil {
				return err
			}
			it, err := codeenum.NewMatrix(v[0], v[1])
			if err != nil {
				return err
			}
			return emit(c, cmd, it.All(), func(p codeenum.ColumnProfile) (string, error) {
				if profiles {
					return fmt.Sprintf("patterns=%v counts=%v", p.Patterns, p.Counts), nil
				}
				m, err := p.Materialize()
				if err != nil {
					return "", err
				}
				return flatMatrix(m)
			})
		},
	}
	cmd.Flags().BoolVar(&profiles, "profiles", false, "print column profiles instead of matrices")

	return cmd
}

func (c *cli) rowsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rows NUM LEN",
		Short: "NUM×LEN binary matrices with distinct increasing rows",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := atoi(args)
			if err != nil {
				return err
			}
			it, err := codeenum.NewRows(v[0], v[1])
			if err != nil {
				return err
			}
			return emit(c, cmd, it.All(), flatMatrix)
		},
	}
}

func (c *cli) ballCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ball N K",
		Short: "error positions of weight 1..K among N, by increasing weight",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := atoi(args)
			if err != nil {
				return err
			}
			it, err := codeenum.NewHammingBall(v[0], v[1])
			if err != nil {
				return err
			}
			return emit(c, cmd, it.All(), ints)
		},
	}
}

func (c *cli) codewordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "codewords WEIGHT DEGREE LENGTH",
		Short: "polynomial tuples with a fixed total weight",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := atoi(args)
			if err != nil {
				return err
			}
			it, err := codeenum.NewWeightedCodeWords(v[0], v[1], v[2])
			if err != nil {
				return err
			}
			return emit(c, cmd, it.All(), func(ps []*gf2.Poly) (string, error) {
				parts := make([]string, len(ps))
				for i, p := range ps {
					parts[i] = p.String()
				}
				return "(" + strings.Join(parts, ", ") + ")", nil
			})
		},
	}
}
