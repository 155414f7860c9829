// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"iter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// cli holds the persistent flags shared by every subcommand.
type cli struct {
	limit    int
	logLevel string
	logger   *logrus.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{logger: logrus.New()}

	root := &cobra.Command{
		Use:          "codenum",
		Short:        "Enumerate code-search spaces and check pruning pipelines",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			lvl, err := logrus.ParseLevel(c.logLevel)
			if err != nil {
				return err
			}
			c.logger.SetLevel(lvl)
			c.logger.SetOutput(cmd.ErrOrStderr())

			return nil
		},
	}
	root.PersistentFlags().IntVar(&c.limit, "limit", 0, "stop after this many items (0 = no limit)")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "warn", "logrus level")

	root.AddCommand(
		c.combinationsCmd(),
		c.partitionsCmd(),
		c.matricesCmd(),
		c.rowsCmd(),
		c.ballCmd(),
		c.codewordsCmd(),
		c.heuristicsCmd(),
		c.lindepCmd(),
	)

	return root
}

// emit prints seq one item per line, honouring --limit. A formatting
// error stops the enumeration.
func emit[T any](c *cli, cmd *cobra.Command, seq iter.Seq[T], format func(T) (string, error)) error {
	n := 0
	for v := range seq {
		if c.limit > 0 && n >= c.limit {
			break
		}
		line, err := format(v)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), line)
		n++
	}
	c.logger.WithFields(logrus.Fields{
		"action":  "enumerate",
		"command": cmd.Name(),
		"items":   n,
	}).Info("enumeration finished")

	return nil
}
