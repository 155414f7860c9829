// SPDX-License-Identifier: MIT

// Command codenum prints the enumerations behind a code search and checks
// heuristic pipeline configs.
//
//	codenum combinations 5 2
//	codenum partitions 6 3 --upper 3 --lower 1
//	codenum matrices 2 3 --limit 10
//	codenum heuristics validate pipeline.yaml
//	codenum lindep --delay 2 --bound 6 101 111
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
