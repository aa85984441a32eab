// SPDX-License-Identifier: MIT
// Package: epcgg/cmd/epcgg
//
// main.go — command dispatch.

// Command epcgg partitions the edges of complete straight-line
// geometric graphs into plane spanning trees or plane subgraphs.
//
// Usage:
//
//	epcgg partition --pset convex --n 12 --partition-pst
//	epcgg experiment --pset random --n 12 --iterations 5 --mode pst
package main

import (
	"fmt"
	"os"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

func main() {
	cmd := &commander.Command{
		UsageLine: "epcgg",
		Short:     "edge partitions of complete geometric graphs",
		Subcommands: []*commander.Command{
			partitionCommand(),
			experimentCommand(),
		},
		Flag: *flag.NewFlagSet("epcgg", flag.ExitOnError),
	}

	if err := cmd.Flag.Parse(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "epcgg: %v\n", err)
		os.Exit(1)
	}
	if err := cmd.Dispatch(cmd.Flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "epcgg: %v\n", err)
		os.Exit(1)
	}
}
