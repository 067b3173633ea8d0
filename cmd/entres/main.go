// SPDX-License-Identifier: MIT

// Package main is the entry point of the entres CLI.
//
// Usage:
//
//	entres [flags] <command> [args]
//
// Commands:
//
//	cluster   - cluster a candidate file with one strategy
//	evaluate  - cluster and score against a ground truth
//	generate  - write a synthetic candidate file
//	methods   - list the clustering strategies
//	serve     - run the HTTP server
//	version   - show version information
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/entres/cmd/entres/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
