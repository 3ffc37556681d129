// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Command benchplot renders comparison charts from board-solver benchmark
// results.
//
// Without a subcommand it renders every configured chart, which by default
// means the premade-board bar chart and the random-board cumulative-average
// chart read from and written to ./data.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
