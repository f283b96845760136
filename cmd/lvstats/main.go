// SPDX-License-Identifier: MIT

// Command lvstats evaluates probability distributions from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvstats/internal/cli"
	"github.com/katalvlaran/lvstats/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "lvstats:", err)
		os.Exit(2)
	}
	if err := cli.NewRootCommand(cfg).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lvstats:", err)
		os.Exit(1)
	}
}
