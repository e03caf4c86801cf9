// Copyright (c) 2026, Pidkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pidkit/pidkit/symbol"
)

var (
	// Global flags
	optionsFile string
	precise     bool
)

var rootCmd = &cobra.Command{
	Use:   "pidkit",
	Short: "P&ID symbol connection-point and edge-geometry inspector",
	Long: `Pidkit extracts connection points from P&ID symbol SVG files and
computes routed edge geometry between placed symbols, printing
results as JSON.

Examples:
  pidkit points valve.svg                        # Extract connection points
  pidkit points --precise --options cfg.toml *.svg
  pidkit edge --source valve.svg --target tank.svg --target-pos 200,0`,
	Version: "0.1.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&optionsFile, "options", "",
		"TOML file with extraction options")
	rootCmd.PersistentFlags().BoolVar(&precise, "precise", false,
		"match markers strictly by exact stroke color")
}

// loadOptions resolves the extraction options from the global flags.
func loadOptions() (*symbol.Options, error) {
	opts := symbol.DefaultOptions()
	if optionsFile != "" {
		var err error
		opts, err = symbol.OpenOptions(optionsFile)
		if err != nil {
			return nil, err
		}
	}
	if precise {
		opts.Precise = true
	}
	return opts, nil
}
