// Copyright 2026 The Gofra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gofra",
	Short: "Structural frame analysis tool",
	Long: `gofra - Go Frame Analyzer

A CLI tool for linear analysis of frame structures
(beams, columns, braces and slab strips).

This tool helps structural engineers perform:
  - Linear static analysis (displacements, end forces, stresses)
  - Modal analysis (natural frequencies and mode shapes)
  - Response-spectrum analysis (SRSS combination)

Models are plain JSON files; see the data directories of the
source tree for examples.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Printf("  gofra v%s - Go Frame Analyzer\n", Version)
		fmt.Println()
		fmt.Println("  Commands:")
		fmt.Println("    • analyze  - linear static analysis of a frame model")
		fmt.Println("    • modal    - natural frequencies and mode shapes")
		fmt.Println("    • spectrum - response-spectrum analysis")
		fmt.Println()
		fmt.Println("  Use 'gofra --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
