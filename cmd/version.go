// Copyright 2026 The Gofra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const Version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gofra",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gofra v%s\n", Version)
		fmt.Println("Structural frame analysis tool")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
