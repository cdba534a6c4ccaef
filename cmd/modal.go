// Copyright 2026 The Gofra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/structpad/gofra/fem"
	"github.com/structpad/gofra/inp"
)

var (
	// modal inputs
	modalModel  string
	modalNmodes int
	modalLumped bool
	modalPlot   bool
)

var modalCmd = &cobra.Command{
	Use:   "modal",
	Short: "Compute natural frequencies and mode shapes",
	Long: `Run a free-vibration analysis of the frame model in the given JSON
file and report the natural frequencies, periods and (optionally) terminal
plots of the mode shapes.

Examples:
  # First three modes with consistent mass matrices
  gofra modal --model tower.json

  # Five modes, lumped mass, with shape plots
  gofra modal -m tower.json -n 5 --lumped --plot`,
	RunE: runModal,
}

func init() {
	rootCmd.AddCommand(modalCmd)

	modalCmd.Flags().StringVarP(&modalModel, "model", "m", "", "Model file (JSON) [required]")
	modalCmd.Flags().IntVarP(&modalNmodes, "nmodes", "n", 3, "Number of modes to extract")
	modalCmd.Flags().BoolVar(&modalLumped, "lumped", false, "Use lumped (HRZ) mass matrices")
	modalCmd.Flags().BoolVar(&modalPlot, "plot", false, "Plot mode shapes in the terminal")

	modalCmd.MarkFlagRequired("model")
}

func runModal(cmd *cobra.Command, args []string) error {
	m, err := inp.ReadModel(modalModel)
	if err != nil {
		return err
	}
	cfg := fem.DefaultConfig()
	cfg.Modes = modalNmodes
	cfg.Lumped = modalLumped
	res, err := fem.Modal(m, cfg)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     MODAL ANALYSIS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	if m.Desc != "" {
		fmt.Printf("  %s\n\n", m.Desc)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "  mode\tω [rad/s]\tf [Hz]\tT [s]")
	for _, mode := range res.Modes {
		fmt.Fprintf(w, "  %d\t%11.4e\t%11.4e\t%11.4e\n", mode.Idx, mode.Omega, mode.Freq, mode.Period)
	}
	w.Flush()
	fmt.Println()

	if modalPlot {
		for _, mode := range res.Modes {
			plotShape(m, res, mode)
		}
	}
	return nil
}

// plotShape draws the translational shape components along the node order
func plotShape(m *inp.Model, res *fem.ModalResult, mode *fem.Mode) {
	data := make([]float64, len(res.NodeIds))
	dir := 0
	if m.Ndim == 2 {
		dir = 1 // transverse component
	}
	for i := range res.NodeIds {
		data[i] = mode.Shape[i*res.Ndof+dir]
	}
	fmt.Println(asciigraph.Plot(data,
		asciigraph.Height(8),
		asciigraph.Caption(fmt.Sprintf("mode %d: f = %.4g Hz", mode.Idx, mode.Freq))))
	fmt.Println()
}
