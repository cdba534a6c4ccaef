// Copyright 2026 The Gofra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/structpad/gofra/fem"
	"github.com/structpad/gofra/inp"
)

var (
	// spectrum inputs
	spectrumModel  string
	spectrumFile   string
	spectrumDir    string
	spectrumNmodes int
	spectrumLumped bool
)

var spectrumCmd = &cobra.Command{
	Use:   "spectrum",
	Short: "Run a response-spectrum analysis",
	Long: `Run a modal analysis followed by a response-spectrum combination:
per-mode participation factors, effective masses and base shears are
computed from the given design spectrum and combined by SRSS.

The spectrum file is a JSON table, e.g.
  { "t":[0.1, 0.5, 1.0, 2.0], "sa":[2.5, 2.5, 1.25, 0.625] }

Examples:
  gofra spectrum --model tower.json --spec design.json --dir x -n 5`,
	RunE: runSpectrum,
}

func init() {
	rootCmd.AddCommand(spectrumCmd)

	spectrumCmd.Flags().StringVarP(&spectrumModel, "model", "m", "", "Model file (JSON) [required]")
	spectrumCmd.Flags().StringVarP(&spectrumFile, "spec", "s", "", "Response spectrum file (JSON) [required]")
	spectrumCmd.Flags().StringVarP(&spectrumDir, "dir", "d", "x", "Excitation direction: x, y or z")
	spectrumCmd.Flags().IntVarP(&spectrumNmodes, "nmodes", "n", 3, "Number of modes to combine")
	spectrumCmd.Flags().BoolVar(&spectrumLumped, "lumped", false, "Use lumped (HRZ) mass matrices")

	spectrumCmd.MarkFlagRequired("model")
	spectrumCmd.MarkFlagRequired("spec")
}

func runSpectrum(cmd *cobra.Command, args []string) error {

	// direction
	var dir int
	switch spectrumDir {
	case "x":
		dir = 0
	case "y":
		dir = 1
	case "z":
		dir = 2
	default:
		return fmt.Errorf("invalid direction %q: use x, y or z", spectrumDir)
	}

	// inputs
	m, err := inp.ReadModel(spectrumModel)
	if err != nil {
		return err
	}
	b, err := os.ReadFile(spectrumFile)
	if err != nil {
		return fmt.Errorf("cannot read spectrum file %q: %w", spectrumFile, err)
	}
	var spec fem.Spectrum
	if err := json.Unmarshal(b, &spec); err != nil {
		return fmt.Errorf("cannot unmarshal spectrum file %q: %w", spectrumFile, err)
	}

	// modal then spectral
	cfg := fem.DefaultConfig()
	cfg.Modes = spectrumNmodes
	cfg.Lumped = spectrumLumped
	mres, err := fem.Modal(m, cfg)
	if err != nil {
		return err
	}
	res, err := fem.RespSpec(m, cfg, mres, &spec, dir)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     RESPONSE-SPECTRUM ANALYSIS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	if m.Desc != "" {
		fmt.Printf("  %s\n\n", m.Desc)
	}
	fmt.Printf("  excitation direction: %s\n\n", spectrumDir)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "  mode\tT [s]\tSa\tΓ\tMeff\tV")
	for k, mode := range mres.Modes {
		fmt.Fprintf(w, "  %d\t%11.4e\t%11.4e\t%11.4e\t%11.4e\t%11.4e\n",
			mode.Idx, mode.Period, res.Sa[k], res.Gamma[k], res.Meff[k], res.ModeShear[k])
	}
	w.Flush()

	fmt.Println()
	fmt.Printf("  SRSS base shear: %11.4e\n", res.BaseShear)
	fmt.Println()
	return nil
}
