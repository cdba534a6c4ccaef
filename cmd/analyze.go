// Copyright 2026 The Gofra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/structpad/gofra/fem"
	"github.com/structpad/gofra/inp"
	"github.com/structpad/gofra/out"
)

var (
	// analysis inputs
	analyzeModel    string
	analyzeTol      float64
	analyzeDiagrams bool
	analyzePlot     bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run a linear static analysis of a frame model",
	Long: `Run a linear static analysis of the frame model in the given JSON
file: assemble the global stiffness matrix, apply the supports, solve for
the nodal displacements and recover element end forces and peak stresses.

Examples:
  # Analyze a portal frame
  gofra analyze --model portal.json

  # Using the short flag
  gofra analyze -m portal.json`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&analyzeModel, "model", "m", "", "Model file (JSON) [required]")
	analyzeCmd.Flags().Float64Var(&analyzeTol, "tol", 1e-10, "Stability tolerance")
	analyzeCmd.Flags().BoolVar(&analyzeDiagrams, "diagrams", false, "Plot bending moment diagrams in the terminal")
	analyzeCmd.Flags().BoolVar(&analyzePlot, "plot", false, "Plot the deflected shape in the terminal")

	analyzeCmd.MarkFlagRequired("model")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	m, err := inp.ReadModel(analyzeModel)
	if err != nil {
		return err
	}
	cfg := fem.DefaultConfig()
	cfg.Tol = analyzeTol
	res, err := fem.Analyze(m, cfg)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     LINEAR STATIC ANALYSIS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	if m.Desc != "" {
		fmt.Printf("  %s\n\n", m.Desc)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if m.Ndim == 2 {
		fmt.Fprintln(w, "  node\tux\tuy\trz")
	} else {
		fmt.Fprintln(w, "  node\tux\tuy\tuz\trx\try\trz")
	}
	for i, id := range res.NodeIds {
		fmt.Fprintf(w, "  %d", id)
		for _, u := range res.U[i] {
			fmt.Fprintf(w, "\t%11.4e", u)
		}
		fmt.Fprintln(w)
	}
	w.Flush()

	fmt.Println()
	w = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "  element\tkind\tN\tV\tM\tpeak stress")
	for i, id := range res.ElemIds {
		fl := res.Forces[i]
		n, v, mm := fl[0], fl[1], fl[2]
		if res.Ndof == 6 {
			v, mm = fl[1], fl[5]
		}
		fmt.Fprintf(w, "  %d\t%s\t%11.4e\t%11.4e\t%11.4e\t%11.4e\n", id, res.ElemKinds[i], n, v, mm, res.Stresses[i])
	}
	w.Flush()

	fmt.Println()
	fmt.Printf("  max displacement: %11.4e\n", res.MaxDisp)
	fmt.Printf("  max stress:       %11.4e\n", res.MaxStress)
	fmt.Println()

	if analyzePlot {
		data := make([]float64, len(res.NodeIds))
		dir := 1 // transverse component (uz in 3D)
		if m.Ndim == 3 {
			dir = 2
		}
		for i := range res.NodeIds {
			data[i] = res.U[i][dir]
		}
		fmt.Println(asciigraph.Plot(data,
			asciigraph.Height(8),
			asciigraph.Caption("deflected shape (node order)")))
		fmt.Println()
	}

	if analyzeDiagrams {
		for i := range res.ElemIds {
			dia, err := out.NewBeamDiagram(res, i, memberLength(m, m.Elements[i]), 21)
			if err != nil {
				return err
			}
			fmt.Println(dia.DrawMoment())
			fmt.Println()
		}
	}
	return nil
}

// memberLength computes the distance between the two end nodes of e
func memberLength(m *inp.Model, e *inp.Element) float64 {
	a, b := m.GetNode(e.Verts[0]), m.GetNode(e.Verts[1])
	var l2 float64
	for i := 0; i < m.Ndim; i++ {
		d := b.C[i] - a.C[i]
		l2 += d * d
	}
	return math.Sqrt(l2)
}
