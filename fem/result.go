// Copyright 2026 The Gofra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/structpad/gofra/inp"
)

// AnalysisResult holds the outcome of one static analysis. It is a fresh
// value fully owned by the caller, with no linkage back to the model.
type AnalysisResult struct {
	Ndof      int            `json:"ndof"`      // DOFs per node: 3 (2D) or 6 (3D)
	NodeIds   []int          `json:"nodeIds"`   // node ids, ordered as U rows
	ElemIds   []int          `json:"elemIds"`   // element ids, ordered as Forces rows
	ElemKinds []inp.ElemKind `json:"elemKinds"` // element labels, same order
	U         [][]float64    `json:"u"`         // [nnode][ndof] nodal displacements
	Forces    [][]float64    `json:"forces"`    // [nelem][2*ndof] local end forces
	Stresses  []float64      `json:"stresses"`  // [nelem] peak stress per element
	MaxDisp   float64        `json:"maxDisp"`   // max absolute displacement component
	MaxStress float64        `json:"maxStress"` // max absolute peak stress
	Valid     bool           `json:"valid"`     // false if unstable or non-finite
}

// Mode holds one natural vibration mode. Shapes are mass-normalized and
// zero-filled at restrained DOFs; Shape has length nnode*ndof.
type Mode struct {
	Idx    int       `json:"idx"`    // 1-based mode index; 1 is the fundamental mode
	Omega  float64   `json:"omega"`  // circular frequency ω [rad/s]
	Freq   float64   `json:"freq"`   // natural frequency f = ω/2π [Hz]
	Period float64   `json:"period"` // period T = 1/f [s]
	Shape  []float64 `json:"shape"`  // [nnode*ndof] mode shape
}

// ModalResult holds the outcome of one modal analysis
type ModalResult struct {
	Ndof    int     `json:"ndof"`    // DOFs per node
	NodeIds []int   `json:"nodeIds"` // node ids, ordered as shape blocks
	Nfree   int     `json:"nfree"`   // number of free DOFs
	Modes   []*Mode `json:"modes"`   // modes in ascending frequency order
}

// summarize computes the max absolute displacement and stress scalars and
// returns whether every value is finite
func (o *AnalysisResult) summarize() (finite bool) {
	finite = true
	o.MaxDisp = 0
	for _, row := range o.U {
		for _, u := range row {
			if math.IsNaN(u) || math.IsInf(u, 0) {
				finite = false
			}
			if a := math.Abs(u); a > o.MaxDisp {
				o.MaxDisp = a
			}
		}
	}
	o.MaxStress = 0
	for _, s := range o.Stresses {
		if math.IsNaN(s) || math.IsInf(s, 0) {
			finite = false
		}
		if a := math.Abs(s); a > o.MaxStress {
			o.MaxStress = a
		}
	}
	return
}
