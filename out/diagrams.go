// Copyright 2026 The Gofra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out post-processes analysis results into internal force
// distributions along members and terminal-friendly diagrams
package out

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/guptarohit/asciigraph"

	"github.com/structpad/gofra/fem"
)

// BeamDiagram holds the internal force distribution along one member,
// sampled at evenly spaced stations. Without span loads N and V are
// constant and M varies linearly between the end values.
//
// Sign convention: sagging moments are positive; tension is positive.
type BeamDiagram struct {
	ElemId int       // element id
	X      []float64 // [nstations] position along the member axis
	N      []float64 // [nstations] axial force
	V      []float64 // [nstations] shear force
	M      []float64 // [nstations] bending moment
}

// NewBeamDiagram samples the internal forces of the i-th element of a
// static analysis result. l is the member length; nstations must be ≥ 2.
func NewBeamDiagram(res *fem.AnalysisResult, i int, l float64, nstations int) (o *BeamDiagram, err error) {
	if res == nil || i < 0 || i >= len(res.Forces) {
		return nil, chk.Err("element index %d is out of range", i)
	}
	if nstations < 2 {
		return nil, chk.Err("need at least 2 stations. nstations=%d is invalid", nstations)
	}
	if l <= 0 {
		return nil, chk.Err("member length must be positive. l=%g is invalid", l)
	}

	// end forces: node-1 triplet (N1, V1, M1) in the local frame
	fl := res.Forces[i]
	n1, v1, m1 := fl[0], fl[1], fl[2]
	if res.Ndof == 6 {
		n1, v1, m1 = fl[0], fl[1], fl[5]
	}

	// sample
	o = &BeamDiagram{
		ElemId: res.ElemIds[i],
		X:      make([]float64, nstations),
		N:      make([]float64, nstations),
		V:      make([]float64, nstations),
		M:      make([]float64, nstations),
	}
	for k := 0; k < nstations; k++ {
		x := l * float64(k) / float64(nstations-1)
		o.X[k] = x
		o.N[k] = -n1
		o.V[k] = v1
		o.M[k] = -m1 + v1*x
	}
	return
}

// MaxAbsM returns the largest absolute bending moment among the stations
func (o *BeamDiagram) MaxAbsM() (m float64) {
	for _, v := range o.M {
		if a := math.Abs(v); a > m {
			m = a
		}
	}
	return
}

// DrawMoment renders the bending moment diagram as a terminal plot
func (o *BeamDiagram) DrawMoment() string {
	return asciigraph.Plot(o.M,
		asciigraph.Height(8),
		asciigraph.Caption(io.Sf("element %d: bending moment", o.ElemId)))
}
