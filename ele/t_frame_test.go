// Copyright 2026 The Gofra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/structpad/gofra/inp"
)

func verbose() {
	chk.Verbose = true
}

// test material and section fixtures
func steelRect() (*inp.Material, *inp.Section) {
	mat := &inp.Material{Name: "steel", Kind: inp.MatSteel}
	mat.SetDefaults()
	sec := &inp.Section{Name: "r100x200", Type: "rectangle", Wid: 0.1, Hei: 0.2}
	if err := sec.Derive(); err != nil {
		chk.Panic("section Derive failed: %v", err)
	}
	return mat, sec
}

func Test_frame01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("frame01. 2D horizontal member: local stiffness entries")

	mat, sec := steelRect()
	l := 2.5
	x := [][]float64{{0, l}, {0, 0}}
	e, err := New(1, inp.KindBeam, x, mat, sec, false, false)
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	chk.Float64(tst, "L", 1e-15, e.L, l)

	EA := mat.E * sec.A
	EI := mat.E * sec.I22
	chk.Float64(tst, "Kl[0][0] = EA/L    ", 1e-8, e.Kl.At(0, 0), EA/l)
	chk.Float64(tst, "Kl[1][1] = 12EI/L³ ", 1e-8, e.Kl.At(1, 1), 12.0*EI/(l*l*l))
	chk.Float64(tst, "Kl[2][2] = 4EI/L   ", 1e-8, e.Kl.At(2, 2), 4.0*EI/l)
	chk.Float64(tst, "Kl[1][2] = 6EI/L²  ", 1e-8, e.Kl.At(1, 2), 6.0*EI/(l*l))

	// horizontal member: global equals local
	for i := 0; i < e.Nu; i++ {
		for j := 0; j < e.Nu; j++ {
			chk.Float64(tst, io.Sf("K[%d][%d] == Kl[%d][%d]", i, j, i, j), 1e-8, e.K.At(i, j), e.Kl.At(i, j))
		}
	}

	// symmetry
	for i := 0; i < e.Nu; i++ {
		for j := i + 1; j < e.Nu; j++ {
			chk.Float64(tst, io.Sf("K[%d][%d] == K[%d][%d]", i, j, j, i), 1e-8, e.K.At(i, j), e.K.At(j, i))
		}
	}
}

func Test_frame02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("frame02. rotation invariance and rigid-body motion")

	mat, sec := steelRect()
	l := 3.0

	// inclined 2D member at 30°
	c, s := math.Cos(math.Pi/6.0), math.Sin(math.Pi/6.0)
	x := [][]float64{{0, l * c}, {0, l * s}}
	e, err := New(1, inp.KindBrace, x, mat, sec, false, false)
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	chk.Float64(tst, "L", 1e-14, e.L, l)

	// axial stretch along the member axis maps to EA/L
	ue := []float64{0, 0, 0, c, s, 0} // unit axial displacement at node 1
	fl := make([]float64, 6)
	e.EndForces(fl, ue)
	EA := mat.E * sec.A
	chk.Float64(tst, "N1 = -EA/L", 1e-6, fl[0], -EA/l)
	chk.Float64(tst, "N2 = +EA/L", 1e-6, fl[3], EA/l)
	chk.Float64(tst, "V1 = 0", 1e-6, fl[1], 0)
	chk.Float64(tst, "M1 = 0", 1e-6, fl[2], 0)

	// rigid-body translation produces no forces
	ue = []float64{0.7, -0.3, 0, 0.7, -0.3, 0}
	e.EndForces(fl, ue)
	for i := 0; i < 6; i++ {
		chk.Float64(tst, io.Sf("rigid: fl[%d]", i), 1e-6, fl[i], 0)
	}
}

func Test_frame03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("frame03. 3D member: local axes and symmetry")

	mat, sec := steelRect()

	// vertical member: reference vector must switch to global x
	x := [][]float64{{0, 0}, {0, 0}, {0, 4}}
	e, err := New(1, inp.KindColumn, x, mat, sec, false, false)
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	chk.IntAssert(e.Nu, 12)

	// local axes orthonormal
	chk.Float64(tst, "e0·e0", 1e-15, r3.Dot(e.e0, e.e0), 1)
	chk.Float64(tst, "e1·e1", 1e-15, r3.Dot(e.e1, e.e1), 1)
	chk.Float64(tst, "e2·e2", 1e-15, r3.Dot(e.e2, e.e2), 1)
	chk.Float64(tst, "e0·e1", 1e-15, r3.Dot(e.e0, e.e1), 0)
	chk.Float64(tst, "e0·e2", 1e-15, r3.Dot(e.e0, e.e2), 0)
	chk.Float64(tst, "e1·e2", 1e-15, r3.Dot(e.e1, e.e2), 0)

	// global stiffness symmetric
	for i := 0; i < e.Nu; i++ {
		for j := i + 1; j < e.Nu; j++ {
			chk.Float64(tst, io.Sf("K[%d][%d] == K[%d][%d]", i, j, j, i), 1e-6, e.K.At(i, j), e.K.At(j, i))
		}
	}

	// rigid-body translation produces no forces
	ue := make([]float64, 12)
	for k := 0; k < 2; k++ {
		ue[6*k+0] = 0.1
		ue[6*k+1] = -0.2
		ue[6*k+2] = 0.3
	}
	fl := make([]float64, 12)
	e.EndForces(fl, ue)
	for i := 0; i < 12; i++ {
		chk.Float64(tst, io.Sf("rigid: fl[%d]", i), 1e-6, fl[i], 0)
	}
}

func Test_frame04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("frame04. mass matrices preserve total mass")

	mat, sec := steelRect()
	l := 2.0
	mtot := mat.Rho * sec.A * l

	// 2D consistent and lumped: rᵀ·M·r == ρAL for a unit translation r
	for _, lumped := range []bool{false, true} {
		x := [][]float64{{0, l}, {0, 0}}
		e, err := New(1, inp.KindBeam, x, mat, sec, true, lumped)
		if err != nil {
			tst.Errorf("New failed:\n%v", err)
			return
		}
		r := []float64{0, 1, 0, 0, 1, 0} // unit transverse translation
		var mm float64
		for i := 0; i < 6; i++ {
			for j := 0; j < 6; j++ {
				mm += r[i] * e.M.At(i, j) * r[j]
			}
		}
		chk.Float64(tst, io.Sf("2D (lumped=%v): rᵀMr", lumped), 1e-10, mm, mtot)
	}

	// 3D consistent: same property in each translation direction
	x := [][]float64{{0, l}, {0, 0}, {0, 0}}
	e, err := New(1, inp.KindBeam, x, mat, sec, true, false)
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	for dir := 0; dir < 3; dir++ {
		r := make([]float64, 12)
		r[dir] = 1
		r[6+dir] = 1
		var mm float64
		for i := 0; i < 12; i++ {
			for j := 0; j < 12; j++ {
				mm += r[i] * e.M.At(i, j) * r[j]
			}
		}
		chk.Float64(tst, io.Sf("3D dir %d: rᵀMr", dir), 1e-10, mm, mtot)
	}
}

func Test_frame05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("frame05. construction errors")

	mat, sec := steelRect()

	// zero length
	x := [][]float64{{1, 1}, {2, 2}}
	_, err := New(1, inp.KindBeam, x, mat, sec, false, false)
	if err == nil {
		tst.Errorf("New should have failed for coincident nodes")
	}

	// dynamic analysis needs density
	bad := *mat
	bad.Rho = 0
	x = [][]float64{{0, 1}, {0, 0}}
	_, err = New(1, inp.KindBeam, x, &bad, sec, true, false)
	if err == nil {
		tst.Errorf("New should have failed for zero density with mass requested")
	}
}
