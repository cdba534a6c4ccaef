// Copyright 2026 The Gofra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"

	"github.com/structpad/gofra/ana"
	"github.com/structpad/gofra/inp"
)

// cantileverMesh returns a 2D cantilever of length l split into n elements
func cantileverMesh(l float64, n int) *inp.Model {
	m := &inp.Model{
		Ndim:      2,
		Materials: []*inp.Material{{Name: "steel", Kind: inp.MatSteel}},
		Sections:  []*inp.Section{{Name: "sec", Type: "rectangle", Wid: 0.1, Hei: 0.2}},
	}
	for i := 0; i <= n; i++ {
		nod := &inp.Node{Id: i + 1, C: []float64{l * float64(i) / float64(n), 0}}
		if i == 0 {
			nod.Fix = []bool{true, true, true}
		}
		m.Nodes = append(m.Nodes, nod)
	}
	for i := 0; i < n; i++ {
		m.Elements = append(m.Elements, &inp.Element{
			Id: i + 1, Kind: inp.KindBeam, Verts: []int{i + 1, i + 2}, Mat: "steel", Sec: "sec",
		})
	}
	if err := m.Derive(); err != nil {
		chk.Panic("cantileverMesh: Derive failed: %v", err)
	}
	return m
}

func Test_modal01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("modal01. cantilever fundamental frequency")

	l := 3.0
	m := cantileverMesh(l, 4)
	cfg := DefaultConfig()
	res, err := Modal(m, cfg)
	if err != nil {
		tst.Errorf("Modal failed:\n%v", err)
		return
	}
	chk.IntAssert(len(res.Modes), cfg.Modes)

	// frequencies ascending and positive
	for k, mode := range res.Modes {
		chk.IntAssert(mode.Idx, k+1)
		if mode.Omega <= 0 {
			tst.Errorf("mode %d: ω must be positive. ω=%g", mode.Idx, mode.Omega)
		}
		if k > 0 && mode.Omega < res.Modes[k-1].Omega {
			tst.Errorf("frequencies must be ascending")
		}
		chk.Float64(tst, "T = 1/f", 1e-15, mode.Period*mode.Freq, 1.0)
	}

	// fundamental frequency within 1% of the continuum solution
	mtl := m.MatDb["steel"]
	sec := m.SecDb["sec"]
	w1 := ana.CantileverFreq1(mtl.E, sec.I22, mtl.Rho, sec.A, l)
	chk.Float64(tst, "ω₁ / exact", 0.01, res.Modes[0].Omega/w1, 1.0)

	// shapes are zero at the restrained node and mass-normalized
	dom, err := NewDomain(m, true, cfg.Lumped)
	if err != nil {
		tst.Errorf("NewDomain failed:\n%v", err)
		return
	}
	M := dom.AssembleM()
	for _, mode := range res.Modes {
		chk.IntAssert(len(mode.Shape), dom.Ny)
		chk.Array(tst, "restrained DOFs", 1e-17, mode.Shape[:3], []float64{0, 0, 0})
		phi := mat.NewVecDense(dom.Ny, mode.Shape)
		chk.Float64(tst, "φᵀMφ", 1e-8, mat.Inner(phi, M, phi), 1.0)
	}
}

func Test_modal02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("modal02. lumped mass stays close to consistent mass")

	m := cantileverMesh(3.0, 8)
	cfg := DefaultConfig()
	cons, err := Modal(m, cfg)
	if err != nil {
		tst.Errorf("Modal (consistent) failed:\n%v", err)
		return
	}
	cfg.Lumped = true
	lump, err := Modal(m, cfg)
	if err != nil {
		tst.Errorf("Modal (lumped) failed:\n%v", err)
		return
	}
	chk.Float64(tst, "ω₁ lumped/consistent", 0.05, lump.Modes[0].Omega/cons.Modes[0].Omega, 1.0)
}

func Test_modal03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("modal03. error paths")

	// strict validation rejects the empty model
	m := &inp.Model{Ndim: 2}
	if err := m.Derive(); err != nil {
		tst.Errorf("Derive failed:\n%v", err)
		return
	}
	_, err := Modal(m, DefaultConfig())
	var verr *inp.ValidationError
	if !errors.As(err, &verr) {
		tst.Errorf("expected *inp.ValidationError; got %v", err)
	}

	// more modes than free DOFs
	m = cantileverMesh(3.0, 1) // 3 free DOFs
	cfg := DefaultConfig()
	cfg.Modes = 10
	_, err = Modal(m, cfg)
	if err == nil {
		tst.Errorf("Modal should have failed: more modes than free DOFs")
	}

	// unsupported structure has rigid-body modes
	m = cantileverMesh(3.0, 2)
	m.Nodes[0].Fix = nil
	_, err = Modal(m, DefaultConfig())
	var uerr *UnstableError
	if !errors.As(err, &uerr) {
		tst.Errorf("expected *UnstableError; got %v", err)
	}
}
