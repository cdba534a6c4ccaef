// Copyright 2026 The Gofra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"errors"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/structpad/gofra/ana"
	"github.com/structpad/gofra/inp"
)

func verbose() {
	chk.Verbose = true
}

// cantilever returns a 2D cantilever with one element, fixed at node 1 and
// loaded with a downward tip force P at node 2
func cantilever(l, p float64) *inp.Model {
	m := &inp.Model{
		Ndim: 2,
		Nodes: []*inp.Node{
			{Id: 1, C: []float64{0, 0}, Fix: []bool{true, true, true}},
			{Id: 2, C: []float64{l, 0}, F: []float64{0, -p, 0}},
		},
		Elements: []*inp.Element{
			{Id: 1, Kind: inp.KindBeam, Verts: []int{1, 2}, Mat: "steel", Sec: "sec"},
		},
		Materials: []*inp.Material{{Name: "steel", Kind: inp.MatSteel}},
		Sections:  []*inp.Section{{Name: "sec", Type: "rectangle", Wid: 0.1, Hei: 0.2}},
	}
	if err := m.Derive(); err != nil {
		chk.Panic("cantilever: Derive failed: %v", err)
	}
	return m
}

func Test_static01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("static01. empty model yields a trivial zero result")

	m := &inp.Model{Ndim: 3}
	if err := m.Derive(); err != nil {
		tst.Errorf("Derive failed:\n%v", err)
		return
	}
	res, err := Analyze(m, DefaultConfig())
	if err != nil {
		tst.Errorf("Analyze failed:\n%v", err)
		return
	}
	if !res.Valid {
		tst.Errorf("empty model must be trivially valid")
	}
	chk.IntAssert(len(res.U), 0)
	chk.IntAssert(len(res.Forces), 0)
	chk.Float64(tst, "maxDisp", 1e-17, res.MaxDisp, 0)
	chk.Float64(tst, "maxStress", 1e-17, res.MaxStress, 0)

	// nodes without elements get zero rows
	m = &inp.Model{Ndim: 2, Nodes: []*inp.Node{{Id: 1, C: []float64{0, 0}}}}
	if err := m.Derive(); err != nil {
		tst.Errorf("Derive failed:\n%v", err)
		return
	}
	res, err = Analyze(m, DefaultConfig())
	if err != nil {
		tst.Errorf("Analyze failed:\n%v", err)
		return
	}
	chk.IntAssert(len(res.U), 1)
	chk.Array(tst, "U[0]", 1e-17, res.U[0], []float64{0, 0, 0})
}

func Test_static02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("static02. cantilever with end load: closed form")

	l, p := 3.0, 10e3
	m := cantilever(l, p)
	res, err := Analyze(m, DefaultConfig())
	if err != nil {
		tst.Errorf("Analyze failed:\n%v", err)
		return
	}
	if !res.Valid {
		tst.Errorf("result should be valid")
		return
	}

	mat := m.MatDb["steel"]
	sec := m.SecDb["sec"]
	sol := ana.CantileverEndLoad{E: mat.E, I: sec.I22, L: l, P: p}

	// tip kinematics (exact for the 2-node element under a tip load)
	chk.Float64(tst, "tip deflection", 1e-10*sol.TipDeflection(), res.U[1][1], -sol.TipDeflection())
	chk.Float64(tst, "tip rotation", 1e-10*sol.TipRotation(), res.U[1][2], -sol.TipRotation())
	chk.Array(tst, "support DOFs are zero", 1e-17, res.U[0], []float64{0, 0, 0})

	// end forces: shear P and moment P·L at the support
	chk.Float64(tst, "support shear", 1e-6, res.Forces[0][1], p)
	chk.Float64(tst, "support moment", 1e-6, res.Forces[0][2], sol.FixedEndMoment())

	// peak stress M/S with no axial force
	chk.Float64(tst, "peak stress", 1e-6, res.Stresses[0], sol.FixedEndMoment()/sec.S22)
	chk.Float64(tst, "maxDisp", 1e-15, res.MaxDisp, sol.TipDeflection())
}

func Test_static03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("static03. unsupported structure is flagged unstable")

	m := cantilever(3.0, 10e3)
	m.Nodes[0].Fix = nil // remove all supports
	res, err := Analyze(m, DefaultConfig())
	var uerr *UnstableError
	if !errors.As(err, &uerr) {
		tst.Errorf("expected *UnstableError; got %v", err)
		return
	}
	if res == nil || res.Valid {
		tst.Errorf("result must be returned with Valid == false")
	}
}

func Test_static04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("static04. simply supported beam with central load")

	l, p := 6.0, 50e3
	m := &inp.Model{
		Ndim: 2,
		Nodes: []*inp.Node{
			{Id: 1, C: []float64{0, 0}, Fix: []bool{true, true, false}},
			{Id: 2, C: []float64{l / 2, 0}, F: []float64{0, -p, 0}},
			{Id: 3, C: []float64{l, 0}, Fix: []bool{false, true, false}},
		},
		Elements: []*inp.Element{
			{Id: 1, Kind: inp.KindBeam, Verts: []int{1, 2}, Mat: "steel", Sec: "sec"},
			{Id: 2, Kind: inp.KindBeam, Verts: []int{2, 3}, Mat: "steel", Sec: "sec"},
		},
		Materials: []*inp.Material{{Name: "steel", Kind: inp.MatSteel}},
		Sections:  []*inp.Section{{Name: "sec", Type: "rectangle", Wid: 0.1, Hei: 0.2}},
	}
	if err := m.Derive(); err != nil {
		tst.Errorf("Derive failed:\n%v", err)
		return
	}
	res, err := Analyze(m, DefaultConfig())
	if err != nil {
		tst.Errorf("Analyze failed:\n%v", err)
		return
	}

	mat := m.MatDb["steel"]
	sec := m.SecDb["sec"]
	sol := ana.SSCenterLoad{E: mat.E, I: sec.I22, L: l, P: p}
	chk.Float64(tst, "center deflection", 1e-10*sol.CenterDeflection(), res.U[1][1], -sol.CenterDeflection())

	// midspan moment carried at the loaded end of element 1
	chk.Float64(tst, "midspan moment", 1e-6, math.Abs(res.Forces[0][5]), sol.MaxMoment())
}

func Test_static05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("static05. portal frame from JSON; repeated runs agree")

	m, err := inp.ReadModel("data/portal01.json")
	if err != nil {
		tst.Errorf("ReadModel failed:\n%v", err)
		return
	}
	res1, err := Analyze(m, DefaultConfig())
	if err != nil {
		tst.Errorf("Analyze failed:\n%v", err)
		return
	}
	if !res1.Valid {
		tst.Errorf("portal frame should be valid")
		return
	}

	// both top nodes drift in the load direction
	if res1.U[2][0] <= 0 || res1.U[3][0] <= 0 {
		tst.Errorf("top nodes should drift in +x. got %g and %g", res1.U[2][0], res1.U[3][0])
	}
	chk.Array(tst, "base 1 is fixed", 1e-17, res1.U[0], []float64{0, 0, 0})
	chk.Array(tst, "base 2 is fixed", 1e-17, res1.U[1], []float64{0, 0, 0})

	// the analysis has no side effects on the model
	res2, err := Analyze(m, DefaultConfig())
	if err != nil {
		tst.Errorf("second Analyze failed:\n%v", err)
		return
	}
	chk.Float64(tst, "maxDisp repeatable", 1e-17, res2.MaxDisp, res1.MaxDisp)
	chk.Float64(tst, "maxStress repeatable", 1e-17, res2.MaxStress, res1.MaxStress)
}

func Test_static06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("static06. 3D single-member model: result shapes")

	m := &inp.Model{
		Ndim: 3,
		Nodes: []*inp.Node{
			{Id: 1, C: []float64{0, 0, 0}, Fix: []bool{true, true, true, true, true, true}},
			{Id: 2, C: []float64{5, 0, 0}, F: []float64{0, 0, -20e3, 0, 0, 0}},
		},
		Elements: []*inp.Element{
			{Id: 1, Kind: inp.KindBeam, Verts: []int{1, 2}, Mat: "steel", Sec: "sec"},
		},
		Materials: []*inp.Material{{Name: "steel", Kind: inp.MatSteel}},
		Sections:  []*inp.Section{{Name: "sec", Type: "rectangle", Wid: 0.1, Hei: 0.2}},
	}
	if err := m.Derive(); err != nil {
		tst.Errorf("Derive failed:\n%v", err)
		return
	}
	res, err := Analyze(m, DefaultConfig())
	if err != nil {
		tst.Errorf("Analyze failed:\n%v", err)
		return
	}
	if !res.Valid {
		tst.Errorf("result should be valid")
		return
	}
	chk.IntAssert(res.Ndof, 6)
	chk.IntAssert(len(res.U), 2)
	chk.IntAssert(len(res.Forces), 1)
	chk.IntAssert(len(res.Stresses), 1)
	chk.IntAssert(len(res.U[0]), 6)
	chk.IntAssert(len(res.Forces[0]), 12)
	if math.IsNaN(res.MaxDisp) || math.IsInf(res.MaxDisp, 0) || res.MaxDisp <= 0 {
		tst.Errorf("maxDisp must be finite and positive. got %g", res.MaxDisp)
	}
	if math.IsNaN(res.MaxStress) || math.IsInf(res.MaxStress, 0) || res.MaxStress <= 0 {
		tst.Errorf("maxStress must be finite and positive. got %g", res.MaxStress)
	}

	// 3D cantilever bends about the minor axis under a -z load
	mat := m.MatDb["steel"]
	sec := m.SecDb["sec"]
	sol := ana.CantileverEndLoad{E: mat.E, I: sec.I11, L: 5, P: 20e3}
	chk.Float64(tst, "tip deflection", 1e-10*sol.TipDeflection(), res.U[1][2], -sol.TipDeflection())
}
