// Copyright 2026 The Gofra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the structural model read from a JSON file or
// built in-process by a caller (e.g. the workbench forms layer)
package inp

import (
	"github.com/cpmech/gosl/chk"
)

// ElemKind labels a frame member. The label affects how results are reported
// only; all kinds share the 2-node frame stiffness formulation.
type ElemKind string

// element kinds
const (
	KindBeam   ElemKind = "beam"
	KindColumn ElemKind = "column"
	KindBrace  ElemKind = "brace"
	KindSlab   ElemKind = "slab" // slab strip modelled as an equivalent beam
)

// Known tells whether k is one of the recognised element kinds
func (k ElemKind) Known() bool {
	switch k {
	case KindBeam, KindColumn, KindBrace, KindSlab:
		return true
	}
	return false
}

// Node holds one structural node: position, support flags and nodal loads
//
//  C   -- coordinates; len(C) == ndim
//  Fix -- prescribed (zero) displacement flags, one per DOF; nil == free node
//  F   -- applied nodal forces/moments, one per DOF; nil == no load
//
// DOF order: 2D {ux, uy, rz}; 3D {ux, uy, uz, rx, ry, rz}
type Node struct {
	Id  int       `json:"id"`  // identifier; unique within the model
	C   []float64 `json:"c"`   // coordinates
	Fix []bool    `json:"fix"` // support flags per DOF
	F   []float64 `json:"f"`   // nodal load per DOF
}

// Element holds one 2-node frame member
type Element struct {
	Id    int      `json:"id"`    // identifier
	Kind  ElemKind `json:"kind"`  // beam, column, brace or slab
	Verts []int    `json:"verts"` // [2] node ids; must be distinct
	Mat   string   `json:"mat"`   // material name
	Sec   string   `json:"sec"`   // section name
}

// Model holds the complete structural model for one analysis. The engine
// treats it as read-only; derived maps are filled once by Derive.
type Model struct {

	// input
	Desc      string      `json:"desc"`      // description
	Ndim      int         `json:"ndim"`      // space dimension: 2 or 3 (default 3)
	Nodes     []*Node     `json:"nodes"`     // all nodes
	Elements  []*Element  `json:"elements"`  // all elements
	Materials []*Material `json:"materials"` // material database
	Sections  []*Section  `json:"sections"`  // section database

	// derived
	Vid2node map[int]*Node        `json:"-"` // node id => node
	MatDb    map[string]*Material `json:"-"` // material name => material
	SecDb    map[string]*Section  `json:"-"` // section name => section
}

// Ndof returns the number of DOFs per node: 3 (2D) or 6 (3D)
func (o *Model) Ndof() int {
	if o.Ndim == 2 {
		return 3
	}
	return 6
}

// Derive builds lookup maps, fills material defaults and computes derived
// section properties. It must be called once before the model is analysed;
// ReadModel calls it automatically.
func (o *Model) Derive() (err error) {
	if o.Ndim == 0 {
		o.Ndim = 3
	}
	if o.Ndim != 2 && o.Ndim != 3 {
		return chk.Err("space dimension must be 2 or 3. ndim=%d is invalid", o.Ndim)
	}
	o.Vid2node = make(map[int]*Node)
	for _, nod := range o.Nodes {
		if _, ok := o.Vid2node[nod.Id]; ok {
			return chk.Err("duplicate node id %d", nod.Id)
		}
		o.Vid2node[nod.Id] = nod
	}
	o.MatDb = make(map[string]*Material)
	for _, mat := range o.Materials {
		mat.SetDefaults()
		o.MatDb[mat.Name] = mat
	}
	o.SecDb = make(map[string]*Section)
	for _, sec := range o.Sections {
		err = sec.Derive()
		if err != nil {
			return
		}
		o.SecDb[sec.Name] = sec
	}
	return
}

// GetNode returns the node with given id or nil
func (o *Model) GetNode(id int) *Node {
	return o.Vid2node[id]
}
