// Copyright 2026 The Gofra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fem runs linear static, modal and response-spectrum analyses on
// frame models. It assembles global stiffness and mass matrices from the
// element matrices in package ele, reduces them with the model's boundary
// conditions and solves the resulting systems.
package fem

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"

	"github.com/structpad/gofra/ele"
	"github.com/structpad/gofra/inp"
)

// Domain holds the assembled view of one model: the elements with their
// matrices computed, the equation numbers mapping element DOFs into global
// ones, and the global boundary conditions and loads.
type Domain struct {

	// sizes
	Ndim int // space dimension
	Ndof int // DOFs per node
	Ny   int // total number of global equations = nnode * ndof

	// elements and maps
	Elems []*ele.Frame // all frame elements, in model order
	Umaps [][]int      // [nelem][nu] local-to-global equation numbers

	// global conditions
	Fixed []bool    // [Ny] prescribed (restrained) equations
	F     []float64 // [Ny] nodal load vector

	// auxiliary
	nid2idx map[int]int // node id => index in Model.Nodes
}

// NewDomain builds a domain from a derived model. withM indicates whether
// element mass matrices are needed; lumped selects HRZ lumped mass instead
// of consistent mass.
func NewDomain(m *inp.Model, withM, lumped bool) (o *Domain, err error) {

	// sizes
	o = new(Domain)
	o.Ndim = m.Ndim
	o.Ndof = m.Ndof()
	o.Ny = len(m.Nodes) * o.Ndof

	// node id => index
	o.nid2idx = make(map[int]int)
	for i, nod := range m.Nodes {
		o.nid2idx[nod.Id] = i
	}

	// elements and umaps
	o.Elems = make([]*ele.Frame, len(m.Elements))
	o.Umaps = make([][]int, len(m.Elements))
	for i, ec := range m.Elements {
		x := make([][]float64, o.Ndim)
		for j := range x {
			x[j] = make([]float64, 2)
		}
		for k, vid := range ec.Verts {
			idx, ok := o.nid2idx[vid]
			if !ok {
				return nil, chk.Err("element %d refers to unknown node %d", ec.Id, vid)
			}
			for j := 0; j < o.Ndim; j++ {
				x[j][k] = m.Nodes[idx].C[j]
			}
		}
		mtl, ok := m.MatDb[ec.Mat]
		if !ok {
			return nil, chk.Err("element %d refers to unknown material %q", ec.Id, ec.Mat)
		}
		sec, ok := m.SecDb[ec.Sec]
		if !ok {
			return nil, chk.Err("element %d refers to unknown section %q", ec.Id, ec.Sec)
		}
		e, err := ele.New(ec.Id, ec.Kind, x, mtl, sec, withM, lumped)
		if err != nil {
			return nil, err
		}
		o.Elems[i] = e
		umap := make([]int, 2*o.Ndof)
		for k, vid := range ec.Verts {
			idx := o.nid2idx[vid]
			for j := 0; j < o.Ndof; j++ {
				umap[k*o.Ndof+j] = idx*o.Ndof + j
			}
		}
		o.Umaps[i] = umap
	}

	// boundary conditions and loads
	o.Fixed = make([]bool, o.Ny)
	o.F = make([]float64, o.Ny)
	for i, nod := range m.Nodes {
		for j := 0; j < o.Ndof; j++ {
			if j < len(nod.Fix) {
				o.Fixed[i*o.Ndof+j] = nod.Fix[j]
			}
			if j < len(nod.F) {
				o.F[i*o.Ndof+j] = nod.F[j]
			}
		}
	}
	return
}

// AssembleK adds all element stiffness matrices into the dense global K
func (o *Domain) AssembleK() (K *mat.Dense) {
	K = mat.NewDense(o.Ny, o.Ny, nil)
	for i, e := range o.Elems {
		umap := o.Umaps[i]
		for r, I := range umap {
			for c, J := range umap {
				K.Set(I, J, K.At(I, J)+e.K.At(r, c))
			}
		}
	}
	return
}

// AssembleM adds all element mass matrices into the dense global M
func (o *Domain) AssembleM() (M *mat.Dense) {
	M = mat.NewDense(o.Ny, o.Ny, nil)
	for i, e := range o.Elems {
		umap := o.Umaps[i]
		for r, I := range umap {
			for c, J := range umap {
				M.Set(I, J, M.At(I, J)+e.M.At(r, c))
			}
		}
	}
	return
}

// Partition splits the global equation numbers into free and fixed sets,
// both in ascending order.
func (o *Domain) Partition() (free, fixed []int) {
	for i := 0; i < o.Ny; i++ {
		if o.Fixed[i] {
			fixed = append(fixed, i)
		} else {
			free = append(free, i)
		}
	}
	return
}

// matFinite returns false if any entry of a is NaN or Inf
func matFinite(a *mat.Dense) bool {
	nr, nc := a.Dims()
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			v := a.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}
	return true
}
