// Copyright 2026 The Gofra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/structpad/gofra/inp"
)

// Config holds the analysis settings. The zero value is not usable; start
// from DefaultConfig.
type Config struct {
	Tol    float64 // stability tolerance: reject systems with condition number > 1/Tol
	Modes  int     // number of vibration modes to extract in modal analyses
	Lumped bool    // use HRZ lumped mass matrices instead of consistent ones
}

// DefaultConfig returns the default analysis settings
func DefaultConfig() Config {
	return Config{
		Tol:   1e-10,
		Modes: 3,
	}
}

// Analyze runs a linear static analysis: validate, assemble the global
// stiffness matrix, apply boundary conditions, solve for the free DOFs and
// recover element end forces and peak stresses.
//
// The returned error is non-nil when the model is invalid (*inp.ValidationError),
// the restrained structure is singular or ill-conditioned (*UnstableError), or
// the computation produced non-finite numbers (*OverflowError). On *UnstableError
// the result is still returned with Valid set to false.
func Analyze(m *inp.Model, cfg Config) (res *AnalysisResult, err error) {

	// validate
	err = inp.Validate(m)
	if err != nil {
		return nil, err
	}

	// a model without elements is trivially in equilibrium
	ndof := m.Ndof()
	if len(m.Elements) == 0 {
		res = newResult(m, ndof)
		res.Valid = true
		res.summarize()
		return res, nil
	}

	// assemble
	dom, err := NewDomain(m, false, false)
	if err != nil {
		return nil, err
	}
	K := dom.AssembleK()
	if !matFinite(K) {
		return nil, &OverflowError{Where: "global stiffness assembly"}
	}

	// reduce to free DOFs
	free, _ := dom.Partition()
	nfree := len(free)
	res = newResult(m, ndof)
	if nfree == 0 {
		// fully restrained: zero displacements, forces follow
		res.Valid = true
		recoverForces(dom, res, make([]float64, dom.Ny))
		res.summarize()
		return res, nil
	}
	Kr := mat.NewSymDense(nfree, nil)
	for i, I := range free {
		for j, J := range free {
			if j >= i {
				Kr.SetSym(i, j, K.At(I, J))
			}
		}
	}
	fr := mat.NewVecDense(nfree, nil)
	for i, I := range free {
		fr.SetVec(i, dom.F[I])
	}

	// factorize and check conditioning
	var chol mat.Cholesky
	if ok := chol.Factorize(Kr); !ok {
		return res, &UnstableError{Msg: "stiffness matrix is not positive definite; check supports and member connectivity"}
	}
	if cfg.Tol > 0 && chol.Cond() > 1.0/cfg.Tol {
		return res, &UnstableError{Msg: "stiffness matrix is ill-conditioned; check supports and member connectivity"}
	}

	// solve
	var ur mat.VecDense
	err = chol.SolveVecTo(&ur, fr)
	if err != nil {
		return res, &UnstableError{Msg: "linear solve failed: " + err.Error()}
	}

	// expand to full vector (zeros at restrained DOFs)
	u := make([]float64, dom.Ny)
	for i, I := range free {
		v := ur.AtVec(i)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &OverflowError{Where: "displacement solution"}
		}
		u[I] = v
	}
	for i := range m.Nodes {
		for j := 0; j < ndof; j++ {
			res.U[i][j] = u[i*ndof+j]
		}
	}

	// element end forces and peak stresses
	res.Valid = true
	recoverForces(dom, res, u)
	if finite := res.summarize(); !finite {
		return nil, &OverflowError{Where: "force recovery"}
	}
	return res, nil
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// newResult allocates a zeroed result sized for the model
func newResult(m *inp.Model, ndof int) (res *AnalysisResult) {
	res = &AnalysisResult{
		Ndof:      ndof,
		NodeIds:   make([]int, len(m.Nodes)),
		ElemIds:   make([]int, len(m.Elements)),
		ElemKinds: make([]inp.ElemKind, len(m.Elements)),
		U:         make([][]float64, len(m.Nodes)),
		Forces:    make([][]float64, len(m.Elements)),
		Stresses:  make([]float64, len(m.Elements)),
	}
	for i, nod := range m.Nodes {
		res.NodeIds[i] = nod.Id
		res.U[i] = make([]float64, ndof)
	}
	for i, ec := range m.Elements {
		res.ElemIds[i] = ec.Id
		res.ElemKinds[i] = ec.Kind
		res.Forces[i] = make([]float64, 2*ndof)
	}
	return
}

// recoverForces gathers element displacements from the full vector u and
// computes local end forces and peak stresses
func recoverForces(dom *Domain, res *AnalysisResult, u []float64) {
	for i, e := range dom.Elems {
		ue := make([]float64, e.Nu)
		for k, I := range dom.Umaps[i] {
			ue[k] = u[I]
		}
		e.EndForces(res.Forces[i], ue)
		res.Stresses[i] = e.PeakStress(res.Forces[i])
	}
}
