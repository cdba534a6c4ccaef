// Copyright 2026 The Gofra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"

	"github.com/structpad/gofra/inp"
)

// Modal runs a free-vibration analysis and returns the first cfg.Modes
// natural modes in ascending frequency order. Mode shapes are
// mass-normalized (shapeᵀ·M·shape = 1) and zero-filled at restrained DOFs.
//
// The generalized problem K·φ = ω²·M·φ is reduced to a standard symmetric
// one via the Cholesky factor of M:  M = L·Lᵀ,  A = L⁻¹·K·L⁻ᵀ,  A·y = ω²·y,
// φ = L⁻ᵀ·y.
func Modal(m *inp.Model, cfg Config) (res *ModalResult, err error) {

	// validate; modal analyses need actual structure
	err = inp.ValidateStrict(m)
	if err != nil {
		return nil, err
	}

	// assemble
	dom, err := NewDomain(m, true, cfg.Lumped)
	if err != nil {
		return nil, err
	}
	K := dom.AssembleK()
	M := dom.AssembleM()
	if !matFinite(K) || !matFinite(M) {
		return nil, &OverflowError{Where: "global matrix assembly"}
	}

	// reduce to free DOFs
	free, _ := dom.Partition()
	nfree := len(free)
	nmodes := cfg.Modes
	if nmodes < 1 {
		nmodes = 1
	}
	if nmodes > nfree {
		return nil, chk.Err("cannot extract %d modes: only %d free DOFs", nmodes, nfree)
	}
	Kr := mat.NewSymDense(nfree, nil)
	Mr := mat.NewSymDense(nfree, nil)
	for i, I := range free {
		for j, J := range free {
			if j >= i {
				Kr.SetSym(i, j, K.At(I, J))
				Mr.SetSym(i, j, M.At(I, J))
			}
		}
	}

	// factorize M
	var chol mat.Cholesky
	if ok := chol.Factorize(Mr); !ok {
		return nil, &UnstableError{Msg: "mass matrix is not positive definite; check material densities"}
	}
	var ltri mat.TriDense
	chol.LTo(&ltri)

	// A := L⁻¹·K·L⁻ᵀ, built column-wise: first L·B = K, then L·Aᵀ = Bᵀ
	var B, At mat.Dense
	err = B.Solve(&ltri, Kr)
	if err != nil {
		return nil, &UnstableError{Msg: "mass matrix reduction failed: " + err.Error()}
	}
	err = At.Solve(&ltri, B.T())
	if err != nil {
		return nil, &UnstableError{Msg: "mass matrix reduction failed: " + err.Error()}
	}

	// symmetrize to kill roundoff asymmetry
	A := mat.NewSymDense(nfree, nil)
	for i := 0; i < nfree; i++ {
		for j := i; j < nfree; j++ {
			A.SetSym(i, j, 0.5*(At.At(i, j)+At.At(j, i)))
		}
	}

	// solve the standard eigenproblem
	var eig mat.EigenSym
	if ok := eig.Factorize(A, true); !ok {
		return nil, &ConvergenceError{Modes: nmodes}
	}
	lams := eig.Values(nil) // ascending
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	// rigid-body threshold, relative to the stiffest mode
	lamTol := cfg.Tol
	if lm := lams[nfree-1]; lm > 1 {
		lamTol *= lm
	}

	// back-transform and collect modes
	res = &ModalResult{
		Ndof:    dom.Ndof,
		NodeIds: make([]int, len(m.Nodes)),
		Nfree:   nfree,
		Modes:   make([]*Mode, nmodes),
	}
	for i, nod := range m.Nodes {
		res.NodeIds[i] = nod.Id
	}
	for k := 0; k < nmodes; k++ {
		lam := lams[k]
		if math.IsNaN(lam) || math.IsInf(lam, 0) {
			return nil, &OverflowError{Where: "eigenvalue extraction"}
		}
		if lam <= lamTol {
			return nil, &UnstableError{Msg: "near-zero vibration frequency found; the structure has a rigid-body mode"}
		}

		// φ from Lᵀ·φ = y
		y := mat.NewVecDense(nfree, nil)
		for i := 0; i < nfree; i++ {
			y.SetVec(i, vecs.At(i, k))
		}
		var phi mat.VecDense
		err = phi.SolveVec(ltri.T(), y)
		if err != nil {
			return nil, &UnstableError{Msg: "mode shape recovery failed: " + err.Error()}
		}

		// zero-fill to full size
		shape := make([]float64, dom.Ny)
		for i, I := range free {
			shape[I] = phi.AtVec(i)
		}
		omega := math.Sqrt(lam)
		freq := omega / (2.0 * math.Pi)
		res.Modes[k] = &Mode{
			Idx:    k + 1,
			Omega:  omega,
			Freq:   freq,
			Period: 1.0 / freq,
			Shape:  shape,
		}
	}
	return res, nil
}
