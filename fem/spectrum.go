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

// Spectrum holds a design response spectrum as a table of (period, pseudo
// acceleration) pairs. Periods must be in strictly ascending order.
type Spectrum struct {
	T  []float64 `json:"t"`  // periods [s], ascending
	Sa []float64 `json:"sa"` // pseudo accelerations [m/s²]
}

// Interp returns the spectral acceleration at the given period by linear
// interpolation, clamping to the end values outside the table range. Only
// the complete (period, acceleration) pairs of the table are used.
func (o *Spectrum) Interp(period float64) float64 {
	n := len(o.T)
	if len(o.Sa) < n {
		n = len(o.Sa)
	}
	if n == 0 {
		return 0
	}
	if period <= o.T[0] {
		return o.Sa[0]
	}
	if period >= o.T[n-1] {
		return o.Sa[n-1]
	}
	for i := 1; i < n; i++ {
		if period <= o.T[i] {
			w := (period - o.T[i-1]) / (o.T[i] - o.T[i-1])
			return o.Sa[i-1] + w*(o.Sa[i]-o.Sa[i-1])
		}
	}
	return o.Sa[n-1]
}

// SpecResult holds the outcome of a response-spectrum analysis in one
// excitation direction. Per-mode quantities are indexed like mres.Modes.
type SpecResult struct {
	Dir       int       `json:"dir"`       // excitation direction: 0=x, 1=y, 2=z
	Gamma     []float64 `json:"gamma"`     // [nmodes] modal participation factors
	Meff      []float64 `json:"meff"`      // [nmodes] effective modal masses
	Sa        []float64 `json:"sa"`        // [nmodes] spectral accelerations at each period
	ModeShear []float64 `json:"modeShear"` // [nmodes] base shear per mode
	BaseShear float64   `json:"baseShear"` // SRSS-combined base shear
	F         []float64 `json:"f"`         // [nnode*ndof] SRSS-combined equivalent nodal forces
}

// RespSpec runs a response-spectrum analysis: for each mode in mres it
// computes the participation factor Γ = φᵀ·M·r, the effective mass Γ², the
// spectral acceleration at the modal period, and the equivalent nodal force
// vector Γ·Sa·M·φ. Per-mode forces and base shears are combined by SRSS.
// dir selects the excitation direction (0=x, 1=y; 2=z in 3D only).
func RespSpec(m *inp.Model, cfg Config, mres *ModalResult, spec *Spectrum, dir int) (res *SpecResult, err error) {

	// check inputs
	if mres == nil || len(mres.Modes) == 0 {
		return nil, chk.Err("response-spectrum analysis needs at least one vibration mode")
	}
	if spec == nil || len(spec.T) == 0 {
		return nil, chk.Err("response spectrum table is empty")
	}
	if len(spec.T) != len(spec.Sa) {
		return nil, chk.Err("response spectrum table is inconsistent: %d periods but %d accelerations", len(spec.T), len(spec.Sa))
	}
	for i := 1; i < len(spec.T); i++ {
		if spec.T[i] <= spec.T[i-1] {
			return nil, chk.Err("response spectrum periods must be strictly ascending")
		}
	}
	if dir < 0 || dir >= 3 || (m.Ndim == 2 && dir > 1) {
		return nil, chk.Err("invalid excitation direction %d for a %dD model", dir, m.Ndim)
	}

	// rebuild the mass matrix consistently with the modal run
	dom, err := NewDomain(m, true, cfg.Lumped)
	if err != nil {
		return nil, err
	}
	M := dom.AssembleM()
	free, _ := dom.Partition()
	ndof := dom.Ndof

	// influence vector: unit ground motion along dir at every free DOF
	r := mat.NewVecDense(dom.Ny, nil)
	for _, I := range free {
		if I%ndof == dir {
			r.SetVec(I, 1)
		}
	}

	// per-mode quantities
	nmodes := len(mres.Modes)
	res = &SpecResult{
		Dir:       dir,
		Gamma:     make([]float64, nmodes),
		Meff:      make([]float64, nmodes),
		Sa:        make([]float64, nmodes),
		ModeShear: make([]float64, nmodes),
		F:         make([]float64, dom.Ny),
	}
	Mphi := mat.NewVecDense(dom.Ny, nil)
	var sumV float64
	for k, mode := range mres.Modes {
		if len(mode.Shape) != dom.Ny {
			return nil, chk.Err("mode %d shape has %d entries but the model has %d DOFs", mode.Idx, len(mode.Shape), dom.Ny)
		}

		// M·φ and Γ = φᵀ·M·r (shapes are mass-normalized, so Meff = Γ²)
		Mphi.MulVec(M, mat.NewVecDense(dom.Ny, mode.Shape))
		gamma := mat.Dot(Mphi, r)
		sa := spec.Interp(mode.Period)
		res.Gamma[k] = gamma
		res.Meff[k] = gamma * gamma
		res.Sa[k] = sa
		res.ModeShear[k] = gamma * gamma * sa
		sumV += res.ModeShear[k] * res.ModeShear[k]

		// SRSS accumulation of equivalent nodal forces Γ·Sa·M·φ at free DOFs
		for _, I := range free {
			f := gamma * sa * Mphi.AtVec(I)
			res.F[I] += f * f
		}
	}

	// combine
	res.BaseShear = math.Sqrt(sumV)
	for i := 0; i < dom.Ny; i++ {
		res.F[i] = math.Sqrt(res.F[i])
	}
	return res, nil
}
