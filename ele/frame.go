// Copyright 2026 The Gofra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ele implements the 2-node frame element (Euler-Bernoulli, linear
// elastic) used by the analysis engine
package ele

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/structpad/gofra/inp"
)

// Frame represents a structural frame element
//
//  2D    y1     y2 is out-of-plane
//         ^
//         |                                    Props:    Nodes:
//         o-------------------------------o     E, A      0 and 1
//         |                               |     I22
//         |                               |
//       (y2)-----------------------------(1)------> y0
//
//  3D: 6 DOFs per node; local axes y0 (axial), y1 and y2 computed from the
//  member direction and a global reference vector.
//
// DOF order (local): 2D {u, v, θ} per node; 3D {u, v, w, θx, θy, θz} per node
type Frame struct {

	// basic data
	Id   int          // element id
	Kind inp.ElemKind // label for reporting only
	X    [][]float64  // matrix of nodal coordinates [ndim][2]
	Nu   int          // total number of unknowns
	Ndim int          // space dimension

	// parameters and properties
	Mat *inp.Material // material with E, G and rho
	Sec *inp.Section  // section with A, I22, I11, Jtt and section moduli
	L   float64       // (derived) length of member

	// unit vectors aligned with the member
	e0 r3.Vec // unit vector aligned with y0-axis
	e1 r3.Vec // unit vector aligned with y1-axis
	e2 r3.Vec // unit vector aligned with y2-axis

	// vectors and matrices
	T  *mat.Dense // global-to-local transformation matrix [nu][nu]
	Kl *mat.Dense // local K matrix
	K  *mat.Dense // global K matrix
	Ml *mat.Dense // local M matrix
	M  *mat.Dense // global M matrix

	// scratchpad
	ua *mat.VecDense // [nu] u aligned with member system
}

// New returns a new frame element with stiffness (and, if withM, mass)
// matrices computed. x is the [ndim][2] matrix of nodal coordinates.
func New(id int, kind inp.ElemKind, x [][]float64, mtl *inp.Material, sec *inp.Section, withM, lumped bool) (o *Frame, err error) {

	// basic data
	o = new(Frame)
	o.Id = id
	o.Kind = kind
	o.X = x
	o.Ndim = len(x)
	ndof := 3 * (o.Ndim - 1)
	o.Nu = 2 * ndof
	o.Mat = mtl
	o.Sec = sec

	// check
	if mtl.E <= 0 || sec.A <= 0 || sec.I22 <= 0 {
		return nil, chk.Err("element %d: E, A and I22 must be all positive", id)
	}
	if o.Ndim == 3 {
		if mtl.G <= 0 || sec.I11 <= 0 || sec.Jtt <= 0 {
			return nil, chk.Err("element %d: G, I11 and Jtt must be all positive for 3D analyses", id)
		}
	}
	if withM && mtl.Rho <= 0 {
		return nil, chk.Err("element %d: rho must be positive for dynamic analyses", id)
	}

	// length
	var l2 float64
	for i := 0; i < o.Ndim; i++ {
		d := x[i][1] - x[i][0]
		l2 += d * d
	}
	if l2 <= 0 {
		return nil, chk.Err("element %d has zero length (coincident nodes)", id)
	}
	o.L = math.Sqrt(l2)

	// vectors and matrices
	o.T = mat.NewDense(o.Nu, o.Nu, nil)
	o.Kl = mat.NewDense(o.Nu, o.Nu, nil)
	o.K = mat.NewDense(o.Nu, o.Nu, nil)
	if withM {
		o.Ml = mat.NewDense(o.Nu, o.Nu, nil)
		o.M = mat.NewDense(o.Nu, o.Nu, nil)
	}
	o.ua = mat.NewVecDense(o.Nu, nil)

	// compute K and M
	o.Recompute(withM, lumped)
	return
}

// Recompute computes T, K and (optionally) M after parameters are changed
func (o *Frame) Recompute(withM, lumped bool) {

	// 3D
	if o.Ndim == 3 {

		// unit vector aligned with the member
		o.e0 = r3.Vec{
			X: (o.X[0][1] - o.X[0][0]) / o.L,
			Y: (o.X[1][1] - o.X[1][0]) / o.L,
			Z: (o.X[2][1] - o.X[2][0]) / o.L,
		}

		// reference vector: global z, or global x for near-vertical members
		ref := r3.Vec{Z: 1}
		if math.Abs(o.e0.Z) > 0.999 {
			ref = r3.Vec{X: 1}
		}

		// unit vectors defining the local y1-y2 plane
		o.e1 = r3.Unit(r3.Cross(ref, o.e0))
		o.e2 = r3.Cross(o.e0, o.e1)

		// global to local transformation matrix
		o.T.Zero()
		for k := 0; k < 4; k++ {
			for j, e := range []r3.Vec{o.e0, o.e1, o.e2} {
				o.T.Set(3*k+j, 3*k+0, e.X)
				o.T.Set(3*k+j, 3*k+1, e.Y)
				o.T.Set(3*k+j, 3*k+2, e.Z)
			}
		}

		// constants
		EIr := o.Mat.E * o.Sec.I22
		EIs := o.Mat.E * o.Sec.I11
		GJ := o.Mat.G * o.Sec.Jtt
		EA := o.Mat.E * o.Sec.A
		l := o.L
		ll := l * l
		lll := l * ll

		// stiffness matrix in local system
		o.Kl.Zero()
		o.Kl.Set(0, 0, EA/l)
		o.Kl.Set(0, 6, -EA/l)

		o.Kl.Set(1, 1, 12.0*EIr/lll)
		o.Kl.Set(1, 5, 6.0*EIr/ll)
		o.Kl.Set(1, 7, -12.0*EIr/lll)
		o.Kl.Set(1, 11, 6.0*EIr/ll)

		o.Kl.Set(2, 2, 12.0*EIs/lll)
		o.Kl.Set(2, 4, -6.0*EIs/ll)
		o.Kl.Set(2, 8, -12.0*EIs/lll)
		o.Kl.Set(2, 10, -6.0*EIs/ll)

		o.Kl.Set(3, 3, GJ/l)
		o.Kl.Set(3, 9, -GJ/l)

		o.Kl.Set(4, 2, -6.0*EIs/ll)
		o.Kl.Set(4, 4, 4.0*EIs/l)
		o.Kl.Set(4, 8, 6.0*EIs/ll)
		o.Kl.Set(4, 10, 2.0*EIs/l)

		o.Kl.Set(5, 1, 6.0*EIr/ll)
		o.Kl.Set(5, 5, 4.0*EIr/l)
		o.Kl.Set(5, 7, -6.0*EIr/ll)
		o.Kl.Set(5, 11, 2.0*EIr/l)

		o.Kl.Set(6, 0, -EA/l)
		o.Kl.Set(6, 6, EA/l)

		o.Kl.Set(7, 1, -12.0*EIr/lll)
		o.Kl.Set(7, 5, -6.0*EIr/ll)
		o.Kl.Set(7, 7, 12.0*EIr/lll)
		o.Kl.Set(7, 11, -6.0*EIr/ll)

		o.Kl.Set(8, 2, -12.0*EIs/lll)
		o.Kl.Set(8, 4, 6.0*EIs/ll)
		o.Kl.Set(8, 8, 12.0*EIs/lll)
		o.Kl.Set(8, 10, 6.0*EIs/ll)

		o.Kl.Set(9, 3, -GJ/l)
		o.Kl.Set(9, 9, GJ/l)

		o.Kl.Set(10, 2, -6.0*EIs/ll)
		o.Kl.Set(10, 4, 2.0*EIs/l)
		o.Kl.Set(10, 8, 6.0*EIs/ll)
		o.Kl.Set(10, 10, 4.0*EIs/l)

		o.Kl.Set(11, 1, 6.0*EIr/ll)
		o.Kl.Set(11, 5, 2.0*EIr/l)
		o.Kl.Set(11, 7, -6.0*EIr/ll)
		o.Kl.Set(11, 11, 4.0*EIr/l)

		// stiffness matrix in global system: K := trans(T) * Kl * T
		o.K.Product(o.T.T(), o.Kl, o.T)

		// mass matrix
		if withM {
			o.mass3d(lumped)
			o.M.Product(o.T.T(), o.Ml, o.T) // M := trans(T) * Ml * T
		}
		return
	}

	// T
	dx := o.X[0][1] - o.X[0][0]
	dy := o.X[1][1] - o.X[1][0]
	l := o.L
	c := dx / l
	s := dy / l
	o.T.Zero()
	o.T.Set(0, 0, c)
	o.T.Set(0, 1, s)
	o.T.Set(1, 0, -s)
	o.T.Set(1, 1, c)
	o.T.Set(2, 2, 1)
	o.T.Set(3, 3, c)
	o.T.Set(3, 4, s)
	o.T.Set(4, 3, -s)
	o.T.Set(4, 4, c)
	o.T.Set(5, 5, 1)

	// unit vectors aligned with the member
	o.e0 = r3.Vec{X: c, Y: s}
	o.e1 = r3.Vec{X: -s, Y: c}
	o.e2 = r3.Vec{Z: 1}

	// aux vars
	ll := l * l
	m := o.Mat.E * o.Sec.A / l
	n := o.Mat.E * o.Sec.I22 / (ll * l)

	// K
	o.Kl.Zero()
	o.Kl.Set(0, 0, m)
	o.Kl.Set(0, 3, -m)
	o.Kl.Set(1, 1, 12*n)
	o.Kl.Set(1, 2, 6*l*n)
	o.Kl.Set(1, 4, -12*n)
	o.Kl.Set(1, 5, 6*l*n)
	o.Kl.Set(2, 1, 6*l*n)
	o.Kl.Set(2, 2, 4*ll*n)
	o.Kl.Set(2, 4, -6*l*n)
	o.Kl.Set(2, 5, 2*ll*n)
	o.Kl.Set(3, 0, -m)
	o.Kl.Set(3, 3, m)
	o.Kl.Set(4, 1, -12*n)
	o.Kl.Set(4, 2, -6*l*n)
	o.Kl.Set(4, 4, 12*n)
	o.Kl.Set(4, 5, -6*l*n)
	o.Kl.Set(5, 1, 6*l*n)
	o.Kl.Set(5, 2, 2*ll*n)
	o.Kl.Set(5, 4, -6*l*n)
	o.Kl.Set(5, 5, 4*ll*n)
	o.K.Product(o.T.T(), o.Kl, o.T) // K := trans(T) * Kl * T

	// M
	if withM {
		o.mass2d(lumped)
		o.M.Product(o.T.T(), o.Ml, o.T) // M := trans(T) * Ml * T
	}
}

// EndForces computes local end forces fl = Kl * T * ue given the global
// element displacement vector ue (gathered by the caller via the assembly
// map). fl layout: 2D {N1, V1, M1, N2, V2, M2};
// 3D {N1, V11, V21, T1, M11, M21, N2, V12, V22, T2, M12, M22}
func (o *Frame) EndForces(fl, ue []float64) {
	o.ua.MulVec(o.T, mat.NewVecDense(o.Nu, ue)) // ua := T * ue
	res := mat.NewVecDense(o.Nu, fl)
	res.MulVec(o.Kl, o.ua) // fl := Kl * ua
}

// PeakStress computes the peak normal stress from local end forces by
// superposition of the axial and bending contributions
func (o *Frame) PeakStress(fl []float64) (sig float64) {
	if o.Ndim == 2 {
		N := math.Abs(fl[0])
		M := math.Max(math.Abs(fl[2]), math.Abs(fl[5]))
		sig = N / o.Sec.A
		if o.Sec.S22 > 0 {
			sig += M / o.Sec.S22
		}
		return
	}
	N := math.Abs(fl[0])
	M22 := math.Max(math.Abs(fl[5]), math.Abs(fl[11]))
	M11 := math.Max(math.Abs(fl[4]), math.Abs(fl[10]))
	sig = N / o.Sec.A
	if o.Sec.S22 > 0 {
		sig += M22 / o.Sec.S22
	}
	if o.Sec.S11 > 0 {
		sig += M11 / o.Sec.S11
	}
	return
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// mass2d computes the local 6x6 mass matrix (consistent or lumped)
func (o *Frame) mass2d(lumped bool) {
	l := o.L
	ll := l * l
	o.Ml.Zero()
	if lumped {
		// HRZ diagonal lumping of the consistent matrix
		mt := o.Mat.Rho * o.Sec.A * l / 2.0
		mr := o.Mat.Rho * o.Sec.A * l * ll / 78.0
		o.Ml.Set(0, 0, mt)
		o.Ml.Set(1, 1, mt)
		o.Ml.Set(2, 2, mr)
		o.Ml.Set(3, 3, mt)
		o.Ml.Set(4, 4, mt)
		o.Ml.Set(5, 5, mr)
		return
	}
	m := o.Mat.Rho * o.Sec.A * l / 420.0
	o.Ml.Set(0, 0, 140.0*m)
	o.Ml.Set(0, 3, 70.0*m)
	o.Ml.Set(1, 1, 156.0*m)
	o.Ml.Set(1, 2, 22.0*l*m)
	o.Ml.Set(1, 4, 54.0*m)
	o.Ml.Set(1, 5, -13.0*l*m)
	o.Ml.Set(2, 1, 22.0*l*m)
	o.Ml.Set(2, 2, 4.0*ll*m)
	o.Ml.Set(2, 4, 13.0*l*m)
	o.Ml.Set(2, 5, -3.0*ll*m)
	o.Ml.Set(3, 0, 70.0*m)
	o.Ml.Set(3, 3, 140.0*m)
	o.Ml.Set(4, 1, 54.0*m)
	o.Ml.Set(4, 2, 13.0*l*m)
	o.Ml.Set(4, 4, 156.0*m)
	o.Ml.Set(4, 5, -22.0*l*m)
	o.Ml.Set(5, 1, -13.0*l*m)
	o.Ml.Set(5, 2, -3.0*ll*m)
	o.Ml.Set(5, 4, -22.0*l*m)
	o.Ml.Set(5, 5, 4.0*ll*m)
}

// mass3d computes the local 12x12 mass matrix (consistent or lumped).
// The torsional inertia uses the polar moment Ip = I11 + I22.
func (o *Frame) mass3d(lumped bool) {
	l := o.L
	ll := l * l
	ip := o.Sec.I11 + o.Sec.I22
	o.Ml.Zero()
	if lumped {
		mt := o.Mat.Rho * o.Sec.A * l / 2.0
		mr := o.Mat.Rho * o.Sec.A * l * ll / 78.0
		mx := o.Mat.Rho * ip * l / 2.0
		for k := 0; k < 2; k++ {
			o.Ml.Set(6*k+0, 6*k+0, mt)
			o.Ml.Set(6*k+1, 6*k+1, mt)
			o.Ml.Set(6*k+2, 6*k+2, mt)
			o.Ml.Set(6*k+3, 6*k+3, mx)
			o.Ml.Set(6*k+4, 6*k+4, mr)
			o.Ml.Set(6*k+5, 6*k+5, mr)
		}
		return
	}
	m := o.Mat.Rho * o.Sec.A * l / 420.0
	mx := o.Mat.Rho * ip * l / 6.0

	// axial (u1, u2)
	o.Ml.Set(0, 0, 140.0*m)
	o.Ml.Set(0, 6, 70.0*m)
	o.Ml.Set(6, 0, 70.0*m)
	o.Ml.Set(6, 6, 140.0*m)

	// torsion (θx1, θx2)
	o.Ml.Set(3, 3, 2.0*mx)
	o.Ml.Set(3, 9, mx)
	o.Ml.Set(9, 3, mx)
	o.Ml.Set(9, 9, 2.0*mx)

	// bending in the y0-y1 plane (v1, θz1, v2, θz2)
	o.Ml.Set(1, 1, 156.0*m)
	o.Ml.Set(1, 5, 22.0*l*m)
	o.Ml.Set(1, 7, 54.0*m)
	o.Ml.Set(1, 11, -13.0*l*m)
	o.Ml.Set(5, 1, 22.0*l*m)
	o.Ml.Set(5, 5, 4.0*ll*m)
	o.Ml.Set(5, 7, 13.0*l*m)
	o.Ml.Set(5, 11, -3.0*ll*m)
	o.Ml.Set(7, 1, 54.0*m)
	o.Ml.Set(7, 5, 13.0*l*m)
	o.Ml.Set(7, 7, 156.0*m)
	o.Ml.Set(7, 11, -22.0*l*m)
	o.Ml.Set(11, 1, -13.0*l*m)
	o.Ml.Set(11, 5, -3.0*ll*m)
	o.Ml.Set(11, 7, -22.0*l*m)
	o.Ml.Set(11, 11, 4.0*ll*m)

	// bending in the y0-y2 plane (w1, θy1, w2, θy2); signs mirror the Kl couplings
	o.Ml.Set(2, 2, 156.0*m)
	o.Ml.Set(2, 4, -22.0*l*m)
	o.Ml.Set(2, 8, 54.0*m)
	o.Ml.Set(2, 10, 13.0*l*m)
	o.Ml.Set(4, 2, -22.0*l*m)
	o.Ml.Set(4, 4, 4.0*ll*m)
	o.Ml.Set(4, 8, -13.0*l*m)
	o.Ml.Set(4, 10, -3.0*ll*m)
	o.Ml.Set(8, 2, 54.0*m)
	o.Ml.Set(8, 4, -13.0*l*m)
	o.Ml.Set(8, 8, 156.0*m)
	o.Ml.Set(8, 10, 22.0*l*m)
	o.Ml.Set(10, 2, 13.0*l*m)
	o.Ml.Set(10, 4, -3.0*ll*m)
	o.Ml.Set(10, 8, 22.0*l*m)
	o.Ml.Set(10, 10, 4.0*ll*m)
}
