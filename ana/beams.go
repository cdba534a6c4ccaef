// Copyright 2026 The Gofra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements closed-form solutions of simple beam problems,
// useful for verifying the finite element results
package ana

import "math"

// CantileverEndLoad computes the classical solution of a cantilever beam
// with a transverse point load P at the free end
//
//	|\
//	|\o-------------------------o  → x
//	|/                          |
//	                            ↓ P
type CantileverEndLoad struct {
	E float64 // Young's modulus
	I float64 // second moment of area
	L float64 // length
	P float64 // end load
}

// TipDeflection returns the deflection at the free end: P·L³/(3·E·I)
func (o *CantileverEndLoad) TipDeflection() float64 {
	return o.P * o.L * o.L * o.L / (3.0 * o.E * o.I)
}

// TipRotation returns the rotation at the free end: P·L²/(2·E·I)
func (o *CantileverEndLoad) TipRotation() float64 {
	return o.P * o.L * o.L / (2.0 * o.E * o.I)
}

// FixedEndMoment returns the bending moment at the support: P·L
func (o *CantileverEndLoad) FixedEndMoment() float64 {
	return o.P * o.L
}

// SSCenterLoad computes the classical solution of a simply supported beam
// with a transverse point load P at midspan
type SSCenterLoad struct {
	E float64 // Young's modulus
	I float64 // second moment of area
	L float64 // length
	P float64 // central load
}

// CenterDeflection returns the deflection at midspan: P·L³/(48·E·I)
func (o *SSCenterLoad) CenterDeflection() float64 {
	return o.P * o.L * o.L * o.L / (48.0 * o.E * o.I)
}

// MaxMoment returns the bending moment at midspan: P·L/4
func (o *SSCenterLoad) MaxMoment() float64 {
	return o.P * o.L / 4.0
}

// SSUdl computes the classical solution of a simply supported beam under a
// uniformly distributed load w (force per unit length)
type SSUdl struct {
	E float64 // Young's modulus
	I float64 // second moment of area
	L float64 // length
	W float64 // distributed load intensity
}

// CenterDeflection returns the deflection at midspan: 5·w·L⁴/(384·E·I)
func (o *SSUdl) CenterDeflection() float64 {
	return 5.0 * o.W * o.L * o.L * o.L * o.L / (384.0 * o.E * o.I)
}

// MaxMoment returns the bending moment at midspan: w·L²/8
func (o *SSUdl) MaxMoment() float64 {
	return o.W * o.L * o.L / 8.0
}

// vibration ////////////////////////////////////////////////////////////////////////////////////////

// CantileverFreq1 returns the fundamental circular frequency of a cantilever
// beam: ω₁ = β₁²·√(E·I/(ρ·A·L⁴)) with β₁·L = 1.875104
func CantileverFreq1(E, I, rho, A, L float64) float64 {
	b := 1.875104
	return b * b * math.Sqrt(E*I/(rho*A*L*L*L*L))
}

// SimplySupportedFreq returns the n-th circular frequency of a simply
// supported beam: ωₙ = n²·π²·√(E·I/(ρ·A·L⁴))
func SimplySupportedFreq(n int, E, I, rho, A, L float64) float64 {
	np := float64(n) * math.Pi
	return np * np * math.Sqrt(E*I/(rho*A*L*L*L*L))
}
