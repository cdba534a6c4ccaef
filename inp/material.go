// Copyright 2026 The Gofra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

// MatKind labels the material family. The family only selects default
// parameter values; the element formulation is the same for all families.
type MatKind string

// material kinds
const (
	MatConcrete MatKind = "concrete"
	MatSteel    MatKind = "steel"
	MatTimber   MatKind = "timber"
)

// Known tells whether k is one of the recognised material kinds
func (k MatKind) Known() bool {
	switch k {
	case MatConcrete, MatSteel, MatTimber:
		return true
	}
	return false
}

// Material holds linear-elastic material data. SI units: Pa, kg/m³.
type Material struct {
	Name string  `json:"name"` // name of material
	Kind MatKind `json:"kind"` // concrete, steel or timber
	E    float64 `json:"E"`    // elastic (Young's) modulus
	G    float64 `json:"G"`    // shear modulus
	Nu   float64 `json:"nu"`   // Poisson's ratio
	Rho  float64 `json:"rho"`  // density
	Fy   float64 `json:"fy"`   // yield strength
	Fu   float64 `json:"fu"`   // ultimate strength
}

// SetDefaults fills zero-valued parameters with typical values for the
// material kind. G is derived from E and ν when not given.
func (o *Material) SetDefaults() {
	switch o.Kind {
	case MatConcrete:
		if o.E <= 0 {
			o.E = 30e9
		}
		if o.Nu <= 0 {
			o.Nu = 0.20
		}
		if o.Rho <= 0 {
			o.Rho = 2400
		}
	case MatSteel:
		if o.E <= 0 {
			o.E = 200e9
		}
		if o.Nu <= 0 {
			o.Nu = 0.30
		}
		if o.Rho <= 0 {
			o.Rho = 7850
		}
		if o.Fy <= 0 {
			o.Fy = 235e6
		}
	case MatTimber:
		if o.E <= 0 {
			o.E = 11e9
		}
		if o.Nu <= 0 {
			o.Nu = 0.35
		}
		if o.Rho <= 0 {
			o.Rho = 600
		}
	}
	if o.G <= 0 && o.E > 0 {
		o.G = o.E / (2.0 * (1.0 + o.Nu))
	}
}
