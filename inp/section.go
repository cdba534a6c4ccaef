// Copyright 2026 The Gofra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Section holds cross-section data
//
//   type : rectangle
//          circle                             tw
//          I-beam                         -->| |<--
//                                    ___    | |     ___
//   ^ 1       +-------+            tf |   ########   |
//   |         |       |              ---  ########   |
//   |         |       |                      ##      |
//   +----> 2  |       | h = hei              ##      | h = hei
//             |       |                      ##      |
//             |       |              ---  ########   |
//             +-------+            tf_|_  ########  ---
//              b = wid                    b = wid
//
// An empty Type means the caller supplies A, I22, I11, Jtt (and section
// moduli) directly; Derive then leaves them untouched.
type Section struct {

	// input
	Name string  `json:"name"` // name of section
	Type string  `json:"type"` // "rectangle", "I-beam" or "circle"; "" => explicit properties
	Wid  float64 `json:"wid"`  // width (b) if not circular
	Hei  float64 `json:"hei"`  // height (h) if not circular
	Tf   float64 `json:"tf"`   // flange thickness if I-beam
	Tw   float64 `json:"tw"`   // web thickness if I-beam
	R    float64 `json:"r"`    // radius if circular

	// derived (or explicit input when Type == "")
	A   float64 `json:"A"`   // cross-sectional area
	I22 float64 `json:"I22"` // major cross-section moment of inertia
	I11 float64 `json:"I11"` // minor cross-section moment of inertia
	Jtt float64 `json:"Jtt"` // torsional constant
	S22 float64 `json:"S22"` // major section modulus
	S11 float64 `json:"S11"` // minor section modulus
}

// Derive computes the derived properties from the geometric input
func (o *Section) Derive() (err error) {
	switch o.Type {
	case "rectangle":
		b, h := o.Wid, o.Hei
		if b <= 0 || h <= 0 {
			return chk.Err("section %q: width and height must be positive. b=%g, h=%g", o.Name, b, h)
		}
		b3 := b * b * b
		h3 := h * h * h
		o.A = b * h
		o.I22 = b * h3 / 12.0
		o.I11 = b3 * h / 12.0
		if b == h {
			o.Jtt = 9.0 * b3 * b / 64.0
		} else {
			if b > h {
				b, h = h, b
			}
			o.Jtt = h * b * b * b * (1.0/3.0 - 0.21*(b/h)*(1.0-b*b*b*b/(12.0*h*h*h*h))) // approximate
		}
		o.S22 = o.I22 / (o.Hei / 2.0)
		o.S11 = o.I11 / (o.Wid / 2.0)

	case "I-beam":
		b, h, tf, tw := o.Wid, o.Hei, o.Tf, o.Tw
		if b <= 0 || h <= 0 || tf <= 0 || tw <= 0 {
			return chk.Err("section %q: I-beam dimensions must be positive. b=%g, h=%g, tf=%g, tw=%g", o.Name, b, h, tf, tw)
		}
		b3 := b * b * b
		h3 := h * h * h
		tf3 := tf * tf * tf
		tw3 := tw * tw * tw
		l := h - 2.0*tf
		l3 := l * l * l
		o.A = b*h - l*(b-tw)
		o.I22 = b*h3/12.0 - (b-tw)*l3/12.0
		o.I11 = l*tw3/12.0 + tf*b3/6.0
		o.Jtt = (2.0*b*tf3 + l*tw3) / 3.0
		o.S22 = o.I22 / (h / 2.0)
		o.S11 = o.I11 / (b / 2.0)

	case "circle":
		if o.R <= 0 {
			return chk.Err("section %q: radius must be positive. r=%g", o.Name, o.R)
		}
		r2 := o.R * o.R
		o.A = math.Pi * r2
		o.I22 = math.Pi * r2 * r2 / 4.0
		o.I11 = o.I22
		o.Jtt = o.I22 + o.I11
		o.S22 = o.I22 / o.R
		o.S11 = o.S22

	case "": // explicit properties
		if o.A <= 0 || o.I22 <= 0 {
			return chk.Err("section %q: explicit A and I22 must be positive. A=%g, I22=%g", o.Name, o.A, o.I22)
		}
		if o.I11 <= 0 {
			o.I11 = o.I22
		}
		if o.Jtt <= 0 {
			o.Jtt = o.I22 + o.I11
		}
		if o.S22 <= 0 && o.Hei > 0 {
			o.S22 = o.I22 / (o.Hei / 2.0)
		}
		if o.S11 <= 0 && o.Wid > 0 {
			o.S11 = o.I11 / (o.Wid / 2.0)
		}

	default:
		return chk.Err("section %q: type %q is unavailable", o.Name, o.Type)
	}
	return
}
