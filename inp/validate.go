// Copyright 2026 The Gofra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"math"

	"github.com/cpmech/gosl/io"
)

// Violation describes one broken model rule, naming the offending entity
type Violation struct {
	Rule   string // short rule name; e.g. "coords-finite"
	Entity string // offending entity; e.g. "node 3"
	Msg    string // human readable message
}

// ValidationError collects all violations found within the first failing
// category of checks. Categories are checked in order (model presence,
// nodes, elements, materials, sections, loads) and checking stops at the
// first category with violations.
type ValidationError struct {
	Violations []Violation
}

// Error returns the list of violations, one per line
func (e *ValidationError) Error() string {
	l := io.Sf("model validation failed with %d violation(s):", len(e.Violations))
	for _, v := range e.Violations {
		l += io.Sf("\n  [%s] %s: %s", v.Rule, v.Entity, v.Msg)
	}
	return l
}

// Validate checks model integrity before any numerical work. A nil model is
// rejected; an empty model (no nodes, no elements) is accepted here since
// the plain static path treats it as trivially valid. It performs no side
// effects; Derive must have been called on the model beforehand (ReadModel
// does this). Returns nil or a *ValidationError.
func Validate(m *Model) error {
	return validate(m, false)
}

// ValidateStrict additionally requires at least one node and one element.
// This is the policy for the dynamic path and for consumers that cannot use
// a trivial zero result (e.g. the external recommendation module).
func ValidateStrict(m *Model) error {
	return validate(m, true)
}

func validate(m *Model, strict bool) error {

	// category: model presence
	if m == nil {
		return &ValidationError{[]Violation{{"model-present", "model", "model is missing (nil)"}}}
	}
	ndim := m.Ndim
	if ndim == 0 {
		ndim = 3
	}
	ndof := 6
	if ndim == 2 {
		ndof = 3
	}

	// category: emptiness (strict path only)
	if strict {
		var vs []Violation
		if len(m.Nodes) < 1 {
			vs = append(vs, Violation{"nodes-nonempty", "model", "model must have at least one node"})
		}
		if len(m.Elements) < 1 {
			vs = append(vs, Violation{"elements-nonempty", "model", "model must have at least one element"})
		}
		if len(vs) > 0 {
			return &ValidationError{vs}
		}
	}

	// local lookups; Validate must not mutate the model
	nodes := make(map[int]*Node)

	// category: nodes
	var vs []Violation
	for _, nod := range m.Nodes {
		ent := io.Sf("node %d", nod.Id)
		if _, ok := nodes[nod.Id]; ok {
			vs = append(vs, Violation{"node-id-unique", ent, "duplicate node id"})
			continue
		}
		nodes[nod.Id] = nod
		if len(nod.C) != ndim {
			vs = append(vs, Violation{"coords-dim", ent, io.Sf("node has %d coordinates; model is %dD", len(nod.C), ndim)})
			continue
		}
		for i, x := range nod.C {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				vs = append(vs, Violation{"coords-finite", ent, io.Sf("coordinate %d is not finite", i)})
			}
		}
		if nod.Fix != nil && len(nod.Fix) != ndof {
			vs = append(vs, Violation{"fix-dim", ent, io.Sf("fix flags have length %d; want %d", len(nod.Fix), ndof)})
		}
	}
	if len(vs) > 0 {
		return &ValidationError{vs}
	}

	// category: elements
	for _, e := range m.Elements {
		ent := io.Sf("element %d", e.Id)
		if e.Kind != "" && !e.Kind.Known() {
			vs = append(vs, Violation{"elem-kind", ent, io.Sf("unknown element kind %q", e.Kind)})
		}
		if len(e.Verts) != 2 {
			vs = append(vs, Violation{"elem-two-nodes", ent, io.Sf("element references %d nodes; want 2", len(e.Verts))})
			continue
		}
		if e.Verts[0] == e.Verts[1] {
			vs = append(vs, Violation{"elem-distinct-nodes", ent, io.Sf("both ends reference node %d", e.Verts[0])})
			continue
		}
		a, oka := nodes[e.Verts[0]]
		b, okb := nodes[e.Verts[1]]
		if !oka {
			vs = append(vs, Violation{"elem-node-exists", ent, io.Sf("node %d does not exist", e.Verts[0])})
		}
		if !okb {
			vs = append(vs, Violation{"elem-node-exists", ent, io.Sf("node %d does not exist", e.Verts[1])})
		}
		if oka && okb && len(a.C) == ndim && len(b.C) == ndim {
			var l2 float64
			for i := 0; i < ndim; i++ {
				d := b.C[i] - a.C[i]
				l2 += d * d
			}
			if l2 <= 0 {
				vs = append(vs, Violation{"elem-nonzero-length", ent, "element has zero length (coincident nodes)"})
			}
		}
		if m.MatDb != nil {
			if _, ok := m.MatDb[e.Mat]; !ok {
				vs = append(vs, Violation{"elem-material-exists", ent, io.Sf("material %q does not exist", e.Mat)})
			}
		}
		if m.SecDb != nil {
			if _, ok := m.SecDb[e.Sec]; !ok {
				vs = append(vs, Violation{"elem-section-exists", ent, io.Sf("section %q does not exist", e.Sec)})
			}
		}
	}
	if len(vs) > 0 {
		return &ValidationError{vs}
	}

	// category: materials
	for _, mat := range m.Materials {
		ent := io.Sf("material %q", mat.Name)
		if mat.Kind != "" && !mat.Kind.Known() {
			vs = append(vs, Violation{"mat-kind", ent, io.Sf("unknown material kind %q", mat.Kind)})
		}
		if mat.E <= 0 {
			vs = append(vs, Violation{"mat-emodulus-positive", ent, io.Sf("elastic modulus must be positive. E=%g", mat.E)})
		}
		if mat.Fy > 0 && mat.Fu > 0 && mat.Fy > mat.Fu {
			vs = append(vs, Violation{"mat-yield-le-ultimate", ent, io.Sf("yield strength exceeds ultimate strength. fy=%g, fu=%g", mat.Fy, mat.Fu)})
		}
	}
	if len(vs) > 0 {
		return &ValidationError{vs}
	}

	// category: sections
	for _, sec := range m.Sections {
		ent := io.Sf("section %q", sec.Name)
		if sec.A <= 0 || sec.I22 <= 0 || sec.I11 <= 0 || sec.Jtt <= 0 {
			vs = append(vs, Violation{"sec-props-positive", ent, io.Sf("geometric properties must be positive. A=%g, I22=%g, I11=%g, Jtt=%g", sec.A, sec.I22, sec.I11, sec.Jtt)})
		}
	}
	if len(vs) > 0 {
		return &ValidationError{vs}
	}

	// category: loads
	for _, nod := range m.Nodes {
		ent := io.Sf("node %d", nod.Id)
		if nod.F != nil && len(nod.F) != ndof {
			vs = append(vs, Violation{"load-dim", ent, io.Sf("load vector has length %d; want %d", len(nod.F), ndof)})
			continue
		}
		for i, f := range nod.F {
			if math.IsNaN(f) || math.IsInf(f, 0) {
				vs = append(vs, Violation{"load-finite", ent, io.Sf("load component %d is not finite", i)})
			}
		}
	}
	if len(vs) > 0 {
		return &ValidationError{vs}
	}
	return nil
}
