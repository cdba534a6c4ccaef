// Copyright 2026 The Gofra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/io"
)

// UnstableError reports a singular or near-singular reduced stiffness matrix:
// the structure is kinematically unstable (insufficient supports or a
// disconnected substructure). The analysis result still carries diagnostic
// summaries with Valid set to false.
type UnstableError struct {
	Msg string
}

// Error returns the message
func (e *UnstableError) Error() string {
	return io.Sf("unstable structure: %s", e.Msg)
}

// ConvergenceError reports that the eigensolver did not converge for the
// requested number of modes. The stiffness/mass pair may be well-posed;
// callers may retry with fewer modes.
type ConvergenceError struct {
	Modes int
}

// Error returns the message
func (e *ConvergenceError) Error() string {
	return io.Sf("eigensolver did not converge for %d requested mode(s); retry with fewer modes", e.Modes)
}

// OverflowError reports non-finite values produced by extreme input
// magnitudes, detected by finiteness checks after assembly and after solve.
type OverflowError struct {
	Where string // e.g. "stiffness assembly", "displacement solution"
}

// Error returns the message
func (e *OverflowError) Error() string {
	return io.Sf("non-finite values detected during %s; check input magnitudes", e.Where)
}
