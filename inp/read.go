// Copyright 2026 The Gofra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"os"

	"github.com/cpmech/gosl/chk"
)

// ReadModel reads a structural model from a JSON (.json) file and computes
// the derived data. The returned model is not validated; see Validate.
func ReadModel(filepath string) (o *Model, err error) {

	// read file
	b, err := os.ReadFile(filepath)
	if err != nil {
		return nil, chk.Err("cannot read model file %q:\n%v", filepath, err)
	}

	// decode
	o = new(Model)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot unmarshal model file %q:\n%v", filepath, err)
	}

	// derived data
	err = o.Derive()
	if err != nil {
		return nil, err
	}
	return
}
