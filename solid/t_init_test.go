// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// copyX returns a copy of the positions of all particles
func copyX(X [][][]float64) (res [][][]float64) {
	res = make([][][]float64, len(X))
	for obj := range X {
		res[obj] = make([][]float64, len(X[obj]))
		for p, x := range X[obj] {
			res[obj][p] = append([]float64{}, x...)
		}
	}
	return
}
