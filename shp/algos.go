// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/floats"
)

// constants
const (
	INVMAP_TOL = 1.0e-10 // tolerance for inverse mapping function
	INVMAP_NIT = 25      // maximum number of iterations for inverse mapping
)

// InvMap computes the natural coordinates r of the point with real coordinates y using
// Newton's method: r ← r + dRdx · (y - x(r)), starting at the centre of the cell
//  x[nverts][ndim] -- coordinates of vertices
//  Note: r values within INVMAP_TOL of ±1 are snapped to ±1
func (o *Shape) InvMap(r, y []float64, x [][]float64) (err error) {
	nd := o.Gndim
	for i := 0; i < nd; i++ {
		r[i] = 0
	}
	res := make([]float64, nd)
	dr := make([]float64, nd)
	for it := 0; it < INVMAP_NIT; it++ {
		err = o.CalcAtIp(x, r, true)
		if err != nil {
			return
		}
		copy(res, y[:nd])
		for m := 0; m < o.Nverts; m++ {
			floats.AddScaled(res, -o.S[m], x[m][:nd])
		}
		for i := 0; i < nd; i++ {
			dr[i] = floats.Dot(o.DRdx[i], res)
			r[i] += dr[i]
			if math.Abs(math.Abs(r[i])-1) < INVMAP_TOL {
				r[i] = math.Copysign(1, r[i])
			}
		}
		if floats.Norm(dr, 2) < INVMAP_TOL {
			return
		}
	}
	return chk.Err("InvMap did not converge after %d iterations", INVMAP_NIT)
}
