// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"github.com/cpmech/gompm/mpm"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// NodalVelocity holds the velocity of grid nodes for each object
type NodalVelocity struct {
	Grid *Grid         // background grid
	V    [][][]float64 // [nobj][nnodes][ndim] velocities
}

// check interface
var _ mpm.GridVelocity = (*NodalVelocity)(nil)

// NewNodalVelocity allocates zero velocities for nobj objects
func NewNodalVelocity(g *Grid, nobj int) (o *NodalVelocity) {
	o = new(NodalVelocity)
	o.Grid = g
	o.V = make([][][]float64, nobj)
	for obj := 0; obj < nobj; obj++ {
		o.V[obj] = utl.Alloc(g.Nnodes, g.Ndim)
	}
	return
}

// Velocity returns the velocity of node for object obj
func (o *NodalVelocity) Velocity(obj, node int) []float64 {
	return o.V[obj][node]
}

// SetAffine sets the velocities of object obj to v = v0 + L·x
//  v0 -- [ndim] may be empty
//  L  -- [ndim][ndim] may be empty
func (o *NodalVelocity) SetAffine(obj int, v0 []float64, L [][]float64) (err error) {
	nd := o.Grid.Ndim
	if len(v0) > 0 && len(v0) != nd {
		return chk.Err("grid: v0 must have %d components. len(v0) = %d is invalid", nd, len(v0))
	}
	if len(L) > 0 {
		if len(L) != nd {
			return chk.Err("grid: L must be %d×%d", nd, nd)
		}
		for _, row := range L {
			if len(row) != nd {
				return chk.Err("grid: L must be %d×%d", nd, nd)
			}
		}
	}
	for k, v := range o.V[obj] {
		x := o.Grid.NodeCoords(k)
		for i := 0; i < nd; i++ {
			v[i] = 0
			if len(v0) > 0 {
				v[i] = v0[i]
			}
			if len(L) > 0 {
				for j := 0; j < nd; j++ {
					v[i] += L[i][j] * x[j]
				}
			}
		}
	}
	return
}
