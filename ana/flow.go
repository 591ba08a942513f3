// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/mat"
)

// HomogeneousFlow implements the kinematics of material points moving in the affine velocity
// field v(x) = v0 + L·x
//
//  With forward Euler updates x ← x + dt v(x), which are exact for grid weights that reproduce
//  linear fields, after n steps:
//
//     A   = I + dt L
//     F_n = Aⁿ
//     x_n = A x_{n-1} + dt v0
//
type HomogeneousFlow struct {
	Ndim int         // space dimension
	V0   []float64   // [ndim] uniform part
	L    [][]float64 // [ndim][ndim] velocity gradient
}

// NewHomogeneousFlow returns a new structure
//  v0 -- may be nil, meaning zero
//  L  -- may be nil, meaning zero
func NewHomogeneousFlow(ndim int, v0 []float64, L [][]float64) (o *HomogeneousFlow, err error) {
	if ndim != 2 && ndim != 3 {
		return nil, chk.Err("space dimension must be 2 or 3. ndim = %d is invalid", ndim)
	}
	o = &HomogeneousFlow{Ndim: ndim, V0: make([]float64, ndim), L: utl.Alloc(ndim, ndim)}
	if len(v0) > 0 {
		if len(v0) != ndim {
			return nil, chk.Err("v0 must have %d components", ndim)
		}
		copy(o.V0, v0)
	}
	if len(L) > 0 {
		if len(L) != ndim {
			return nil, chk.Err("L must be %d×%d", ndim, ndim)
		}
		for i, row := range L {
			if len(row) != ndim {
				return nil, chk.Err("L must be %d×%d", ndim, ndim)
			}
			copy(o.L[i], row)
		}
	}
	return
}

// Velocity returns v(x)
func (o *HomogeneousFlow) Velocity(x []float64) (v []float64) {
	v = make([]float64, o.Ndim)
	for i := 0; i < o.Ndim; i++ {
		v[i] = o.V0[i]
		for j := 0; j < o.Ndim; j++ {
			v[i] += o.L[i][j] * x[j]
		}
	}
	return
}

// Amplification returns A = I + dt L
func (o *HomogeneousFlow) Amplification(dt float64) *mat.Dense {
	A := mat.NewDense(o.Ndim, o.Ndim, nil)
	for i := 0; i < o.Ndim; i++ {
		for j := 0; j < o.Ndim; j++ {
			A.Set(i, j, dt*o.L[i][j])
		}
		A.Set(i, i, 1+A.At(i, i))
	}
	return A
}

// F returns the deformation gradient after n steps of size dt
func (o *HomogeneousFlow) F(n int, dt float64) [][]float64 {
	var Fn mat.Dense
	Fn.Pow(o.Amplification(dt), n)
	return dense2slice(&Fn)
}

// Position returns the position after n steps of size dt of the point initially at X
func (o *HomogeneousFlow) Position(X []float64, n int, dt float64) (x []float64) {
	A := o.Amplification(dt)
	x = make([]float64, o.Ndim)
	copy(x, X)
	xv := mat.NewVecDense(o.Ndim, x)
	var tmp mat.VecDense
	for k := 0; k < n; k++ {
		tmp.MulVec(A, xv)
		for i := 0; i < o.Ndim; i++ {
			x[i] = tmp.AtVec(i) + dt*o.V0[i]
		}
	}
	return
}

// Continuous returns the deformation gradient exp(L t) of the time-continuous motion
func (o *HomogeneousFlow) Continuous(t float64) [][]float64 {
	Lt := mat.NewDense(o.Ndim, o.Ndim, nil)
	for i := 0; i < o.Ndim; i++ {
		for j := 0; j < o.Ndim; j++ {
			Lt.Set(i, j, t*o.L[i][j])
		}
	}
	var F mat.Dense
	F.Exp(Lt)
	return dense2slice(&F)
}

// dense2slice converts a dense matrix to a slice of rows
func dense2slice(a *mat.Dense) (res [][]float64) {
	r, c := a.Dims()
	res = utl.Alloc(r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			res[i][j] = a.At(i, j)
		}
	}
	return
}
