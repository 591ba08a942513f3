// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package grid implements the uniform background grid of material point simulations,
// its weight functions and nodal velocities
package grid

import "github.com/cpmech/gosl/chk"

// Grid holds a uniform grid of nodes
//  Note: node k has multi-index (i,j,l) with k = i + j*(ndiv[0]+1) + l*(ndiv[0]+1)*(ndiv[1]+1)
type Grid struct {
	Ndim    int       // space dimension
	Xmin    []float64 // [ndim] coordinates of node 0
	Dx      float64   // spacing
	Ndiv    []int     // [ndim] number of cells along each direction
	Nnodes  int       // total number of nodes
	strides []int     // [ndim] strides of multi-index
}

// NewGrid returns a new grid
func NewGrid(xmin []float64, dx float64, ndiv []int) (o *Grid, err error) {
	ndim := len(xmin)
	if ndim != 2 && ndim != 3 {
		return nil, chk.Err("grid: xmin must have 2 or 3 components. len(xmin) = %d is invalid", ndim)
	}
	if len(ndiv) != ndim {
		return nil, chk.Err("grid: ndiv must have %d components. len(ndiv) = %d is invalid", ndim, len(ndiv))
	}
	if dx <= 0 {
		return nil, chk.Err("grid: spacing must be positive. dx = %g is invalid", dx)
	}
	o = new(Grid)
	o.Ndim = ndim
	o.Xmin = make([]float64, ndim)
	copy(o.Xmin, xmin)
	o.Dx = dx
	o.Ndiv = make([]int, ndim)
	o.strides = make([]int, ndim)
	o.Nnodes = 1
	for i, n := range ndiv {
		if n < 1 {
			return nil, chk.Err("grid: number of divisions must be positive. ndiv[%d] = %d is invalid", i, n)
		}
		o.Ndiv[i] = n
		o.strides[i] = o.Nnodes
		o.Nnodes *= n + 1
	}
	return
}

// Inside tells whether multi-index idx corresponds to an existent node
func (o *Grid) Inside(idx []int) bool {
	for i, n := range o.Ndiv {
		if idx[i] < 0 || idx[i] > n {
			return false
		}
	}
	return true
}

// NodeIndex returns the index of node with multi-index idx
func (o *Grid) NodeIndex(idx []int) (k int) {
	for i, s := range o.strides {
		k += idx[i] * s
	}
	return
}

// NodeMultiIndex returns the multi-index of node k
func (o *Grid) NodeMultiIndex(k int) (idx []int) {
	idx = make([]int, o.Ndim)
	for i, n := range o.Ndiv {
		idx[i] = k % (n + 1)
		k /= n + 1
	}
	return
}

// NodeCoords returns the coordinates of node k
func (o *Grid) NodeCoords(k int) (x []float64) {
	x = make([]float64, o.Ndim)
	for i, j := range o.NodeMultiIndex(k) {
		x[i] = o.Xmin[i] + float64(j)*o.Dx
	}
	return
}

// Xmax returns the coordinates of the last node
func (o *Grid) Xmax() (x []float64) {
	x = make([]float64, o.Ndim)
	for i, n := range o.Ndiv {
		x[i] = o.Xmin[i] + float64(n)*o.Dx
	}
	return
}
