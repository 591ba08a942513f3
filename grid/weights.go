// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"github.com/cpmech/gompm/mpm"
	"github.com/cpmech/gosl/chk"
)

// WeightFunction evaluates the weights of grid nodes at physical points
type WeightFunction struct {
	Grid   *Grid   // background grid
	Kernel *Kernel // 1D basis
}

// check interface
var _ mpm.GridWeightFunction = (*WeightFunction)(nil)

// NewWeightFunction returns a new weight function using the kernel named kernel
func NewWeightFunction(g *Grid, kernel string) (o *WeightFunction, err error) {
	k := GetKernel(kernel)
	if k == nil {
		return nil, chk.Err("grid: cannot find kernel %q", kernel)
	}
	return &WeightFunction{g, k}, nil
}

// MaxNodesPerPoint returns the maximum number of nodes influencing one point
func (o *WeightFunction) MaxNodesPerPoint() (n int) {
	n = 1
	for i := 0; i < o.Grid.Ndim; i++ {
		n *= o.Kernel.Width
	}
	return
}

// PairCapacity returns a pair-list capacity that is always sufficient for particle domains
// with ncorners corners
func (o *WeightFunction) PairCapacity(ncorners int) int {
	return ncorners * o.MaxNodesPerPoint()
}

// WeightAndGradient returns the weights and gradients of the nodes influencing x
//  Note: nodes outside the grid are skipped; thus weights do not sum up to one near the boundary
func (o *WeightFunction) WeightAndGradient(x []float64) (res []mpm.NodeWeight) {

	// 1D weights
	nd, nw := o.Grid.Ndim, o.Kernel.Width
	i0 := make([]int, nd)
	N := make([][]float64, nd)
	dN := make([][]float64, nd)
	for i := 0; i < nd; i++ {
		N[i] = make([]float64, nw)
		dN[i] = make([]float64, nw)
		ξ := (x[i] - o.Grid.Xmin[i]) / o.Grid.Dx
		i0[i] = o.Kernel.Func(N[i], dN[i], ξ)
	}

	// tensor product
	n := o.MaxNodesPerPoint()
	res = make([]mpm.NodeWeight, 0, n)
	loc := make([]int, nd)
	idx := make([]int, nd)
	for m := 0; m < n; m++ {
		rem := m
		for i := 0; i < nd; i++ {
			loc[i] = rem % nw
			rem /= nw
			idx[i] = i0[i] + loc[i]
		}
		if !o.Grid.Inside(idx) {
			continue
		}
		pair := mpm.NodeWeight{Node: o.Grid.NodeIndex(idx), W: 1, G: make([]float64, nd)}
		for j := 0; j < nd; j++ {
			pair.G[j] = dN[j][loc[j]] / o.Grid.Dx
		}
		for i := 0; i < nd; i++ {
			pair.W *= N[i][loc[i]]
			for j := 0; j < nd; j++ {
				if j != i {
					pair.G[j] *= N[i][loc[i]]
				}
			}
		}
		res = append(res, pair)
	}
	return
}
