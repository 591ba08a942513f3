// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpm

import (
	"math"

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

// linearGrid is a regular grid with spacing h and n cells per direction, starting at the origin,
// with multilinear weights
type linearGrid struct {
	ndim int
	h    float64
	n    int
}

// node returns the index of node with multi-index idx
func (o linearGrid) node(idx []int) (k int) {
	stride := 1
	for i := 0; i < o.ndim; i++ {
		k += idx[i] * stride
		stride *= o.n + 1
	}
	return
}

// coords returns the coordinates of node k
func (o linearGrid) coords(k int) (x []float64) {
	x = make([]float64, o.ndim)
	for i := 0; i < o.ndim; i++ {
		x[i] = float64(k%(o.n+1)) * o.h
		k /= o.n + 1
	}
	return
}

func (o linearGrid) WeightAndGradient(x []float64) (res []NodeWeight) {
	i0 := make([]int, o.ndim)
	ξ := make([]float64, o.ndim)
	for i := 0; i < o.ndim; i++ {
		i0[i] = int(math.Floor(x[i] / o.h))
		i0[i] = max(0, min(o.n-1, i0[i]))
		ξ[i] = x[i]/o.h - float64(i0[i])
	}
	idx := make([]int, o.ndim)
	for m := 0; m < 1<<uint(o.ndim); m++ {
		nw := NodeWeight{W: 1, G: make([]float64, o.ndim)}
		for i := range nw.G {
			nw.G[i] = 1
		}
		for i := 0; i < o.ndim; i++ {
			b := (m >> uint(i)) & 1
			idx[i] = i0[i] + b
			n, dn := 1-ξ[i], -1/o.h
			if b == 1 {
				n, dn = ξ[i], 1/o.h
			}
			for j := 0; j < o.ndim; j++ {
				if j == i {
					nw.G[j] *= dn
				} else {
					nw.G[j] *= n
				}
			}
			nw.W *= n
		}
		nw.Node = o.node(idx)
		res = append(res, nw)
	}
	return
}

// nearestNode assigns the full weight to node 0
type nearestNode struct{ ndim int }

func (o nearestNode) WeightAndGradient(x []float64) []NodeWeight {
	return []NodeWeight{{Node: 0, W: 1, G: make([]float64, o.ndim)}}
}

// fixedPair returns the same pair for all points
type fixedPair NodeWeight

func (o fixedPair) WeightAndGradient(x []float64) []NodeWeight {
	return []NodeWeight{NodeWeight(o)}
}

// uniformVelocity gives the same velocity to all nodes
type uniformVelocity []float64

func (o uniformVelocity) Velocity(obj, node int) []float64 { return o }

// affineVelocity gives v = L x at the nodes of a linearGrid
type affineVelocity struct {
	grid linearGrid
	L    [][]float64
}

func (o affineVelocity) Velocity(obj, node int) (v []float64) {
	x := o.grid.coords(node)
	v = make([]float64, len(x))
	for i := range v {
		for j := range x {
			v[i] += o.L[i][j] * x[j]
		}
	}
	return
}

// testMesh holds the connectivity of particle domains
type testMesh struct {
	conn   [][]int
	nverts int
}

func (o *testMesh) NumElements() int { return len(o.conn) }
func (o *testMesh) NumVertices() int { return o.nverts }
func (o *testMesh) EleVertIndex(ele, localVert int) int { return o.conn[ele][localVert] }

// block generates n[0] × n[1] (× n[2]) square particle domains of size h starting at xmin
func block(ndim int, xmin []float64, h float64, n []int) (domains [][][]float64, mesh *testMesh) {
	offsets := [][]int{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}, {0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1}}
	ncorners := 1 << uint(ndim)
	nz := 1
	if ndim == 3 {
		nz = n[2]
	}
	vid := func(i, j, k int) int { return i + j*(n[0]+1) + k*(n[0]+1)*(n[1]+1) }
	mesh = new(testMesh)
	mesh.nverts = (n[0] + 1) * (n[1] + 1)
	if ndim == 3 {
		mesh.nverts *= n[2] + 1
	}
	for k := 0; k < nz; k++ {
		for j := 0; j < n[1]; j++ {
			for i := 0; i < n[0]; i++ {
				dom := make([][]float64, ncorners)
				conn := make([]int, ncorners)
				for c := 0; c < ncorners; c++ {
					ijk := []int{i + offsets[c][0], j + offsets[c][1], k + offsets[c][2]}
					dom[c] = make([]float64, ndim)
					for d := 0; d < ndim; d++ {
						dom[c][d] = xmin[d] + float64(ijk[d])*h
					}
					conn[c] = vid(ijk[0], ijk[1], ijk[2])
				}
				domains = append(domains, dom)
				mesh.conn = append(mesh.conn, conn)
			}
		}
	}
	return
}
