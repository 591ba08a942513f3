// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpm

import "github.com/cpmech/gosl/utl"

// NodeWeight holds the contribution of one grid node: weight and gradient of weight
type NodeWeight struct {
	Node int       // index of grid node
	W    float64   // weight
	G    []float64 // [ndim] gradient of weight
}

// PairList is a fixed-capacity list of grid node contributions with unique node indices
//  Note: only Pairs[:Num] are valid
type PairList struct {
	Pairs []NodeWeight // [capacity] entries
	Num   int          // number of valid entries
}

// NewPairList returns a new list with room for capacity grid nodes
func NewPairList(capacity, ndim int) (o *PairList) {
	o = new(PairList)
	o.Pairs = make([]NodeWeight, capacity)
	g := utl.Alloc(capacity, ndim)
	for k := range o.Pairs {
		o.Pairs[k].G = g[k]
	}
	return
}

// Cap returns the capacity of list
func (o *PairList) Cap() int { return len(o.Pairs) }

// Reset empties the list
func (o *PairList) Reset() { o.Num = 0 }

// Valid returns the valid entries
func (o *PairList) Valid() []NodeWeight { return o.Pairs[:o.Num] }

// Find returns the position of node in the valid entries or -1 if not found
func (o *PairList) Find(node int) int {
	for k := 0; k < o.Num; k++ {
		if o.Pairs[k].Node == node {
			return k
		}
	}
	return -1
}

// TryAppendOrAccumulate adds w and g to the entry of node; a new entry is appended if node
// is not in the list yet. g may be nil, meaning a zero gradient.
//  Note: returns false, leaving the list unchanged, if a new entry is needed but the list is full
//        or if g is longer than the gradients in the list
func (o *PairList) TryAppendOrAccumulate(node int, w float64, g []float64) bool {
	if len(o.Pairs) > 0 && len(g) > len(o.Pairs[0].G) {
		return false
	}
	k := o.Find(node)
	if k < 0 {
		if o.Num == len(o.Pairs) {
			return false
		}
		k = o.Num
		o.Num++
		o.Pairs[k].Node = node
		o.Pairs[k].W = 0
		for i := range o.Pairs[k].G {
			o.Pairs[k].G[i] = 0
		}
	}
	o.Pairs[k].W += w
	for i := range g {
		o.Pairs[k].G[i] += g[i]
	}
	return true
}

// SumW returns the sum of weights of valid entries
func (o *PairList) SumW() (sum float64) {
	for k := 0; k < o.Num; k++ {
		sum += o.Pairs[k].W
	}
	return
}

// SumG returns the sum of gradients of valid entries
func (o *PairList) SumG() (sum []float64) {
	if len(o.Pairs) == 0 {
		return
	}
	sum = make([]float64, len(o.Pairs[0].G))
	for k := 0; k < o.Num; k++ {
		for i, g := range o.Pairs[k].G {
			sum[i] += g
		}
	}
	return
}

// Weights holds the particle-grid and corner-grid pair lists of all particles of all objects
type Weights struct {
	Capacity int             // capacity of each pair list
	Particle [][]*PairList   // [nobj][npart] particle-grid pairs
	Corner   [][][]*PairList // [nobj][npart][ncorners] corner-grid pairs
}

// NewWeights allocates pair lists sized for particles
func NewWeights(particles *Particles, capacity int) (o *Weights) {
	o = new(Weights)
	o.Capacity = capacity
	nobj := particles.NumObjects()
	o.Particle = make([][]*PairList, nobj)
	o.Corner = make([][][]*PairList, nobj)
	for obj := 0; obj < nobj; obj++ {
		npart := particles.NumParticles(obj)
		o.Particle[obj] = make([]*PairList, npart)
		o.Corner[obj] = make([][]*PairList, npart)
		for p := 0; p < npart; p++ {
			o.Particle[obj][p] = NewPairList(capacity, particles.Ndim)
			o.Corner[obj][p] = make([]*PairList, particles.Ncorners)
			for c := 0; c < particles.Ncorners; c++ {
				o.Corner[obj][p][c] = NewPairList(capacity, particles.Ndim)
			}
		}
	}
	return
}

// CornerWeights holds the direct particle-corner interpolation data of one particle
//  Note: only enriched corners have non-zero values
type CornerWeights struct {
	W    []float64   // [ncorners] weight of corner
	Gref [][]float64 // [ncorners][ndim] gradient of weight w.r.t reference configuration
	Gcur [][]float64 // [ncorners][ndim] gradient of weight w.r.t current configuration
}

// NewCornerWeights allocates particle-corner data sized for particles
func NewCornerWeights(particles *Particles) (o [][]*CornerWeights) {
	nobj := particles.NumObjects()
	o = make([][]*CornerWeights, nobj)
	for obj := 0; obj < nobj; obj++ {
		npart := particles.NumParticles(obj)
		o[obj] = make([]*CornerWeights, npart)
		for p := 0; p < npart; p++ {
			o[obj][p] = &CornerWeights{
				W:    make([]float64, particles.Ncorners),
				Gref: utl.Alloc(particles.Ncorners, particles.Ndim),
				Gcur: utl.Alloc(particles.Ncorners, particles.Ndim),
			}
		}
	}
	return
}

// zero sets the data of corner c to zero
func (o *CornerWeights) zero(c int) {
	o.W[c] = 0
	for i := range o.Gref[c] {
		o.Gref[c][i] = 0
		o.Gcur[c][i] = 0
	}
}
