// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mpm implements the convected particle domain interpolation (CPDI2) update method
// for material point method simulations
package mpm

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Particles holds the kinematic state of all particles of all objects
//  Note: domain corners are given in natural order; e.g. for qua4:
//        0:(-1,-1), 1:(+1,-1), 2:(+1,+1), 3:(-1,+1)
type Particles struct {
	Ndim     int // space dimension
	Ncorners int // number of corners of each particle domain: 4 (2D) or 8 (3D)

	// state
	X              [][][]float64   // [nobj][npart][ndim] particle positions
	Domains        [][][][]float64 // [nobj][npart][ncorners][ndim] current particle domains
	InitialDomains [][][][]float64 // [nobj][npart][ncorners][ndim] initial (reference) particle domains
	F              [][][][]float64 // [nobj][npart][ndim][ndim] deformation gradients
}

// NewParticles allocates particles from the initial domains of all particles of all objects
//  domains -- [nobj][npart][ncorners][ndim] corners of particle domains; they are copied
//  Note: positions are set to the centroid of corners and deformation gradients to identity
func NewParticles(ndim int, domains [][][][]float64) (o *Particles, err error) {

	// check
	if ndim != 2 && ndim != 3 {
		return nil, chk.Err("space dimension must be 2 or 3. ndim = %d is invalid", ndim)
	}

	// new structure
	o = new(Particles)
	o.Ndim = ndim
	o.Ncorners = 1 << uint(ndim)
	nobj := len(domains)
	o.X = make([][][]float64, nobj)
	o.Domains = make([][][][]float64, nobj)
	o.InitialDomains = make([][][][]float64, nobj)
	o.F = make([][][][]float64, nobj)
	for obj, doms := range domains {
		npart := len(doms)
		o.X[obj] = utl.Alloc(npart, ndim)
		o.Domains[obj] = make([][][]float64, npart)
		o.InitialDomains[obj] = make([][][]float64, npart)
		o.F[obj] = make([][][]float64, npart)
		for p, dom := range doms {
			if len(dom) != o.Ncorners {
				return nil, chk.Err("object %d, particle %d: domain must have %d corners. %d is invalid", obj, p, o.Ncorners, len(dom))
			}
			o.Domains[obj][p] = utl.Alloc(o.Ncorners, ndim)
			o.InitialDomains[obj][p] = utl.Alloc(o.Ncorners, ndim)
			for c, x := range dom {
				if len(x) != ndim {
					return nil, chk.Err("object %d, particle %d, corner %d: coordinates must have size %d", obj, p, c, ndim)
				}
				copy(o.Domains[obj][p][c], x)
				copy(o.InitialDomains[obj][p][c], x)
			}
			o.F[obj][p] = utl.Alloc(ndim, ndim)
			for i := 0; i < ndim; i++ {
				o.F[obj][p][i][i] = 1
			}
			centroid(o.X[obj][p], o.Domains[obj][p])
		}
	}
	return
}

// NumObjects returns the number of objects
func (o *Particles) NumObjects() int { return len(o.Domains) }

// NumParticles returns the number of particles in object obj
func (o *Particles) NumParticles(obj int) int { return len(o.Domains[obj]) }

// centroid computes the equal-weight average of corners
func centroid(x []float64, corners [][]float64) {
	for i := range x {
		x[i] = 0
	}
	for _, xc := range corners {
		for i := range x {
			x[i] += xc[i]
		}
	}
	for i := range x {
		x[i] /= float64(len(corners))
	}
}
