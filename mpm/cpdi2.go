// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpm

import (
	"math"

	"github.com/cpmech/gompm/shp"
	"github.com/cpmech/gosl/chk"
)

// cpdi2 holds the data and operations shared by the 2D and 3D CPDI2 update methods
//
//  The particle-grid weight of node i is the average of the weights at the corners:
//
//     w_ip = Σ_c w_ic / ncorners
//
//  and its gradient uses the average gradient of the corner shape function over the domain:
//
//     ∇w_ip = Σ_c w_ic · (1/v_p) ∫ ∇N_c dv
//
type cpdi2 struct {
	ndim      int           // space dimension
	ncorners  int           // number of corners of particle domain
	geo       string        // geometry of particle domain: qua4 or hex8
	share     float64       // fraction of corner weight given to particle: 1/ncorners
	particles *Particles    // particles, owned by the caller
	pool      *workers      // loops over particles
	quads     []*Quadrature // [nworkers] quadrature scratchpads
	flags     [][]bool      // [nworkers][ncorners] enrichment flags of corners
}

// init initialises the structure
func (o *cpdi2) init(ndim int, particles *Particles, nworkers int) (err error) {
	if particles == nil {
		return chk.Err("particles must not be nil")
	}
	if particles.Ndim != ndim {
		return chk.Err("particles have ndim = %d but this update method works with ndim = %d", particles.Ndim, ndim)
	}
	o.ndim = ndim
	o.ncorners = particles.Ncorners
	o.geo = shp.GetGeoType(ndim)
	o.share = 1.0 / float64(o.ncorners)
	o.particles = particles
	o.pool = newWorkers(nworkers)
	o.quads = make([]*Quadrature, o.pool.nworkers)
	o.flags = make([][]bool, o.pool.nworkers)
	for wid := 0; wid < o.pool.nworkers; wid++ {
		o.quads[wid], err = NewQuadrature(o.geo, wid+1)
		if err != nil {
			return
		}
		o.flags[wid] = make([]bool, o.ncorners)
	}
	return
}

// Ndim returns the space dimension
func (o *cpdi2) Ndim() int { return o.ndim }

// UpdateParticleInterpolationWeight computes, for each particle, the particle-grid pairs and
// the corner-grid pairs of its corners
func (o *cpdi2) UpdateParticleInterpolationWeight(wf GridWeightFunction, w *Weights) (err error) {
	err = o.checkWeights(w)
	if err != nil {
		return
	}
	return o.forEach(func(wid, obj, p int) error {
		return o.assemble(wid, obj, p, wf, w, nil, nil)
	})
}

// assemble computes the pairs of particle p in object obj
//  enriched -- [ncorners] flags; nil means no enriched corner
//  cw       -- particle-corner data; may be nil if enriched is nil
func (o *cpdi2) assemble(wid, obj, p int, wf GridWeightFunction, w *Weights, enriched []bool, cw *CornerWeights) (err error) {

	// auxiliary
	q := o.quads[wid]
	domain := o.particles.Domains[obj][p]
	plist := w.Particle[obj][p]
	plist.Reset()
	vol, err := q.Volume(domain)
	if err != nil {
		return chk.Err("object %d, particle %d: invalid domain:\n%v", obj, p, err)
	}
	g := make([]float64, o.ndim)

	// loop over corners
	for c := 0; c < o.ncorners; c++ {

		// corner-grid pairs
		clist := w.Corner[obj][p][c]
		clist.Reset()
		for _, pair := range wf.WeightAndGradient(domain[c]) {
			if e := o.checkPair(pair); e != nil {
				return chk.Err("object %d, particle %d, corner %d: %v", obj, p, c, e)
			}
			if !clist.TryAppendOrAccumulate(pair.Node, pair.W, pair.G) {
				return chk.Err("object %d, particle %d, corner %d: corner-grid pair list is full (capacity = %d). capacity must cover the support of the grid weight function", obj, p, c, clist.Cap())
			}
		}

		// enriched corner: interpolates directly with the particle
		if enriched != nil && enriched[c] {
			err = o.cornerShape(q, cw, c, domain, o.particles.InitialDomains[obj][p], vol)
			if err != nil {
				return chk.Err("object %d, particle %d, corner %d: %v", obj, p, c, err)
			}
			continue
		}
		if cw != nil {
			cw.zero(c)
		}

		// average gradient of corner shape function
		gbar, e := q.ShapeGradientCurrent(c, domain)
		if e != nil {
			return chk.Err("object %d, particle %d: invalid domain:\n%v", obj, p, e)
		}
		for i := range gbar {
			gbar[i] /= vol
		}

		// particle-grid pairs
		for _, pair := range clist.Valid() {
			for i := range g {
				g[i] = pair.W * gbar[i]
			}
			if !plist.TryAppendOrAccumulate(pair.Node, pair.W*o.share, g) {
				return chk.Err("object %d, particle %d: particle-grid pair list is full (capacity = %d). capacity must cover the grid nodes touched by all corners", obj, p, plist.Cap())
			}
		}
	}
	return
}

// forEach calls fcn for all particles of all objects
//  Note: particles of one object are split among workers
func (o *cpdi2) forEach(fcn func(wid, obj, p int) error) (err error) {
	for obj := 0; obj < o.particles.NumObjects(); obj++ {
		err = o.pool.run(o.particles.NumParticles(obj), func(wid, i0, i1 int) error {
			for p := i0; p < i1; p++ {
				if e := fcn(wid, obj, p); e != nil {
					return e
				}
			}
			return nil
		})
		if err != nil {
			return
		}
	}
	return
}

// checkPair checks a pair returned by the grid weight function
func (o *cpdi2) checkPair(pair NodeWeight) error {
	if len(pair.G) != o.ndim {
		return chk.Err("grid weight function returned a gradient of size %d for node %d. size must be %d", len(pair.G), pair.Node, o.ndim)
	}
	if !isFinite(pair.W) || !allFinite(pair.G) {
		return chk.Err("grid weight function returned non-finite values for node %d: w = %g, g = %v", pair.Node, pair.W, pair.G)
	}
	return nil
}

// isFinite tells whether x is neither NaN nor ±Inf
func isFinite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

// allFinite tells whether all values in v are finite
func allFinite(v []float64) bool {
	for _, x := range v {
		if !isFinite(x) {
			return false
		}
	}
	return true
}

// checkWeights checks that w matches the particles
func (o *cpdi2) checkWeights(w *Weights) error {
	if w == nil {
		return chk.Err("weights must not be nil")
	}
	nobj := o.particles.NumObjects()
	if len(w.Particle) != nobj || len(w.Corner) != nobj {
		return chk.Err("weights are sized for %d objects but there are %d objects", len(w.Particle), nobj)
	}
	for obj := 0; obj < nobj; obj++ {
		npart := o.particles.NumParticles(obj)
		if len(w.Particle[obj]) != npart || len(w.Corner[obj]) != npart {
			return chk.Err("object %d: weights are sized for %d particles but there are %d particles", obj, len(w.Particle[obj]), npart)
		}
		for p := 0; p < npart; p++ {
			if len(w.Corner[obj][p]) != o.ncorners {
				return chk.Err("object %d, particle %d: weights are sized for %d corners but domains have %d corners", obj, p, len(w.Corner[obj][p]), o.ncorners)
			}
		}
	}
	return nil
}
