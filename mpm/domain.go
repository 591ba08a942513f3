// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpm

import "github.com/cpmech/gosl/chk"

// UpdateParticleDomain moves each corner with the velocity interpolated from its corner-grid pairs:
//
//     x_c ← x_c + dt Σ_i w_ic v_i
//
func (o *cpdi2) UpdateParticleDomain(vel GridVelocity, w *Weights, dt float64) (err error) {
	err = o.checkWeights(w)
	if err != nil {
		return
	}
	if dt == 0 {
		return
	}
	return o.forEach(func(wid, obj, p int) error {
		for c, xc := range o.particles.Domains[obj][p] {
			for _, pair := range w.Corner[obj][p][c].Valid() {
				v := vel.Velocity(obj, pair.Node)
				if len(v) != o.ndim {
					return chk.Err("object %d, node %d: velocity must have size %d. %d is invalid", obj, pair.Node, o.ndim, len(v))
				}
				if !allFinite(v) {
					return chk.Err("object %d, node %d: velocity is not finite: %v", obj, pair.Node, v)
				}
				for i := 0; i < o.ndim; i++ {
					xc[i] += dt * pair.W * v[i]
				}
			}
		}
		return nil
	})
}

// UpdateParticlePosition sets the position of each particle to the centroid of its corners.
// Particles flagged in dirichlet keep their positions.
//  Note: dt = 0 leaves all positions unchanged
func (o *cpdi2) UpdateParticlePosition(dt float64, dirichlet [][]bool) (err error) {
	nobj := o.particles.NumObjects()
	if dirichlet != nil {
		if len(dirichlet) != nobj {
			return chk.Err("Dirichlet flags are sized for %d objects but there are %d objects", len(dirichlet), nobj)
		}
		for obj := 0; obj < nobj; obj++ {
			if dirichlet[obj] != nil && len(dirichlet[obj]) != o.particles.NumParticles(obj) {
				return chk.Err("object %d: Dirichlet flags are sized for %d particles but there are %d particles", obj, len(dirichlet[obj]), o.particles.NumParticles(obj))
			}
		}
	}
	if dt == 0 {
		return
	}
	return o.forEach(func(wid, obj, p int) error {
		if dirichlet != nil && dirichlet[obj] != nil && dirichlet[obj][p] {
			return nil
		}
		centroid(o.particles.X[obj][p], o.particles.Domains[obj][p])
		return nil
	})
}
