// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpm

import "github.com/cpmech/gosl/chk"

// UpdateParticleDeformationGradient recomputes the deformation gradient of each particle from
// the displacements of its corners:
//
//     F = I + Σ_c (x_c - X_c) ⊗ (1/V0) ∫ ∇N_c dV
//
//  Note: F is computed from the initial domain; previous values of F are not used
func (o *cpdi2) UpdateParticleDeformationGradient() (err error) {
	return o.forEach(func(wid, obj, p int) error {
		q := o.quads[wid]
		domain := o.particles.Domains[obj][p]
		initial := o.particles.InitialDomains[obj][p]
		F := o.particles.F[obj][p]
		vol0, e := q.Volume(initial)
		if e != nil {
			return chk.Err("object %d, particle %d: invalid initial domain:\n%v", obj, p, e)
		}
		for i := 0; i < o.ndim; i++ {
			for j := 0; j < o.ndim; j++ {
				F[i][j] = 0
			}
			F[i][i] = 1
		}
		for c := 0; c < o.ncorners; c++ {
			g, e := q.ShapeGradientReference(c, initial)
			if e != nil {
				return chk.Err("object %d, particle %d: invalid initial domain:\n%v", obj, p, e)
			}
			for i := 0; i < o.ndim; i++ {
				u := domain[c][i] - initial[c][i]
				for j := 0; j < o.ndim; j++ {
					F[i][j] += u * g[j] / vol0
				}
			}
		}
		for i := 0; i < o.ndim; i++ {
			if !allFinite(F[i]) {
				return chk.Err("object %d, particle %d: deformation gradient is not finite: %v", obj, p, F)
			}
		}
		return nil
	})
}
