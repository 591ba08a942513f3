// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpm

import "github.com/cpmech/gosl/chk"

// UpdateParticleInterpolationWeightWithEnrichment computes the particle-grid and corner-grid
// pairs as UpdateParticleInterpolationWeight, except that enriched corners do not contribute
// to the particle-grid pairs; the particle interpolates with them directly through cw:
//
//     W_c    = (1/v)  ∫ N_c dv
//     Gcur_c = (1/v)  ∫ ∇N_c dv   (current domain)
//     Gref_c = (1/V0) ∫ ∇N_c dV   (initial domain)
//
//  Note: meshes[obj] must be an untyped nil (not a nil pointer) to mean "no mesh"
func (o *cpdi2) UpdateParticleInterpolationWeightWithEnrichment(wf GridWeightFunction, meshes []VolumetricMesh, enriched [][]bool, w *Weights, cw [][]*CornerWeights) (err error) {

	// check
	err = o.checkWeights(w)
	if err != nil {
		return
	}
	nobj := o.particles.NumObjects()
	if len(meshes) != nobj || len(enriched) != nobj || len(cw) != nobj {
		return chk.Err("meshes, enrichment flags and corner weights must be given for all %d objects", nobj)
	}
	for obj := 0; obj < nobj; obj++ {
		npart := o.particles.NumParticles(obj)
		if len(cw[obj]) != npart {
			return chk.Err("object %d: corner weights are sized for %d particles but there are %d particles", obj, len(cw[obj]), npart)
		}
		mesh := meshes[obj]
		if mesh == nil {
			for v, flag := range enriched[obj] {
				if flag {
					return chk.Err("object %d: vertex %d is enriched but there is no particle domain mesh", obj, v)
				}
			}
			continue
		}
		if mesh.NumElements() != npart {
			return chk.Err("object %d: particle domain mesh has %d elements but there are %d particles", obj, mesh.NumElements(), npart)
		}
		if len(enriched[obj]) != mesh.NumVertices() {
			return chk.Err("object %d: there are %d enrichment flags but the particle domain mesh has %d vertices", obj, len(enriched[obj]), mesh.NumVertices())
		}
	}

	// compute pairs
	return o.forEach(func(wid, obj, p int) error {
		var flags []bool
		if mesh := meshes[obj]; mesh != nil {
			flags = o.flags[wid]
			for c := 0; c < o.ncorners; c++ {
				v := mesh.EleVertIndex(p, c)
				if v < 0 || v >= len(enriched[obj]) {
					return chk.Err("object %d, particle %d, corner %d: mesh vertex %d is out of range", obj, p, c, v)
				}
				flags[c] = enriched[obj][v]
			}
		}
		return o.assemble(wid, obj, p, wf, w, flags, cw[obj][p])
	})
}

// cornerShape computes the weight of enriched corner c and its gradients in the reference and
// current configurations. The two gradients are integrated separately.
func (o *cpdi2) cornerShape(q *Quadrature, cw *CornerWeights, c int, domain, initial [][]float64, vol float64) (err error) {
	wc, err := q.ShapeValue(c, domain)
	if err != nil {
		return
	}
	gcur, err := q.ShapeGradientCurrent(c, domain)
	if err != nil {
		return
	}
	vol0, err := q.Volume(initial)
	if err != nil {
		return
	}
	gref, err := q.ShapeGradientReference(c, initial)
	if err != nil {
		return
	}
	cw.W[c] = wc / vol
	for i := 0; i < o.ndim; i++ {
		cw.Gcur[c][i] = gcur[i] / vol
		cw.Gref[c][i] = gref[i] / vol0
	}
	return
}
