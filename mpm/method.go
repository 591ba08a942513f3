// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpm

// GridWeightFunction evaluates the grid interpolation at a physical point
//  Note: implementations must be stateless; they are called concurrently
type GridWeightFunction interface {
	WeightAndGradient(x []float64) []NodeWeight // returns the contributions of grid nodes to point x
}

// GridVelocity gives the current velocity of grid nodes
type GridVelocity interface {
	Velocity(obj, node int) []float64 // returns the [ndim] velocity of node for object obj
}

// VolumetricMesh gives the topology of the mesh formed by particle domains of one object
//  Note: element e is particle e; vertices are shared domain corners
type VolumetricMesh interface {
	NumElements() int                    // number of elements (particles)
	NumVertices() int                    // number of vertices (domain corners)
	EleVertIndex(ele, localVert int) int // global index of local vertex of element
}

// UpdateMethod defines the operations of a particle-domain update method for one timestep
//  Control flow: UpdateParticleInterpolationWeight[WithEnrichment] => UpdateParticleDomain
//                => UpdateParticlePosition => UpdateParticleDeformationGradient
type UpdateMethod interface {

	// Ndim returns the space dimension
	Ndim() int

	// UpdateParticleInterpolationWeight computes the particle-grid and corner-grid pairs
	UpdateParticleInterpolationWeight(wf GridWeightFunction, w *Weights) (err error)

	// UpdateParticleInterpolationWeightWithEnrichment computes the particle-grid and corner-grid
	// pairs and the particle-corner data of enriched corners
	//  meshes   -- [nobj] particle domain mesh of each object; may be nil if nothing is enriched
	//  enriched -- [nobj][nverts] enrichment flags of mesh vertices
	UpdateParticleInterpolationWeightWithEnrichment(wf GridWeightFunction, meshes []VolumetricMesh, enriched [][]bool, w *Weights, cw [][]*CornerWeights) (err error)

	// UpdateParticleDomain moves domain corners with the grid velocity
	UpdateParticleDomain(vel GridVelocity, w *Weights, dt float64) (err error)

	// UpdateParticlePosition sets particle positions from corners, except Dirichlet particles
	//  dirichlet -- [nobj][npart] flags; may be nil
	UpdateParticlePosition(dt float64, dirichlet [][]bool) (err error)

	// UpdateParticleDeformationGradient recomputes the deformation gradients from corner displacements
	UpdateParticleDeformationGradient() (err error)
}
