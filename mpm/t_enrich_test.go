// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpm

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/stretchr/testify/require"
)

func Test_enrich01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("enrich01. no enriched corner")

	grid := linearGrid{2, 1, 4}
	doms, mesh := block(2, []float64{1, 1}, 1, []int{2, 1})
	distorted := [][][]float64{{{0.3, 0.4}, {1.6, 0.5}, {1.7, 1.8}, {0.2, 1.5}}}
	particles, err := NewParticles(2, [][][][]float64{doms, distorted})
	require.NoError(tst, err)
	method, err := NewCpdi2Method2D(particles, 1)
	require.NoError(tst, err)

	w := NewWeights(particles, 16)
	err = method.UpdateParticleInterpolationWeight(grid, w)
	require.NoError(tst, err)

	we := NewWeights(particles, 16)
	cw := NewCornerWeights(particles)
	cw[0][1].W[2] = 666 // must be cleared
	meshes := []VolumetricMesh{mesh, nil}
	enriched := [][]bool{make([]bool, mesh.nverts), nil}
	err = method.UpdateParticleInterpolationWeightWithEnrichment(grid, meshes, enriched, we, cw)
	require.NoError(tst, err)

	for obj := range w.Particle {
		for p := range w.Particle[obj] {
			require.Equal(tst, w.Particle[obj][p].Valid(), we.Particle[obj][p].Valid())
			for c := 0; c < 4; c++ {
				require.Equal(tst, w.Corner[obj][p][c].Valid(), we.Corner[obj][p][c].Valid())
			}
			chk.Array(tst, "W", 1e-17, cw[obj][p].W, make([]float64, 4))
			chk.Deep2(tst, "Gref", 1e-17, cw[obj][p].Gref, utl.Alloc(4, 2))
			chk.Deep2(tst, "Gcur", 1e-17, cw[obj][p].Gcur, utl.Alloc(4, 2))
		}
	}
}

func Test_enrich02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("enrich02. enriched shared vertex")

	grid := linearGrid{2, 1, 8}
	doms, mesh := block(2, []float64{1, 1}, 1, []int{2, 1})
	particles, err := NewParticles(2, [][][][]float64{doms})
	require.NoError(tst, err)
	method, err := NewCpdi2Method2D(particles, 1)
	require.NoError(tst, err)

	// vertex 1 is corner 1 of particle 0 and corner 0 of particle 1
	enriched := [][]bool{make([]bool, mesh.nverts)}
	enriched[0][1] = true
	meshes := []VolumetricMesh{mesh}

	w := NewWeights(particles, 16)
	cw := NewCornerWeights(particles)
	err = method.UpdateParticleInterpolationWeightWithEnrichment(grid, meshes, enriched, w, cw)
	require.NoError(tst, err)

	check := func(p, c int, gcur, gref []float64) {
		io.Pforan("W = %v\n", cw[0][p].W)
		for k := 0; k < 4; k++ {
			if k == c {
				chk.Float64(tst, "W", 1e-15, cw[0][p].W[k], 0.25)
				chk.Array(tst, "Gcur", 1e-15, cw[0][p].Gcur[k], gcur)
				chk.Array(tst, "Gref", 1e-15, cw[0][p].Gref[k], gref)
			} else {
				chk.Float64(tst, "W", 1e-17, cw[0][p].W[k], 0)
				chk.Array(tst, "Gcur", 1e-17, cw[0][p].Gcur[k], []float64{0, 0})
			}
		}
		chk.Int(tst, "corner num", w.Corner[0][p][c].Num, 4)
		chk.Float64(tst, "Σw", 1e-15, w.Particle[0][p].SumW(), 0.75)
		g := w.Particle[0][p].SumG()
		chk.Array(tst, "Σ∇w + Gcur", 1e-14, []float64{g[0] + gcur[0], g[1] + gcur[1]}, []float64{0, 0})
	}
	check(0, 1, []float64{0.5, -0.5}, []float64{0.5, -0.5})
	check(1, 0, []float64{-0.5, -0.5}, []float64{-0.5, -0.5})

	// stretch along x
	for p := range particles.Domains[0] {
		for c, X := range particles.InitialDomains[0][p] {
			particles.Domains[0][p][c][0] = 2 * X[0]
		}
	}
	err = method.UpdateParticleInterpolationWeightWithEnrichment(grid, meshes, enriched, w, cw)
	require.NoError(tst, err)
	check(0, 1, []float64{0.25, -0.5}, []float64{0.5, -0.5})
	check(1, 0, []float64{-0.25, -0.5}, []float64{-0.5, -0.5})
}

func Test_enrich03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("enrich03. invalid input")

	grid := linearGrid{2, 1, 4}
	doms, mesh := block(2, []float64{1, 1}, 1, []int{2, 1})
	particles, err := NewParticles(2, [][][][]float64{doms})
	require.NoError(tst, err)
	method, err := NewCpdi2Method2D(particles, 1)
	require.NoError(tst, err)
	w := NewWeights(particles, 16)
	cw := NewCornerWeights(particles)
	flags := make([]bool, mesh.nverts)
	flags[4] = true

	// enriched vertex without mesh
	err = method.UpdateParticleInterpolationWeightWithEnrichment(grid, []VolumetricMesh{nil}, [][]bool{flags}, w, cw)
	require.Error(tst, err)
	io.Pforan("err = %v\n", err)

	// sizes
	err = method.UpdateParticleInterpolationWeightWithEnrichment(grid, nil, [][]bool{flags}, w, cw)
	require.Error(tst, err)
	err = method.UpdateParticleInterpolationWeightWithEnrichment(grid, []VolumetricMesh{mesh}, [][]bool{flags[:3]}, w, cw)
	require.Error(tst, err)
	err = method.UpdateParticleInterpolationWeightWithEnrichment(grid, []VolumetricMesh{mesh}, [][]bool{flags}, w, [][]*CornerWeights{cw[0][:1]})
	require.Error(tst, err)
	err = method.UpdateParticleInterpolationWeightWithEnrichment(grid, []VolumetricMesh{&testMesh{mesh.conn[:1], mesh.nverts}}, [][]bool{flags}, w, cw)
	require.Error(tst, err)

	// bad connectivity
	bad := &testMesh{[][]int{{0, 1, 4, 3}, {1, 2, 5, 6}}, mesh.nverts}
	err = method.UpdateParticleInterpolationWeightWithEnrichment(grid, []VolumetricMesh{bad}, [][]bool{flags}, w, cw)
	require.Error(tst, err)

	// ok
	err = method.UpdateParticleInterpolationWeightWithEnrichment(grid, []VolumetricMesh{mesh}, [][]bool{flags}, w, cw)
	require.NoError(tst, err)
	chk.Float64(tst, "W(0,2)", 1e-15, cw[0][0].W[2], 0.25)
	chk.Float64(tst, "W(1,3)", 1e-15, cw[0][1].W[3], 0.25)
}

func Test_enrich04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("enrich04. hex8")

	grid := linearGrid{3, 1, 4}
	doms, mesh := block(3, []float64{1, 1, 1}, 1, []int{1, 1, 1})
	particles, err := NewParticles(3, [][][][]float64{doms})
	require.NoError(tst, err)
	method, err := NewCpdi2Method3D(particles, 1)
	require.NoError(tst, err)

	flags := make([]bool, mesh.nverts)
	flags[mesh.conn[0][6]] = true
	w := NewWeights(particles, 27)
	cw := NewCornerWeights(particles)
	err = method.UpdateParticleInterpolationWeightWithEnrichment(grid, []VolumetricMesh{mesh}, [][]bool{flags}, w, cw)
	require.NoError(tst, err)
	chk.Float64(tst, "Σw", 1e-15, w.Particle[0][0].SumW(), 7.0/8.0)
	chk.Float64(tst, "W6", 1e-15, cw[0][0].W[6], 1.0/8.0)
	chk.Array(tst, "Gcur6", 1e-15, cw[0][0].Gcur[6], []float64{0.25, 0.25, 0.25})
	chk.Array(tst, "Gref6", 1e-15, cw[0][0].Gref[6], []float64{0.25, 0.25, 0.25})
}
