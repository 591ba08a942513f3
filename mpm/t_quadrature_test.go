// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpm

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/require"
)

func Test_quad01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("quad01. qua4 rectangle and parallelogram")

	q, err := NewQuadrature("qua4", 1)
	require.NoError(tst, err)
	require.Len(tst, q.Ips, 4)

	// rectangle 2 × 1
	rect := [][]float64{{0, 0}, {2, 0}, {2, 1}, {0, 1}}
	J, err := q.Jacobian([]float64{0.3, -0.2}, rect)
	require.NoError(tst, err)
	chk.Deep2(tst, "J", 1e-15, J, [][]float64{{1, 0}, {0, 0.5}})

	vol, err := q.Volume(rect)
	require.NoError(tst, err)
	chk.Float64(tst, "vol", 1e-15, vol, 2)

	gcorrect := [][]float64{{-0.5, -1}, {0.5, -1}, {0.5, 1}, {-0.5, 1}}
	for c := 0; c < 4; c++ {
		n, err := q.ShapeValue(c, rect)
		require.NoError(tst, err)
		chk.Float64(tst, io.Sf("∫N%d", c), 1e-15, n, 0.5)
		g, err := q.ShapeGradientCurrent(c, rect)
		require.NoError(tst, err)
		chk.Array(tst, io.Sf("∫∇N%d", c), 1e-15, g, gcorrect[c])
		gref, err := q.ShapeGradientReference(c, rect)
		require.NoError(tst, err)
		chk.Array(tst, io.Sf("∫∇N%d(ref)", c), 1e-15, gref, gcorrect[c])
	}

	// parallelogram: rows of J are the derivatives of x w.r.t ξ and η
	para := [][]float64{{0, 0}, {2, 0}, {3, 1}, {1, 1}}
	J, err = q.Jacobian([]float64{-0.7, 0.1}, para)
	require.NoError(tst, err)
	chk.Deep2(tst, "J", 1e-15, J, [][]float64{{1, 0}, {0.5, 0.5}})
	vol, err = q.Volume(para)
	require.NoError(tst, err)
	chk.Float64(tst, "vol", 1e-15, vol, 2)
}

func Test_quad02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("quad02. hex8 box")

	q, err := NewQuadrature("hex8", 1)
	require.NoError(tst, err)
	require.Len(tst, q.Ips, 8)

	box := [][]float64{
		{0, 0, 0}, {2, 0, 0}, {2, 1, 0}, {0, 1, 0},
		{0, 0, 4}, {2, 0, 4}, {2, 1, 4}, {0, 1, 4},
	}
	J, err := q.Jacobian([]float64{0, 0, 0}, box)
	require.NoError(tst, err)
	chk.Deep2(tst, "J", 1e-15, J, [][]float64{{1, 0, 0}, {0, 0.5, 0}, {0, 0, 2}})

	vol, err := q.Volume(box)
	require.NoError(tst, err)
	chk.Float64(tst, "vol", 1e-14, vol, 8)

	n, err := q.ShapeValue(6, box)
	require.NoError(tst, err)
	chk.Float64(tst, "∫N6", 1e-14, n, 1)

	g, err := q.ShapeGradientCurrent(0, box)
	require.NoError(tst, err)
	chk.Array(tst, "∫∇N0", 1e-14, g, []float64{-1, -2, -0.5})

	g, err = q.ShapeGradientCurrent(6, box)
	require.NoError(tst, err)
	chk.Array(tst, "∫∇N6", 1e-14, g, []float64{1, 2, 0.5})
}

func Test_quad03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("quad03. invalid domains")

	q, err := NewQuadrature("qua4", 1)
	require.NoError(tst, err)

	// clockwise
	_, err = q.Volume([][]float64{{0, 0}, {0, 1}, {1, 1}, {1, 0}})
	require.Error(tst, err)

	// collapsed
	_, err = q.ShapeGradientCurrent(0, [][]float64{{0, 0}, {1, 0}, {2, 0}, {3, 0}})
	require.Error(tst, err)

	// unknown geometry
	_, err = NewQuadrature("tri3", 0)
	require.Error(tst, err)
}
