// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/diff/fd"
)

// CheckShape checks that shape functions evaluate to 1.0 @ their own vertex and to 0.0 @ the others
func CheckShape(tst *testing.T, shape *Shape, tol float64, verbose bool) {
	var errS float64
	r := make([]float64, shape.Gndim)
	for n := 0; n < shape.Nverts; n++ {
		for i := range r {
			r[i] = shape.NatCoords[i][n]
		}
		shape.Func(shape.S, shape.DSdR, r, false)
		if verbose {
			io.Pf("S @ vertex %d = %v\n", n, shape.S)
		}
		for m, s := range shape.S {
			if m == n {
				s -= 1
			}
			errS += math.Abs(s)
		}
	}
	if errS > tol {
		tst.Errorf("%s failed with err = %g\n", shape.Type, errS)
	}
}

// CheckDSdR checks dSdR derivatives of shape structures against central differences
func CheckDSdR(tst *testing.T, shape *Shape, r []float64, tol float64, verbose bool) {
	shape.Func(shape.S, shape.DSdR, r, true)
	dSdR := clone(shape.DSdR)
	S := make([]float64, shape.Nverts)
	checkNumerical(tst, shape.Type+" dSdR", dSdR, r, tol, verbose, func(n int, rr []float64) float64 {
		shape.Func(S, nil, rr, false)
		return S[n]
	})
}

// CheckDSdx checks G=dSdx derivatives of shape structures against central differences
//  x -- real coordinates of point inside cell
func CheckDSdx(tst *testing.T, shape *Shape, xmat [][]float64, x []float64, tol float64, verbose bool) {
	r := make([]float64, shape.Gndim)
	err := shape.InvMap(r, x, xmat)
	if err != nil {
		tst.Errorf("InvMap failed:\n%v", err)
		return
	}
	err = shape.CalcAtIp(xmat, r, true)
	if err != nil {
		tst.Errorf("CalcAtIp failed:\n%v", err)
		return
	}
	G := clone(shape.G)
	rr := make([]float64, shape.Gndim)
	checkNumerical(tst, shape.Type+" dSdx", G, x, tol, verbose, func(n int, xx []float64) float64 {
		if e := shape.InvMap(rr, xx, xmat); e != nil {
			tst.Errorf("InvMap failed:\n%v", e)
		}
		shape.Func(shape.S, shape.DSdR, rr, false)
		return shape.S[n]
	})
}

// checkNumerical compares ana[n] with the gradient of f(n, y) w.r.t y computed by central differences
func checkNumerical(tst *testing.T, msg string, ana [][]float64, y []float64, tol float64, verbose bool, f func(n int, y []float64) float64) {
	settings := &fd.Settings{Formula: fd.Central, Step: 1e-3}
	num := make([]float64, len(y))
	for n := range ana {
		fd.Gradient(num, func(yy []float64) float64 { return f(n, yy) }, y, settings)
		for i := range y {
			if verbose {
				io.Pf("  %s[%d][%d] = %v (num: %v)\n", msg, n, i, ana[n][i], num[i])
			}
			if math.Abs(ana[n][i]-num[i]) > tol {
				tst.Errorf("%s[%d][%d] failed with err = %g\n", msg, n, i, math.Abs(ana[n][i]-num[i]))
				return
			}
		}
	}
}

// clone returns a copy of a matrix
func clone(a [][]float64) (b [][]float64) {
	b = make([][]float64, len(a))
	for i := range a {
		b[i] = append([]float64{}, a[i]...)
	}
	return
}
