// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shp implements shape structures/routines for particle domains
package shp

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/mat"
)

// constants
const MINDET = 1.0e-14 // minimum determinant allowed for dxdR relative to the size of the cell

// ShpFunc is the shape functions callback function
type ShpFunc func(S []float64, dSdR [][]float64, r []float64, derivs bool)

// Shape holds geometry data
type Shape struct {

	// geometry
	Type      string      // name; e.g. "qua4"
	Func      ShpFunc     // shape/derivs function callback function
	Gndim     int         // geometry of shape; e.g. "qua4" => gnd == 2
	Nverts    int         // number of vertices in cell; e.g. "hex8" => 8
	VtkCode   int         // VTK code
	NatCoords [][]float64 // natural coordinates [gndim][nverts]

	// scratchpad: volume
	S    []float64   // [nverts] shape functions
	G    [][]float64 // [nverts][gndim] G == dSdx. derivative of shape function
	J    float64     // Jacobian: determinant of dxdr
	DSdR [][]float64 // [nverts][gndim] derivatives of S w.r.t natural coordinates
	DxdR [][]float64 // [gndim][gndim] derivatives of real coordinates w.r.t natural coordinates
	DRdx [][]float64 // [gndim][gndim] dRdx == inverse(dxdR)

	// scratchpad: gonum workspace for inversion
	jmat *mat.Dense
	imat *mat.Dense
}

// GetCopy returns a new copy of this shape structure
func (o Shape) GetCopy() *Shape {
	p := &Shape{
		Type:      o.Type,
		Func:      o.Func,
		Gndim:     o.Gndim,
		Nverts:    o.Nverts,
		VtkCode:   o.VtkCode,
		NatCoords: utl.Alloc(o.Gndim, o.Nverts),
	}
	for i := 0; i < o.Gndim; i++ {
		copy(p.NatCoords[i], o.NatCoords[i])
	}
	p.init_scratchpad()
	return p
}

// factory holds all Shapes available
var factory = make(map[string]*Shape)

// Get returns an existent Shape structure
//  Note: 1) returns nil on errors
//        2) use goroutineId > 0 to get a copy
func Get(geoType string, goroutineId int) *Shape {
	s, ok := factory[geoType]
	if !ok {
		return nil
	}
	if goroutineId > 0 {
		return s.GetCopy()
	}
	return s
}

// GetNverts returns the number of vertices of a given geometry type
//  Note: returns -1 if geoType is not available
func GetNverts(geoType string) int {
	s, ok := factory[geoType]
	if !ok {
		return -1
	}
	return s.Nverts
}

// GetGeoType returns the particle domain geometry for a given space dimension
//  Note: returns "" if ndim is not 2 or 3
func GetGeoType(ndim int) string {
	switch ndim {
	case 2:
		return "qua4"
	case 3:
		return "hex8"
	}
	return ""
}

// IpRealCoords returns the real coordinates (y) of an integration point
//  x[nverts][ndim] -- coordinates of vertices
func (o *Shape) IpRealCoords(x [][]float64, ip Ipoint) (y []float64) {
	y = make([]float64, o.Gndim)
	o.Func(o.S, o.DSdR, ip, false)
	for m := 0; m < o.Nverts; m++ {
		for i := 0; i < o.Gndim; i++ {
			y[i] += o.S[m] * x[m][i]
		}
	}
	return
}

// CalcAtIp calculates volume data such as S and G at natural coordinate r
//  Input:
//   x[nverts][ndim] -- coordinates of vertices (in natural order)
//   ip              -- integration point
//  Output:
//   S, DSdR, DxdR, DRdx, G, and J
//  Note: an error is returned if det(dxdR) <= MINDET * detRef, where detRef is the product of
//        the half-extents of the cell; i.e. the cell is degenerate, inverted, its vertices are
//        not in natural order or its coordinates are not finite
func (o *Shape) CalcAtIp(x [][]float64, ip Ipoint, derivs bool) (err error) {

	// S and dSdR
	o.Func(o.S, o.DSdR, ip, derivs)
	if !derivs {
		return
	}

	// dxdR := sum_n x * dSdR   =>  dx_i/dR_j := sum_n x^n_i * dS^n/dR_j
	for i := 0; i < o.Gndim; i++ {
		for j := 0; j < o.Gndim; j++ {
			o.DxdR[i][j] = 0.0
			for n := 0; n < o.Nverts; n++ {
				o.DxdR[i][j] += x[n][i] * o.DSdR[n][j]
			}
			o.jmat.Set(i, j, o.DxdR[i][j])
		}
	}

	// J := det(dxdR)
	o.J = mat.Det(o.jmat)
	if !(o.J > MINDET*o.detRef(x)) {
		return chk.Err("%s: determinant of dxdR is too small, negative or not finite (J = %g). cell may be inverted or its vertices are not in natural order", o.Type, o.J)
	}

	// dRdx := inv(dxdR)
	err = o.imat.Inverse(o.jmat)
	if err != nil {
		return chk.Err("%s: cannot invert dxdR:\n%v", o.Type, err)
	}
	for i := 0; i < o.Gndim; i++ {
		for j := 0; j < o.Gndim; j++ {
			o.DRdx[i][j] = o.imat.At(i, j)
		}
	}

	// G == dSdx := dSdR * dRdx  =>  dS^m/dx_j := sum_i dS^m/dR_i * dR_i/dx_j
	for m := 0; m < o.Nverts; m++ {
		for j := 0; j < o.Gndim; j++ {
			o.G[m][j] = 0.0
			for i := 0; i < o.Gndim; i++ {
				o.G[m][j] += o.DSdR[m][i] * o.DRdx[i][j]
			}
		}
	}
	return
}

// detRef returns the product of the half-extents of the bounding box of x. It equals det(dxdR)
// of an undistorted cell with the same bounding box
func (o *Shape) detRef(x [][]float64) (res float64) {
	res = 1
	for i := 0; i < o.Gndim; i++ {
		xmin, xmax := x[0][i], x[0][i]
		for n := 1; n < o.Nverts; n++ {
			xmin = math.Min(xmin, x[n][i])
			xmax = math.Max(xmax, x[n][i])
		}
		res *= (xmax - xmin) / 2
	}
	return
}

// init_scratchpad initialise volume data (scratchpad)
func (o *Shape) init_scratchpad() {
	o.S = make([]float64, o.Nverts)
	o.DSdR = utl.Alloc(o.Nverts, o.Gndim)
	o.DxdR = utl.Alloc(o.Gndim, o.Gndim)
	o.DRdx = utl.Alloc(o.Gndim, o.Gndim)
	o.G = utl.Alloc(o.Nverts, o.Gndim)
	o.jmat = mat.NewDense(o.Gndim, o.Gndim, nil)
	o.imat = mat.NewDense(o.Gndim, o.Gndim, nil)
}
