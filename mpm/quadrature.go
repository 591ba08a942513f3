// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpm

import (
	"math"

	"github.com/cpmech/gompm/shp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Quadrature integrates corner shape functions over a particle domain with a 2-point
// Gauss-Legendre rule per direction
//  Note: Quadrature holds scratchpad data; use one per goroutine
type Quadrature struct {
	Shp *shp.Shape   // shape of particle domain: qua4 or hex8
	Ips []shp.Ipoint // integration points in natural coordinates
}

// NewQuadrature returns a new Quadrature for a particle domain geometry
//  goroutineId > 0 creates a private copy of the shape scratchpad
func NewQuadrature(geoType string, goroutineId int) (o *Quadrature, err error) {
	o = new(Quadrature)
	o.Shp = shp.Get(geoType, goroutineId)
	if o.Shp == nil {
		return nil, chk.Err("cannot find shape %q", geoType)
	}
	o.Ips, err = shp.GetIps(geoType, 0)
	return
}

// Jacobian returns the Jacobian matrix of the natural-to-physical mapping of domain
// evaluated at natural point ξ. Derivatives w.r.t vectors are rows: J[i][j] = dx_j/dξ_i
//  domain[ncorners][ndim] -- corners in natural order
func (o *Quadrature) Jacobian(ξ []float64, domain [][]float64) (J [][]float64, err error) {
	err = o.Shp.CalcAtIp(domain, ξ, true)
	if err != nil {
		return
	}
	nd := o.Shp.Gndim
	J = utl.Alloc(nd, nd)
	for i := 0; i < nd; i++ {
		for j := 0; j < nd; j++ {
			J[i][j] = o.Shp.DxdR[j][i]
		}
	}
	return
}

// Volume returns the volume (area in 2D) of domain
func (o *Quadrature) Volume(domain [][]float64) (vol float64, err error) {
	for _, ip := range o.Ips {
		err = o.Shp.CalcAtIp(domain, ip, true)
		if err != nil {
			return
		}
		vol += math.Abs(o.Shp.J) * ip.Weight()
	}
	return
}

// ShapeValue returns ∫ N_c dv over domain
func (o *Quadrature) ShapeValue(c int, domain [][]float64) (res float64, err error) {
	for _, ip := range o.Ips {
		err = o.Shp.CalcAtIp(domain, ip, true)
		if err != nil {
			return
		}
		res += o.Shp.S[c] * math.Abs(o.Shp.J) * ip.Weight()
	}
	return
}

// ShapeGradientCurrent returns ∫ ∇N_c dv over domain, with the gradient taken w.r.t
// current coordinates
func (o *Quadrature) ShapeGradientCurrent(c int, domain [][]float64) (res []float64, err error) {
	res = make([]float64, o.Shp.Gndim)
	err = o.addGradient(res, c, domain)
	return
}

// ShapeGradientReference returns ∫ ∇N_c dV over the initial domain, with the gradient
// taken w.r.t reference coordinates
//  Note: both the gradient and the volume element come from initial domain
func (o *Quadrature) ShapeGradientReference(c int, initial [][]float64) (res []float64, err error) {
	res = make([]float64, o.Shp.Gndim)
	err = o.addGradient(res, c, initial)
	return
}

// addGradient adds ∫ G_c |J| w of domain to res
func (o *Quadrature) addGradient(res []float64, c int, domain [][]float64) (err error) {
	for _, ip := range o.Ips {
		err = o.Shp.CalcAtIp(domain, ip, true)
		if err != nil {
			return
		}
		coef := math.Abs(o.Shp.J) * ip.Weight()
		for i := range res {
			res[i] += o.Shp.G[c][i] * coef
		}
	}
	return
}
