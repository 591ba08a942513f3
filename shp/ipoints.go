// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Ipoint holds integration point data: natural coordinates and weight
//  Note: [r, s, t, w]; in 2D, t = 0
type Ipoint []float64

// Weight returns the weight of integration point
func (o Ipoint) Weight() float64 { return o[3] }

// ipsfactory holds integration points; e.g. "qua4_4" => 2x2 Gauss-Legendre points
var ipsfactory = make(map[string][]Ipoint)

// GetIps returns a set of integration points
//  Note: nip == 0 selects the default; i.e. 2 points per direction
func GetIps(geoType string, nip int) (ips []Ipoint, err error) {
	if nip == 0 {
		switch geoType {
		case "qua4":
			nip = 4
		case "hex8":
			nip = 8
		}
	}
	ips, ok := ipsfactory[io.Sf("%s_%d", geoType, nip)]
	if !ok {
		return nil, chk.Err("cannot find integration points for %q with nip=%d", geoType, nip)
	}
	return
}

// register integration points
func init() {

	// 2x2 and 2x2x2 Gauss-Legendre
	a := 1.0 / math.Sqrt(3.0)
	ipsfactory["qua4_4"] = []Ipoint{
		{-a, -a, 0, 1},
		{+a, -a, 0, 1},
		{+a, +a, 0, 1},
		{-a, +a, 0, 1},
	}
	ipsfactory["hex8_8"] = []Ipoint{
		{-a, -a, -a, 1},
		{+a, -a, -a, 1},
		{+a, +a, -a, 1},
		{-a, +a, -a, 1},
		{-a, -a, +a, 1},
		{+a, -a, +a, 1},
		{+a, +a, +a, 1},
		{-a, +a, +a, 1},
	}

	// centroid only
	ipsfactory["qua4_1"] = []Ipoint{{0, 0, 0, 4}}
	ipsfactory["hex8_1"] = []Ipoint{{0, 0, 0, 8}}
}
