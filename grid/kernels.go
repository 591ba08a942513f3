// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import "math"

// KernelFunc computes the 1D weights N and derivatives dNdξ of the Width nodes influencing point ξ,
// given in grid units, and returns the index of the first node
type KernelFunc func(N, dNdξ []float64, ξ float64) (i0 int)

// Kernel holds a 1D grid basis; multidimensional weights are tensor products
type Kernel struct {
	Name  string     // name of kernel
	Width int        // number of nodes influencing a point along each direction
	Func  KernelFunc // weights and derivatives
}

// kernels holds all available kernels
var kernels = make(map[string]*Kernel)

// GetKernel returns an existent kernel
//  Note: returns nil if name is not available
func GetKernel(name string) *Kernel {
	return kernels[name]
}

// Linear implements the tent function
func Linear(N, dNdξ []float64, ξ float64) (i0 int) {
	i0 = int(math.Floor(ξ))
	t := ξ - float64(i0)
	N[0], N[1] = 1-t, t
	dNdξ[0], dNdξ[1] = -1, 1
	return
}

// QuadraticBspline implements the uniform quadratic B-spline with support 1.5 Δx
func QuadraticBspline(N, dNdξ []float64, ξ float64) (i0 int) {
	i := math.Floor(ξ + 0.5)
	t := ξ - i
	N[0] = 0.5 * (0.5 - t) * (0.5 - t)
	N[1] = 0.75 - t*t
	N[2] = 0.5 * (0.5 + t) * (0.5 + t)
	dNdξ[0] = t - 0.5
	dNdξ[1] = -2 * t
	dNdξ[2] = 0.5 + t
	return int(i) - 1
}

// register kernels
func init() {
	kernels["linear"] = &Kernel{"linear", 2, Linear}
	kernels["qbspline"] = &Kernel{"qbspline", 3, QuadraticBspline}
}
