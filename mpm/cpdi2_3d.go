// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpm

// Cpdi2Method3D implements the CPDI2 update method with hexahedral (hex8) particle domains
type Cpdi2Method3D struct {
	cpdi2
}

// check interface
var _ UpdateMethod = (*Cpdi2Method3D)(nil)

// NewCpdi2Method3D returns a new 3D update method acting on particles
//  nworkers -- number of goroutines; < 1 means one per available processor
func NewCpdi2Method3D(particles *Particles, nworkers int) (o *Cpdi2Method3D, err error) {
	o = new(Cpdi2Method3D)
	err = o.init(3, particles, nworkers)
	if err != nil {
		return nil, err
	}
	return
}

// NewUpdateMethod returns the CPDI2 update method matching the space dimension of particles
func NewUpdateMethod(particles *Particles, nworkers int) (UpdateMethod, error) {
	if particles != nil && particles.Ndim == 3 {
		o, err := NewCpdi2Method3D(particles, nworkers)
		if err != nil {
			return nil, err
		}
		return o, nil
	}
	o, err := NewCpdi2Method2D(particles, nworkers)
	if err != nil {
		return nil, err
	}
	return o, nil
}
