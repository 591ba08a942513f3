// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpm

// Cpdi2Method2D implements the CPDI2 update method with quadrilateral (qua4) particle domains
type Cpdi2Method2D struct {
	cpdi2
}

// check interface
var _ UpdateMethod = (*Cpdi2Method2D)(nil)

// NewCpdi2Method2D returns a new 2D update method acting on particles
//  nworkers -- number of goroutines; < 1 means one per available processor
func NewCpdi2Method2D(particles *Particles, nworkers int) (o *Cpdi2Method2D, err error) {
	o = new(Cpdi2Method2D)
	err = o.init(2, particles, nworkers)
	if err != nil {
		return nil, err
	}
	return
}
