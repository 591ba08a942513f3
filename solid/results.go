// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"os"
	"path/filepath"

	"github.com/cpmech/gompm/mpm"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/gocarina/gocsv"
)

// Record holds the state of one particle at an output time
type Record struct {
	Time float64 `csv:"time"`
	Obj  int     `csv:"obj"`
	Id   int     `csv:"id"`
	X    float64 `csv:"x"`
	Y    float64 `csv:"y"`
	Z    float64 `csv:"z"` // zero in 2D
	DetF float64 `csv:"detF"`
}

// Results collects particle records at output times
type Results struct {
	Records []*Record
}

// output appends the state of all particles at time t
func (o *Results) output(t float64, particles *mpm.Particles) {
	for obj, xs := range particles.X {
		for p, x := range xs {
			r := &Record{Time: t, Obj: obj, Id: p, DetF: det(particles.F[obj][p])}
			r.X, r.Y = x[0], x[1]
			if len(x) > 2 {
				r.Z = x[2]
			}
			o.Records = append(o.Records, r)
		}
	}
}

// Save writes all records to dirout/fnkey_particles.csv
func (o *Results) Save(dirout, fnkey string) (err error) {
	err = os.MkdirAll(dirout, 0777)
	if err != nil {
		return chk.Err("cannot create directory for results (%s):\n%v", dirout, err)
	}
	fn := csvPath(dirout, fnkey)
	f, err := os.Create(fn)
	if err != nil {
		return chk.Err("cannot create results file %q:\n%v", fn, err)
	}
	defer f.Close()
	err = gocsv.Marshal(o.Records, f)
	if err != nil {
		return chk.Err("cannot write results %q:\n%v", fn, err)
	}
	return
}

// ReadResults reads records saved by Results.Save
func ReadResults(dirout, fnkey string) (o *Results, err error) {
	fn := csvPath(dirout, fnkey)
	f, err := os.Open(fn)
	if err != nil {
		return nil, chk.Err("cannot open results %q:\n%v", fn, err)
	}
	defer f.Close()
	o = new(Results)
	err = gocsv.UnmarshalFile(f, &o.Records)
	if err != nil {
		return nil, chk.Err("cannot read results %q:\n%v", fn, err)
	}
	return
}

// AtTime returns the records of time t
func (o *Results) AtTime(t, tol float64) (res []*Record) {
	for _, r := range o.Records {
		if r.Time > t-tol && r.Time < t+tol {
			res = append(res, r)
		}
	}
	return
}

func csvPath(dirout, fnkey string) string {
	return filepath.Join(dirout, io.Sf("%s_particles.csv", fnkey))
}
