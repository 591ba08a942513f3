// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gompm/mpm"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Summary records summary of outputs
type Summary struct {
	OutTimes    []float64 `json:"outtimes"`    // [nOutTimes] output times
	MinDetF     []float64 `json:"mindetf"`     // [nOutTimes] min determinant of deformation gradients
	MaxUnityErr float64   `json:"maxunityerr"` // max |Σ w - 1| over all steps and particles
	Nsteps      int       `json:"nsteps"`      // number of steps
}

// output records data at output time t
func (o *Summary) output(t float64, particles *mpm.Particles) {
	dets := make([]float64, 0, particles.NumObjects())
	for _, Fs := range particles.F {
		for _, F := range Fs {
			dets = append(dets, det(F))
		}
	}
	o.OutTimes = append(o.OutTimes, t)
	if len(dets) == 0 {
		o.MinDetF = append(o.MinDetF, 1)
		return
	}
	o.MinDetF = append(o.MinDetF, floats.Min(dets))
}

// Save saves summary to dirout/fnkey_sum.json
func (o *Summary) Save(dirout, fnkey string) (err error) {
	err = os.MkdirAll(dirout, 0777)
	if err != nil {
		return chk.Err("cannot create directory for summary (%s):\n%v", dirout, err)
	}
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return chk.Err("cannot encode summary:\n%v", err)
	}
	fn := sumPath(dirout, fnkey)
	err = os.WriteFile(fn, b, 0644)
	if err != nil {
		return chk.Err("cannot save summary %q:\n%v", fn, err)
	}
	return
}

// ReadSummary reads summary back
func ReadSummary(dirout, fnkey string) (o *Summary, err error) {
	fn := sumPath(dirout, fnkey)
	b, err := os.ReadFile(fn)
	if err != nil {
		return nil, chk.Err("cannot read summary %q:\n%v", fn, err)
	}
	o = new(Summary)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot decode summary %q:\n%v", fn, err)
	}
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func sumPath(dirout, fnkey string) string {
	return filepath.Join(dirout, io.Sf("%s_sum.json", fnkey))
}

// det returns the determinant of a square matrix given by rows
func det(a [][]float64) float64 {
	n := len(a)
	m := mat.NewDense(n, n, nil)
	for i, row := range a {
		m.SetRow(i, row)
	}
	return mat.Det(m)
}
