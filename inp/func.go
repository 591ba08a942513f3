// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// FuncData holds function definition
type FuncData struct {
	Name string     `json:"name" yaml:"name"` // name of function. ex: pulse, stop, myfunction1
	Type string     `json:"type" yaml:"type"` // type of function. ex: cte, rmp
	Prms dbf.Params `json:"prms" yaml:"prms"` // parameters
}

// FuncsData holds functions
type FuncsData []*FuncData

// Get returns function by name
//  Note: returns nil and no error if name is empty
func (o FuncsData) Get(name string) (fcn dbf.T, err error) {
	if name == "" {
		return
	}
	for _, f := range o {
		if f.Name == name {
			fcn = dbf.New(f.Type, f.Prms)
			if err != nil {
				return nil, chk.Err("cannot get function named %q because of the following error:\n%v", name, err)
			}
			return
		}
	}
	return nil, chk.Err("cannot find function named %q", name)
}

// String prints one function
func (o FuncData) String() string {
	l := io.Sf("{ \"name\":%q, \"type\":%q, \"prms\":[", o.Name, o.Type)
	for i, p := range o.Prms {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("{ \"n\":%q, \"v\":%g }", p.N, p.V)
	}
	l += "] }"
	return l
}
