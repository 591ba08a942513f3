// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON or YAML file
package inp

import (
	"encoding/json"
	goio "io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gopkg.in/yaml.v3"
)

// Data holds global data for simulations
type Data struct {
	Desc     string `json:"desc" yaml:"desc"`         // description of simulation
	DirOut   string `json:"dirout" yaml:"dirout"`     // directory for output; e.g. /tmp/gompm
	Enrich   bool   `json:"enrich" yaml:"enrich"`     // use enriched corners
	PairCap  int    `json:"paircap" yaml:"paircap"`   // capacity of pair lists; 0 => derived from weight function
	Nworkers int    `json:"nworkers" yaml:"nworkers"` // number of goroutines; 0 => one per processor
	Verbose  bool   `json:"verbose" yaml:"verbose"`   // show messages
	Csv      bool   `json:"csv" yaml:"csv"`           // save particle records to CSV file
}

// GridData holds the definition of the background grid
type GridData struct {
	Xmin   []float64 `json:"xmin" yaml:"xmin"`     // [ndim] coordinates of first node
	Dx     float64   `json:"dx" yaml:"dx"`         // spacing
	Ndiv   []int     `json:"ndiv" yaml:"ndiv"`     // [ndim] number of cells along each direction
	Kernel string    `json:"kernel" yaml:"kernel"` // weight function: "linear" or "qbspline"
}

// FlowData holds the prescribed grid velocity v(t, x) = f(t) (v0 + L·x)
type FlowData struct {
	V0  []float64   `json:"v0" yaml:"v0"`   // [ndim] uniform part; may be empty
	L   [][]float64 `json:"L" yaml:"L"`     // [ndim][ndim] velocity gradient; may be empty
	Fcn string      `json:"fcn" yaml:"fcn"` // name of time function f(t); empty means f = 1
}

// BlockData holds the definition of a structured mesh of particle domains
type BlockData struct {
	Xmin []float64 `json:"xmin" yaml:"xmin"` // [ndim] min coordinates
	Xmax []float64 `json:"xmax" yaml:"xmax"` // [ndim] max coordinates
	Ndiv []int     `json:"ndiv" yaml:"ndiv"` // [ndim] number of particles along each direction
}

// Object holds the data of one material object
type Object struct {

	// input data
	Desc          string     `json:"desc" yaml:"desc"`                   // description of object
	Mshfile       string     `json:"mshfile" yaml:"mshfile"`             // file path of mesh of particle domains
	Block         *BlockData `json:"block" yaml:"block"`                 // structured mesh; used if Mshfile is empty
	EnrichTags    []int      `json:"enrichtags" yaml:"enrichtags"`       // tags of vertices (domain corners) to be enriched
	DirichletTags []int      `json:"dirichlettags" yaml:"dirichlettags"` // tags of cells (particles) with prescribed positions

	// derived
	Msh *Mesh `json:"-" yaml:"-"` // the mesh
}

// TimeControl holds data for defining the simulation time stepping
type TimeControl struct {
	Tf    float64 `json:"tf" yaml:"tf"`       // final time
	Dt    float64 `json:"dt" yaml:"dt"`       // time step size
	DtOut float64 `json:"dtout" yaml:"dtout"` // time step size for output
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data      Data        `json:"data" yaml:"data"`           // stores global simulation data
	Functions FuncsData   `json:"functions" yaml:"functions"` // stores all time functions
	Grid      GridData    `json:"grid" yaml:"grid"`           // background grid
	Flow      FlowData    `json:"flow" yaml:"flow"`           // prescribed grid velocity
	Objects   []*Object   `json:"objects" yaml:"objects"`     // stores all objects
	Control   TimeControl `json:"control" yaml:"control"`     // time control

	// derived
	DirOut string `json:"-" yaml:"-"` // directory to save results
	Key    string `json:"-" yaml:"-"` // simulation key; e.g. mysim01.sim => mysim01 or mysim01-alias
	Ndim   int    `json:"-" yaml:"-"` // space dimension
}

// ReadSim reads all simulation data from a .sim JSON file or a .yaml/.yml file
func ReadSim(simfilepath, alias string) (o *Simulation, err error) {

	// read file
	b, err := os.ReadFile(simfilepath)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot read simulation file %q:\n%v", simfilepath, err)
	}

	// decode
	o = new(Simulation)
	o.SetDefault()
	ext := strings.ToLower(filepath.Ext(simfilepath))
	switch ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, o)
	default:
		err = json.Unmarshal(b, o)
	}
	if err != nil {
		return nil, chk.Err("ReadSim: cannot unmarshal simulation file %q:\n%v", simfilepath, err)
	}

	// input directory and filename key
	dir := os.ExpandEnv(filepath.Dir(simfilepath))
	fnkey := strings.TrimSuffix(filepath.Base(simfilepath), filepath.Ext(simfilepath))
	err = o.PostProcess(dir, fnkey, alias)
	if err != nil {
		return nil, chk.Err("ReadSim: simulation file %q is invalid:\n%v", simfilepath, err)
	}
	return
}

// SetDefault sets defaults values
func (o *Simulation) SetDefault() {
	o.Grid.Kernel = "linear"
	o.Control.Tf = 1
	o.Control.Dt = 1
}

// PostProcess reads or generates meshes, checks consistency and fixes time control data
//  dir   -- directory of mesh files
//  fnkey -- simulation filename key
//  alias -- word to add to key; may be empty
func (o *Simulation) PostProcess(dir, fnkey, alias string) (err error) {

	// key and output directory
	o.Key = fnkey
	if alias != "" {
		o.Key += "-" + alias
	}
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/gompm/" + fnkey
	}

	// grid
	o.Ndim = len(o.Grid.Xmin)
	if o.Ndim != 2 && o.Ndim != 3 {
		return chk.Err("grid: xmin must have 2 or 3 components. len(xmin) = %d is invalid", o.Ndim)
	}

	// flow
	if len(o.Flow.V0) != 0 && len(o.Flow.V0) != o.Ndim {
		return chk.Err("flow: v0 must have %d components", o.Ndim)
	}
	if len(o.Flow.L) != 0 && len(o.Flow.L) != o.Ndim {
		return chk.Err("flow: L must be %d×%d", o.Ndim, o.Ndim)
	}
	_, err = o.Functions.Get(o.Flow.Fcn)
	if err != nil {
		return chk.Err("flow: %v", err)
	}

	// objects
	if len(o.Objects) < 1 {
		return chk.Err("at least one object is required")
	}
	for i, obj := range o.Objects {
		switch {
		case obj.Mshfile != "":
			obj.Msh, err = ReadMsh(dir, obj.Mshfile)
		case obj.Block != nil:
			obj.Msh, err = GenBlock(obj.Block.Xmin, obj.Block.Xmax, obj.Block.Ndiv)
		default:
			err = chk.Err("either mshfile or block must be given")
		}
		if err != nil {
			return chk.Err("object %d:\n%v", i, err)
		}
		if obj.Msh.Ndim != o.Ndim {
			return chk.Err("object %d: Ndim value is inconsistent: %d != %d", i, obj.Msh.Ndim, o.Ndim)
		}
	}

	// fix time control
	if o.Control.Tf < 1e-14 {
		o.Control.Tf = 1
	}
	if o.Control.Dt < 1e-14 {
		o.Control.Dt = 1
	}
	if o.Control.DtOut < o.Control.Dt {
		o.Control.DtOut = o.Control.Dt
	}
	return
}

// Enriched returns the enrichment flags of the vertices of each object
//  Note: the flags of objects without enriched tags are nil
func (o *Simulation) Enriched() (flags [][]bool) {
	flags = make([][]bool, len(o.Objects))
	for i, obj := range o.Objects {
		if len(obj.EnrichTags) > 0 {
			flags[i] = obj.Msh.EnrichedVerts(obj.EnrichTags)
		}
	}
	return
}

// Dirichlet returns the Dirichlet flags of the particles of each object
//  Note: the flags of objects without Dirichlet tags are nil
func (o *Simulation) Dirichlet() (flags [][]bool) {
	flags = make([][]bool, len(o.Objects))
	for i, obj := range o.Objects {
		if len(obj.DirichletTags) > 0 {
			flags[i] = obj.Msh.DirichletCells(obj.DirichletTags)
		}
	}
	return
}

// GetInfo writes formatted information
func (o *Simulation) GetInfo(w goio.Writer) (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return
}

// String returns a summary of the simulation data
func (o *Simulation) String() (l string) {
	l = io.Sf("%s: %s\n", o.Key, o.Data.Desc)
	l += io.Sf("  ndim = %d, kernel = %s, dx = %g, ndiv = %v\n", o.Ndim, o.Grid.Kernel, o.Grid.Dx, o.Grid.Ndiv)
	for i, obj := range o.Objects {
		l += io.Sf("  object %d: %d particles, %d corners\n", i, obj.Msh.NumElements(), obj.Msh.NumVertices())
	}
	l += io.Sf("  tf = %g, dt = %g, dtout = %g\n", o.Control.Tf, o.Control.Dt, o.Control.DtOut)
	return
}
