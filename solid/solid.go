// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package solid runs material point simulations of objects moving with a prescribed grid velocity
package solid

import (
	"math"
	"time"

	"github.com/cpmech/gompm/grid"
	"github.com/cpmech/gompm/inp"
	"github.com/cpmech/gompm/mpm"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/floats"
)

// Solid holds all data for a simulation using the material point method
type Solid struct {
	Sim         *inp.Simulation        // simulation data
	Grid        *grid.Grid             // background grid
	Wfcn        *grid.WeightFunction   // grid weight function
	Vel         *grid.NodalVelocity    // grid velocities
	VelFcn      dbf.T                  // time function multiplying grid velocities; nil means 1
	Particles   *mpm.Particles         // particles of all objects
	Method      mpm.UpdateMethod       // particle domain update method
	Weights     *mpm.Weights           // particle-grid and corner-grid pairs
	CornerW     [][]*mpm.CornerWeights // [nobj][npart] particle-corner data of enriched corners
	Meshes      []mpm.VolumetricMesh   // [nobj] particle domain meshes; nil if object has no enriched vertex
	Enriched    [][]bool               // [nobj][nverts] enrichment flags
	Dirichlet   [][]bool               // [nobj][npart] Dirichlet flags
	Summary     *Summary               // summary structure
	Results     *Results               // particle records at output times
	Time        float64                // current time
	SaveSummary bool                   // save summary at the end of Run
	SaveResults bool                   // save particle records at the end of Run
	Verbose     bool                   // show messages
}

// NewFromFile returns a new Solid structure from a .sim file
//  Input:
//   simfilepath -- simulation (.sim) filename including full path
//   alias       -- word to be appended to simulation key
//   verbose     -- show messages
func NewFromFile(simfilepath, alias string, verbose bool) (o *Solid, err error) {
	sim, err := inp.ReadSim(simfilepath, alias)
	if err != nil {
		return
	}
	return New(sim, verbose)
}

// New returns a new Solid structure
func New(sim *inp.Simulation, verbose bool) (o *Solid, err error) {

	// new object
	o = new(Solid)
	o.Sim = sim
	o.Verbose = verbose || sim.Data.Verbose
	nobj := len(sim.Objects)

	// grid
	o.Grid, err = grid.NewGrid(sim.Grid.Xmin, sim.Grid.Dx, sim.Grid.Ndiv)
	if err != nil {
		return nil, err
	}
	o.Wfcn, err = grid.NewWeightFunction(o.Grid, sim.Grid.Kernel)
	if err != nil {
		return nil, err
	}
	o.Vel = grid.NewNodalVelocity(o.Grid, nobj)
	o.VelFcn, err = sim.Functions.Get(sim.Flow.Fcn)
	if err != nil {
		return nil, err
	}
	err = o.setVelocity(0)
	if err != nil {
		return nil, err
	}

	// particles
	domains := make([][][][]float64, nobj)
	for i, obj := range sim.Objects {
		domains[i] = obj.Msh.Domains()
	}
	o.Particles, err = mpm.NewParticles(sim.Ndim, domains)
	if err != nil {
		return nil, err
	}
	o.Method, err = mpm.NewUpdateMethod(o.Particles, sim.Data.Nworkers)
	if err != nil {
		return nil, err
	}

	// pairs
	capacity := sim.Data.PairCap
	if capacity < 1 {
		capacity = o.Wfcn.PairCapacity(o.Particles.Ncorners)
	}
	o.Weights = mpm.NewWeights(o.Particles, capacity)

	// enrichment and Dirichlet flags
	o.Enriched = sim.Enriched()
	o.Dirichlet = sim.Dirichlet()
	if sim.Data.Enrich {
		o.CornerW = mpm.NewCornerWeights(o.Particles)
		o.Meshes = make([]mpm.VolumetricMesh, nobj)
		for i, obj := range sim.Objects {
			if o.Enriched[i] != nil {
				o.Meshes[i] = obj.Msh
			}
		}
	}

	// output
	o.Summary = new(Summary)
	o.Results = new(Results)
	o.SaveResults = sim.Data.Csv
	return
}

// Step runs one time step
//  Control flow: weights => domain => position => deformation gradient
func (o *Solid) Step(dt float64) (err error) {
	if o.Sim.Data.Enrich {
		err = o.Method.UpdateParticleInterpolationWeightWithEnrichment(o.Wfcn, o.Meshes, o.Enriched, o.Weights, o.CornerW)
	} else {
		err = o.Method.UpdateParticleInterpolationWeight(o.Wfcn, o.Weights)
	}
	if err != nil {
		return
	}
	o.Summary.MaxUnityErr = max(o.Summary.MaxUnityErr, o.unityError())
	if o.VelFcn != nil {
		err = o.setVelocity(o.Time)
		if err != nil {
			return
		}
	}
	err = o.Method.UpdateParticleDomain(o.Vel, o.Weights, dt)
	if err != nil {
		return
	}
	err = o.Method.UpdateParticlePosition(dt, o.Dirichlet)
	if err != nil {
		return
	}
	err = o.Method.UpdateParticleDeformationGradient()
	if err != nil {
		return
	}
	o.Time += dt
	o.Summary.Nsteps++
	return
}

// Run runs the time loop up to Sim.Control.Tf
func (o *Solid) Run() (err error) {

	// time control
	t := o.Time
	tf := o.Sim.Control.Tf
	tout := t + o.Sim.Control.DtOut
	cputime := time.Now()

	// message
	if o.Verbose {
		io.Pf("%v", o.Sim)
	}

	// first output
	o.output(t)
	if o.Verbose {
		io.Pfyel("time = %10.6f  min(det(F)) = %g\n", t, o.Summary.MinDetF[0])
	}

	// time loop
	var dt float64
	var lasttimestep bool
	for t < tf && !lasttimestep {

		// time increment
		dt = o.Sim.Control.Dt
		if t+dt >= tf-1e-14 {
			dt = tf - t
			lasttimestep = true
		}

		// update particles
		err = o.Step(dt)
		if err != nil {
			return chk.Err("step failed at time = %g:\n%v", t, err)
		}
		t = o.Time

		// output
		if t >= tout-1e-14 || lasttimestep {
			o.output(t)
			tout += o.Sim.Control.DtOut
			if o.Verbose {
				n := len(o.Summary.MinDetF)
				io.Pfyel("time = %10.6f  min(det(F)) = %g\n", t, o.Summary.MinDetF[n-1])
			}
		}
	}

	// message
	if o.Verbose {
		io.Pf("\nfinal time = %v\n", t)
		io.Pf("max unity error = %g\n", o.Summary.MaxUnityErr)
		io.PfGreen("cpu time   = %v\n", time.Since(cputime))
	}

	// save results
	if o.SaveSummary {
		err = o.Summary.Save(o.Sim.DirOut, o.Sim.Key)
		if err != nil {
			return
		}
	}
	if o.SaveResults {
		err = o.Results.Save(o.Sim.DirOut, o.Sim.Key)
	}
	return
}

// output records summary and particle data at time t
func (o *Solid) output(t float64) {
	o.Summary.output(t, o.Particles)
	if o.SaveResults {
		o.Results.output(t, o.Particles)
	}
}

// setVelocity sets the grid velocities of all objects to f(t) (v0 + L·x)
func (o *Solid) setVelocity(t float64) (err error) {
	s := 1.0
	if o.VelFcn != nil {
		s = o.VelFcn.F(t, nil)
	}
	flow := o.Sim.Flow
	v0 := make([]float64, len(flow.V0))
	floats.ScaleTo(v0, s, flow.V0)
	L := make([][]float64, len(flow.L))
	for i, row := range flow.L {
		L[i] = make([]float64, len(row))
		floats.ScaleTo(L[i], s, row)
	}
	for obj := range o.Vel.V {
		err = o.Vel.SetAffine(obj, v0, L)
		if err != nil {
			return
		}
	}
	return
}

// unityError returns the max deviation from one of the sum of weights of all particles
func (o *Solid) unityError() (res float64) {
	for obj, lists := range o.Weights.Particle {
		for p, l := range lists {
			sum := l.SumW()
			if o.CornerW != nil {
				sum += floats.Sum(o.CornerW[obj][p].W)
			}
			res = max(res, math.Abs(sum-1))
		}
	}
	return
}
