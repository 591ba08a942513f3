// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpm

import (
	"runtime"
	"sync"
)

// parallelThreshold is the minimum number of particles to use parallel processing
const parallelThreshold = 64

// workers splits loops over particles into contiguous chunks, one per goroutine
type workers struct {
	nworkers  int // number of goroutines
	threshold int // below this number of items, run serially
}

// newWorkers returns a new pool; nworkers < 1 means one worker per available processor
func newWorkers(nworkers int) *workers {
	if nworkers < 1 {
		nworkers = runtime.GOMAXPROCS(0)
	}
	return &workers{nworkers: nworkers, threshold: parallelThreshold}
}

// run calls fcn(wid, i0, i1) for chunks [i0,i1) covering [0,n). wid in [0,nworkers) identifies
// the worker and its scratchpad
//  Note: returns the error of the lowest chunk that failed
func (o *workers) run(n int, fcn func(wid, i0, i1 int) error) error {
	if n == 0 {
		return nil
	}
	if o.nworkers < 2 || n < o.threshold {
		return fcn(0, 0, n)
	}
	chunkSize := (n + o.nworkers - 1) / o.nworkers
	errs := make([]error, o.nworkers)
	var wg sync.WaitGroup
	for w := 0; w < o.nworkers; w++ {
		i0 := w * chunkSize
		i1 := min(i0+chunkSize, n)
		if i0 >= i1 {
			break
		}
		wg.Add(1)
		go func(wid, i0, i1 int) {
			defer wg.Done()
			errs[wid] = fcn(wid, i0, i1)
		}(w, i0, i1)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
