// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gompm/solid"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".sim", true)
	verbose := io.ArgToBool(1, true)
	saveSummary := io.ArgToBool(2, true)
	alias := io.ArgToString(3, "")

	// message
	if verbose {
		io.PfWhite("\nGompm -- Go Material Point Method\n\n")
		io.Pf("Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n\n")

		io.Pf("  filename path          fnamepath   = %v\n", fnamepath)
		io.Pf("  show messages          verbose     = %v\n", verbose)
		io.Pf("  save summary           saveSummary = %v\n", saveSummary)
		io.Pf("  word to add to results alias       = %q\n\n", alias)
	}

	// analysis data
	analysis, err := solid.NewFromFile(fnamepath, alias, verbose)
	if err != nil {
		chk.Panic("cannot initialise simulation:\n%v", err)
	}
	analysis.SaveSummary = saveSummary

	// run simulation
	err = analysis.Run()
	if err != nil {
		chk.Panic("Run failed:\n%v", err)
	}
}
