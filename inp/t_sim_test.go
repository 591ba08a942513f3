// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/require"
)

func Test_sim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim01. JSON with block")

	sim, err := ReadSim("data/block2d.sim", "")
	require.NoError(tst, err)
	io.Pforan("%v", sim)
	require.Equal(tst, "block2d", sim.Key)
	require.Equal(tst, "/tmp/gompm/block2d", sim.DirOut)
	chk.Int(tst, "ndim", sim.Ndim, 2)
	require.True(tst, sim.Data.Enrich)
	chk.Int(tst, "paircap", sim.Data.PairCap, 16)
	require.Equal(tst, "linear", sim.Grid.Kernel)
	chk.Deep2(tst, "L", 1e-17, sim.Flow.L, [][]float64{{0, 0.2}, {0, 0}})
	require.Empty(tst, sim.Flow.V0)
	require.Equal(tst, "stop", sim.Flow.Fcn)
	fcn, err := sim.Functions.Get("stop")
	require.NoError(tst, err)
	chk.Float64(tst, "f(0)", 1e-17, fcn.F(0, nil), 1)
	chk.Float64(tst, "f(0.3)", 1e-15, fcn.F(0.3, nil), 0.5)
	chk.Float64(tst, "f(1)", 1e-17, fcn.F(1, nil), 0)
	fcn, err = sim.Functions.Get("")
	require.NoError(tst, err)
	require.Nil(tst, fcn)
	require.Contains(tst, sim.Functions[0].String(), `"type":"rmp"`)
	chk.Float64(tst, "tf", 1e-17, sim.Control.Tf, 0.5)
	chk.Float64(tst, "dt", 1e-17, sim.Control.Dt, 0.1)
	chk.Float64(tst, "dtout", 1e-17, sim.Control.DtOut, 0.1)

	require.Len(tst, sim.Objects, 1)
	chk.Int(tst, "nele", sim.Objects[0].Msh.NumElements(), 2)
	require.Equal(tst, [][]bool{{false, true, false, false, true, false}}, sim.Enriched())
	require.Equal(tst, [][]bool{{true, true}}, sim.Dirichlet())

	var buf bytes.Buffer
	err = sim.GetInfo(&buf)
	require.NoError(tst, err)
	require.Contains(tst, buf.String(), "simple shear")
}

func Test_sim02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim02. JSON with mesh file")

	sim, err := ReadSim("data/square.sim", "run1")
	require.NoError(tst, err)
	require.Equal(tst, "square-run1", sim.Key)
	require.Equal(tst, "/tmp/gompm/square", sim.DirOut)
	require.Equal(tst, "qbspline", sim.Grid.Kernel)
	chk.Array(tst, "v0", 1e-17, sim.Flow.V0, []float64{1, 0})
	chk.Float64(tst, "dtout", 1e-17, sim.Control.DtOut, 0.25)
	require.Equal(tst, [][]bool{{true, true, false, false}}, sim.Enriched())
	require.Equal(tst, [][]bool{nil}, sim.Dirichlet())
}

func Test_sim03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim03. YAML")

	sim, err := ReadSim("data/block3d.yaml", "")
	require.NoError(tst, err)
	require.Equal(tst, "block3d", sim.Key)
	chk.Int(tst, "ndim", sim.Ndim, 3)
	chk.Int(tst, "nworkers", sim.Data.Nworkers, 2)
	require.True(tst, sim.Data.Csv)
	require.Equal(tst, "qbspline", sim.Grid.Kernel)
	chk.Deep2(tst, "L", 1e-17, sim.Flow.L, [][]float64{{0.1, 0, 0}, {0, 0, 0}, {0, 0, -0.05}})
	chk.Int(tst, "nele", sim.Objects[0].Msh.NumElements(), 8)
	require.Equal(tst, [][]bool{nil}, sim.Enriched())
}

func Test_sim04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim04. errors")

	_, err := ReadSim("data/nonexistent.sim", "")
	require.Error(tst, err)

	bad := []string{
		`{"grid":{"xmin":[0],"dx":1,"ndiv":[1]},"objects":[{"block":{"xmin":[0,0],"xmax":[1,1],"ndiv":[1,1]}}]}`,
		`{"grid":{"xmin":[0,0],"dx":1,"ndiv":[1,1]},"objects":[]}`,
		`{"grid":{"xmin":[0,0],"dx":1,"ndiv":[1,1]},"objects":[{"desc":"nothing"}]}`,
		`{"grid":{"xmin":[0,0,0],"dx":1,"ndiv":[1,1,1]},"objects":[{"block":{"xmin":[0,0],"xmax":[1,1],"ndiv":[1,1]}}]}`,
		`{"grid":{"xmin":[0,0],"dx":1,"ndiv":[1,1]},"flow":{"v0":[1]},"objects":[{"block":{"xmin":[0,0],"xmax":[1,1],"ndiv":[1,1]}}]}`,
		`{"grid":{"xmin":[0,0],"dx":1,"ndiv":[1,1]},"objects":[{"mshfile":"nonexistent.msh"}]}`,
		`{"grid":{"xmin":[0,0],"dx":1,"ndiv":[1,1]},"flow":{"fcn":"pulse"},"objects":[{"block":{"xmin":[0,0],"xmax":[1,1],"ndiv":[1,1]}}]}`,
		`{"functions":[{"name":"pulse","type":"nonexistent"}],"grid":{"xmin":[0,0],"dx":1,"ndiv":[1,1]},"flow":{"fcn":"pulse"},"objects":[{"block":{"xmin":[0,0],"xmax":[1,1],"ndiv":[1,1]}}]}`,
		`{"grid":`,
	}
	dir := tst.TempDir()
	for i, b := range bad {
		fn := filepath.Join(dir, io.Sf("bad%d.sim", i))
		err = os.WriteFile(fn, []byte(b), 0644)
		require.NoError(tst, err)
		_, err = ReadSim(fn, "")
		require.Error(tst, err, b)
	}
}
