// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gompm/mpm"
	"github.com/cpmech/gompm/shp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// tags of boundary vertices of generated blocks
const (
	TagXmin = -10 // vertices at x = xmin
	TagXmax = -11 // vertices at x = xmax
	TagYmin = -20 // vertices at y = ymin
	TagYmax = -21 // vertices at y = ymax
	TagZmin = -30 // vertices at z = zmin
	TagZmax = -31 // vertices at z = zmax
	TagCell = -1  // cells of generated blocks
)

// Vert holds vertex data
type Vert struct {
	Id  int       `json:"id"`  // id
	Tag int       `json:"tag"` // tag
	C   []float64 `json:"c"`   // coordinates (size==2 or 3)
}

// Cell holds cell data; each cell is the domain of one particle
type Cell struct {
	Id    int    `json:"id"`    // id
	Tag   int    `json:"tag"`   // tag
	Type  string `json:"type"`  // geometry type: qua4 or hex8
	Verts []int  `json:"verts"` // vertices in natural order
}

// Mesh holds the mesh of particle domains of one object
type Mesh struct {

	// from JSON
	Verts []*Vert `json:"verts"` // vertices
	Cells []*Cell `json:"cells"` // cells

	// derived
	FnamePath  string  // complete filename path
	Ndim       int     // space dimension
	Xmin, Xmax float64 // min and max x-coordinate
	Ymin, Ymax float64 // min and max y-coordinate
	Zmin, Zmax float64 // min and max z-coordinate

	// derived: maps
	VertTag2verts map[int][]*Vert // vertex tag => set of vertices
	CellTag2cells map[int][]*Cell // cell tag => set of cells
}

// check interface
var _ mpm.VolumetricMesh = (*Mesh)(nil)

// ReadMsh reads a mesh of particle domains
func ReadMsh(dir, fn string) (o *Mesh, err error) {

	// new mesh
	o = new(Mesh)

	// read file
	o.FnamePath = filepath.Join(dir, fn)
	b, err := os.ReadFile(o.FnamePath)
	if err != nil {
		return nil, chk.Err("ReadMsh: cannot read mesh file %q:\n%v", o.FnamePath, err)
	}

	// decode
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("ReadMsh: cannot unmarshal mesh file %q:\n%v", o.FnamePath, err)
	}

	// derived data
	err = o.init()
	if err != nil {
		return nil, chk.Err("ReadMsh: mesh file %q is invalid:\n%v", o.FnamePath, err)
	}
	return
}

// WriteMsh writes the mesh to dir/fn in the format read by ReadMsh
func (o *Mesh) WriteMsh(dir, fn string) (err error) {
	err = os.MkdirAll(dir, 0777)
	if err != nil {
		return chk.Err("WriteMsh: cannot create directory %q:\n%v", dir, err)
	}
	fnpath := filepath.Join(dir, fn)
	err = os.WriteFile(fnpath, []byte(o.String()+"\n"), 0644)
	if err != nil {
		return chk.Err("WriteMsh: cannot write mesh file %q:\n%v", fnpath, err)
	}
	return
}

// GenBlock generates a structured mesh of a box with ndiv cells along each direction
//  Note: boundary vertices are tagged with TagXmin, TagXmax, ... checking x first, then y, then z;
//        all cells are tagged with TagCell
func GenBlock(xmin, xmax []float64, ndiv []int) (o *Mesh, err error) {

	// check
	ndim := len(xmin)
	if ndim != 2 && ndim != 3 {
		return nil, chk.Err("GenBlock: xmin must have 2 or 3 components. len(xmin) = %d is invalid", ndim)
	}
	if len(xmax) != ndim || len(ndiv) != ndim {
		return nil, chk.Err("GenBlock: xmax and ndiv must have %d components", ndim)
	}
	for i := 0; i < ndim; i++ {
		if ndiv[i] < 1 || xmax[i] <= xmin[i] {
			return nil, chk.Err("GenBlock: direction %d is invalid: xmin = %g, xmax = %g, ndiv = %d", i, xmin[i], xmax[i], ndiv[i])
		}
	}

	// vertices
	o = new(Mesh)
	n := []int{ndiv[0], ndiv[1], 0}
	if ndim == 3 {
		n[2] = ndiv[2]
	}
	vid := func(i, j, k int) int { return i + j*(n[0]+1) + k*(n[0]+1)*(n[1]+1) }
	tags := [][]int{{TagXmin, TagXmax}, {TagYmin, TagYmax}, {TagZmin, TagZmax}}
	for k := 0; k <= n[2]; k++ {
		for j := 0; j <= n[1]; j++ {
			for i := 0; i <= n[0]; i++ {
				ijk := []int{i, j, k}
				v := &Vert{Id: vid(i, j, k), C: make([]float64, ndim)}
				for d := ndim - 1; d >= 0; d-- {
					v.C[d] = xmin[d] + float64(ijk[d])*(xmax[d]-xmin[d])/float64(n[d])
					if ijk[d] == 0 {
						v.Tag = tags[d][0]
					}
					if ijk[d] == n[d] {
						v.Tag = tags[d][1]
					}
				}
				o.Verts = append(o.Verts, v)
			}
		}
	}

	// cells
	geo := shp.GetGeoType(ndim)
	nc := shp.GetNverts(geo)
	offsets := [][]int{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}, {0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1}}
	nz := max(n[2], 1)
	for k := 0; k < nz; k++ {
		for j := 0; j < n[1]; j++ {
			for i := 0; i < n[0]; i++ {
				c := &Cell{Id: len(o.Cells), Tag: TagCell, Type: geo, Verts: make([]int, nc)}
				for m := 0; m < nc; m++ {
					c.Verts[m] = vid(i+offsets[m][0], j+offsets[m][1], k+offsets[m][2])
				}
				o.Cells = append(o.Cells, c)
			}
		}
	}

	// derived data
	err = o.init()
	if err != nil {
		return nil, err
	}
	return
}

// init checks the mesh and computes derived data
func (o *Mesh) init() (err error) {

	// check
	if len(o.Verts) < 2 {
		return chk.Err("at least 2 vertices are required")
	}
	if len(o.Cells) < 1 {
		return chk.Err("at least 1 cell is required")
	}

	// space dimension
	switch o.Cells[0].Type {
	case "qua4":
		o.Ndim = 2
	case "hex8":
		o.Ndim = 3
	default:
		return chk.Err("cell type %q is not available. use qua4 or hex8", o.Cells[0].Type)
	}

	// vertices
	o.VertTag2verts = make(map[int][]*Vert)
	for i, v := range o.Verts {
		if v.Id != i {
			return chk.Err("vertex %d has id = %d. ids must be sequential", i, v.Id)
		}
		if len(v.C) < o.Ndim {
			return chk.Err("vertex %d must have %d coordinates", i, o.Ndim)
		}
		v.C = v.C[:o.Ndim]
		if v.Tag < 0 {
			o.VertTag2verts[v.Tag] = append(o.VertTag2verts[v.Tag], v)
		}
		if i == 0 {
			o.Xmin, o.Xmax = v.C[0], v.C[0]
			o.Ymin, o.Ymax = v.C[1], v.C[1]
			if o.Ndim == 3 {
				o.Zmin, o.Zmax = v.C[2], v.C[2]
			}
		}
		o.Xmin, o.Xmax = min(o.Xmin, v.C[0]), max(o.Xmax, v.C[0])
		o.Ymin, o.Ymax = min(o.Ymin, v.C[1]), max(o.Ymax, v.C[1])
		if o.Ndim == 3 {
			o.Zmin, o.Zmax = min(o.Zmin, v.C[2]), max(o.Zmax, v.C[2])
		}
	}

	// cells
	o.CellTag2cells = make(map[int][]*Cell)
	for i, c := range o.Cells {
		if c.Id != i {
			return chk.Err("cell %d has id = %d. ids must be sequential", i, c.Id)
		}
		if c.Tag >= 0 {
			return chk.Err("cell %d has tag = %d. tags must be negative", i, c.Tag)
		}
		if c.Type != o.Cells[0].Type {
			return chk.Err("cell %d has type %q. all cells must be %q", i, c.Type, o.Cells[0].Type)
		}
		if len(c.Verts) != shp.GetNverts(c.Type) {
			return chk.Err("cell %d must have %d vertices", i, shp.GetNverts(c.Type))
		}
		for _, v := range c.Verts {
			if v < 0 || v >= len(o.Verts) {
				return chk.Err("cell %d has invalid vertex %d", i, v)
			}
		}
		o.CellTag2cells[c.Tag] = append(o.CellTag2cells[c.Tag], c)
	}
	return
}

// NumElements returns the number of cells
func (o *Mesh) NumElements() int { return len(o.Cells) }

// NumVertices returns the number of vertices
func (o *Mesh) NumVertices() int { return len(o.Verts) }

// EleVertIndex returns the id of local vertex localVert of cell ele
func (o *Mesh) EleVertIndex(ele, localVert int) int { return o.Cells[ele].Verts[localVert] }

// Domains returns the coordinates of the vertices of each cell
//  Output: [ncells][nverts][ndim] new slices
func (o *Mesh) Domains() (domains [][][]float64) {
	domains = make([][][]float64, len(o.Cells))
	for i, c := range o.Cells {
		domains[i] = make([][]float64, len(c.Verts))
		for m, v := range c.Verts {
			domains[i][m] = make([]float64, o.Ndim)
			copy(domains[i][m], o.Verts[v].C)
		}
	}
	return
}

// EnrichedVerts returns the flags of the vertices with any of the given tags
func (o *Mesh) EnrichedVerts(tags []int) (flags []bool) {
	flags = make([]bool, len(o.Verts))
	for _, tag := range tags {
		for _, v := range o.VertTag2verts[tag] {
			flags[v.Id] = true
		}
	}
	return
}

// DirichletCells returns the flags of the cells with any of the given tags
func (o *Mesh) DirichletCells(tags []int) (flags []bool) {
	flags = make([]bool, len(o.Cells))
	for _, tag := range tags {
		for _, c := range o.CellTag2cells[tag] {
			flags[c.Id] = true
		}
	}
	return
}

// String returns a JSON representation of *Vert
func (o *Vert) String() string {
	l := io.Sf("{\"id\":%4d, \"tag\":%6d, \"c\":[", o.Id, o.Tag)
	for i, x := range o.C {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("%23.15e", x)
	}
	l += "] }"
	return l
}

// String returns a JSON representation of *Cell
func (o *Cell) String() string {
	l := io.Sf("{\"id\":%d, \"tag\":%d, \"type\":%q, \"verts\":[", o.Id, o.Tag, o.Type)
	for i, x := range o.Verts {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("%d", x)
	}
	l += "] }"
	return l
}

// String returns a JSON representation of *Mesh
func (o Mesh) String() string {
	l := "{\n  \"verts\" : [\n"
	for i, x := range o.Verts {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("    %v", x)
	}
	l += "\n  ],\n  \"cells\" : [\n"
	for i, x := range o.Cells {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("    %v", x)
	}
	l += "\n  ]\n}"
	return l
}
