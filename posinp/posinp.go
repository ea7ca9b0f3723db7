/*
 * posinp.go, part of gobigdft.
 *
 * Copyright 2026 The gobigdft authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package posinp implements the atomic geometry ("posinp") of a BigDFT calculation.
//
//A Posinp is built from the "posinp" block of the input parameters, or from the
//"Atomic structure" block the engine writes at each step of a calculation. Both
//share the same layout:
//
//	units: angstroem
//	cell: [8.0, .inf, 8.0]
//	positions:
//	- N: [0.0, 0.0, 0.0107161998748779]
//	- N: [0.0, 0.0, 1.10427379608154]
//
//Positions are kept in the units they were given in.
package posinp

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	bigdft "github.com/gobigdft/gobigdft"
	v3 "github.com/gobigdft/gobigdft/v3"
	"github.com/gobigdft/gobigdft/yamldoc"
	"gopkg.in/yaml.v3"
)

//Posinp contains the atom types, positions, units, boundary conditions and
//cell of a geometry.
type Posinp struct {
	types  []string
	coords *v3.Matrix
	units  string
	bc     string
	cell   []float64 //nil for free boundary conditions. Infinite sizes are +Inf.
}

//New builds a Posinp from atom types and the corresponding positions. cell may
//be nil, for free boundary conditions. Infinite cell sizes set surface or wire
//boundary conditions.
func New(types []string, coords *v3.Matrix, units string, cell []float64) (*Posinp, error) {
	if len(types) == 0 || coords == nil {
		return nil, Error{"no atoms given", []string{"New"}, true}
	}
	if coords.NVecs() != len(types) {
		return nil, Error{fmt.Sprintf("%d atom types but %d positions", len(types), coords.NVecs()), []string{"New"}, true}
	}
	if units == "" {
		units = bigdft.Atomic
	}
	bc, err := boundaryConditions(cell)
	if err != nil {
		return nil, decorate(err, "New")
	}
	P := &Posinp{types: append([]string(nil), types...), coords: coords.Copy(), units: units, bc: bc}
	if cell != nil {
		P.cell = append([]float64(nil), cell...)
	}
	return P, nil
}

//FromNode builds a Posinp from a structure block decoded from YAML.
func FromNode(n *yaml.Node) (*Posinp, error) {
	if yamldoc.KindOf(n) != yamldoc.Mapping {
		return nil, Error{"structure block is not a mapping", []string{"FromNode"}, true}
	}
	units := bigdft.Atomic
	if u, ok := yamldoc.String(yamldoc.P("units").From(n)); ok {
		units = strings.ToLower(u)
	}
	var cell []float64
	if c := yamldoc.P("cell").From(n); yamldoc.KindOf(c) == yamldoc.Sequence {
		var ok bool
		if cell, ok = cellSizes(c); !ok {
			return nil, Error{"cell should contain 3 sizes", []string{"FromNode"}, true}
		}
	}
	pos := yamldoc.P("positions").From(n)
	if yamldoc.KindOf(pos) != yamldoc.Sequence || len(pos.Content) == 0 {
		return nil, Error{"no positions in structure block", []string{"FromNode"}, true}
	}
	types := make([]string, 0, len(pos.Content))
	data := make([]float64, 0, 3*len(pos.Content))
	for i := range pos.Content {
		t, xyz, err := atom(yamldoc.P(i).From(pos))
		if err != nil {
			return nil, Error{fmt.Sprintf("atom %d: %s", i, err.Error()), []string{"FromNode"}, true}
		}
		types = append(types, t)
		data = append(data, xyz[:]...)
	}
	coords, err := v3.NewMatrix(data)
	if err != nil {
		return nil, Error{err.Error(), []string{"v3.NewMatrix", "FromNode"}, true}
	}
	return New(types, coords, units, cell)
}

//atom reads one element of the positions list. The atom type is the first key
//holding a list of 3 numbers; other keys (spin, frozen coordinates...) are ignored.
func atom(n *yaml.Node) (string, [3]float64, error) {
	var xyz [3]float64
	if yamldoc.KindOf(n) != yamldoc.Mapping {
		return "", xyz, fmt.Errorf("not a mapping")
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		f, ok := yamldoc.Floats(n.Content[i+1])
		if ok && len(f) == 3 {
			copy(xyz[:], f)
			return n.Content[i].Value, xyz, nil
		}
	}
	return "", xyz, fmt.Errorf("no atom type with 3 coordinates")
}

//cellSizes reads a cell. BigDFT writes infinite sizes as .inf or as the string "inf".
func cellSizes(n *yaml.Node) ([]float64, bool) {
	if len(n.Content) != 3 {
		return nil, false
	}
	ret := make([]float64, 3)
	for i, v := range n.Content {
		if s, _ := yamldoc.String(v); strings.TrimPrefix(strings.ToLower(s), ".") == "inf" {
			ret[i] = math.Inf(1)
			continue
		}
		f, ok := yamldoc.Float(v)
		if !ok {
			return nil, false
		}
		ret[i] = math.Abs(f)
	}
	return ret, true
}

//boundaryConditions deduces the boundary conditions from the cell.
func boundaryConditions(cell []float64) (string, error) {
	if cell == nil {
		return bigdft.Free, nil
	}
	if len(cell) != 3 {
		return "", Error{"cell should contain 3 sizes", []string{"boundaryConditions"}, true}
	}
	inf := [3]bool{math.IsInf(cell[0], 1), math.IsInf(cell[1], 1), math.IsInf(cell[2], 1)}
	switch inf {
	case [3]bool{false, false, false}:
		return bigdft.Periodic, nil
	case [3]bool{false, true, false}:
		return bigdft.Surface, nil
	case [3]bool{true, true, false}:
		return bigdft.Wire, nil
	case [3]bool{true, true, true}:
		return bigdft.Free, nil
	}
	return "", Error{fmt.Sprintf("unsupported cell %v", cell), []string{"boundaryConditions"}, true}
}

//Posinp methods

//Len returns the number of atoms.
func (P *Posinp) Len() int {
	return len(P.types)
}

//Type returns the type of the ith atom.
func (P *Posinp) Type(i int) string {
	return P.types[i]
}

//Types returns a copy of the atom types.
func (P *Posinp) Types() []string {
	return append([]string(nil), P.types...)
}

//Coords returns a copy of the positions.
func (P *Posinp) Coords() *v3.Matrix {
	return P.coords.Copy()
}

//Position returns the position of the ith atom.
func (P *Posinp) Position(i int) [3]float64 {
	return P.coords.Vec(i)
}

func (P *Posinp) Units() string {
	return P.units
}

func (P *Posinp) BoundaryConditions() string {
	return P.bc
}

//Cell returns a copy of the cell, or nil for free boundary conditions.
func (P *Posinp) Cell() []float64 {
	if P.cell == nil {
		return nil
	}
	return append([]float64(nil), P.cell...)
}

//Distance returns the distance between atoms i and j, in bohr. It returns
//an error for reduced coordinates.
func (P *Posinp) Distance(i, j int) (float64, error) {
	f, ok := bigdft.LengthFactor(P.units)
	if !ok {
		return 0, Error{"no distances in " + P.units + " units", []string{"Distance"}, false}
	}
	return f * P.coords.Distance(i, j), nil
}

//Equal returns true if both geometries have the same atoms, units and cell, and
//positions that do not differ by more than tol.
func (P *Posinp) Equal(Q *Posinp, tol float64) bool {
	if P == nil || Q == nil {
		return P == Q
	}
	if P.units != Q.units || P.bc != Q.bc || len(P.types) != len(Q.types) || len(P.cell) != len(Q.cell) {
		return false
	}
	for i := range P.types {
		if P.types[i] != Q.types[i] {
			return false
		}
	}
	for i := range P.cell {
		if P.cell[i] != Q.cell[i] && math.Abs(P.cell[i]-Q.cell[i]) > tol {
			return false
		}
	}
	return P.coords.EqualApprox(Q.coords, tol)
}

//String returns the geometry in BigDFT's xyz-like layout: the number of atoms and
//the units, the boundary conditions (and cell, if any), and one line per atom.
func (P *Posinp) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d   %s\n", P.Len(), P.units)
	if P.cell == nil {
		fmt.Fprintf(&b, "%s\n", P.bc)
	} else {
		fmt.Fprintf(&b, "%s   %s   %s   %s\n", P.bc, ftoa(P.cell[0]), ftoa(P.cell[1]), ftoa(P.cell[2]))
	}
	for i, t := range P.types {
		x := P.coords.Vec(i)
		fmt.Fprintf(&b, "%s   %s   %s   %s\n", t, ftoa(x[0]), ftoa(x[1]), ftoa(x[2]))
	}
	return b.String()
}

func ftoa(f float64) string {
	if math.IsInf(f, 1) {
		return ".inf"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
