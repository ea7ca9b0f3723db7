/*
 * sequence.go, part of gobigdft.
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

package logfile

import (
	"fmt"
	"io"
	"math"

	"github.com/gobigdft/gobigdft/inputparams"
	"github.com/gobigdft/gobigdft/posinp"
	"github.com/gobigdft/gobigdft/yamldoc"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//MultipleDocuments is the warning raised for a logfile with several documents
//that is not a geometry optimization.
const MultipleDocuments = "More than one document found in the logfile!"

//Sequence is a logfile with several documents, one Logfile per document, in
//the order they were written.
type Sequence struct {
	logs       []*Logfile
	geopt      bool
	geometries []*posinp.Posinp
	warnings   []string
}

//NewSequence groups logs, which must be at least 2. If the input parameters of
//the first one contain a "geopt" section, the sequence is a geometry optimization:
//every step then shares the input parameters of the first one, and its geometry
//is read from its own "Atomic structure". Otherwise, a MultipleDocuments warning
//is raised and the logs are left as they are.
func NewSequence(logs []*Logfile, opts *Options) (*Sequence, error) {
	if len(logs) < 2 {
		return nil, Error{fmt.Sprintf("a sequence needs at least 2 logfiles, got %d", len(logs)), "", -1, []string{"NewSequence"}, true, nil}
	}
	S := &Sequence{logs: append([]*Logfile(nil), logs...)}
	first := logs[0].InputParams()
	S.geopt = first != nil && first.Has(geoptKey)
	if !S.geopt {
		S.warnings = append(S.warnings, MultipleDocuments)
		opts.warner().Warn(MultipleDocuments)
		return S, nil
	}
	S.geometries = make([]*posinp.Posinp, len(logs))
	S.geometries[0] = logs[0].Posinp()
	for i, L := range logs[1:] {
		pos, err := stepGeometry(L)
		if err != nil {
			return nil, locate(err, "", i+1, "NewSequence")
		}
		if pos == nil {
			msg := fmt.Sprintf("No atomic structure in document %d of the geometry optimization", i+1)
			S.warnings = append(S.warnings, msg)
			opts.warner().Warn(msg)
		}
		L.adopt(first, pos)
		S.geometries[i+1] = pos
	}
	return S, nil
}

//stepGeometry reads the geometry at the end of one step of a geometry optimization.
func stepGeometry(L *Logfile) (*posinp.Posinp, error) {
	a := L.Astruct()
	if a == nil {
		return nil, nil
	}
	pos, err := posinp.FromNode(a)
	if err != nil {
		return nil, Error{err.Error(), "", -1, []string{"posinp.FromNode", "stepGeometry"}, true, err}
	}
	return pos, nil
}

func (S *Sequence) Len() int {
	return len(S.logs)
}

//At returns the i-th Logfile. It panics if i is out of range.
func (S *Sequence) At(i int) *Logfile {
	return S.logs[i]
}

//Logs returns the logfiles, in order. The slice is a copy.
func (S *Sequence) Logs() []*Logfile {
	return append([]*Logfile(nil), S.logs...)
}

//Kind returns KindGeopt or KindMultiple.
func (S *Sequence) Kind() Kind {
	if S.geopt {
		return KindGeopt
	}
	return KindMultiple
}

//InputParams returns the input parameters of the first document.
func (S *Sequence) InputParams() *inputparams.InputParams {
	return S.logs[0].InputParams()
}

//Geometries returns the geometry of each step of a geometry optimization, the
//first one being the input geometry. It is nil for other sequences.
func (S *Sequence) Geometries() []*posinp.Posinp {
	if S.geometries == nil {
		return nil
	}
	return append([]*posinp.Posinp(nil), S.geometries...)
}

//Warnings returns the warnings about the sequence as a whole. The warnings of each
//document are kept by its Logfile.
func (S *Sequence) Warnings() []string {
	return append([]string(nil), S.warnings...)
}

//Write writes every raw document to w, each one after a "---" marker.
func (S *Sequence) Write(w io.Writer) error {
	if err := yamldoc.DumpAll(w, S.docs()); err != nil {
		return locate(err, "", -1, "Write")
	}
	return nil
}

//WriteFile writes every raw document to the file name.
func (S *Sequence) WriteFile(name string) error {
	if err := yamldoc.DumpFile(name, S.docs()...); err != nil {
		return locate(err, name, -1, "WriteFile")
	}
	return nil
}

func (S *Sequence) docs() []*yamldoc.Doc {
	docs := make([]*yamldoc.Doc, len(S.logs))
	for i, L := range S.logs {
		docs[i] = L.Doc()
	}
	return docs
}

//Energies returns the energy of each document, NaN where it is missing.
func (S *Sequence) Energies() []float64 {
	return S.collect((*Logfile).Energy)
}

//ForceMaxima returns the largest force of each document, NaN where it is missing.
func (S *Sequence) ForceMaxima() []float64 {
	return S.collect((*Logfile).Forcemax)
}

func (S *Sequence) collect(get func(*Logfile) (float64, bool)) []float64 {
	ret := make([]float64, len(S.logs))
	for i, L := range S.logs {
		v, ok := get(L)
		if !ok {
			v = math.NaN()
		}
		ret[i] = v
	}
	return ret
}

//Converged returns true if the last document with a maximal force has it below
//the force criterion of the geometry optimization. It is false for sequences
//that are not geometry optimizations.
func (S *Sequence) Converged() bool {
	if !S.geopt {
		return false
	}
	cv, ok := S.logs[0].ForcemaxCv()
	if !ok {
		p := S.InputParams().Lookup(yamldoc.P(geoptKey, "forcemax"))
		if cv, ok = yamldoc.Float(p); !ok {
			return false
		}
	}
	fm := S.ForceMaxima()
	for i := len(fm) - 1; i >= 0; i-- {
		if !math.IsNaN(fm[i]) {
			return fm[i] <= cv
		}
	}
	return false
}

//Summary describes the energies along a sequence. Energies are in Hartree and
//forces in Ha/Bohr. Documents without an energy are not counted.
type Summary struct {
	Steps         int
	WithEnergy    int
	FirstEnergy   float64
	FinalEnergy   float64
	MinEnergy     float64
	MinStep       int
	MeanEnergy    float64
	StdEnergy     float64
	FinalForcemax float64 //NaN if unknown
	Converged     bool
}

//Summary computes a Summary for S.
func (S *Sequence) Summary() Summary {
	all := S.Energies()
	sum := Summary{Steps: len(all), MinStep: -1, FinalForcemax: math.NaN()}
	e := make([]float64, 0, len(all))
	steps := make([]int, 0, len(all))
	for i, v := range all {
		if !math.IsNaN(v) {
			e = append(e, v)
			steps = append(steps, i)
		}
	}
	sum.WithEnergy = len(e)
	if len(e) == 0 {
		sum.FirstEnergy, sum.FinalEnergy, sum.MinEnergy = math.NaN(), math.NaN(), math.NaN()
		sum.MeanEnergy, sum.StdEnergy = math.NaN(), math.NaN()
	} else {
		sum.FirstEnergy, sum.FinalEnergy = e[0], e[len(e)-1]
		min := floats.MinIdx(e)
		sum.MinEnergy, sum.MinStep = e[min], steps[min]
		sum.MeanEnergy, sum.StdEnergy = stat.MeanStdDev(e, nil)
	}
	fm := S.ForceMaxima()
	for i := len(fm) - 1; i >= 0; i-- {
		if !math.IsNaN(fm[i]) {
			sum.FinalForcemax = fm[i]
			break
		}
	}
	sum.Converged = S.Converged()
	return sum
}
