/*
 * logfile.go, part of gobigdft.
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

//Package logfile reads the output ("logfile") of a BigDFT calculation.
//
//A Logfile wraps one YAML document. Building it resolves the attributes of a
//Schema (energy, forces, eigenvalues...) by trying, for each of them, a list of
//paths into the document, since different kinds of calculations put the same
//quantity in different places. It also checks that the document is complete,
//and reports the warnings the engine wrote, plus a few of its own.
//
//A logfile with several documents (one per step of a geometry optimization,
//for instance) gives a Sequence. Load and FromFile decide which one to build
//and return a Result.
package logfile

import (
	"fmt"
	"io"
	"strings"

	"github.com/gobigdft/gobigdft/inputparams"
	"github.com/gobigdft/gobigdft/posinp"
	v3 "github.com/gobigdft/gobigdft/v3"
	"github.com/gobigdft/gobigdft/yamldoc"
	"gopkg.in/yaml.v3"
)

//BenignWarning is a warning that makes an incomplete document acceptable, as
//long as the document is not the first one of a geometry optimization.
const BenignWarning = "The norm of the residue is too large, need to recalculate input wavefunctions"

//Options control how logfiles are read. The zero value, or a nil *Options,
//uses the default schema, the builtin input definitions and a ZapWarner.
type Options struct {
	Schema      Schema                   //nil for DefaultSchema(). An empty, non-nil schema resolves nothing.
	Definitions *inputparams.Definitions //nil for inputparams.Builtin()
	Warner      Warner                   //nil for ZapWarner{}
}

func (O *Options) schema() Schema {
	if O == nil || O.Schema == nil {
		return defaultSchema
	}
	return O.Schema
}

func (O *Options) definitions() *inputparams.Definitions {
	if O == nil || O.Definitions == nil {
		return inputparams.Builtin()
	}
	return O.Definitions
}

func (O *Options) warner() Warner {
	if O == nil || O.Warner == nil {
		return ZapWarner{}
	}
	return O.Warner
}

//Logfile is the output of one BigDFT run, as one YAML document. It is
//read-only once built.
type Logfile struct {
	doc         *yamldoc.Doc
	attrs       Attributes
	bc          string
	forces      *v3.Matrix
	inputparams *inputparams.InputParams
	posinp      *posinp.Posinp
	warnings    []string
	warner      Warner
}

//New builds a Logfile from a document. It returns an error wrapping
//ErrIncomplete if the document is not empty but has no energy, forces nor walltime,
//unless the engine warned about BenignWarning in a document without a "geopt" section.
func New(doc *yamldoc.Doc, opts *Options) (*Logfile, error) {
	if doc == nil {
		doc = yamldoc.NewDoc(nil)
	}
	L := &Logfile{doc: doc, warner: opts.warner()}
	L.attrs = ResolveAll(doc, opts.schema())
	L.clean()
	if !doc.Empty() && !L.acceptableThoughIncomplete() &&
		!L.attrs.Has(Energy) && !L.attrs.Has(Forces) && !L.attrs.Has(Walltime) {
		return nil, newError(ErrIncomplete, "New")
	}
	var err error
	L.inputparams, err = inputparams.FromDoc(doc, opts.definitions())
	if err != nil {
		return nil, Error{err.Error(), "", -1, []string{"inputparams.FromDoc", "New"}, true, err}
	}
	L.posinp = L.inputparams.Posinp()
	L.checkWarnings()
	L.checkPsppar()
	return L, nil
}

//clean normalizes the attributes that need it: the boundary conditions are
//lowercased and the forces are turned into an Nx3 matrix. The document itself
//is not modified.
func (L *Logfile) clean() {
	if bc, ok := yamldoc.String(L.attrs.Get(BoundaryConditions)); ok {
		L.bc = strings.ToLower(bc)
	}
	f := L.attrs.Get(Forces)
	if f == nil {
		return
	}
	forces, err := reshapeForces(f)
	if err != nil {
		L.warn(err.Error())
		return
	}
	if n, ok := L.NAt(); ok && forces != nil && n != forces.NVecs() {
		L.warn(fmt.Sprintf("Forces found for %d atoms, but the system has %d atoms", forces.NVecs(), n))
	}
	L.forces = forces
}

//reshapeForces turns a list of single-key mappings {type: [fx, fy, fz]} into
//a matrix with one row per atom. An empty list gives a nil matrix, since a
//gonum matrix can't have zero rows.
func reshapeForces(n *yaml.Node) (*v3.Matrix, error) {
	if yamldoc.KindOf(n) != yamldoc.Sequence {
		return nil, fmt.Errorf("Atomic forces are not a list, ignoring them")
	}
	if len(n.Content) == 0 {
		return nil, nil
	}
	data := make([]float64, 0, 3*len(n.Content))
	for i, a := range n.Content {
		_, v, ok := yamldoc.Pair(a)
		f, ok2 := yamldoc.Floats(v)
		if !ok || !ok2 || len(f) != 3 {
			return nil, fmt.Errorf("Atomic forces of atom %d are malformed, ignoring the forces", i)
		}
		data = append(data, f...)
	}
	return v3.NewMatrix(data)
}

//acceptableThoughIncomplete is true when a document that looks incomplete is
//actually a normal step of a geometry optimization, whose wavefunctions had to
//be recomputed. The "geopt" key is only written in the first document of a
//geometry optimization, so its absence is taken to mean this is not the first one.
//Note that a standalone incomplete run with that warning passes this test too.
func (L *Logfile) acceptableThoughIncomplete() bool {
	if L.doc.Has(geoptKey) {
		return false
	}
	//The document's own list, whatever the schema resolves.
	w := yamldoc.Deref(L.doc.Get(Warnings))
	switch yamldoc.KindOf(w) {
	case yamldoc.Sequence:
		for _, m := range w.Content {
			if s, ok := yamldoc.String(m); ok && s == BenignWarning {
				return true
			}
		}
	case yamldoc.Scalar:
		s, _ := yamldoc.String(w)
		return strings.Contains(s, BenignWarning)
	}
	return false
}

//checkWarnings relays every warning written by the engine.
func (L *Logfile) checkWarnings() {
	w := L.attrs.Get(Warnings)
	switch yamldoc.KindOf(w) {
	case yamldoc.Sequence:
		for _, m := range w.Content {
			L.warn(warningText(m))
		}
	case yamldoc.Absent:
	default:
		L.warn(warningText(w))
	}
}

//warningText renders one engine warning. A warning containing ": " is read by
//YAML as a single-key mapping, which is turned back into "key: value".
func warningText(n *yaml.Node) string {
	if k, v, ok := yamldoc.Pair(n); ok {
		return k + ": " + yamldoc.Inline(v)
	}
	return yamldoc.Inline(n)
}

//checkPsppar warns if the XC functional of the pseudopotential of any atom
//type differs from the one in the input parameters. Missing values skip the check.
func (L *Logfile) checkPsppar() {
	types, ok := L.AtomTypes()
	if !ok {
		return
	}
	inp := L.doc.Lookup(yamldoc.P("dft", "ixc"))
	if inp == nil {
		inp = L.inputparams.Lookup(yamldoc.P("dft", "ixc"))
	}
	if inp == nil {
		return
	}
	for _, t := range types {
		psp := L.doc.Lookup(yamldoc.P(pspPrefix+t, pspXCKey))
		if psp == nil || inputparams.Same(psp, inp) {
			continue
		}
		L.warn(fmt.Sprintf("The XC of pseudo potentials (%s) is different from the input XC (%s) for the '%s' atoms",
			yamldoc.Inline(psp), yamldoc.Inline(inp), t))
	}
}

func (L *Logfile) warn(msg string) {
	L.warnings = append(L.warnings, msg)
	L.warner.Warn(msg)
}

//adopt replaces the input parameters of L by the shared ones of the first
//step of a geometry optimization, and its geometry by pos.
func (L *Logfile) adopt(params *inputparams.InputParams, pos *posinp.Posinp) {
	L.inputparams = params
	L.posinp = pos
}

//Read interface over the raw document

//Doc returns the raw document.
func (L *Logfile) Doc() *yamldoc.Doc {
	return L.doc
}

//Get returns the value of key in the raw document, or nil.
func (L *Logfile) Get(key string) *yaml.Node {
	return L.doc.Get(key)
}

//Has returns true if key is in the raw document.
func (L *Logfile) Has(key string) bool {
	return L.doc.Has(key)
}

//Keys returns the keys of the raw document, in order.
func (L *Logfile) Keys() []string {
	return L.doc.Keys()
}

//Len returns the number of keys of the raw document.
func (L *Logfile) Len() int {
	return L.doc.Len()
}

//Lookup follows path from the top of the raw document.
func (L *Logfile) Lookup(path yamldoc.Path) *yaml.Node {
	return L.doc.Lookup(path)
}

//Write writes the raw document to w. The resolved attributes are not written:
//they are computed again when the document is read.
func (L *Logfile) Write(w io.Writer) error {
	if err := yamldoc.Dump(w, L.doc); err != nil {
		return locate(err, "", -1, "Write")
	}
	return nil
}

//WriteFile writes the raw document to the file name (see yamldoc.Create for
//compression).
func (L *Logfile) WriteFile(name string) error {
	if err := yamldoc.DumpFile(name, L.doc); err != nil {
		return locate(err, name, -1, "WriteFile")
	}
	return nil
}

//Derived objects

//InputParams returns the input parameters of the run. For the steps of a
//geometry optimization, these are shared with the first step.
func (L *Logfile) InputParams() *inputparams.InputParams {
	return L.inputparams
}

//Posinp returns the geometry of the run, or nil if it is not known.
func (L *Logfile) Posinp() *posinp.Posinp {
	return L.posinp
}

//Warnings returns the warnings raised while building L, in order.
func (L *Logfile) Warnings() []string {
	return append([]string(nil), L.warnings...)
}

//Attributes returns the resolved attributes.
func (L *Logfile) Attributes() Attributes {
	return L.attrs
}

//Attribute returns the resolved value of the attribute name, or nil.
func (L *Logfile) Attribute(name string) *yaml.Node {
	return L.attrs.Get(name)
}
