/*
 * inputparams.go, part of gobigdft.
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

//Package inputparams implements the input parameters of a BigDFT calculation,
//as read back from the logfile: only the recognized input sections are kept,
//and the values equal to BigDFT's defaults are cleaned away.
package inputparams

import (
	"github.com/gobigdft/gobigdft/posinp"
	"github.com/gobigdft/gobigdft/yamldoc"
	"gopkg.in/yaml.v3"
)

//Param is one top-level input section and its value.
type Param struct {
	Key   string
	Value *yaml.Node
}

//InputParams contains the cleaned input sections of a calculation and the
//geometry given in its "posinp" section, if any. It is not modified after
//being built.
type InputParams struct {
	params []Param
	posinp *posinp.Posinp
}

//New builds InputParams from the given sections, cleaning them with defs (see Clean).
//The "posinp" section, if present, is parsed into a geometry and removed from the
//parameters.
func New(params []Param, defs *Definitions) (*InputParams, error) {
	I := new(InputParams)
	for _, p := range Clean(params, defs) {
		if p.Key != "posinp" {
			I.params = append(I.params, p)
			continue
		}
		pos, err := posinp.FromNode(p.Value)
		if err != nil {
			return nil, Error{err.Error(), []string{"posinp.FromNode", "New"}, true, err}
		}
		I.posinp = pos
	}
	return I, nil
}

//FromDoc extracts the recognized input sections from a logfile document and
//builds InputParams from them.
func FromDoc(doc *yamldoc.Doc, defs *Definitions) (*InputParams, error) {
	if defs == nil {
		defs = Builtin()
	}
	params := make([]Param, 0, 8)
	for _, key := range defs.sections {
		params = append(params, Param{key, doc.Get(key)})
	}
	I, err := New(params, defs)
	if err != nil {
		return nil, Error{err.Error(), []string{"New", "FromDoc"}, true, err}
	}
	return I, nil
}

//Clean returns the sections in params without the null ones, without
//the variables whose value is the default one according to defs, and without
//the sections that become empty after that. params is not modified.
func Clean(params []Param, defs *Definitions) []Param {
	ret := make([]Param, 0, len(params))
	for _, p := range params {
		switch yamldoc.KindOf(p.Value) {
		case yamldoc.Absent, yamldoc.Null:
			continue
		case yamldoc.Mapping:
			v := cleanSection(p.Key, p.Value, defs)
			if len(v.Content) == 0 {
				continue
			}
			ret = append(ret, Param{p.Key, v})
		default:
			ret = append(ret, p)
		}
	}
	return ret
}

//cleanSection returns a shallow copy of the mapping section without its
//default-valued variables.
func cleanSection(section string, n *yaml.Node, defs *Definitions) *yaml.Node {
	c := *n
	c.Content = make([]*yaml.Node, 0, len(n.Content))
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if yamldoc.KindOf(v) == yamldoc.Null {
			continue
		}
		if defs != nil {
			if d := defs.Default(section, k.Value); d != nil && Same(v, d) {
				continue
			}
		}
		c.Content = append(c.Content, k, v)
	}
	return &c
}

//Same returns true if a and b represent the same value: numbers are compared
//by value (so 1e-4 and 0.0001 are the same) and everything else by structure.
func Same(a, b *yaml.Node) bool {
	a, b = yamldoc.Deref(a), yamldoc.Deref(b)
	ka, kb := yamldoc.KindOf(a), yamldoc.KindOf(b)
	if ka != kb {
		return false
	}
	switch ka {
	case yamldoc.Absent, yamldoc.Null:
		return true
	case yamldoc.Scalar:
		fa, oka := yamldoc.Float(a)
		fb, okb := yamldoc.Float(b)
		if oka && okb {
			return fa == fb
		}
		sa, _ := yamldoc.String(a)
		sb, _ := yamldoc.String(b)
		return sa == sb
	case yamldoc.Sequence:
		if len(a.Content) != len(b.Content) {
			return false
		}
		for i := range a.Content {
			if !Same(a.Content[i], b.Content[i]) {
				return false
			}
		}
		return true
	}
	return yamldoc.Equal(a, b)
}

//InputParams methods

//Get returns the value of the input section key, or nil if the section is absent.
func (I *InputParams) Get(key string) *yaml.Node {
	for _, p := range I.params {
		if p.Key == key {
			return p.Value
		}
	}
	return nil
}

//Has returns true if the input section key is present.
func (I *InputParams) Has(key string) bool {
	return I.Get(key) != nil
}

//Lookup follows path from the top of the input parameters.
func (I *InputParams) Lookup(path yamldoc.Path) *yaml.Node {
	if len(path) == 0 {
		return nil
	}
	return path[1:].From(I.Get(path[0].String()))
}

//Keys returns the names of the input sections present, in order.
func (I *InputParams) Keys() []string {
	keys := make([]string, len(I.params))
	for i, p := range I.params {
		keys[i] = p.Key
	}
	return keys
}

//Params returns a copy of the list of sections.
func (I *InputParams) Params() []Param {
	return append([]Param(nil), I.params...)
}

//Posinp returns the geometry given in the input parameters, or nil.
func (I *InputParams) Posinp() *posinp.Posinp {
	return I.posinp
}

//Doc returns the input parameters as a YAML document, posinp excluded.
func (I *InputParams) Doc() *yamldoc.Doc {
	m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, p := range I.params {
		m.Content = append(m.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: p.Key}, p.Value)
	}
	return yamldoc.NewDoc(m)
}
