/*
 * resolve.go, part of gobigdft.
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
	"github.com/gobigdft/gobigdft/yamldoc"
	"gopkg.in/yaml.v3"
)

//Resolve returns the value of the attribute described by d in doc: the first
//non-null node found along d's paths, in order, or nil. A path that can't be
//followed is not an error, the next one is simply tried.
func Resolve(doc *yamldoc.Doc, d Descriptor) *yaml.Node {
	for _, p := range d.Paths {
		n := doc.Lookup(p)
		switch yamldoc.KindOf(n) {
		case yamldoc.Absent, yamldoc.Null:
			continue
		}
		return n
	}
	return nil
}

//Attributes holds the resolved value of every attribute of a schema. Attributes
//that were not found are recorded with a nil value.
type Attributes struct {
	names  []string
	values map[string]*yaml.Node
}

//ResolveAll resolves every attribute of the schema in doc.
func ResolveAll(doc *yamldoc.Doc, schema Schema) Attributes {
	A := Attributes{names: schema.Names(), values: make(map[string]*yaml.Node, len(schema))}
	for _, d := range schema {
		A.values[d.Name] = Resolve(doc, d)
	}
	return A
}

//Get returns the value of the attribute name, or nil if it was not found or
//is not part of the schema.
func (A Attributes) Get(name string) *yaml.Node {
	return A.values[name]
}

//Has returns true if the attribute name was found.
func (A Attributes) Has(name string) bool {
	return A.values[name] != nil
}

//Known returns true if name is part of the schema the attributes were resolved
//with, whether it was found or not.
func (A Attributes) Known(name string) bool {
	_, ok := A.values[name]
	return ok
}

//Names returns the names of all the attributes, found or not, in schema order.
func (A Attributes) Names() []string {
	return append([]string(nil), A.names...)
}
