/*
 * doc.go, part of gobigdft.
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

//Package yamldoc reads and writes the YAML documents produced by BigDFT.
//
//A logfile is kept as a tree of yaml.Node (gopkg.in/yaml.v3) rather than
//as Go maps, so that the order of the keys and the exact text of every
//number survive a load/dump cycle. On top of that tree the package offers
//a typed descent along paths of keys and indexes, which never fails loudly:
//a path that can't be followed simply yields nil.
package yamldoc

import (
	"gopkg.in/yaml.v3"
)

//Doc is one YAML document of a stream.
type Doc struct {
	node *yaml.Node //a yaml.DocumentNode, or nil for an empty document.
}

//NewDoc wraps root, which can be a document node or any other node, in a Doc.
//A nil root gives an empty document.
func NewDoc(root *yaml.Node) *Doc {
	if root == nil {
		return &Doc{}
	}
	if root.Kind == yaml.DocumentNode {
		return &Doc{node: root}
	}
	return &Doc{node: &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}}
}

//FromValue encodes the Go value v (usually a map or a struct) into a Doc.
//Note that Go maps are encoded with sorted keys.
func FromValue(v interface{}) (*Doc, error) {
	n := new(yaml.Node)
	if err := n.Encode(v); err != nil {
		return nil, Error{err.Error(), "", []string{"Encode", "FromValue"}, true, err}
	}
	return NewDoc(n), nil
}

//Root returns the top node of the document, or nil if the document is empty.
//Aliases are resolved.
func (D *Doc) Root() *yaml.Node {
	if D == nil || D.node == nil || len(D.node.Content) == 0 {
		return nil
	}
	return deref(D.node.Content[0])
}

//Node returns the underlying document node, used for dumping. Empty documents
//give an empty mapping.
func (D *Doc) Node() *yaml.Node {
	if D.Root() == nil || KindOf(D.Root()) == Null {
		return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	}
	return D.node
}

//Empty returns true if the document has no keys.
//A document whose top node is not a mapping is not empty.
func (D *Doc) Empty() bool {
	r := D.Root()
	switch KindOf(r) {
	case Absent, Null:
		return true
	case Mapping:
		return len(r.Content) == 0
	}
	return false
}

//Keys returns the keys of the top mapping of the document, in order.
func (D *Doc) Keys() []string {
	r := D.Root()
	if KindOf(r) != Mapping {
		return nil
	}
	keys := make([]string, 0, len(r.Content)/2)
	for i := 0; i+1 < len(r.Content); i += 2 {
		keys = append(keys, r.Content[i].Value)
	}
	return keys
}

//Len returns the number of keys in the top mapping of the document.
func (D *Doc) Len() int {
	return len(D.Keys())
}

//Get returns the value for key in the top mapping of the document, or nil
//if there is no such key.
func (D *Doc) Get(key string) *yaml.Node {
	return mapValue(D.Root(), key)
}

//Has returns true if key is present in the top mapping of the document.
//A key with a null value is present.
func (D *Doc) Has(key string) bool {
	return D.Get(key) != nil
}

//Lookup follows path from the top of the document. See Path.
func (D *Doc) Lookup(path Path) *yaml.Node {
	return path.From(D.Root())
}

//Decode decodes the value for key into v. It returns an error if
//the key is absent or the value can't be decoded into v.
func (D *Doc) Decode(key string, v interface{}) error {
	n := D.Get(key)
	if n == nil {
		return Error{"key " + key + " not found", "", []string{"Decode"}, false, nil}
	}
	if err := n.Decode(v); err != nil {
		return Error{err.Error(), "", []string{"yaml.Node.Decode", "Decode"}, false, err}
	}
	return nil
}

//Equal returns true if both documents have the same structure and
//scalar values. See Equal.
func (D *Doc) Equal(E *Doc) bool {
	if D.Empty() && E.Empty() {
		return true
	}
	return Equal(D.Root(), E.Root())
}
