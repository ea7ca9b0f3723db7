/*
 * path.go, part of gobigdft.
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

package yamldoc

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//Kind classifies a node for the purpose of descending into it.
type Kind int

const (
	Absent   Kind = iota //no node at all
	Null                 //an explicit null (~, null or nothing)
	Scalar               //any other scalar
	Mapping              //a mapping
	Sequence             //a sequence
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Scalar:
		return "scalar"
	case Mapping:
		return "mapping"
	case Sequence:
		return "sequence"
	}
	return "absent"
}

//KindOf returns the kind of n, following aliases.
func KindOf(n *yaml.Node) Kind {
	n = deref(n)
	if n == nil {
		return Absent
	}
	switch n.Kind {
	case yaml.MappingNode:
		return Mapping
	case yaml.SequenceNode:
		return Sequence
	case yaml.ScalarNode:
		if n.ShortTag() == "!!null" {
			return Null
		}
		return Scalar
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Absent
		}
		return KindOf(n.Content[0])
	}
	return Absent
}

//Deref follows aliases until a node that is not an alias is found.
func Deref(n *yaml.Node) *yaml.Node {
	return deref(n)
}

func deref(n *yaml.Node) *yaml.Node {
	for i := 0; n != nil && n.Kind == yaml.AliasNode && i < 64; i++ {
		n = n.Alias
	}
	if n != nil && n.Kind == yaml.AliasNode {
		return nil //alias loop, can't happen with yaml.v3 decoded trees
	}
	return n
}

//Key is one step of a Path: either the name of a mapping key or
//the index of a sequence element. Negative indexes count from the
//end of the sequence (-1 is the last element).
type Key struct {
	name    string
	index   int
	isIndex bool
}

//K returns a Key for the mapping key name.
func K(name string) Key {
	return Key{name: name}
}

//I returns a Key for the sequence index i.
func I(i int) Key {
	return Key{index: i, isIndex: true}
}

func (k Key) String() string {
	if k.isIndex {
		return fmt.Sprintf("[%d]", k.index)
	}
	return k.name
}

//Path is a list of keys leading from a node to one of its descendants.
type Path []Key

//P builds a Path from strings (mapping keys) and ints (sequence indexes).
//It panics with any other type, as it is meant for static tables.
func P(keys ...interface{}) Path {
	p := make(Path, 0, len(keys))
	for _, v := range keys {
		switch k := v.(type) {
		case string:
			p = append(p, K(k))
		case int:
			p = append(p, I(k))
		default:
			panic(fmt.Sprintf("yamldoc: invalid path element %v (%T)", v, v))
		}
	}
	return p
}

//Append returns a new path with keys appended to p. p is not modified.
func (p Path) Append(keys ...interface{}) Path {
	ret := make(Path, 0, len(p)+len(keys))
	ret = append(ret, p...)
	return append(ret, P(keys...)...)
}

func (p Path) String() string {
	s := make([]string, len(p))
	for i, k := range p {
		s[i] = k.String()
	}
	return strings.Join(s, " / ")
}

//From descends from n along the path. At each step, a mapping is searched
//for a key name and a sequence for an index. Any other combination (a name
//on a sequence, an index on a mapping, anything on a scalar or null, a
//missing key or an out-of-range index) makes the descent fail, and
//From returns nil. An empty path returns n itself.
func (p Path) From(n *yaml.Node) *yaml.Node {
	cur := deref(n)
	for _, k := range p {
		switch KindOf(cur) {
		case Mapping:
			if k.isIndex {
				return nil
			}
			cur = mapValue(cur, k.name)
		case Sequence:
			if !k.isIndex {
				return nil
			}
			cur = seqItem(cur, k.index)
		default:
			return nil
		}
		if cur == nil {
			return nil
		}
	}
	return cur
}

//mapValue returns the value for key in the mapping n, or nil.
//If the key is repeated, the first occurrence wins.
func mapValue(n *yaml.Node, key string) *yaml.Node {
	n = deref(n)
	if KindOf(n) != Mapping {
		return nil
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return deref(n.Content[i+1])
		}
	}
	return nil
}

//seqItem returns the ith element of the sequence n, or nil if out of range.
func seqItem(n *yaml.Node, i int) *yaml.Node {
	l := len(n.Content)
	if i < 0 {
		i += l
	}
	if i < 0 || i >= l {
		return nil
	}
	return deref(n.Content[i])
}
