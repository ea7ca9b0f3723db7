/*
 * codec.go, part of gobigdft.
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
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

//Indent is the indentation used when dumping documents.
const Indent = 2

//LoadAll decodes every document in r, in order. Documents decoded before
//an error are returned along with it.
func LoadAll(r io.Reader) ([]*Doc, error) {
	dec := yaml.NewDecoder(r)
	docs := make([]*Doc, 0, 1)
	for {
		n := new(yaml.Node)
		err := dec.Decode(n)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return docs, Error{err.Error(), "", []string{"yaml.Decoder.Decode", "LoadAll"}, true, err}
		}
		docs = append(docs, NewDoc(n))
	}
	return docs, nil
}

//Load decodes exactly one document from r. It is an error for r to hold
//more or less than one document.
func Load(r io.Reader) (*Doc, error) {
	docs, err := LoadAll(r)
	if err != nil {
		return nil, decorate(err, "Load")
	}
	if len(docs) != 1 {
		return nil, Error{"expected one document in stream", "", []string{"Load"}, true, nil}
	}
	return docs[0], nil
}

//Dump writes D to w as a single YAML document, without any document marker.
func Dump(w io.Writer, D *Doc) error {
	return encode(w, D, false)
}

//DumpAll writes every document in docs to w. Each of them, including the first,
//starts with an explicit "---" marker, so the boundaries are kept even for
//empty documents.
func DumpAll(w io.Writer, docs []*Doc) error {
	for _, d := range docs {
		if err := encode(w, d, true); err != nil {
			return decorate(err, "DumpAll")
		}
	}
	return nil
}

func encode(w io.Writer, D *Doc, marker bool) error {
	if marker {
		if _, err := io.WriteString(w, "---\n"); err != nil {
			return Error{err.Error(), "", []string{"io.WriteString", "encode"}, true, err}
		}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(Indent)
	if err := enc.Encode(D.Node()); err != nil {
		return Error{err.Error(), "", []string{"yaml.Encoder.Encode", "encode"}, true, err}
	}
	if err := enc.Close(); err != nil {
		return Error{err.Error(), "", []string{"yaml.Encoder.Close", "encode"}, true, err}
	}
	return nil
}

//LoadFile decodes every document in the file name, which may be compressed
//(see Open).
func LoadFile(name string) ([]*Doc, error) {
	f, err := Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	docs, err := LoadAll(f)
	if err != nil {
		return docs, withFile(err, name, "LoadFile")
	}
	return docs, nil
}

//DumpFile writes docs to the file name, compressing it according to the file
//extension (see Create). A single document is written without a marker.
func DumpFile(name string, docs ...*Doc) error {
	f, err := Create(name)
	if err != nil {
		return err
	}
	if len(docs) == 1 {
		err = Dump(f, docs[0])
	} else {
		err = DumpAll(f, docs)
	}
	if err != nil {
		f.Close()
		return withFile(err, name, "DumpFile")
	}
	if err = f.Close(); err != nil {
		return Error{err.Error(), name, []string{"Close", "DumpFile"}, true, err}
	}
	return nil
}

//decorate adds caller to the decorations of err, if err is an Error.
func decorate(err error, caller string) error {
	var e Error
	if errors.As(err, &e) {
		e.deco = append(e.deco, caller)
		return e
	}
	return err
}

//withFile sets the file name of err, if err is an Error.
func withFile(err error, name, caller string) error {
	var e Error
	if errors.As(err, &e) {
		e.filename = name
		e.deco = append(e.deco, caller)
		return e
	}
	return err
}
