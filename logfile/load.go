/*
 * load.go, part of gobigdft.
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
	"io"

	"github.com/gobigdft/gobigdft/yamldoc"
)

//Kind tells what a logfile contains.
type Kind int

const (
	KindSingle   Kind = iota //one document
	KindMultiple             //several unrelated documents
	KindGeopt                //the steps of a geometry optimization
)

func (k Kind) String() string {
	switch k {
	case KindSingle:
		return "single"
	case KindMultiple:
		return "multiple"
	case KindGeopt:
		return "geopt"
	}
	return "unknown"
}

//Result is what Load and FromFile return. Log is set for KindSingle, Seq for
//the other kinds.
type Result struct {
	Kind Kind
	Log  *Logfile
	Seq  *Sequence
}

//Logs returns the logfiles in r, in order.
func (R Result) Logs() []*Logfile {
	if R.Kind == KindSingle {
		return []*Logfile{R.Log}
	}
	return R.Seq.Logs()
}

//Write writes the raw document(s) of r to w.
func (R Result) Write(w io.Writer) error {
	if R.Kind == KindSingle {
		return R.Log.Write(w)
	}
	return R.Seq.Write(w)
}

//Load reads every document in r and builds a Logfile from each of them, or a
//Sequence if there are several. It stops at the first document that fails.
func Load(r io.Reader, opts *Options) (Result, error) {
	docs, err := yamldoc.LoadAll(r)
	if err != nil {
		return Result{}, locate(err, "", -1, "Load")
	}
	res, err := FromDocs(docs, opts)
	if err != nil {
		return Result{}, locate(err, "", -1, "Load")
	}
	return res, nil
}

//FromDocs does the work of Load on documents already decoded.
func FromDocs(docs []*yamldoc.Doc, opts *Options) (Result, error) {
	if len(docs) == 0 {
		return Result{}, newError(ErrNoDocument, "FromDocs")
	}
	logs := make([]*Logfile, len(docs))
	for i, d := range docs {
		L, err := New(d, opts)
		if err != nil {
			return Result{}, locate(err, "", i, "FromDocs")
		}
		logs[i] = L
	}
	if len(logs) == 1 {
		return Result{Kind: KindSingle, Log: logs[0]}, nil
	}
	S, err := NewSequence(logs, opts)
	if err != nil {
		return Result{}, locate(err, "", -1, "FromDocs")
	}
	return Result{Kind: S.Kind(), Seq: S}, nil
}

//FromFile reads the logfile name. Files ending in .gz or .zst are decompressed.
func FromFile(name string, opts *Options) (Result, error) {
	docs, err := yamldoc.LoadFile(name)
	if err != nil {
		return Result{}, locate(err, name, -1, "FromFile")
	}
	res, err := FromDocs(docs, opts)
	if err != nil {
		return Result{}, locate(err, name, -1, "FromFile")
	}
	return res, nil
}
