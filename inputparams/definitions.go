/*
 * definitions.go, part of gobigdft.
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

package inputparams

import (
	"io"
	"os"
	"path/filepath"

	"github.com/gobigdft/gobigdft/yamldoc"
	"gopkg.in/yaml.v3"
)

//SourcesEnv is the environment variable pointing to the BigDFT sources, where
//the definition of the input variables is found.
const SourcesEnv = "BIGDFT_SOURCES"

//DefinitionsFile is the path of the input variables definition, relative to the
//BigDFT sources.
const DefinitionsFile = "src/input_variables_definition.yaml"

//ChessDefinitionsFile is the path of the definition of the CheSS input variables,
//relative to the BigDFT sources. They make up the "chess" section.
const ChessDefinitionsFile = "../chess/src/chess_input_variables_definition.yaml"

//Sections that are not part of BigDFT's own definitions file.
const (
	chessSection  = "chess"
	posinpSection = "posinp"
)

//builtinSections are the top-level input sections BigDFT knows about. They are
//used when the definitions file is not available, in which case no default
//values are known.
var builtinSections = []string{
	"dft", "output", "kpt", "geopt", "md", "mix", "sic", "tddft", "mode",
	"perf", "lin_general", "lin_basis", "lin_kernel", "lin_basis_params",
	"psolver", "chess", "posinp",
}

//Definitions describes the input variables known to BigDFT: the top-level
//sections, and the default value of each variable in them.
type Definitions struct {
	sections []string
	vars     *yamldoc.Doc //nil for the builtin definitions
	profiles *yamldoc.Doc
	chess    *yamldoc.Doc //CheSS definitions, if loaded apart
}

//Builtin returns definitions with the known top-level sections and no default values.
func Builtin() *Definitions {
	return &Definitions{sections: append([]string(nil), builtinSections...)}
}

//LoadDefinitions reads the input variable definitions from r. The first document
//holds the variables, the second (optional) one the profiles. The "chess" and
//"posinp" sections, which are not part of BigDFT's definitions, are always added.
func LoadDefinitions(r io.Reader) (*Definitions, error) {
	docs, err := yamldoc.LoadAll(r)
	if err != nil {
		return nil, Error{err.Error(), []string{"yamldoc.LoadAll", "LoadDefinitions"}, true, err}
	}
	if len(docs) == 0 || yamldoc.KindOf(docs[0].Root()) != yamldoc.Mapping {
		return nil, Error{"no input variables found", []string{"LoadDefinitions"}, true, nil}
	}
	D := &Definitions{vars: docs[0], sections: docs[0].Keys()}
	if len(docs) > 1 {
		D.profiles = docs[1]
	}
	for _, sec := range []string{chessSection, posinpSection} {
		if !D.vars.Has(sec) {
			D.sections = append(D.sections, sec)
		}
	}
	return D, nil
}

//AddChess reads the CheSS input variable definitions from r, and uses them
//for the "chess" section.
func (D *Definitions) AddChess(r io.Reader) error {
	doc, err := yamldoc.Load(r)
	if err != nil {
		return Error{err.Error(), []string{"yamldoc.Load", "AddChess"}, false, err}
	}
	if yamldoc.KindOf(doc.Root()) != yamldoc.Mapping {
		return Error{"no CheSS input variables found", []string{"AddChess"}, false, nil}
	}
	D.chess = doc
	if !D.IsSection(chessSection) {
		D.sections = append(D.sections, chessSection)
	}
	return nil
}

//DefinitionsFromEnv loads the definitions from the BigDFT sources given by the
//BIGDFT_SOURCES environment variable. If the variable is not set or the file can't
//be read, the builtin definitions are returned along with the reason, which the
//caller may log or ignore: it is never fatal. The CheSS definitions are read
//from ChessDefinitionsFile; if they can't be, the "chess" section is still known,
//without defaults, and the reason is returned with the definitions.
func DefinitionsFromEnv() (*Definitions, error) {
	src := os.Getenv(SourcesEnv)
	if src == "" {
		return Builtin(), Error{SourcesEnv + " not set, using builtin input sections", []string{"DefinitionsFromEnv"}, false, nil}
	}
	D, err := DefinitionsFromFile(filepath.Join(src, DefinitionsFile))
	if err != nil {
		return D, err
	}
	f, err := yamldoc.Open(filepath.Join(src, ChessDefinitionsFile))
	if err != nil {
		return D, Error{err.Error(), []string{"yamldoc.Open", "DefinitionsFromEnv"}, false, err}
	}
	defer f.Close()
	if err := D.AddChess(f); err != nil {
		return D, Error{err.Error(), []string{"AddChess", "DefinitionsFromEnv"}, false, err}
	}
	return D, nil
}

//DefinitionsFromFile is like DefinitionsFromEnv, for an explicit file.
func DefinitionsFromFile(name string) (*Definitions, error) {
	f, err := yamldoc.Open(name)
	if err != nil {
		return Builtin(), Error{err.Error(), []string{"yamldoc.Open", "DefinitionsFromFile"}, false, err}
	}
	defer f.Close()
	D, err := LoadDefinitions(f)
	if err != nil {
		return Builtin(), Error{err.Error(), []string{"LoadDefinitions", "DefinitionsFromFile"}, false, err}
	}
	return D, nil
}

//Sections returns the top-level input sections.
func (D *Definitions) Sections() []string {
	return append([]string(nil), D.sections...)
}

//IsSection returns true if key is a top-level input section.
func (D *Definitions) IsSection(key string) bool {
	for _, s := range D.sections {
		if s == key {
			return true
		}
	}
	return false
}

//Default returns the default value of the variable key of the given section,
//or nil if it is unknown.
func (D *Definitions) Default(section, key string) *yaml.Node {
	if section == chessSection && D.chess != nil {
		return D.chess.Lookup(yamldoc.P(key, "default"))
	}
	if D.vars == nil {
		return nil
	}
	return D.vars.Lookup(yamldoc.P(section, key, "default"))
}

//Profiles returns the names of the input profiles, if known.
func (D *Definitions) Profiles() []string {
	if D.profiles == nil {
		return nil
	}
	return D.profiles.Keys()
}
