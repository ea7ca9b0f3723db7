/*
 * schema.go, part of gobigdft.
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

import "github.com/gobigdft/gobigdft/yamldoc"

//Descriptor tells where an attribute may be found in a logfile. Paths are tried
//in order, and the first one leading to a non-null value wins.
type Descriptor struct {
	Name  string
	Paths []yamldoc.Path
	Doc   string
}

//Schema is an ordered list of attribute descriptors.
type Schema []Descriptor

//Names of the attributes in the default schema.
const (
	NAt                     = "n_at"
	BoundaryConditions      = "boundary_conditions"
	Cell                    = "cell"
	Symmetry                = "symmetry"
	AtomTypes               = "atom_types"
	Energy                  = "energy"
	Astruct                 = "astruct"
	Evals                   = "evals"
	FermiLevel              = "fermi_level"
	Magnetization           = "magnetization"
	KptMesh                 = "kpt_mesh"
	Kpts                    = "kpts"
	GnrmCv                  = "gnrm_cv"
	ForcemaxCv              = "forcemax_cv"
	Forcemax                = "forcemax"
	Pressure                = "pressure"
	Dipole                  = "dipole"
	Forces                  = "forces"
	ForceFluct              = "force_fluct"
	SupportFunctions        = "support_functions"
	ElectrostaticMultipoles = "electrostatic_multipoles"
	SDos                    = "sdos"
	Walltime                = "walltime"
	Warnings                = "WARNINGS"
)

//Keys of the raw logfile the package looks at directly.
const (
	geoptKey   = "geopt"
	astructKey = "Atomic structure"
	pspPrefix  = "psppar."
	pspXCKey   = "Pseudopotential XC"
)

var (
	lastGroundState = yamldoc.P("Ground State Optimization", -1)
	lastSubspace    = lastGroundState.Append("Hamiltonian Optimization", -1, "Subspace Optimization")
)

//fromLastOptimization returns the paths to key in the last ground state
//optimization and in its last subspace optimization.
func fromLastOptimization(key string) []yamldoc.Path {
	return []yamldoc.Path{lastGroundState.Append(key), lastSubspace.Append(key)}
}

func paths(p ...yamldoc.Path) []yamldoc.Path {
	return p
}

var defaultSchema = Schema{
	{NAt, paths(yamldoc.P("Atomic System Properties", "Number of atoms")), "Number of Atoms"},
	{BoundaryConditions, paths(yamldoc.P("Atomic System Properties", "Boundary Conditions")), "Boundary Conditions"},
	{Cell, paths(yamldoc.P("Atomic System Properties", "Box Sizes (AU)")), "Cell size"},
	{Symmetry, paths(yamldoc.P("Atomic System Properties", "Space group")), "Symmetry group"},
	{AtomTypes, paths(yamldoc.P("Atomic System Properties", "Types of atoms")), "List of the atomic types present in the posinp"},
	{Energy, paths(
		yamldoc.P("Last Iteration", "FKS"),
		yamldoc.P("Last Iteration", "EKS"),
		yamldoc.P("Energy (Hartree)"),
	), "Energy (Hartree)"},
	{Astruct, paths(yamldoc.P(astructKey)), "Atomic structure"},
	{Evals, append(paths(yamldoc.P("Complete list of energy eigenvalues")), fromLastOptimization("Orbitals")...), "Orbital energies and occupations"},
	{FermiLevel, fromLastOptimization("Fermi Energy"), "Fermi level"},
	{Magnetization, fromLastOptimization("Total magnetization"), "Total magnetization of the system"},
	{KptMesh, paths(yamldoc.P("kpt", "ngkpt")), "No. of Monkhorst-Pack grid points"},
	{Kpts, paths(yamldoc.P("K points")), "Grid of k-points"},
	{GnrmCv, paths(yamldoc.P("dft", "gnrm_cv")), "Convergence criterion on wavefunction residue"},
	{ForcemaxCv, paths(yamldoc.P(geoptKey, "forcemax")), "Convergence criterion on forces"},
	{Forcemax, paths(
		yamldoc.P("Geometry", "FORCES norm(Ha/Bohr)", "maxval"),
		yamldoc.P("Clean forces norm (Ha/Bohr)", "maxval"),
	), "Maximum value of forces"},
	{Pressure, paths(yamldoc.P("Pressure", "GPa")), "Pressure (GPa)"},
	{Dipole, paths(yamldoc.P("Electric Dipole Moment (AU)", "P vector")), "Electric Dipole Moment (AU)"},
	{Forces, paths(yamldoc.P("Atomic Forces (Ha/Bohr)")), "Atomic Forces (Ha/Bohr)"},
	{ForceFluct, paths(yamldoc.P("Geometry", "FORCES norm(Ha/Bohr)", "fluct")), "Threshold fluctuation of Forces"},
	{SupportFunctions, paths(yamldoc.P("Gross support functions moments", "Multipole coefficients", "values")), "Support functions"},
	{ElectrostaticMultipoles, paths(yamldoc.P("Multipole coefficients", "values")), "Electrostatic multipoles"},
	{SDos, paths(yamldoc.P("SDos files")), "SDos files"},
	{Walltime, paths(yamldoc.P("Walltime since initialization")), "Walltime since initialization"},
	{Warnings, paths(yamldoc.P("WARNINGS")), "Warnings raised during the BigDFT run"},
}

//DefaultSchema returns a copy of the schema used unless told otherwise.
func DefaultSchema() Schema {
	return append(Schema(nil), defaultSchema...)
}

//Descriptor returns the descriptor with the given name, and whether it was found.
func (S Schema) Descriptor(name string) (Descriptor, bool) {
	for _, d := range S {
		if d.Name == name {
			return d, true
		}
	}
	return Descriptor{}, false
}

//Names returns the names of the attributes, in order.
func (S Schema) Names() []string {
	ret := make([]string, len(S))
	for i, d := range S {
		ret[i] = d.Name
	}
	return ret
}
