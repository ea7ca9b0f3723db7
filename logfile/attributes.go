package logfile

import (
	v3 "github.com/gobigdft/gobigdft/v3"
	"github.com/gobigdft/gobigdft/yamldoc"
	"gopkg.in/yaml.v3"
)

//Typed accessors. All of them report false (or return nil) when the attribute
//was not found in the document, or when it does not have the expected type.
//Values are in the units BigDFT writes them (Hartree, Bohr, GPa, AU).

func (L *Logfile) float(name string) (float64, bool) {
	return yamldoc.Float(L.attrs.Get(name))
}

func (L *Logfile) NAt() (int, bool) {
	return yamldoc.Int(L.attrs.Get(NAt))
}

//BoundaryConditions returns the boundary conditions, lowercased ("free",
//"surface", "wire" or "periodic").
func (L *Logfile) BoundaryConditions() (string, bool) {
	return L.bc, L.bc != ""
}

//Cell returns the size of the simulation box, in Bohr.
func (L *Logfile) Cell() ([]float64, bool) {
	return yamldoc.Floats(L.attrs.Get(Cell))
}

func (L *Logfile) Symmetry() (string, bool) {
	return yamldoc.String(L.attrs.Get(Symmetry))
}

//AtomTypes returns the atomic types present in the system.
func (L *Logfile) AtomTypes() ([]string, bool) {
	return yamldoc.Strings(L.attrs.Get(AtomTypes))
}

//Energy returns the total energy, in Hartree.
func (L *Logfile) Energy() (float64, bool) {
	return L.float(Energy)
}

//Astruct returns the atomic structure written at the end of the run.
func (L *Logfile) Astruct() *yaml.Node {
	return L.attrs.Get(Astruct)
}

//Evals returns the orbital energies, as written by the engine.
func (L *Logfile) Evals() *yaml.Node {
	return L.attrs.Get(Evals)
}

func (L *Logfile) FermiLevel() (float64, bool) {
	return L.float(FermiLevel)
}

func (L *Logfile) Magnetization() (float64, bool) {
	return L.float(Magnetization)
}

//KptMesh returns the Monkhorst-Pack grid of k-points.
func (L *Logfile) KptMesh() ([]int, bool) {
	return yamldoc.Ints(L.attrs.Get(KptMesh))
}

func (L *Logfile) Kpts() *yaml.Node {
	return L.attrs.Get(Kpts)
}

//GnrmCv returns the convergence criterion on the wavefunction residue.
func (L *Logfile) GnrmCv() (float64, bool) {
	return L.float(GnrmCv)
}

//ForcemaxCv returns the convergence criterion on the maximal force of a
//geometry optimization, in Ha/Bohr.
func (L *Logfile) ForcemaxCv() (float64, bool) {
	return L.float(ForcemaxCv)
}

//Forcemax returns the norm of the largest force, in Ha/Bohr.
func (L *Logfile) Forcemax() (float64, bool) {
	return L.float(Forcemax)
}

//Pressure returns the pressure, in GPa.
func (L *Logfile) Pressure() (float64, bool) {
	return L.float(Pressure)
}

//Dipole returns the electric dipole moment, in atomic units.
func (L *Logfile) Dipole() ([]float64, bool) {
	return yamldoc.Floats(L.attrs.Get(Dipole))
}

//Forces returns a copy of the forces on the atoms, in Ha/Bohr, one row per atom,
//or nil. An empty "Atomic Forces" list also gives nil, even though the attribute
//is found (Attribute(Forces) is then an empty sequence) and counts for the
//completeness of the run.
func (L *Logfile) Forces() *v3.Matrix {
	if L.forces == nil {
		return nil
	}
	return L.forces.Copy()
}

func (L *Logfile) ForceFluct() (float64, bool) {
	return L.float(ForceFluct)
}

func (L *Logfile) SupportFunctions() *yaml.Node {
	return L.attrs.Get(SupportFunctions)
}

func (L *Logfile) ElectrostaticMultipoles() *yaml.Node {
	return L.attrs.Get(ElectrostaticMultipoles)
}

func (L *Logfile) SDos() *yaml.Node {
	return L.attrs.Get(SDos)
}

//Walltime returns the time since the initialization of the run, in seconds.
func (L *Logfile) Walltime() (float64, bool) {
	return L.float(Walltime)
}

//EngineWarnings returns the warnings written by BigDFT itself, rendered as
//text. Warnings raised by the package are in Warnings.
func (L *Logfile) EngineWarnings() []string {
	w := L.attrs.Get(Warnings)
	switch yamldoc.KindOf(w) {
	case yamldoc.Absent:
		return nil
	case yamldoc.Sequence:
		ret := make([]string, 0, len(w.Content))
		for _, m := range w.Content {
			ret = append(ret, warningText(m))
		}
		return ret
	}
	return []string{warningText(w)}
}
