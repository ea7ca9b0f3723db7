package logfile

import (
	"strings"
	"testing"

	"github.com/gobigdft/gobigdft/yamldoc"
	"github.com/google/go-cmp/cmp"
)

func doc(Te *testing.T, text string) *yamldoc.Doc {
	Te.Helper()
	d, err := yamldoc.Load(strings.NewReader(text))
	if err != nil {
		Te.Fatal(err)
	}
	return d
}

func TestResolveFirstPathWins(Te *testing.T) {
	d := doc(Te, `
Energy (Hartree): -1.0
Last Iteration: {EKS: -2.0, FKS: null}
`)
	desc, ok := DefaultSchema().Descriptor(Energy)
	if !ok {
		Te.Fatal("no energy in the default schema")
	}
	//FKS is null, so EKS wins over the top-level energy.
	if f, _ := yamldoc.Float(Resolve(d, desc)); f != -2.0 {
		Te.Errorf("expected -2.0, got %v", f)
	}
}

func TestResolveLastElements(Te *testing.T) {
	d := doc(Te, `
Ground State Optimization:
- Fermi Energy: -0.1
- Hamiltonian Optimization:
  - Subspace Optimization: {Fermi Energy: -0.5}
  - Subspace Optimization: {Fermi Energy: -0.3, Total magnetization: 2.0}
`)
	attrs := ResolveAll(d, DefaultSchema())
	if f, _ := yamldoc.Float(attrs.Get(FermiLevel)); f != -0.3 {
		Te.Errorf("expected the Fermi level of the last subspace optimization, got %v", f)
	}
	if f, _ := yamldoc.Float(attrs.Get(Magnetization)); f != 2.0 {
		Te.Errorf("wrong magnetization %v", f)
	}
	if attrs.Has(Energy) || !attrs.Known(Energy) {
		Te.Error("energy should be known but absent")
	}
	if attrs.Known("nonsense") {
		Te.Error("unknown attribute reported as known")
	}
}

func TestResolveWrongShapes(Te *testing.T) {
	//Every path goes through a node of the wrong kind, which is not an error.
	d := doc(Te, `
Ground State Optimization: 3
Atomic System Properties: [1, 2]
Pressure: {GPa: ~}
kpt: {ngkpt: [2, 2, 2]}
`)
	attrs := ResolveAll(d, DefaultSchema())
	for _, name := range []string{FermiLevel, Evals, NAt, BoundaryConditions, Pressure} {
		if attrs.Has(name) {
			Te.Errorf("%s should not be found", name)
		}
	}
	if v, _ := yamldoc.Ints(attrs.Get(KptMesh)); !cmp.Equal(v, []int{2, 2, 2}) {
		Te.Errorf("wrong k-point mesh %v", v)
	}
}

func TestSchema(Te *testing.T) {
	names := DefaultSchema().Names()
	if len(names) != 24 || names[0] != NAt || names[len(names)-1] != Warnings {
		Te.Errorf("unexpected attribute names %v", names)
	}
	s := DefaultSchema()
	s[0].Name = "changed"
	if DefaultSchema()[0].Name != NAt {
		Te.Error("DefaultSchema should return a copy")
	}
	//A custom schema only resolves what it names.
	custom := Schema{{Name: "code", Paths: []yamldoc.Path{yamldoc.P("Version Number")}}}
	attrs := ResolveAll(doc(Te, "Version Number: 1.8.1\nEnergy (Hartree): -1.0\n"), custom)
	if s, _ := yamldoc.String(attrs.Get("code")); s != "1.8.1" {
		Te.Errorf("custom attribute not resolved: %q", s)
	}
	if attrs.Known(Energy) {
		Te.Error("energy is not in the custom schema")
	}
}
