package yamldoc

import (
	"strings"
	"testing"
)

const nested = `
Ground State Optimization:
- Hamiltonian Optimization:
  - Subspace Optimization: {Fermi Energy: -0.5}
- Hamiltonian Optimization:
  - Subspace Optimization: {Fermi Energy: -0.4}
  - Subspace Optimization: {Fermi Energy: -0.3}
Box: [10.0, .inf, 12]
Empty: ~
Name: Free
base: &b {x: 1}
ref: *b
`

func loadNested(Te *testing.T) *Doc {
	d, err := Load(strings.NewReader(nested))
	if err != nil {
		Te.Fatal(err)
	}
	return d
}

func TestPathFrom(Te *testing.T) {
	d := loadNested(Te)
	p := P("Ground State Optimization", -1, "Hamiltonian Optimization", -1, "Subspace Optimization", "Fermi Energy")
	if f, ok := Float(d.Lookup(p)); !ok || f != -0.3 {
		Te.Errorf("expected -0.3, got %v (%v)", f, ok)
	}
	first := P("Ground State Optimization", 0, "Hamiltonian Optimization", 0, "Subspace Optimization", "Fermi Energy")
	if f, _ := Float(d.Lookup(first)); f != -0.5 {
		Te.Errorf("expected -0.5, got %v", f)
	}
	if f, ok := Float(d.Lookup(P("ref", "x"))); !ok || f != 1 {
		Te.Error("aliases should be followed")
	}
}

func TestPathFailures(Te *testing.T) {
	d := loadNested(Te)
	for _, p := range []Path{
		//name on a sequence
		P("Ground State Optimization", "Hamiltonian Optimization"),
		P(0),            //index on a mapping
		P("Name", "x"),  //descending into a scalar
		P("Empty", "x"), //descending into null
		P("Box", 3),     //out of range
		P("Box", -4),    //out of range from the end
		P("Missing"),    //missing key
		P("Ground State Optimization", 5, "Hamiltonian Optimization"),
	} {
		if n := d.Lookup(p); n != nil {
			Te.Errorf("path %v should fail, got %v", p, n.Value)
		}
	}
	if KindOf(d.Lookup(P("Empty"))) != Null {
		Te.Error("an explicit null should be found as Null")
	}
}

func TestScalars(Te *testing.T) {
	d := loadNested(Te)
	box, ok := Floats(d.Get("Box"))
	if !ok || len(box) != 3 || box[2] != 12 || box[1] < 1e300 {
		Te.Errorf("unexpected box %v", box)
	}
	if _, ok := Ints(d.Get("Box")); ok {
		Te.Error("a box with .inf can't be decoded as ints")
	}
	if _, ok := Float(d.Get("Name")); ok {
		Te.Error("a string is not a float")
	}
	if s := Inline(d.Get("base")); s != "{x: 1}" {
		Te.Errorf("unexpected inline rendering %q", s)
	}
	if p := P("a", 1).Append("b"); p.String() != "a / [1] / b" {
		Te.Errorf("unexpected path string %q", p.String())
	}
}
