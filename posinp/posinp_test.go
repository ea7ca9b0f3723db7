package posinp

import (
	"math"
	"strings"
	"testing"

	bigdft "github.com/gobigdft/gobigdft"
	v3 "github.com/gobigdft/gobigdft/v3"
	"github.com/gobigdft/gobigdft/yamldoc"
)

const n2 = `
units: angstroem
positions:
- N: [2.97630782434901e-23, 6.87220595204354e-23, 0.0107161998748779]
  IGSpin: 0
- {Frozen: fxz, N: [-1.10434491945017e-23, -4.87342174483075e-23, 1.10427379608154]}
properties: {format: xyz, source: N2.xyz}
`

func read(Te *testing.T, s string) *Posinp {
	d, err := yamldoc.Load(strings.NewReader(s))
	if err != nil {
		Te.Fatal(err)
	}
	P, err := FromNode(d.Root())
	if err != nil {
		Te.Fatal(err)
	}
	return P
}

func TestFromNode(Te *testing.T) {
	P := read(Te, n2)
	if P.Len() != 2 || P.Type(1) != "N" {
		Te.Fatalf("unexpected atoms %v", P.Types())
	}
	if P.Units() != bigdft.Angstroem || P.BoundaryConditions() != bigdft.Free || P.Cell() != nil {
		Te.Errorf("unexpected units/bc/cell %s %s %v", P.Units(), P.BoundaryConditions(), P.Cell())
	}
	want := "2   angstroem\nfree\n" +
		"N   2.97630782434901e-23   6.87220595204354e-23   0.0107161998748779\n" +
		"N   -1.10434491945017e-23   -4.87342174483075e-23   1.10427379608154\n"
	if P.String() != want {
		Te.Errorf("unexpected string:\n%s\nwant:\n%s", P.String(), want)
	}
	d, err := P.Distance(0, 1)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(d*bigdft.Bohr2A-1.0935575962) > 1e-8 {
		Te.Errorf("unexpected N-N distance %v bohr", d)
	}
}

func TestBoundaryConditions(Te *testing.T) {
	for cell, bc := range map[string]string{
		"[8.0, 8.0, 8.0]":    bigdft.Periodic,
		"[8.0, .inf, 8.0]":   bigdft.Surface,
		"[8.0, inf, -8.0]":   bigdft.Surface,
		"[.inf, .inf, 10.0]": bigdft.Wire,
	} {
		P := read(Te, "cell: "+cell+"\npositions:\n- Si: [0, 0, 0]\n")
		if P.BoundaryConditions() != bc {
			Te.Errorf("cell %s: got %s, want %s", cell, P.BoundaryConditions(), bc)
		}
		if c := P.Cell(); c[2] < 0 {
			Te.Errorf("cell sizes should be positive, got %v", c)
		}
	}
	if P := read(Te, "positions:\n- H: [0, 0, 0]\n"); P.Units() != bigdft.Atomic {
		Te.Errorf("default units should be atomic, got %s", P.Units())
	}
}

func TestFromNodeErrors(Te *testing.T) {
	for _, s := range []string{
		"[1, 2, 3]",
		"units: angstroem\n",
		"positions:\n- N: [0, 0]\n",
		"positions: []\n",
		"cell: [1, 2]\npositions:\n- N: [0, 0, 0]\n",
		"cell: [.inf, 2, 2]\npositions:\n- N: [0, 0, 0]\n",
	} {
		d, err := yamldoc.Load(strings.NewReader(s))
		if err != nil {
			Te.Fatal(err)
		}
		if _, err := FromNode(d.Root()); err == nil {
			Te.Errorf("expected an error for %q", s)
		}
	}
}

func TestEqual(Te *testing.T) {
	P := read(Te, n2)
	Q := read(Te, n2)
	if !P.Equal(Q, 1e-12) {
		Te.Error("identical geometries should be equal")
	}
	R := read(Te, strings.Replace(n2, "1.10427379608154", "1.2", 1))
	if P.Equal(R, 1e-6) {
		Te.Error("different geometries should not be equal")
	}
	c := P.Coords()
	c.Set(0, 0, 5)
	if P.Position(0)[0] == 5 {
		Te.Error("Coords should return a copy")
	}
}

func TestBonds(Te *testing.T) {
	coords, err := v3.NewMatrix([]float64{0, 0, 0, 0, 0, 0.96, 0.93, 0, -0.24, 5, 5, 5})
	if err != nil {
		Te.Fatal(err)
	}
	P, err := New([]string{"O", "H", "H", "Xx"}, coords, bigdft.Angstroem, nil)
	if err != nil {
		Te.Fatal(err)
	}
	bonds, err := P.Bonds(BondTolerance)
	if err != nil {
		Te.Fatal(err)
	}
	if len(bonds) != 2 || bonds[0].J != 1 || bonds[1].J != 2 {
		Te.Fatalf("expected the two O-H bonds, got %v", bonds)
	}
	if math.Abs(bonds[0].Length-0.96) > 1e-10 {
		Te.Errorf("wrong bond length %v", bonds[0].Length)
	}
	reduced, _ := v3.NewMatrix([]float64{0, 0, 0, 0, 0, 0.1})
	R, err := New([]string{"H", "H"}, reduced, bigdft.Reduced, []float64{10, 10, 10})
	if err != nil {
		Te.Fatal(err)
	}
	if _, err := R.Bonds(BondTolerance); err == nil {
		Te.Error("bonds in reduced coordinates should fail")
	}
}
