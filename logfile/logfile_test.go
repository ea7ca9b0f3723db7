package logfile

import (
	"bytes"
	"errors"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gobigdft/gobigdft/yamldoc"
	"github.com/google/go-cmp/cmp"
)

func single(Te *testing.T, name string, w Warner) *Logfile {
	Te.Helper()
	res, err := FromFile(name, &Options{Warner: w})
	if err != nil {
		Te.Fatal(err)
	}
	if res.Kind != KindSingle {
		Te.Fatalf("expected a single run, got %v", res.Kind)
	}
	return res.Log
}

func testfile(name string) string {
	return filepath.Join("testdata", name)
}

func TestN2(Te *testing.T) {
	w := new(Collector)
	L := single(Te, testfile("n2.yaml"), w)
	if e, ok := L.Energy(); !ok || math.Abs(e-(-19.88466)) > 1e-5 {
		Te.Errorf("wrong energy %v", e)
	}
	if bc, _ := L.BoundaryConditions(); bc != "free" {
		Te.Errorf("boundary conditions should be lowercased, got %q", bc)
	}
	if s, _ := yamldoc.String(L.Get("Atomic System Properties").Content[5]); s != "Free" {
		Te.Errorf("the raw document should not be modified, got %q", s)
	}
	f := L.Forces()
	if f == nil || f.NVecs() != 2 {
		Te.Fatalf("expected forces on 2 atoms, got %v", f)
	}
	if r := f.Vec(1); r != [3]float64{0, 0, -5.27467317e-2} {
		Te.Errorf("wrong forces on the second atom %v", r)
	}
	if n, _ := L.NAt(); n != 2 {
		Te.Errorf("wrong number of atoms %d", n)
	}
	if t, _ := L.AtomTypes(); !cmp.Equal(t, []string{"N"}) {
		Te.Errorf("wrong atom types %v", t)
	}
	if fm, _ := L.Forcemax(); fm != 5.27467317e-2 {
		Te.Errorf("wrong forcemax %v", fm)
	}
	if ev := L.Evals(); ev == nil || len(ev.Content) != 5 {
		Te.Errorf("expected 5 orbital energies")
	}
	if ef, _ := L.FermiLevel(); ef != -3.812611764087e-1 {
		Te.Errorf("wrong Fermi level %v", ef)
	}
	if d, _ := L.Dipole(); len(d) != 3 {
		Te.Errorf("wrong dipole %v", d)
	}
	if wt, _ := L.Walltime(); wt != 2.731 {
		Te.Errorf("wrong walltime %v", wt)
	}
	if _, ok := L.Cell(); ok {
		Te.Error("no cell expected")
	}
	if _, ok := L.Pressure(); ok {
		Te.Error("no pressure expected")
	}
	if L.Keys()[0] != "Code logo" || !L.Has("psppar.N") || L.Len() != 15 {
		Te.Errorf("unexpected raw keys %v", L.Keys())
	}
	if len(L.Warnings()) != 0 || len(w.Messages) != 0 {
		Te.Errorf("unexpected warnings %v", L.Warnings())
	}
	pos := L.Posinp()
	if pos == nil || pos.Len() != 2 || pos.Units() != "angstroem" || pos.BoundaryConditions() != "free" {
		Te.Fatalf("wrong geometry %v", pos)
	}
	if p := pos.Position(1); p[2] != 1.0935 {
		Te.Errorf("wrong position %v", p)
	}
	if L.InputParams().Has("posinp") || !L.InputParams().Has("dft") {
		Te.Errorf("unexpected input sections %v", L.InputParams().Keys())
	}
}

func TestForcesCopy(Te *testing.T) {
	L := single(Te, testfile("n2.yaml"), new(Collector))
	f := L.Forces()
	f.Scale(0)
	if L.Forces().Vec(0)[2] == 0 {
		Te.Error("Forces should return a copy")
	}
}

func TestIncomplete(Te *testing.T) {
	_, err := FromFile(testfile("incomplete.yaml"), &Options{Warner: new(Collector)})
	if !errors.Is(err, ErrIncomplete) {
		Te.Fatalf("expected ErrIncomplete, got %v", err)
	}
	var e Error
	if !errors.As(err, &e) || e.Document() != 0 || !strings.HasSuffix(e.FileName(), "incomplete.yaml") {
		Te.Errorf("error not located: %v", err)
	}
}

func TestBenignWarning(Te *testing.T) {
	w := new(Collector)
	L := single(Te, testfile("benign.yaml"), w)
	want := []string{BenignWarning, "Wavefunctions not converged: gnrm 1.2e-1"}
	if diff := cmp.Diff(want, L.Warnings()); diff != "" {
		Te.Errorf("unexpected warnings (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, w.Messages); diff != "" {
		Te.Errorf("warnings not sent to the warner (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, L.EngineWarnings()); diff != "" {
		Te.Errorf("unexpected engine warnings (-want +got):\n%s", diff)
	}
	if _, ok := L.Energy(); ok {
		Te.Error("no energy expected")
	}
	//The same warning in the first document of a geometry optimization does not help.
	d := doc(Te, "geopt: {method: SQNM}\nWARNINGS: [\""+BenignWarning+"\"]\n")
	if _, err := New(d, &Options{Warner: new(Collector)}); !errors.Is(err, ErrIncomplete) {
		Te.Errorf("expected ErrIncomplete, got %v", err)
	}
}

func TestEmptyDocument(Te *testing.T) {
	L, err := New(yamldoc.NewDoc(nil), &Options{Warner: new(Collector)})
	if err != nil {
		Te.Fatal(err)
	}
	if L.Len() != 0 || L.Posinp() != nil || L.Forces() != nil {
		Te.Error("an empty document should give an empty logfile")
	}
	if _, ok := L.Energy(); ok {
		Te.Error("no energy expected")
	}
}

func TestNoDocument(Te *testing.T) {
	if _, err := Load(strings.NewReader(""), nil); !errors.Is(err, ErrNoDocument) {
		Te.Errorf("expected ErrNoDocument, got %v", err)
	}
}

func TestXCMismatch(Te *testing.T) {
	w := new(Collector)
	d := doc(Te, `
dft: {ixc: 11}
psppar.N: {Pseudopotential XC: 1}
psppar.O: {Pseudopotential XC: 11}
Atomic System Properties: {Types of atoms: [N, O]}
Energy (Hartree): -1.0
`)
	L, err := New(d, &Options{Warner: w})
	if err != nil {
		Te.Fatal(err)
	}
	want := []string{"The XC of pseudo potentials (1) is different from the input XC (11) for the 'N' atoms"}
	if diff := cmp.Diff(want, L.Warnings()); diff != "" {
		Te.Errorf("unexpected warnings (-want +got):\n%s", diff)
	}
}

func TestMalformedForces(Te *testing.T) {
	cases := map[string]string{
		"not a list":       "Atomic Forces (Ha/Bohr): 3\n",
		"two components":   "Atomic Forces (Ha/Bohr):\n- N: [1.0, 2.0]\n",
		"not a single key": "Atomic Forces (Ha/Bohr):\n- {N: [1, 2, 3], O: [1, 2, 3]}\n",
	}
	for name, text := range cases {
		w := new(Collector)
		L, err := New(doc(Te, text), &Options{Warner: w})
		if err != nil {
			Te.Errorf("%s: %v", name, err)
			continue
		}
		if L.Forces() != nil || len(w.Messages) != 1 {
			Te.Errorf("%s: expected no forces and one warning, got %v", name, w.Messages)
		}
	}
	w := new(Collector)
	L, err := New(doc(Te, "Atomic System Properties: {Number of atoms: 3}\nAtomic Forces (Ha/Bohr):\n- N: [1, 2, 3]\n"), &Options{Warner: w})
	if err != nil {
		Te.Fatal(err)
	}
	if L.Forces().NVecs() != 1 || len(w.Messages) != 1 {
		Te.Errorf("expected 1 force and a warning about the number of atoms, got %v", w.Messages)
	}
}

func TestWriteRoundTrip(Te *testing.T) {
	L := single(Te, testfile("n2.yaml"), new(Collector))
	var buf bytes.Buffer
	if err := L.Write(&buf); err != nil {
		Te.Fatal(err)
	}
	if strings.HasPrefix(buf.String(), "---") {
		Te.Error("a single logfile should be written without a document marker")
	}
	res, err := Load(&buf, &Options{Warner: new(Collector)})
	if err != nil {
		Te.Fatal(err)
	}
	if !res.Log.Doc().Equal(L.Doc()) {
		Te.Error("the document changed in the round trip")
	}
	e1, _ := L.Energy()
	e2, _ := res.Log.Energy()
	if e1 != e2 {
		Te.Errorf("energy changed in the round trip: %v %v", e1, e2)
	}
}

func TestCompressedFile(Te *testing.T) {
	L := single(Te, testfile("n2.yaml"), new(Collector))
	for _, ext := range []string{".yaml.zst", ".yaml.gz"} {
		name := filepath.Join(Te.TempDir(), "log"+ext)
		if err := L.WriteFile(name); err != nil {
			Te.Fatal(err)
		}
		M := single(Te, name, new(Collector))
		if !M.Doc().Equal(L.Doc()) {
			Te.Errorf("%s: the document changed", ext)
		}
	}
}

func TestDefaultWarner(Te *testing.T) {
	//Without a Warner, warnings go to the global zap logger, a no-op here.
	L, err := New(doc(Te, "WARNINGS: [something]\nWalltime since initialization: 1.0\n"), nil)
	if err != nil {
		Te.Fatal(err)
	}
	if diff := cmp.Diff([]string{"something"}, L.Warnings()); diff != "" {
		Te.Errorf("unexpected warnings (-want +got):\n%s", diff)
	}
}

func TestEmptyForces(Te *testing.T) {
	w := new(Collector)
	L, err := New(doc(Te, "Atomic Forces (Ha/Bohr): []\n"), &Options{Warner: w})
	if err != nil {
		Te.Fatalf("an empty list of forces is enough for a complete run: %v", err)
	}
	if L.Forces() != nil {
		Te.Error("empty forces should read back as nil")
	}
	f := L.Attribute(Forces)
	if f == nil || yamldoc.KindOf(f) != yamldoc.Sequence || len(f.Content) != 0 {
		Te.Error("the forces attribute should be the empty sequence")
	}
	if len(w.Messages) != 0 {
		Te.Errorf("unexpected warnings %v", w.Messages)
	}
}

func TestBenignWarningCustomSchema(Te *testing.T) {
	//The warnings are read from the document even if the schema does not name them.
	schema := Schema{{Name: Energy, Paths: []yamldoc.Path{yamldoc.P("Energy (Hartree)")}}}
	res, err := FromFile(testfile("benign.yaml"), &Options{Schema: schema, Warner: new(Collector)})
	if err != nil {
		Te.Fatalf("the benign warning should be honored with a custom schema: %v", err)
	}
	if res.Log.Attributes().Known(Warnings) {
		Te.Error("WARNINGS is not part of the custom schema")
	}
}
