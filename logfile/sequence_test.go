package logfile

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func sequence(Te *testing.T, name string, w Warner) *Sequence {
	Te.Helper()
	res, err := FromFile(testfile(name), &Options{Warner: w})
	if err != nil {
		Te.Fatal(err)
	}
	if res.Seq == nil || res.Log != nil {
		Te.Fatalf("expected a sequence, got %v", res.Kind)
	}
	return res.Seq
}

func TestGeopt(Te *testing.T) {
	w := new(Collector)
	S := sequence(Te, "geopt.yaml", w)
	if S.Kind() != KindGeopt || S.Len() != 3 {
		Te.Fatalf("expected a geometry optimization with 3 steps, got %v with %d", S.Kind(), S.Len())
	}
	if len(w.Messages) != 0 || len(S.Warnings()) != 0 {
		Te.Errorf("unexpected warnings %v", w.Messages)
	}
	params := S.At(0).InputParams()
	for i, L := range S.Logs() {
		if L.InputParams() != params {
			Te.Errorf("step %d does not share the input parameters of the first step", i)
		}
	}
	if !params.Has("geopt") {
		Te.Error("geopt section lost")
	}
	g := S.Geometries()
	if len(g) != 3 {
		Te.Fatalf("expected 3 geometries, got %d", len(g))
	}
	wantZ := []float64{1.2, 1.15, 1.147}
	for i, pos := range g {
		if pos == nil || pos != S.At(i).Posinp() {
			Te.Fatalf("geometry %d is not the one of its step", i)
		}
		if z := pos.Position(1)[2]; z != wantZ[i] {
			Te.Errorf("step %d: wrong position %v", i, z)
		}
	}
	if diff := cmp.Diff([]float64{-19.80, -19.87, -19.88}, S.Energies()); diff != "" {
		Te.Errorf("unexpected energies (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{0.2, 0.05, 0.005}, S.ForceMaxima()); diff != "" {
		Te.Errorf("unexpected force maxima (-want +got):\n%s", diff)
	}
	if !S.Converged() {
		Te.Error("the optimization should be converged")
	}
	sum := S.Summary()
	want := Summary{
		Steps:         3,
		WithEnergy:    3,
		FirstEnergy:   -19.80,
		FinalEnergy:   -19.88,
		MinEnergy:     -19.88,
		MinStep:       2,
		MeanEnergy:    -19.85,
		StdEnergy:     sum.StdEnergy,
		FinalForcemax: 0.005,
		Converged:     true,
	}
	if diff := cmp.Diff(want, sum, cmpopts.EquateApprox(0, 1e-10)); diff != "" {
		Te.Errorf("unexpected summary (-want +got):\n%s", diff)
	}
	if sum.StdEnergy <= 0 {
		Te.Errorf("wrong standard deviation %v", sum.StdEnergy)
	}
}

func TestMultiple(Te *testing.T) {
	w := new(Collector)
	S := sequence(Te, "multiple.yaml", w)
	if S.Kind() != KindMultiple || S.Len() != 2 {
		Te.Fatalf("expected 2 unrelated documents, got %v with %d", S.Kind(), S.Len())
	}
	if diff := cmp.Diff([]string{MultipleDocuments}, w.Messages); diff != "" {
		Te.Errorf("unexpected warnings (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{MultipleDocuments}, S.Warnings()); diff != "" {
		Te.Errorf("unexpected warnings (-want +got):\n%s", diff)
	}
	if S.At(0).InputParams() == S.At(1).InputParams() {
		Te.Error("unrelated documents should not share input parameters")
	}
	if S.Geometries() != nil || S.Converged() {
		Te.Error("no geometries nor convergence expected")
	}
	if bc, _ := S.At(1).BoundaryConditions(); bc != "periodic" {
		Te.Errorf("wrong boundary conditions %q", bc)
	}
	if c, _ := S.At(0).Cell(); !cmp.Equal(c, []float64{10, 10, 10}) {
		Te.Errorf("wrong cell %v", c)
	}
	var buf bytes.Buffer
	if err := S.Write(&buf); err != nil {
		Te.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "---\n") || strings.Count(buf.String(), "---\n") != 2 {
		Te.Errorf("each document should start with a marker:\n%s", buf.String())
	}
	res, err := Load(&buf, &Options{Warner: new(Collector)})
	if err != nil {
		Te.Fatal(err)
	}
	if res.Kind != KindMultiple || len(res.Logs()) != 2 {
		Te.Fatalf("round trip gave %v", res.Kind)
	}
	for i, L := range res.Logs() {
		if !L.Doc().Equal(S.At(i).Doc()) {
			Te.Errorf("document %d changed in the round trip", i)
		}
	}
}

func TestSequenceSummaryWithoutEnergies(Te *testing.T) {
	L1, err := New(doc(Te, "Walltime since initialization: 1.0\n"), &Options{Warner: new(Collector)})
	if err != nil {
		Te.Fatal(err)
	}
	L2, err := New(doc(Te, "Walltime since initialization: 2.0\nEnergy (Hartree): -1.5\n"), &Options{Warner: new(Collector)})
	if err != nil {
		Te.Fatal(err)
	}
	S, err := NewSequence([]*Logfile{L1, L2}, &Options{Warner: new(Collector)})
	if err != nil {
		Te.Fatal(err)
	}
	e := S.Energies()
	if !math.IsNaN(e[0]) || e[1] != -1.5 {
		Te.Errorf("unexpected energies %v", e)
	}
	sum := S.Summary()
	if sum.WithEnergy != 1 || sum.MinStep != 1 || sum.FinalEnergy != -1.5 || !math.IsNaN(sum.FinalForcemax) {
		Te.Errorf("unexpected summary %+v", sum)
	}
	if _, err := NewSequence([]*Logfile{L1}, nil); err == nil {
		Te.Error("a sequence of one logfile should fail")
	}
}
