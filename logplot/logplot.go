/*
 * logplot.go, part of gobigdft.
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

//Package logplot draws the convergence of a BigDFT geometry optimization
//(or of any sequence of runs): energy and largest force at each step.
package logplot

import (
	"fmt"
	"image/color"
	"math"

	bigdft "github.com/gobigdft/gobigdft"
	"github.com/gobigdft/gobigdft/logfile"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//Default size of the saved plots.
const (
	Width  = 12 * vg.Centimeter
	Height = 9 * vg.Centimeter
)

var (
	energyColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	forceColor  = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	cvColor     = color.RGBA{R: 127, G: 127, B: 127, A: 255}
)

//Error is the error type of the package.
type Error struct {
	message  string
	deco     []string
	critical bool
}

func (err Error) Error() string { return fmt.Sprintf("logplot error: %s", err.message) }

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

func (err Error) Critical() bool { return err.critical }

func basicPlot(title, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Step"
	p.Y.Label.Text = ylabel
	p.X.Min = 0
	p.Add(plotter.NewGrid())
	return p
}

//points returns the (step, value) pairs of values that are neither NaN nor,
//if positive is true, lower or equal to zero.
func points(values []float64, positive bool) plotter.XYs {
	ret := make(plotter.XYs, 0, len(values))
	for i, v := range values {
		if math.IsNaN(v) || (positive && v <= 0) {
			continue
		}
		ret = append(ret, plotter.XY{X: float64(i), Y: v})
	}
	return ret
}

//addLinePoints adds xys to p as a line with a marker on each point.
func addLinePoints(p *plot.Plot, xys plotter.XYs, c color.Color) error {
	l, err := plotter.NewLine(xys)
	if err != nil {
		return Error{err.Error(), []string{"plotter.NewLine", "addLinePoints"}, true}
	}
	l.LineStyle.Color = c
	l.LineStyle.Width = vg.Points(1.5)
	s, err := plotter.NewScatter(xys)
	if err != nil {
		return Error{err.Error(), []string{"plotter.NewScatter", "addLinePoints"}, true}
	}
	s.GlyphStyle.Color = c
	s.GlyphStyle.Radius = vg.Points(2.5)
	p.Add(l, s)
	return nil
}

//Energy plots the energy at each step of S, in eV, relative to the last known
//energy. Steps without an energy are skipped.
func Energy(S *logfile.Sequence, title string) (*plot.Plot, error) {
	sum := S.Summary()
	if sum.WithEnergy == 0 {
		return nil, Error{"no energy in the sequence", []string{"Energy"}, true}
	}
	e := S.Energies()
	for i := range e {
		e[i] = (e[i] - sum.FinalEnergy) * bigdft.H2EV
	}
	p := basicPlot(title, "E - E(final) (eV)")
	if err := addLinePoints(p, points(e, false), energyColor); err != nil {
		return nil, errDecorate(err, "Energy")
	}
	return p, nil
}

//Forces plots the largest force at each step of S, in Ha/Bohr, in a logarithmic
//scale, with the convergence criterion of the optimization if it is known.
func Forces(S *logfile.Sequence, title string) (*plot.Plot, error) {
	xys := points(S.ForceMaxima(), true)
	if len(xys) == 0 {
		return nil, Error{"no positive maximal force in the sequence", []string{"Forces"}, true}
	}
	p := basicPlot(title, "Max. force (Ha/Bohr)")
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	if err := addLinePoints(p, xys, forceColor); err != nil {
		return nil, errDecorate(err, "Forces")
	}
	if cv, ok := S.At(0).ForcemaxCv(); ok && cv > 0 {
		f := plotter.NewFunction(func(float64) float64 { return cv })
		f.Color = cvColor
		f.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		p.Add(f)
		p.Legend.Add("criterion", f)
		if p.Y.Min > cv {
			p.Y.Min = cv / 2
		}
	}
	return p, nil
}

//Save writes p to the file name, in the format given by its extension
//(png, svg, pdf...). Zero sizes are replaced by Width and Height.
func Save(p *plot.Plot, name string, width, height vg.Length) error {
	if width <= 0 {
		width = Width
	}
	if height <= 0 {
		height = Height
	}
	if err := p.Save(width, height, name); err != nil {
		return Error{err.Error(), []string{"plot.Save", "Save"}, true}
	}
	return nil
}

//Convergence saves the energy and force plots of S as prefix_energy.png and
//prefix_forces.png, with the given size (see Save). A plot with no data is
//skipped. It returns the names of the files written.
func Convergence(S *logfile.Sequence, prefix, title string, width, height vg.Length) ([]string, error) {
	var written []string
	for _, pl := range []struct {
		suffix string
		draw   func(*logfile.Sequence, string) (*plot.Plot, error)
	}{{"_energy.png", Energy}, {"_forces.png", Forces}} {
		p, err := pl.draw(S, title)
		if err != nil {
			continue
		}
		if err := Save(p, prefix+pl.suffix, width, height); err != nil {
			return written, errDecorate(err, "Convergence")
		}
		written = append(written, prefix+pl.suffix)
	}
	if len(written) == 0 {
		return nil, Error{"nothing to plot", []string{"Convergence"}, true}
	}
	return written, nil
}

func errDecorate(err error, caller string) error {
	if e, ok := err.(Error); ok {
		e.deco = e.Decorate(caller)
		return e
	}
	return err
}
