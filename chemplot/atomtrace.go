/*
 * atomtrace.go, part of gotraj.
 *
 * Copyright 2024 The gotraj Authors
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

//Package chemplot draws plots of trajectory data, using gonum's plot library.
package chemplot

import (
	"fmt"

	"github.com/rmera/gotraj"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Size of the saved plots
var (
	Width  = 6 * vg.Inch
	Height = 4 * vg.Inch
)

func basicPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

// AtomTrace plots the x, y and z coordinates in seq against their position in it
// (i.e. the frame number, for an atom history) and saves the plot in filename.
// The format is deduced from the extension of filename (png, svg, pdf...).
func AtomTrace(seq gotraj.CoordSequence, title, filename string) error {
	n := seq.Len()
	if n == 0 {
		return fmt.Errorf("gotraj/chemplot: AtomTrace: empty sequence")
	}
	var xyz [3]plotter.XYs
	for k := range xyz {
		xyz[k] = make(plotter.XYs, n)
	}
	for i := 0; i < n; i++ {
		c, err := seq.Coord(i)
		if err != nil {
			return err
		}
		for k, v := range []float32{c.X, c.Y, c.Z} {
			xyz[k][i].X = float64(i)
			xyz[k][i].Y = float64(v)
		}
	}
	p := basicPlot(title, "Frame", "Coordinate")
	for k, name := range []string{"x", "y", "z"} {
		l, err := plotter.NewLine(xyz[k])
		if err != nil {
			return err
		}
		l.LineStyle.Color = plotutil.Color(k)
		l.LineStyle.Width = vg.Points(1)
		p.Add(l)
		p.Legend.Add(name, l)
	}
	return p.Save(Width, Height, filename)
}

// Series plots values against their index, as a line, and saves the plot in filename.
func Series(values []float64, title, xlabel, ylabel, filename string) error {
	if len(values) == 0 {
		return fmt.Errorf("gotraj/chemplot: Series: no values")
	}
	pts := make(plotter.XYs, len(values))
	for i, v := range values {
		pts[i].X = float64(i)
		pts[i].Y = v
	}
	p := basicPlot(title, xlabel, ylabel)
	l, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	l.LineStyle.Color = plotutil.Color(0)
	p.Add(l)
	return p.Save(Width, Height, filename)
}
