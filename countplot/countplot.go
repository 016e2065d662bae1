/*
 * countplot.go, part of ballpit.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

//Package countplot draws the element composition of a structure as a bar chart.
package countplot

import (
	"errors"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/rmera/ballpit"
)

//ErrNoCounts is returned when there is nothing to plot.
var ErrNoCounts = errors.New("countplot: no atoms to plot")

//BarWidth is the width of each bar.
var BarWidth = vg.Points(20)

//Plot returns a bar chart with the number of atoms of each element in C,
//one bar per element, sorted by symbol.
func Plot(C ballpit.Counter, title string) (*plot.Plot, error) {
	counts := C.Counts()
	if len(counts) == 0 {
		return nil, ErrNoCounts
	}
	symbols := make([]string, 0, len(counts))
	for k := range counts {
		symbols = append(symbols, k)
	}
	sort.Strings(symbols)
	values := make(plotter.Values, len(symbols))
	for i, s := range symbols {
		values[i] = float64(counts[s])
	}
	p := plot.New()
	p.Title.Text = title
	p.Title.Padding = 3 * vg.Millimeter
	p.Y.Label.Text = "Atoms"
	p.Y.Min = 0
	bars, err := plotter.NewBarChart(values, BarWidth)
	if err != nil {
		return nil, err
	}
	bars.Color = plotutil.Color(0)
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX(symbols...)
	return p, nil
}

//Save writes the bar chart for C to filename. The image format
//(png, svg, pdf, ...) is taken from the extension of filename.
func Save(C ballpit.Counter, title, filename string, width, height vg.Length) error {
	p, err := Plot(C, title)
	if err != nil {
		return err
	}
	return p.Save(width, height, filename)
}
