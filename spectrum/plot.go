/*
 * plot.go, part of gomcnp.
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

package spectrum

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Plot draws d as a bar chart and saves it to file. The format is taken from the
// extension of file (png, svg, pdf...).
func Plot(d *Data, title, file string) error {
	p, err := barPlot(d, title)
	if err != nil {
		return err
	}
	if err = p.Save(16*vg.Centimeter, 10*vg.Centimeter, file); err != nil {
		return fmt.Errorf("gomcnp/spectrum: can't save plot %s: %w", file, err)
	}
	return nil
}

func barPlot(d *Data, title string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.Title.Padding = vg.Millimeters(3)
	p.X.Label.Text = "Energy (MeV)"
	p.Y.Label.Text = "Events"
	if d.Normalized() {
		p.Y.Label.Text = "Fraction of events"
	}
	bars, err := plotter.NewBarChart(plotter.Values(d.Copy()), vg.Points(12))
	if err != nil {
		return nil, fmt.Errorf("gomcnp/spectrum: can't build bar chart: %w", err)
	}
	bars.Color = color.RGBA{R: 30, G: 90, B: 170, A: 255}
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars, plotter.NewGrid())
	labels := make([]string, len(d.histo))
	for i := range labels {
		labels[i] = fmt.Sprintf("%.3g", d.dividers[i])
	}
	p.NominalX(labels...)
	return p, nil
}
