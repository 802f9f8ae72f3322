/*
 * waterplot.go, part of gowater.
 *
 *
 * Copyright 2023 Raul Mera A. (raulpuntomeraatusachpuntocl)
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

//Package waterplot plots and summarizes the species populations found along
//an annotated trajectory.
package waterplot

import (
	"fmt"
	"image/color"

	water "github.com/rmera/gowater"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//the species shown, in display order.
var states = []water.State{water.Hydroxide, water.Water, water.Hydronium, water.Other}

//Series holds the per-frame species populations of a trajectory, in frame
//order.
type Series struct {
	frames []water.Tally
}

//NewSeries builds a Series from per-frame population tallies, such as the
//PerFrame record of the statistics returned by the annotation drivers when
//the Keep option is set.
func NewSeries(frames []water.Tally) *Series {
	return &Series{frames: frames}
}

//Append adds the populations of one more frame at the end of the series.
func (S *Series) Append(t water.Tally) {
	S.frames = append(S.frames, t)
}

//Len returns the number of frames in the series.
func (S *Series) Len() int {
	return len(S.frames)
}

//counts returns the population of one species along the series.
func (S *Series) counts(s water.State) []float64 {
	ret := make([]float64, len(S.frames))
	for i, t := range S.frames {
		ret[i] = float64(t.Of(s))
	}
	return ret
}

//MeanSD is the mean and the population standard deviation of the population
//of one species along a trajectory.
type MeanSD struct {
	Mean float64
	SD   float64
}

//String returns the value in the "mean +/- SD" form, with 2 decimals.
func (m MeanSD) String() string {
	return fmt.Sprintf("%.2f +/- %.2f", m.Mean, m.SD)
}

//Summary returns the mean and population standard deviation of each
//species' population along the series.
func Summary(S *Series) map[water.State]MeanSD {
	ret := make(map[water.State]MeanSD, len(states))
	for _, s := range states {
		c := S.counts(s)
		ret[s] = MeanSD{Mean: stat.Mean(c, nil), SD: stat.PopStdDev(c, nil)}
	}
	return ret
}

//basicPlot builds an empty population-vs-frame plot.
func basicPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.Padding = 3 * vg.Millimeter
	p.X.Label.Text = "Frame"
	p.Y.Label.Text = "Oxygens"
	p.Add(plotter.NewGrid())
	return p
}

//Plot writes a PNG plot of the populations along the series, one line per
//species, each in the color the table (or the default table, if nil is
//given) assigns to the oxygens of that species.
func Plot(S *Series, table *water.ColorTable, title, pngname string) error {
	if S == nil || S.Len() == 0 {
		return fmt.Errorf("Plot: nothing to plot")
	}
	if table == nil {
		table = water.DefaultColors()
	}
	p := basicPlot(title)
	for _, s := range states {
		pts := make(plotter.XYs, S.Len())
		for i, v := range S.counts(s) {
			pts[i].X = float64(i)
			pts[i].Y = v
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("Plot: %v", err)
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = rgba(table.Color(water.Oxygen, s))
		p.Add(line)
		p.Legend.Add(s.String(), line)
	}
	p.Legend.Top = true
	if err := p.Save(16*vg.Centimeter, 10*vg.Centimeter, pngname); err != nil {
		return fmt.Errorf("Plot: %v", err)
	}
	return nil
}

//rgba converts an annotation color into the stdlib's 8-bit form.
func rgba(c water.RGB) color.RGBA {
	f := func(v float64) uint8 { return uint8(v*255 + 0.5) }
	return color.RGBA{R: f(c[0]), G: f(c[1]), B: f(c[2]), A: 255}
}
