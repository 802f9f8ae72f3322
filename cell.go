/*
 * cell.go, part of gowater.
 *
 *
 * Copyright 2022 Raul Mera A. (raulpuntomeraatusachpuntocl)
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

package water

import (
	"fmt"
	"math"

	v3 "github.com/rmera/gowater/v3"
)

//Cell is an orthorhombic periodic cell, given by its edge lengths along
//x, y and z. A nil *Cell is a valid receiver for every method, and means
//"no periodicity": the minimum-image operations then reduce to their plain
//Euclidean versions. A Cell is never written after construction, so one
//Cell can be shared by any number of concurrent frame classifications.
//
//The minimum image convention is only exact while every edge is longer than
//twice the largest distance of interest (here, the O-H bond cutoff). Cells
//smaller than that underestimate distances to images beyond the nearest one.
type Cell struct {
	edges [3]float64
}

//NewCell returns a Cell with the given edge lengths, in A. Edges must be
//finite and positive.
func NewCell(lx, ly, lz float64) (*Cell, error) {
	for _, l := range [3]float64{lx, ly, lz} {
		if math.IsNaN(l) || math.IsInf(l, 0) || l <= 0 {
			return nil, CError{fmt.Sprintf("gowater: Cell edges must be finite and positive, got %6.3f %6.3f %6.3f", lx, ly, lz), []string{"NewCell"}}
		}
	}
	return &Cell{edges: [3]float64{lx, ly, lz}}, nil
}

//Edges returns the edge lengths of the cell.
func (C *Cell) Edges() (lx, ly, lz float64) {
	return C.edges[0], C.edges[1], C.edges[2]
}

//Vectors returns the cell as 9 row-major values, the 3 cell vectors one
//after the other, in the box convention of goChem trajectories. It returns
//nil for a nil Cell.
func (C *Cell) Vectors() []float64 {
	if C == nil {
		return nil
	}
	return []float64{C.edges[0], 0, 0, 0, C.edges[1], 0, 0, 0, C.edges[2]}
}

//MinImageVec puts in dst the displacement from the vector a to the nearest
//periodic image of the vector b, wrapping each component to half an edge or
//less, and returns dst. If dst is nil, a new vector is allocated. On a nil
//Cell it just returns the plain difference b-a. All vectors must be 1x3.
func (C *Cell) MinImageVec(dst, a, b *v3.Matrix) *v3.Matrix {
	if dst == nil {
		dst = v3.Zeros(1)
	}
	dst.Sub(b, a)
	if C == nil {
		return dst
	}
	for k := 0; k < 3; k++ {
		d := dst.At(0, k)
		l := C.edges[k]
		dst.Set(0, k, d-l*math.Round(d/l))
	}
	return dst
}

//MinImageDist returns the distance between the vector a and the nearest
//periodic image of the vector b (the plain Euclidean distance, on a nil
//Cell). If temp, a 1x3 buffer, is given, it is used for the intermediate
//displacement, so the hot loops of a classification don't allocate.
func (C *Cell) MinImageDist(a, b *v3.Matrix, temp ...*v3.Matrix) float64 {
	var t *v3.Matrix
	if len(temp) > 0 && temp[0] != nil {
		t = temp[0]
	}
	t = C.MinImageVec(t, a, b)
	return t.Norm(2)
}
