/*
 * protonate.go, part of gowater.
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
 *
 * gowater is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

package water

import (
	"fmt"

	v3 "github.com/rmera/gowater/v3"
)

//DefaultCutoff is the default maximum O-H distance, in A, at which an oxygen
//and a hydrogen count as bonded.
const DefaultCutoff = 1.3

//Species tags recognized by the classifier and the default color table.
const (
	Oxygen   = "O"
	Hydrogen = "H"
	Xenon    = "Xe"
)

//StateFromCount maps the number of hydrogens bonded to an oxygen to its
//protonation state: 1 hydrogen is a hydroxide, 2 a water and 3 a hydronium.
//Any other count, including 0, is Other.
func StateFromCount(n int) State {
	switch n {
	case 1:
		return Hydroxide
	case 2:
		return Water
	case 3:
		return Hydronium
	default:
		return Other
	}
}

//CountH returns the number of hydrogens within cutoff, inclusive, of the ith
//atom of mol, by minimum-image distances when cell is not nil, or plain
//Euclidean ones when it is. The atom itself is never counted. If temp, a 1x3
//buffer, is given, the distances are computed without allocating.
func CountH(coord *v3.Matrix, mol Atomer, i int, cell *Cell, cutoff float64, temp ...*v3.Matrix) int {
	var t *v3.Matrix
	if len(temp) > 0 && temp[0] != nil {
		t = temp[0]
	} else {
		t = v3.Zeros(1)
	}
	n := 0
	pos := coord.VecView(i)
	for j := 0; j < mol.Len(); j++ {
		if j == i || mol.Atom(j).Symbol != Hydrogen {
			continue
		}
		if cell.MinImageDist(pos, coord.VecView(j), t) <= cutoff {
			n++
		}
	}
	return n
}

//AssignStates assigns a protonation state to every oxygen of mol by counting
//the hydrogens within cutoff of it (distances exactly at the cutoff count as
//bonded), and returns a Tally with the populations found. Distances are
//minimum-image when cell is not nil. Atoms that are not oxygens are left
//untouched, in the Unknown state. If cutoff is not positive, DefaultCutoff
//is used. The cost is the number of oxygens times the number of hydrogens.
func AssignStates(coord *v3.Matrix, mol Atomer, cell *Cell, cutoff float64) (*Tally, error) {
	if coord == nil || mol == nil {
		return nil, CError{string(ErrNilData), []string{"AssignStates"}}
	}
	if v := coord.NVecs(); v != mol.Len() {
		return nil, CError{fmt.Sprintf("%s: %d coordinates for %d atoms", ErrInconsistentData, v, mol.Len()), []string{"AssignStates"}}
	}
	if !(cutoff > 0) { //covers NaN too
		cutoff = DefaultCutoff
	}
	hydrogens := make([]int, 0, mol.Len()/2)
	for j := 0; j < mol.Len(); j++ {
		if mol.Atom(j).Symbol == Hydrogen {
			hydrogens = append(hydrogens, j)
		}
	}
	t := new(Tally)
	temp := v3.Zeros(1)
	for i := 0; i < mol.Len(); i++ {
		at := mol.Atom(i)
		if at.Symbol != Oxygen {
			continue //only oxygens get a state, everything else stays Unknown
		}
		pos := coord.VecView(i)
		n := 0
		for _, j := range hydrogens {
			if cell.MinImageDist(pos, coord.VecView(j), temp) <= cutoff {
				n++
			}
		}
		at.State = StateFromCount(n)
		t.Inc(at.State)
	}
	return t, nil
}
