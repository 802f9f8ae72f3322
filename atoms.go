/*
 * atoms.go, part of gowater.
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

//Atom contains the data for one atom of a frame, except for its coordinates,
//which are kept in the row of a v3.Matrix with the same index as the atom.
type Atom struct {
	Symbol string //the species tag, as read from the trajectory (e.g. "O", "H", "Xe")
	ID     int    //passed through from input to output unchanged; not required to be unique
	State  State  //the protonation state. Only assigned to oxygens, everything else stays Unknown.
	Color  *RGB   //the visualization color, or nil if the atom hasn't been annotated
}

//State is the protonation state of an oxygen, determined from the number of
//hydrogens bonded to it.
type State int

//The zero value is Unknown, so atoms that are not subject to the analysis
//don't need to be touched by it.
const (
	Unknown   State = iota //not (yet) classified
	Hydroxide              //1 bonded hydrogen
	Water                  //2 bonded hydrogens
	Hydronium              //3 bonded hydrogens
	Other                  //0, or more than 3, bonded hydrogens
)

//String returns the chemical name of the species: "OH-", "H2O" or "H3O+",
//or "other"/"unknown" for the remaining states.
func (s State) String() string {
	switch s {
	case Hydroxide:
		return "OH-"
	case Water:
		return "H2O"
	case Hydronium:
		return "H3O+"
	case Other:
		return "other"
	default:
		return "unknown"
	}
}

//Frame is one snapshot of a trajectory: an ordered set of atoms, their
//coordinates, and the metadata read with them. The order of the atoms is
//kept from input to output. A Frame is built fresh by a trajectory reader,
//worked on in place, and discarded after it is written, so nothing in the
//analysis outlives the frame it belongs to.
type Frame struct {
	Atoms   []*Atom
	Coords  *v3.Matrix //NVecs() matches len(Atoms); row i holds the position of atom i
	Cell    *Cell      //nil when the frame's header carries no readable lattice
	Comment string     //the header line of the frame, verbatim and without the line terminator
	N       int        //the atom count declared in the frame's count line; equals len(Atoms) in any frame built by a reader
}

//Atom returns the ith Atom of the frame. It panics if i is out of range.
func (F *Frame) Atom(i int) *Atom {
	if i >= F.Len() {
		panic(fmt.Sprintf("gowater: Requested atom %d of a %d-atom frame", i, F.Len()))
	}
	return F.Atoms[i]
}

//Len returns the number of atoms in the frame.
func (F *Frame) Len() int {
	return len(F.Atoms)
}

//Tally counts the oxygens of a frame, or of a whole trajectory, in each
//protonation state.
type Tally struct {
	Hydroxide int
	Water     int
	Hydronium int
	Other     int
}

//Inc adds one oxygen in the state s to the tally. Unknown is not tallied:
//it marks the atoms the analysis doesn't apply to.
func (T *Tally) Inc(s State) {
	switch s {
	case Hydroxide:
		T.Hydroxide++
	case Water:
		T.Water++
	case Hydronium:
		T.Hydronium++
	case Other:
		T.Other++
	}
}

//Of returns the number of oxygens tallied in the state s.
func (T *Tally) Of(s State) int {
	switch s {
	case Hydroxide:
		return T.Hydroxide
	case Water:
		return T.Water
	case Hydronium:
		return T.Hydronium
	case Other:
		return T.Other
	default:
		return 0
	}
}

//Add accumulates the counts of T2 into the receiver.
func (T *Tally) Add(T2 *Tally) {
	T.Hydroxide += T2.Hydroxide
	T.Water += T2.Water
	T.Hydronium += T2.Hydronium
	T.Other += T2.Other
}

//Sum returns the total number of oxygens tallied.
func (T *Tally) Sum() int {
	return T.Hydroxide + T.Water + T.Hydronium + T.Other
}

//String returns the populations in one line, e.g. "OH-=1, H2O=64, H3O+=1, other=0".
func (T Tally) String() string {
	return fmt.Sprintf("%v=%d, %v=%d, %v=%d, %v=%d", Hydroxide, T.Hydroxide, Water, T.Water, Hydronium, T.Hydronium, Other, T.Other)
}
