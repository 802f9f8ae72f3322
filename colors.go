/*
 * colors.go, part of gowater.
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

package water

import "fmt"

//RGB is a color to be attached to an atom, with the red, green and blue
//components each in [0,1].
type RGB [3]float64

//String returns the color in the form "[R G B]", with 2 decimals per component.
func (c RGB) String() string {
	return fmt.Sprintf("[%3.2f %3.2f %3.2f]", c[0], c[1], c[2])
}

//ColorTable maps each atom of a classified frame to a visualization color:
//oxygens by their protonation state, every other atom by its species tag.
//A table is meant to be built, and possibly adjusted, before a run starts,
//and only read afterwards, so one table can be shared by any number of
//concurrent frame annotations.
type ColorTable struct {
	states   map[State]RGB  //oxygens, by protonation state
	species  map[string]RGB //everything that is not an oxygen
	fallback RGB            //species missing from the species map
}

//DefaultColors returns a new ColorTable with the default palette: hydroxide
//oxygens blue, water oxygens red, hydronium oxygens orange and oxygens in
//any other state magenta, with white hydrogens and grey xenon. Species the
//table doesn't know are colored grey.
func DefaultColors() *ColorTable {
	return &ColorTable{
		states: map[State]RGB{
			Hydroxide: {0.0, 0.0, 1.0},
			Water:     {1.0, 0.0, 0.0},
			Hydronium: {1.0, 0.5, 0.0},
			Other:     {1.0, 0.0, 1.0},
		},
		species: map[string]RGB{
			Hydrogen: {1.0, 1.0, 1.0},
			Xenon:    {0.5, 0.5, 0.5},
		},
		fallback: RGB{0.5, 0.5, 0.5},
	}
}

//Color returns the color for an atom of the given species tag and state.
//It is total on both arguments: oxygens in a state the table doesn't cover
//(including Unknown) take the Other color, and species the table doesn't
//cover take the fallback color, so every atom of a frame gets some color.
func (T *ColorTable) Color(symbol string, s State) RGB {
	if symbol == Oxygen {
		if c, ok := T.states[s]; ok {
			return c
		}
		return T.states[Other]
	}
	if c, ok := T.species[symbol]; ok {
		return c
	}
	return T.fallback
}

//SetState sets the color for oxygens in the state s.
func (T *ColorTable) SetState(s State, c RGB) {
	T.states[s] = c
}

//SetSpecies sets the color for atoms of the given non-oxygen species.
//Oxygen colors are per-state, so they are set with SetState instead.
func (T *ColorTable) SetSpecies(symbol string, c RGB) {
	T.species[symbol] = c
}

//Paint annotates every atom of mol with its color from the given table, or
//from the default table if none is given. It only writes the Color field of
//the atoms; states and coordinates are left alone.
func Paint(mol Atomer, table ...*ColorTable) {
	var T *ColorTable
	if len(table) > 0 && table[0] != nil {
		T = table[0]
	} else {
		T = DefaultColors()
	}
	for i := 0; i < mol.Len(); i++ {
		at := mol.Atom(i)
		c := T.Color(at.Symbol, at.State)
		at.Color = &c
	}
}
