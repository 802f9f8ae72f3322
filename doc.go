/*
 * doc.go, part of gowater.
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

/*Package water analyzes protonation states in molecular-dynamics trajectories
of aqueous systems, and re-emits the trajectories annotated with per-atom colors
for 3D visualization. It is aimed at reactive simulations, where protons hop
between molecules, so the speciation of each frame has to be determined from
the geometry alone.


	**gowater capabilities**

    Reads and writes extended-XYZ trajectory files one frame at a time, plain or
	gzip/zstd compressed (the traj/xyz subpackage), so arbitrarily long
	trajectories are processed in constant memory.

    Computes minimum-image distances under orthorhombic periodic cells, degrading
	to plain Euclidean distances when no cell is given.

    Assigns a protonation state (hydroxide, water or hydronium) to every oxygen
	in a frame by counting hydrogens within a bond cutoff.

    Annotates every atom with an RGB color from a per-run palette, keyed on
	species and, for oxygens, on the assigned state.

    Drives the whole read/classify/annotate/write pipeline over a trajectory,
	sequentially or processing frames concurrently, in both cases writing the
	frames in their original order.

    Tallies the species populations of each frame. The waterplot subpackage
	plots the populations along the trajectory and summarizes them.

The geometry convention is the same as in goChem: the coordinates of a frame
live in a v3.Matrix where the ith row is the position of the ith atom, while
everything else about the atom is kept in an Atom structure.*/
package water
