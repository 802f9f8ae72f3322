/*
 * doc.go, part of gowater.
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

/*
Package xyz reads and writes molecular trajectories in the extended-XYZ
format, plain or compressed with gzip or zstd (chosen by the filename
suffix: .gz, .zst or .zstd).

A trajectory is a plain-text concatenation of frames. Each frame is:

	natoms
	comment line
	natoms atom lines

The comment line is free text, which this package passes through verbatim,
except that two extended-XYZ declarations in it are understood:

	Lattice="lx ly lz"

or its 9-value row-major form, gives the periodic cell of the frame. Only
orthorhombic cells (9-value lattices with zero off-diagonal components) are
accepted; a frame with a skewed lattice is an error, while a frame with no
readable lattice at all is simply taken as non-periodic.

	Properties=species:S:1:pos:R:3:id:I:1

declares the columns of the atom lines. This package always reads and
writes the 5 columns above, in that order, ignoring anything beyond them on
input. When the atoms of a frame carry colors, the Writer appends 3 more
columns (the red, green and blue components, in [0,1]) to each atom line,
and ":color:R:3" to the Properties declaration, so visualizers that follow
the schema pick the colors up.

Reading is lazy: one frame per call, so trajectories much larger than the
memory can be streamed through. The Reader reports malformed input with
errors that point at the offending frame and line (see the water.ParseError
interface).
*/
package xyz
