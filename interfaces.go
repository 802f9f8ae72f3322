/*
 * interfaces.go, part of gowater.
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

import v3 "github.com/rmera/gowater/v3"

// Traj is an interface for a trajectory read as bare coordinates, one frame
// per call. It matches the convention of goChem trajectory objects, so
// gowater trajectories can be fed to analyses that only care about geometry.
type Traj interface {

	//Is the trajectory ready to be read?
	Readable() bool

	//reads the next frame into output, or discards it if output is nil.
	//it can also fill the (optional) box with the cell vectors, if present in the frame.
	Next(output *v3.Matrix, box ...[]float64) error

	//Returns the number of atoms per frame
	Len() int
}

// ConcTraj is an interface for a trajectory that can be read concurrently.
type ConcTraj interface {

	//Is the trajectory ready to be read?
	Readable() bool

	/*NextConc reads as many frames as elements the given slice has, and
	returns a slice of channels, one per frame read, through each of which
	the corresponding frame will be transmitted. The frames are sent in
	reading order.*/
	NextConc(frames []*v3.Matrix) ([]chan *v3.Matrix, error)

	//Returns the number of atoms per frame
	Len() int
}

// FrameTraj is the interface for trajectory formats that carry per-frame
// species and metadata, not just coordinates. It is a lazy, non-restartable
// sequence: each NextFrame call parses and returns one fresh *Frame, until
// the end of the stream is signaled with a LastFrameError.
type FrameTraj interface {

	//Is the trajectory ready to be read?
	Readable() bool

	//NextFrame parses and returns the next frame of the trajectory.
	NextFrame() (*Frame, error)
}

// FrameWriter is the interface for writing full frames, in the order of the
// calls, to some trajectory representation.
type FrameWriter interface {

	//WNextFrame writes f as the next frame.
	WNextFrame(f *Frame) error
}

// Atomer is the basic interface for a topology.
type Atomer interface {

	//Atom returns the Atom corresponding to the index i
	//of the Atom slice in the topology. Should panic if
	//out of range.
	Atom(i int) *Atom

	Len() int
}

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing its type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Decorate allows adding information when passing the error up. Each call returns the current decoration slice. If passed an empty string, it should just return the current value, without adding the empty string to the slice. The slice should contain the names of the functions in the calling stack, plus, for each, any relevant extra information.
}

// TrajError is the interface for errors in trajectories.
type TrajError interface {
	Error
	Critical() bool
	FileName() string
	Format() string
}

// LastFrameError has a do-nothing method to distinguish the harmless
// end-of-trajectory signal from other TrajErrors, so it can be filtered in a
// type switch.
type LastFrameError interface {
	TrajError
	NormalLastFrameTermination() //does nothing, just separates this interface from other TrajErrors
}

// ParseError is implemented by trajectory errors that can point at the exact
// place in the input that caused the failure: the (0-based) frame index and
// the (1-based) line number.
type ParseError interface {
	TrajError
	Frame() int
	Line() int
}
