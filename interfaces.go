/*
 * interfaces.go, part of gotraj.
 *
 * Copyright 2024 The gotraj Authors
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

package gotraj

import v3 "github.com/rmera/gotraj/v3"

// CoordSequence is a read-only, indexable sequence of coordinates.
// Implementations are free to produce each element only when it is requested.
type CoordSequence interface {

	//Returns the number of elements in the sequence
	Len() int

	//Coord returns the i-th element of the sequence. It should panic if
	//i is out of range. The error is reserved for failures to read the
	//underlying data.
	Coord(i int) (v3.Coord, error)
}

// AtomTraj is a trajectory that can give the history of each of its free atoms.
type AtomTraj interface {

	//Returns the number of free atoms in each frame
	FreeAtoms() int

	//Returns the number of frames
	Frames() int

	//History returns the coordinates of the i-th free atom along the whole
	//trajectory, one element per frame.
	History(i int) CoordSequence
}

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Adds the name of the caller to the error and returns the "decoration" so far. An empty string only returns the current value.
}

// TrajError is the interface for errors in trajectories
type TrajError interface {
	Error
	Critical() bool
	FileName() string
	Format() string
}
