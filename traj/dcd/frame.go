/*
 * frame.go, part of gotraj.
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

package dcd

import (
	"fmt"
	"math"

	"github.com/rmera/gotraj"
	v3 "github.com/rmera/gotraj/v3"
)

var (
	_ gotraj.CoordSequence = (*Frame)(nil)
	_ gotraj.CoordSequence = (*AtomHistory)(nil)
)

// Frame is a read-only view of the coordinates of all free atoms at one frame.
// It reads directly from the mapped bytes of the frame, and is only valid while the
// trajectory that produced it is open.
type Frame struct {
	t     *Trajectory
	index int
	data  []byte
	free  int
	block int64 //size of each of the x, y and z blocks, markers included
	base  int64 //offset of the x block in data
}

// Index returns the position of F in the trajectory.
func (F *Frame) Index() int { return F.index }

// Len returns the number of free atoms in the frame.
func (F *Frame) Len() int { return F.free }

// At returns the coordinates of the i-th free atom. Panics if i is out of range, or if
// the trajectory has been closed.
func (F *Frame) At(i int) v3.Coord {
	if i < 0 || i >= F.free {
		panic(fmt.Sprintf("dcd: atom index %d out of range [0,%d)", i, F.free))
	}
	if F.t.closed.Load() {
		panic("dcd: frame used after its trajectory was closed")
	}
	bo := F.t.bo
	//each block starts with a 4-byte marker.
	off := F.base + 4 + 4*int64(i)
	return v3.Coord{
		X: math.Float32frombits(bo.Uint32(F.data[off:])),
		Y: math.Float32frombits(bo.Uint32(F.data[off+F.block:])),
		Z: math.Float32frombits(bo.Uint32(F.data[off+2*F.block:])),
	}
}

// Coord is At, with the signature required by gotraj.CoordSequence.
// The error is always nil, since the frame bytes were read when F was created.
func (F *Frame) Coord(i int) (v3.Coord, error) {
	return F.At(i), nil
}

// Coords puts all the coordinates of F in dst, if dst has enough capacity, or in a
// new slice otherwise, and returns it.
func (F *Frame) Coords(dst []v3.Coord) []v3.Coord {
	if cap(dst) < F.free {
		dst = make([]v3.Coord, F.free)
	}
	dst = dst[:F.free]
	for i := range dst {
		dst[i] = F.At(i)
	}
	return dst
}

// Matrix puts the coordinates of F in dst, which is allocated if nil or of the wrong
// size, and returns it. Returns nil for a frame without atoms.
func (F *Frame) Matrix(dst *v3.Matrix) *v3.Matrix {
	if F.free == 0 {
		return nil
	}
	if dst == nil || dst.NVecs() != F.free {
		dst = v3.Zeros(F.free)
	}
	for i := 0; i < F.free; i++ {
		dst.SetCoord(i, F.At(i))
	}
	return dst
}

// AtomHistory is a read-only view of the coordinates of one free atom along a
// trajectory, one element per frame. Each element is read from the corresponding
// frame, which is mapped when first needed. It is only valid while the trajectory
// that produced it is open.
type AtomHistory struct {
	t    *Trajectory
	atom int
}

// Atom returns the position of the atom among the free atoms.
func (A *AtomHistory) Atom() int { return A.atom }

// ID returns the identifier of the atom: its entry in the free atom index, or, if
// all atoms are free, its 1-based position.
func (A *AtomHistory) ID() int32 {
	if len(A.t.h.FreeIndex) == 0 {
		return int32(A.atom + 1)
	}
	return A.t.h.FreeIndex[A.atom]
}

// Len returns the number of frames.
func (A *AtomHistory) Len() int { return A.t.h.Frames }

// Coord returns the coordinates of the atom at frame t. Panics if t is out of range.
func (A *AtomHistory) Coord(t int) (v3.Coord, error) {
	F, err := A.t.Frame(t)
	if err != nil {
		return v3.Coord{}, errDecorate(err, "AtomHistory.Coord")
	}
	return F.At(A.atom), nil
}

// Coords returns the whole history, using dst if it has enough capacity.
func (A *AtomHistory) Coords(dst []v3.Coord) ([]v3.Coord, error) {
	n := A.Len()
	if cap(dst) < n {
		dst = make([]v3.Coord, n)
	}
	dst = dst[:n]
	var err error
	for t := range dst {
		if dst[t], err = A.Coord(t); err != nil {
			return nil, err
		}
	}
	return dst, nil
}

// Matrix puts the whole history in dst, one frame per row, and returns it. dst is
// allocated if nil or of the wrong size. Returns nil for an empty trajectory.
func (A *AtomHistory) Matrix(dst *v3.Matrix) (*v3.Matrix, error) {
	n := A.Len()
	if n == 0 {
		return nil, nil
	}
	if dst == nil || dst.NVecs() != n {
		dst = v3.Zeros(n)
	}
	for t := 0; t < n; t++ {
		c, err := A.Coord(t)
		if err != nil {
			return nil, err
		}
		dst.SetCoord(t, c)
	}
	return dst, nil
}
