/*
 * dcd.go, part of gotraj.
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
	"encoding/binary"
	"fmt"
	"log"
	"os"
	"sync"
	"sync/atomic"

	"github.com/rmera/gotraj"
	"go.uber.org/multierr"
)

// Trajectory is a CHARMM/NAMD DCD trajectory file, opened for random access.
// All the complete frames in the file are memory-mapped, as one region, the first
// time a frame is requested, and stay mapped until the trajectory is closed. The
// markers of each frame are checked the first time it is read.
//
// All the decoded information is immutable, so a Trajectory can be queried from
// several goroutines at the same time. Frames and atom histories obtained from it
// must not be used after Close.
type Trajectory struct {
	filename string
	tmpname  string //decompressed copy, removed on Close. Empty for plain files.
	f        *os.File
	size     int64
	h        Header
	bo       binary.ByteOrder
	fit      int //complete frames present in the file
	closed   atomic.Bool
	mu       sync.Mutex
	frames   *region //all complete frames, nil until the first one is requested
	checked  []bool  //frames whose markers have been verified
}

var _ gotraj.AtomTraj = (*Trajectory)(nil)

// Open opens a DCD file and decodes its headers. The file can be compressed, see OpenFormat.
// It returns an error if any header block is invalid, in which case nothing stays open.
func Open(name string) (*Trajectory, error) {
	T, err := OpenFormat(name, "")
	return T, errDecorate(err, "Open")
}

// OpenFormat is like Open, but the compression of the file is given by format
// ("dcd", "gz", "lzw" or "zst"). If format is empty, it is deduced from the file extension,
// and unknown extensions are assumed to be plain DCD. Compressed files are decompressed
// to a temporary file, which is removed on Close.
func OpenFormat(name, format string) (*Trajectory, error) {
	T := &Trajectory{filename: name}
	ok := false
	defer func() {
		if !ok {
			T.release()
		}
	}()
	path := name
	if c := compressionOf(name, format); c != plain {
		tmp, err := decompress(name, c)
		if err != nil {
			return nil, errDecorate(err, "OpenFormat")
		}
		T.tmpname, path = tmp, tmp
	}
	var err error
	T.f, err = os.Open(path)
	if err != nil {
		return nil, newError(err, name, "os.Open", "OpenFormat")
	}
	info, err := T.f.Stat()
	if err != nil {
		return nil, newError(err, name, "Stat", "OpenFormat")
	}
	T.size = info.Size()
	T.h, err = readHeader(T.f, T.size)
	if err != nil {
		return nil, newError(err, name, "readHeader", "OpenFormat")
	}
	T.bo = T.h.Order.Binary()
	T.fit = T.h.fitFrames(T.size)
	if T.fit != T.h.Frames {
		log.Printf("DCD file %s declares %d frames, but its size fits %d. Repair can fix the header", name, T.h.Frames, T.fit)
	}
	ok = true
	return T, nil
}

// Close unmaps all frames and closes the file. It is safe to call more than once.
func (T *Trajectory) Close() error {
	if T.closed.Swap(true) {
		return nil
	}
	return errDecorate(T.release(), "Close")
}

// release frees every resource held by T. Also used when Open fails half-way.
func (T *Trajectory) release() error {
	T.mu.Lock()
	defer T.mu.Unlock()
	var err error
	if T.frames != nil {
		err = multierr.Append(err, T.frames.release())
		T.frames = nil
	}
	T.checked = nil
	if T.f != nil {
		err = multierr.Append(err, T.f.Close())
		T.f = nil
	}
	if T.tmpname != "" {
		err = multierr.Append(err, os.Remove(T.tmpname))
		T.tmpname = ""
	}
	if err != nil {
		return newError(err, T.filename, "release")
	}
	return nil
}

// Readable returns true if frames can still be requested from T.
func (T *Trajectory) Readable() bool {
	return !T.closed.Load()
}

// Header returns a copy of the decoded headers.
func (T *Trajectory) Header() Header {
	return T.h.clone()
}

// FileName returns the name given to Open.
func (T *Trajectory) FileName() string { return T.filename }

// Frames returns the number of frames declared in the header.
func (T *Trajectory) Frames() int { return T.h.Frames }

// Len returns the number of atoms per frame, i.e. the free atoms.
func (T *Trajectory) Len() int { return T.h.FreeAtoms }

// FreeAtoms returns the number of atoms per frame.
func (T *Trajectory) FreeAtoms() int { return T.h.FreeAtoms }

// Atoms returns the total number of atoms, free and fixed.
func (T *Trajectory) Atoms() int { return T.h.Atoms }

// FixedAtoms returns the number of atoms that don't move, and are not stored in the frames.
func (T *Trajectory) FixedAtoms() int { return T.h.FixedAtoms }

// FreeIndex returns a copy of the identifiers of the free atoms, or nil if all atoms are free.
func (T *Trajectory) FreeIndex() []int32 {
	return T.h.clone().FreeIndex
}

// Frame returns the coordinates of all free atoms at the i-th frame. The frame is
// mapped the first time it is requested. Panics if i is not in [0, Frames()).
func (T *Trajectory) Frame(i int) (*Frame, error) {
	if i < 0 || i >= T.h.Frames {
		panic(fmt.Sprintf("dcd: frame index %d out of range [0,%d)", i, T.h.Frames))
	}
	data, err := T.region(i)
	if err != nil {
		return nil, errDecorate(err, "Frame")
	}
	return &Frame{
		t:     T,
		index: i,
		data:  data,
		free:  T.h.FreeAtoms,
		block: T.h.coordBlock(),
		base:  T.h.coordsOffset(),
	}, nil
}

// Atom returns the coordinates of the i-th free atom along the trajectory. Nothing is
// read until elements of the history are requested. Panics if i is not in [0, FreeAtoms()).
func (T *Trajectory) Atom(i int) *AtomHistory {
	if i < 0 || i >= T.h.FreeAtoms {
		panic(fmt.Sprintf("dcd: atom index %d out of range [0,%d)", i, T.h.FreeAtoms))
	}
	return &AtomHistory{t: T, atom: i}
}

// History is Atom, returned as a gotraj.CoordSequence.
func (T *Trajectory) History(i int) gotraj.CoordSequence {
	return T.Atom(i)
}

// region returns the bytes of the i-th frame. The frames are mapped on the first
// call, and each frame is checked the first time it is requested.
func (T *Trajectory) region(i int) ([]byte, error) {
	T.mu.Lock()
	defer T.mu.Unlock()
	if T.f == nil || T.closed.Load() {
		return nil, newError(ErrClosed, T.filename, "region")
	}
	if i >= T.fit {
		return nil, newError(fmt.Errorf("%w: frame %d", ErrFrameBeyondEOF, i), T.filename, "region")
	}
	if T.frames == nil {
		r, err := mapRegion(T.f, T.h.FramesStart, int64(T.fit)*T.h.FrameSize)
		if err != nil {
			return nil, newError(err, T.filename, "mapRegion", "region")
		}
		T.frames = r
		T.checked = make([]bool, T.fit)
	}
	off := int64(i) * T.h.FrameSize
	data := T.frames.data[off : off+T.h.FrameSize]
	if !T.checked[i] {
		if err := T.checkFrame(data); err != nil {
			return nil, newError(fmt.Errorf("%w: frame %d", err, i), T.filename, "checkFrame", "region")
		}
		T.checked[i] = true
	}
	return data, nil
}

// checkFrame verifies the markers around each block of a frame.
func (T *Trajectory) checkFrame(data []byte) error {
	at := func(off int64) int32 { return int32(T.bo.Uint32(data[off:])) }
	if T.h.UnitCell {
		if at(0) != unitCellBlock-8 || at(unitCellBlock-4) != unitCellBlock-8 {
			return ErrFrameBlock
		}
	}
	size := int32(4 * T.h.FreeAtoms)
	block := T.h.coordBlock()
	for k := int64(0); k < 3; k++ {
		start := T.h.coordsOffset() + k*block
		if at(start) != size || at(start+block-4) != size {
			return ErrFrameBlock
		}
	}
	return nil
}
