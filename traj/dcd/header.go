/*
 * header.go, part of gotraj.
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
	"errors"
	"io"
	"math"
	"strings"
)

const preambleSize = 92 //first block (84 bytes) plus its 2 markers

// Offsets of the fields of the first block, from the start of the file.
const (
	offFrames   = 8
	offStart    = 12
	offStep     = 16
	offFixed    = 40
	offDelta    = 44
	offUnitCell = 48 //CHARMM only
	offFourDims = 52 //CHARMM only
	offVersion  = 84 //CHARMM version, 0 for X-PLOR files
	offEnd      = 88
)

// Header contains the information decoded from the header blocks of a DCD file.
type Header struct {
	Order ByteOrder
	Scale Scale

	Frames     int     //number of frames declared in the header. Can be wrong, see Repair.
	Start      int     //timestep of the first frame
	Step       int     //timesteps between frames
	Delta      float32 //length of a timestep
	Title      string
	Atoms      int //total atoms, free and fixed
	FreeAtoms  int
	FixedAtoms int
	//Identifiers of the free atoms, in the order in which their coordinates
	//are stored in each frame. Empty if there are no fixed atoms, in which case
	//all atoms are free.
	FreeIndex []int32

	CharmmVersion int  //0 for X-PLOR files
	UnitCell      bool //each frame carries a unit cell block, which is not interpreted.
	FourDims      bool //each frame carries a 4th dimension block, which is not interpreted.

	FrameSize   int64 //bytes per frame
	FramesStart int64 //offset of the first frame in the file
}

// Time returns the timestep at which the given frame was recorded.
func (H Header) Time(frame int) int {
	return H.Start + frame*H.Step
}

// TitleLines returns the title split in its 80-character lines, with trailing
// spaces and null characters removed.
func (H Header) TitleLines() []string {
	ret := make([]string, 0, len(H.Title)/titleLine)
	for i := 0; i+titleLine <= len(H.Title); i += titleLine {
		ret = append(ret, strings.TrimRight(H.Title[i:i+titleLine], " \x00"))
	}
	return ret
}

// coordBlock is the size of one coordinate (x, y or z) block: a marker, a float
// per free atom and another marker.
func (H Header) coordBlock() int64 {
	return 4*int64(H.FreeAtoms) + 8
}

// coordsOffset is the offset of the first coordinate block inside a frame.
func (H Header) coordsOffset() int64 {
	if H.UnitCell {
		return unitCellBlock
	}
	return 0
}

// fitFrames returns how many complete frames fit in a file of the given size.
func (H Header) fitFrames(size int64) int {
	if size <= H.FramesStart || H.FrameSize <= 0 {
		return 0
	}
	return int((size - H.FramesStart) / H.FrameSize)
}

func (H Header) clone() Header {
	if H.FreeIndex != nil {
		H.FreeIndex = append([]int32(nil), H.FreeIndex...)
	}
	return H
}

const unitCellBlock = 48 + 8 //6 float64 plus markers

// headerBuilder decodes the header blocks of a DCD file, one at a time, checking
// the markers of each. Nothing is exposed until all blocks have been decoded.
type headerBuilder struct {
	r    io.ReaderAt
	size int64 //file size
	h    Header
	off  int64 //offset of the next block to decode
}

// readHeader decodes and validates all the header blocks of the file in r, whose
// size is size.
func readHeader(r io.ReaderAt, size int64) (Header, error) {
	b := &headerBuilder{r: r, size: size}
	steps := []func() error{b.preamble, b.title, b.atoms, b.freeIndex}
	for _, step := range steps {
		if err := step(); err != nil {
			return Header{}, err
		}
	}
	return b.freeze(), nil
}

// readAt reads len(buf) bytes at off. A short read means the file is truncated,
// which is a format error. Other errors are returned unchanged.
func (b *headerBuilder) readAt(buf []byte, off int64) error {
	if off < 0 || off+int64(len(buf)) > b.size {
		return ErrTruncated
	}
	_, err := b.r.ReadAt(buf, off)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrTruncated
	}
	return err
}

func (b *headerBuilder) int32At(off int64) (int32, error) {
	var buf [4]byte
	if err := b.readAt(buf[:], off); err != nil {
		return 0, err
	}
	return int32(b.h.Order.Binary().Uint32(buf[:])), nil
}

// preamble decodes the first block: magic, frame count, timesteps, fixed atoms and delta.
func (b *headerBuilder) preamble() error {
	buf := make([]byte, preambleSize)
	if err := b.readAt(buf[:probeSize], 0); err != nil {
		return err
	}
	var err error
	b.h.Order, b.h.Scale, err = probe(buf[:probeSize])
	if err != nil {
		return err
	}
	if err := b.readAt(buf, 0); err != nil {
		return err
	}
	bo := b.h.Order.Binary()
	i32 := func(off int) int32 { return int32(bo.Uint32(buf[off : off+4])) }
	if i32(offEnd) != headerMarker {
		return ErrHeaderEnd
	}
	b.h.Frames = int(i32(offFrames))
	if b.h.Frames < 0 {
		return ErrFrameCount
	}
	b.h.Start = int(i32(offStart))
	b.h.Step = int(i32(offStep))
	b.h.FixedAtoms = int(i32(offFixed))
	b.h.Delta = math.Float32frombits(bo.Uint32(buf[offDelta:]))
	//X-plor sets this last int to zero, charmm sets it to its version number.
	//Only charmm files have the extra per-frame blocks.
	b.h.CharmmVersion = int(i32(offVersion))
	if b.h.CharmmVersion != 0 {
		b.h.UnitCell = i32(offUnitCell) != 0
		b.h.FourDims = i32(offFourDims) == 1
	}
	b.off = preambleSize
	return nil
}

// freeze computes the frame geometry and returns the finished header.
func (b *headerBuilder) freeze() Header {
	h := b.h
	h.FramesStart = b.off
	h.FrameSize = 3 * h.coordBlock()
	if h.UnitCell {
		h.FrameSize += unitCellBlock
	}
	if h.FourDims {
		h.FrameSize += h.coordBlock()
	}
	return h
}
