/*
 * builder_test.go, part of gotraj.
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
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	v3 "github.com/rmera/gotraj/v3"
	"github.com/stretchr/testify/require"
)

// testDCD describes a synthetic DCD file for the tests.
type testDCD struct {
	order      binary.ByteOrder
	declared   int //frame count written in the header
	frames     int //frames actually written
	atoms      int //total atoms
	fixed      int
	freeIndex  []int32 //if nil and fixed>0, 1..free is used.
	titleLines []string
	charmm     int32 //version, 0 for X-PLOR
	unitCell   bool
	fourDims   bool
	start      int32
	step       int32
	delta      float32
	coord      func(frame, atom int) v3.Coord //nil means all zeros

	//corruption knobs
	headerEnd  int32 //if not 0, replaces the 84 at offset 88
	titleSize  int32 //if not 0, replaces the opening title marker
	titleClose int32 //if not 0, replaces the closing title marker
	atomsOpen  int32
	atomsClose int32
	indexOpen  int32
	indexClose int32
	badFrame   int //if > 0, the marker of the Y block of frame badFrame-1 is wrong
}

// simpleDCD returns a little-endian description with the given frames and atoms,
// in which each coordinate encodes its frame and atom.
func simpleDCD(frames, atoms int) *testDCD {
	return &testDCD{
		order:      binary.LittleEndian,
		declared:   frames,
		frames:     frames,
		atoms:      atoms,
		titleLines: []string{"REMARKS synthetic trajectory", "REMARKS for tests"},
		charmm:     24,
		start:      100,
		step:       10,
		delta:      0.002,
		coord:      encodedCoord,
	}
}

func encodedCoord(frame, atom int) v3.Coord {
	return v3.Coord{X: float32(frame) + float32(atom)/1000, Y: -float32(frame), Z: float32(atom)}
}

func or(v, def int32) int32 {
	if v != 0 {
		return v
	}
	return def
}

// bytes builds the file, the way a CHARMM/NAMD writer would.
func (D *testDCD) bytes() []byte {
	b := new(bytes.Buffer)
	w := func(v any) {
		if err := binary.Write(b, D.order, v); err != nil {
			panic(err)
		}
	}
	free := max(D.atoms-D.fixed, 0)
	//first block
	w(int32(84))
	b.WriteString("CORD")
	icntrl := make([]int32, 20)
	icntrl[0] = int32(D.declared)
	icntrl[1] = D.start
	icntrl[2] = D.step
	icntrl[8] = int32(D.fixed)
	if D.unitCell {
		icntrl[10] = 1
	}
	if D.fourDims {
		icntrl[11] = 1
	}
	icntrl[19] = D.charmm
	for i, v := range icntrl {
		if i == 9 {
			w(D.delta)
			continue
		}
		w(v)
	}
	w(or(D.headerEnd, 84))
	//title
	size := int32(4 + 80*len(D.titleLines))
	w(or(D.titleSize, size))
	w(int32(len(D.titleLines)))
	for _, l := range D.titleLines {
		line := make([]byte, 80)
		for i := range line {
			line[i] = ' '
		}
		copy(line, l)
		b.Write(line)
	}
	w(or(D.titleClose, size))
	//atoms
	w(or(D.atomsOpen, 4))
	w(int32(D.atoms))
	w(or(D.atomsClose, 4))
	if D.fixed > 0 {
		index := D.freeIndex
		if index == nil {
			for i := 0; i < free; i++ {
				index = append(index, int32(i+1))
			}
		}
		w(or(D.indexOpen, int32(4*free)))
		w(index)
		w(or(D.indexClose, int32(4*free)))
	}
	//frames
	blocksize := int32(4 * free)
	fields := make([][]float32, 3)
	for i := range fields {
		fields[i] = make([]float32, free)
	}
	for f := 0; f < D.frames; f++ {
		if D.unitCell {
			w(int32(48))
			w([]float64{10, 0, 10, 0, 0, 10})
			w(int32(48))
		}
		for a := 0; a < free; a++ {
			var c v3.Coord
			if D.coord != nil {
				c = D.coord(f, a)
			}
			fields[0][a], fields[1][a], fields[2][a] = c.X, c.Y, c.Z
		}
		for k, block := range fields {
			if D.badFrame == f+1 && k == 1 {
				w(blocksize + 4)
			} else {
				w(blocksize)
			}
			w(block)
			w(blocksize)
		}
		if D.fourDims {
			w(blocksize)
			w(make([]float32, free))
			w(blocksize)
		}
	}
	return b.Bytes()
}

// write puts the file in a temporary directory and returns its name.
func (D *testDCD) write(t testing.TB, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, D.bytes(), 0o644))
	return path
}
