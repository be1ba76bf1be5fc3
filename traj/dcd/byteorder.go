/*
 * byteorder.go, part of gotraj.
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
)

// ByteOrder is the endianness of a DCD file.
type ByteOrder int

const (
	LittleEndian ByteOrder = iota
	BigEndian
)

func (o ByteOrder) String() string {
	if o == BigEndian {
		return "big-endian"
	}
	return "little-endian"
}

// Binary returns the encoding/binary equivalent of o.
func (o ByteOrder) Binary() binary.ByteOrder {
	if o == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// Scale is the width of the record-length markers of a DCD file.
type Scale int

const (
	Scale32 Scale = iota
	Scale64       //recognized, but not supported
)

func (s Scale) String() string {
	if s == Scale64 {
		return "64-bit"
	}
	return "32-bit"
}

const (
	headerMarker int32 = 84 //size of the first block
	magic              = "CORD"
	probeSize          = 8
)

// probe determines the byte order and scale of a DCD file from its first 8 bytes.
// The format has no endianness flag, so it is inferred from whether the first block
// marker (84) reads correctly. Big-endian is tried first.
func probe(b []byte) (ByteOrder, Scale, error) {
	if len(b) < probeSize {
		return LittleEndian, Scale32, ErrTruncated
	}
	for _, o := range []ByteOrder{BigEndian, LittleEndian} {
		bo := o.Binary()
		m1 := int32(bo.Uint32(b[0:4]))
		m2 := int32(bo.Uint32(b[4:8]))
		//a 64-bit marker, seen as 2 32-bit ints, has the 84 in one half and 0 in the other.
		if int64(m1)+int64(m2) == int64(headerMarker) {
			return o, Scale64, ErrUnsupportedScale
		}
		if m1 == headerMarker && string(b[4:8]) == magic {
			return o, Scale32, nil
		}
	}
	return LittleEndian, Scale32, fmt.Errorf("%w (first bytes: % x)", ErrNotDCD, b[:probeSize])
}
