/*
 * repair.go, part of gotraj.
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
	"io"
	"log"
	"os"

	"go.uber.org/multierr"
)

// Repair recomputes the number of frames of a DCD file from its size and the frame
// geometry given by its headers, and writes it in the header. Some MD programs leave a
// placeholder or stale frame count there. It returns the new frame count.
// The headers are validated exactly as in Open. Compressed files can't be repaired.
// The file must not be open elsewhere while it is repaired.
func Repair(name string) (frames int, err error) {
	if isCompressed(name) {
		return 0, newError(fmt.Errorf("%w: compressed files can't be repaired", ErrFormat), name, "Repair")
	}
	f, err := os.OpenFile(name, os.O_RDWR, 0)
	if err != nil {
		return 0, newError(err, name, "os.OpenFile", "Repair")
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = multierr.Append(err, newError(cerr, name, "Close", "Repair"))
		}
	}()
	info, err := f.Stat()
	if err != nil {
		return 0, newError(err, name, "Stat", "Repair")
	}
	h, err := readHeader(f, info.Size())
	if err != nil {
		return 0, newError(err, name, "readHeader", "Repair")
	}
	frames = h.fitFrames(info.Size())
	if frames == h.Frames {
		return frames, nil
	}
	//The frame count is so close to the begining of the file that we just write it there.
	if err := binary.Write(io.NewOffsetWriter(f, offFrames), h.Order.Binary(), int32(frames)); err != nil {
		return 0, newError(err, name, "binary.Write", "Repair")
	}
	log.Printf("DCD file %s: frame count changed from %d to %d", name, h.Frames, frames)
	return frames, nil
}
