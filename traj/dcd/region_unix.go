//go:build unix

/*
 * region_unix.go, part of gotraj.
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
	"os"

	"golang.org/x/sys/unix"
)

// region is a read-only view of length bytes of a file.
type region struct {
	data []byte //exactly the requested bytes
	raw  []byte //the whole mapping, which starts at a page boundary
}

// mapRegion maps length bytes of f, starting at off, read-only.
// mmap offsets must be multiples of the page size, so the mapping may start a bit earlier.
func mapRegion(f *os.File, off, length int64) (*region, error) {
	page := int64(unix.Getpagesize())
	start := off - off%page
	raw, err := unix.Mmap(int(f.Fd()), start, int(off-start+length), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, &os.PathError{Op: "mmap", Path: f.Name(), Err: err}
	}
	return &region{data: raw[off-start:], raw: raw}, nil
}

func (r *region) release() error {
	if r.raw == nil {
		return nil
	}
	err := unix.Munmap(r.raw)
	r.raw, r.data = nil, nil
	return err
}
