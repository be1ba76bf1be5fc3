/*
 * title.go, part of gotraj.
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

const titleLine = 80 //the title is stored in lines of exactly this many bytes

// title decodes the title block: size marker, number of lines, the lines and
// the size marker again.
func (b *headerBuilder) title() error {
	size, err := b.int32At(b.off)
	if err != nil {
		return err
	}
	//4 bytes for the line count, then the lines.
	if size < 4 || (size-4)%titleLine != 0 {
		return ErrTitleStart
	}
	lines, err := b.int32At(b.off + 4)
	if err != nil {
		return err
	}
	if lines < 0 {
		return ErrTitleStart
	}
	if b.off+12+int64(lines)*titleLine > b.size {
		return ErrTruncated
	}
	text := make([]byte, int64(lines)*titleLine)
	if err := b.readAt(text, b.off+8); err != nil {
		return err
	}
	end := b.off + 8 + int64(len(text))
	closing, err := b.int32At(end)
	if err != nil {
		return err
	}
	if closing != size {
		return ErrTitleEnd
	}
	b.h.Title = string(text)
	b.off = end + 4
	return nil
}

// atoms decodes the block with the total number of atoms, which is framed by 4s.
func (b *headerBuilder) atoms() error {
	check, err := b.int32At(b.off)
	if err != nil {
		return err
	}
	if check != 4 {
		return ErrAtomsStart
	}
	natoms, err := b.int32At(b.off + 4)
	if err != nil {
		return err
	}
	check, err = b.int32At(b.off + 8)
	if err != nil {
		return err
	}
	if check != 4 {
		return ErrAtomsEnd
	}
	if natoms < 0 || b.h.FixedAtoms < 0 || b.h.FixedAtoms > int(natoms) {
		return ErrAtomCount
	}
	b.h.Atoms = int(natoms)
	b.h.FreeAtoms = b.h.Atoms - b.h.FixedAtoms
	b.off += 12
	return nil
}

// freeIndex decodes the list of free atoms. The block is only present when
// there are fixed atoms.
func (b *headerBuilder) freeIndex() error {
	if b.h.FixedAtoms == 0 {
		return nil
	}
	blocksize := 4 * int64(b.h.FreeAtoms)
	check, err := b.int32At(b.off)
	if err != nil {
		return err
	}
	if int64(check) != blocksize {
		return ErrFreeIndexStart
	}
	if b.off+8+blocksize > b.size {
		return ErrTruncated
	}
	raw := make([]byte, blocksize)
	if err := b.readAt(raw, b.off+4); err != nil {
		return err
	}
	bo := b.h.Order.Binary()
	b.h.FreeIndex = make([]int32, b.h.FreeAtoms)
	for i := range b.h.FreeIndex {
		b.h.FreeIndex[i] = int32(bo.Uint32(raw[4*i:]))
	}
	check, err = b.int32At(b.off + 4 + blocksize)
	if err != nil {
		return err
	}
	if int64(check) != blocksize {
		return ErrFreeIndexEnd
	}
	b.off += 8 + blocksize
	return nil
}
