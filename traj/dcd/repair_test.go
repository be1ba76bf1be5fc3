/*
 * repair_test.go, part of gotraj.
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
	"errors"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRepair(Te *testing.T) {
	for _, order := range []binary.ByteOrder{binary.LittleEndian, binary.BigEndian} {
		D := simpleDCD(6, 9)
		D.order = order
		D.declared = 0
		D.fixed = 2
		name := D.write(Te, "repair.dcd")
		T, err := Open(name)
		require.NoError(Te, err)
		require.Equal(Te, 0, T.Frames())
		require.NoError(Te, T.Close())

		frames, err := Repair(name)
		require.NoError(Te, err)
		require.Equal(Te, 6, frames)

		T, err = Open(name)
		require.NoError(Te, err)
		require.Equal(Te, 6, T.Frames())
		F, err := T.Frame(5)
		require.NoError(Te, err)
		require.Equal(Te, encodedCoord(5, 6), F.At(6))
		require.NoError(Te, T.Close())
	}
}

// Trailing bytes that don't make a complete frame are not counted.
func TestRepairPartialFrame(Te *testing.T) {
	D := simpleDCD(4, 3)
	D.declared = 100
	b := append(D.bytes(), make([]byte, 20)...)
	name := filepath.Join(Te.TempDir(), "partial.dcd")
	require.NoError(Te, os.WriteFile(name, b, 0o644))
	frames, err := Repair(name)
	require.NoError(Te, err)
	require.Equal(Te, 4, frames)
	T, err := Open(name)
	require.NoError(Te, err)
	defer T.Close()
	require.Equal(Te, 4, T.Frames())
}

func TestRepairErrors(Te *testing.T) {
	D := simpleDCD(2, 3)
	D.headerEnd = 1
	_, err := Repair(D.write(Te, "bad.dcd"))
	require.ErrorIs(Te, err, ErrHeaderEnd)

	_, err = Repair(filepath.Join(Te.TempDir(), "missing.dcd"))
	require.True(Te, errors.Is(err, fs.ErrNotExist))

	_, err = Repair(filepath.Join(Te.TempDir(), "traj.gz"))
	require.ErrorIs(Te, err, ErrFormat)

	if os.Getuid() != 0 { //root can write anyway
		name := simpleDCD(2, 3).write(Te, "ro.dcd")
		require.NoError(Te, os.Chmod(name, 0o444))
		_, err = Repair(name)
		require.True(Te, errors.Is(err, fs.ErrPermission))
	}
}

// Files with any extension can be repaired. Only the frame count change is logged.
func TestRepairOtherExtension(Te *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)
	D := simpleDCD(3, 2)
	D.declared = 0
	frames, err := Repair(D.write(Te, "stale.trj"))
	require.NoError(Te, err)
	require.Equal(Te, 3, frames)
	require.NotContains(Te, buf.String(), "not supported")
	require.Contains(Te, buf.String(), "frame count changed from 0 to 3")
}
