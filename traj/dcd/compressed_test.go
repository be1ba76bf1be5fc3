/*
 * compressed_test.go, part of gotraj.
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
	"compress/gzip"
	"compress/lzw"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"
)

func TestCompressed(Te *testing.T) {
	raw := simpleDCD(5, 8).bytes()
	writers := map[string]func(io.Writer) (io.WriteCloser, error){
		"gz":  func(w io.Writer) (io.WriteCloser, error) { return gzip.NewWriter(w), nil },
		"lzw": func(w io.Writer) (io.WriteCloser, error) { return lzw.NewWriter(w, lzwOrder, lzwLitwidth), nil },
		"zst": func(w io.Writer) (io.WriteCloser, error) { return zstd.NewWriter(w) },
	}
	for ext, newWriter := range writers {
		Te.Run(ext, func(Te *testing.T) {
			b := new(bytes.Buffer)
			w, err := newWriter(b)
			require.NoError(Te, err)
			_, err = w.Write(raw)
			require.NoError(Te, err)
			require.NoError(Te, w.Close())
			name := filepath.Join(Te.TempDir(), "traj."+ext)
			require.NoError(Te, os.WriteFile(name, b.Bytes(), 0o644))

			T, err := Open(name)
			require.NoError(Te, err)
			require.Equal(Te, 5, T.Frames())
			F, err := T.Frame(4)
			require.NoError(Te, err)
			require.Equal(Te, encodedCoord(4, 7), F.At(7))
			tmp := T.tmpname
			require.FileExists(Te, tmp)
			require.NoError(Te, T.Close())
			require.NoFileExists(Te, tmp)
		})
	}
}

func TestCompressionOf(Te *testing.T) {
	require.Equal(Te, plain, compressionOf("a.dcd", ""))
	require.Equal(Te, gzipped, compressionOf("a.DCD.GZ", ""))
	require.Equal(Te, zstded, compressionOf("a.zst", ""))
	require.Equal(Te, lzwed, compressionOf("a.dcd", "lzw"))
	require.Equal(Te, plain, compressionOf("a.trj", ""))
	require.True(Te, isCompressed("a.dcd.Zst"))
	require.False(Te, isCompressed("a.trj"))
}

// A compressed file with a broken header leaves no temporary file behind.
func TestCompressedBadHeader(Te *testing.T) {
	D := simpleDCD(2, 2)
	D.titleClose = 3
	b := new(bytes.Buffer)
	w := gzip.NewWriter(b)
	_, err := w.Write(D.bytes())
	require.NoError(Te, err)
	require.NoError(Te, w.Close())
	name := filepath.Join(Te.TempDir(), "bad.gz")
	require.NoError(Te, os.WriteFile(name, b.Bytes(), 0o644))
	tmpdir := Te.TempDir()
	Te.Setenv("TMPDIR", tmpdir)
	_, err = Open(name)
	require.ErrorIs(Te, err, ErrTitleEnd)
	left, err := os.ReadDir(tmpdir)
	require.NoError(Te, err)
	require.Empty(Te, left)
}
