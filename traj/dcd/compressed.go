/*
 * compressed.go, part of gotraj.
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
	"bufio"
	"compress/gzip"
	"compress/lzw"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"go.uber.org/multierr"
)

type compression int

const (
	plain compression = iota
	gzipped
	lzwed
	zstded
)

const (
	lzwOrder        = lzw.MSB
	lzwLitwidth int = 8
)

// compressionOf deduces the compression of a file from format or, if format is empty,
// from the file extension. .dcd (plain), .gz, .lzw and .zst are recognized. Anything
// else is logged and assumed to be a plain DCD.
func compressionOf(fname, format string) compression {
	fk := strings.ToLower(format)
	if fk == "" {
		fk = strings.TrimPrefix(strings.ToLower(filepath.Ext(fname)), ".")
	}
	switch fk {
	case "dcd":
		return plain
	case "gz", "gzip":
		return gzipped
	case "lzw":
		return lzwed
	case "zst", "zstd":
		return zstded
	default:
		//if it's not a plain DCD, you'll get an error later.
		log.Printf("Format string %s not supported. %s will be assumed to be a plain DCD file", fk, fname)
		return plain
	}
}

// isCompressed reports whether the extension of fname is one of the compressed formats.
func isCompressed(fname string) bool {
	switch strings.ToLower(filepath.Ext(fname)) {
	case ".gz", ".gzip", ".lzw", ".zst", ".zstd":
		return true
	}
	return false
}

// zstdReadCloser exists because *zstd.Decoder's Close doesn't return an error.
type zstdReadCloser struct {
	*zstd.Decoder
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

func newDecompressor(r io.Reader, c compression) (io.ReadCloser, error) {
	switch c {
	case gzipped:
		return gzip.NewReader(r)
	case lzwed:
		return lzw.NewReader(r, lzwOrder, lzwLitwidth), nil
	case zstded:
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zstdReadCloser{d}, nil
	}
	return nil, fmt.Errorf("unknown compression %d", c)
}

// decompress writes the decompressed contents of fname to a temporary file,
// and returns the name of the latter. Frames can then be mapped from it.
func decompress(fname string, c compression) (tmpname string, err error) {
	in, err := os.Open(fname)
	if err != nil {
		return "", newError(err, fname, "os.Open", "decompress")
	}
	defer in.Close()
	dec, err := newDecompressor(bufio.NewReader(in), c)
	if err != nil {
		return "", newError(err, fname, "newDecompressor", "decompress")
	}
	defer dec.Close()
	out, err := os.CreateTemp("", "gotraj-*.dcd")
	if err != nil {
		return "", newError(err, fname, "os.CreateTemp", "decompress")
	}
	defer func() {
		err = multierr.Append(err, out.Close())
		if err != nil {
			os.Remove(out.Name())
			err = newError(err, fname, "decompress")
			tmpname = ""
		}
	}()
	if _, err := io.Copy(out, dec); err != nil {
		return "", err
	}
	return out.Name(), nil
}
