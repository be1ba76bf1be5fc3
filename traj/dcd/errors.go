/*
 * errors.go, part of gotraj.
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
	"fmt"
	"strings"
)

// ErrFormat is wrapped by every error caused by a file that is not a valid DCD
// trajectory. Use errors.Is to test for it.
var ErrFormat = errors.New("wrong format in DCD file")

// Specific format errors. All of them wrap ErrFormat.
var (
	ErrNotDCD           = fmt.Errorf("%w: not a recognized trajectory file", ErrFormat)
	ErrUnsupportedScale = fmt.Errorf("%w: unsupported scale (64-bit DCD)", ErrFormat)
	ErrTruncated        = fmt.Errorf("%w: file ends before the header does", ErrFormat)
	ErrHeaderEnd        = fmt.Errorf("%w: invalid header block ending", ErrFormat)
	ErrFrameCount       = fmt.Errorf("%w: negative frame count", ErrFormat)
	ErrTitleStart       = fmt.Errorf("%w: invalid title block start", ErrFormat)
	ErrTitleEnd         = fmt.Errorf("%w: invalid title block end", ErrFormat)
	ErrAtomsStart       = fmt.Errorf("%w: invalid atom-count block start", ErrFormat)
	ErrAtomsEnd         = fmt.Errorf("%w: invalid atom-count block end", ErrFormat)
	ErrAtomCount        = fmt.Errorf("%w: inconsistent atom counts", ErrFormat)
	ErrFreeIndexStart   = fmt.Errorf("%w: invalid free-atom index block start", ErrFormat)
	ErrFreeIndexEnd     = fmt.Errorf("%w: invalid free-atom index block end", ErrFormat)
	ErrFrameBlock       = fmt.Errorf("%w: invalid coordinate block in frame", ErrFormat)
	ErrFrameBeyondEOF   = fmt.Errorf("%w: frame extends past the end of the file (the frame count may need a repair)", ErrFormat)
)

// ErrClosed is returned when frames are requested from a closed trajectory.
var ErrClosed = errors.New("trajectory is closed")

// Error is the general structure for DCD trajectory errors. It fullfills gotraj.Error and gotraj.TrajError.
// The underlying cause, either one of the format errors of this package or an I/O error, is
// available through errors.Is and errors.As.
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
	cause    error
}

func newError(cause error, filename string, deco ...string) *Error {
	return &Error{message: cause.Error(), filename: filename, deco: deco, critical: true, cause: cause}
}

func (err *Error) Error() string {
	return fmt.Sprintf("dcd file %s error: %s", err.filename, err.message)
}

// Decorate adds new information to the error, and returns the decoration so far.
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// Trace returns the decoration as a single string, innermost function first.
func (err *Error) Trace() string { return strings.Join(err.deco, " <- ") }

// FileName returns the file to which the failing trajectory was associated
func (err *Error) FileName() string { return err.filename }

// Format returns the format of the file (always "dcd") associated to the error
func (err *Error) Format() string { return "dcd" }

// Critical returns true if the error is critical, false otherwise
func (err *Error) Critical() bool { return err.critical }

func (err *Error) Unwrap() error { return err.cause }

// errDecorate adds the caller's name to err, if err is an *Error, and returns it.
func errDecorate(err error, caller string) error {
	var e *Error
	if errors.As(err, &e) {
		e.Decorate(caller)
	}
	return err
}
