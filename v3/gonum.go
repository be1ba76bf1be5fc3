/*
 * gonum.go, part of gotraj.
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

//All the *Vec functions operate on row vectors, i.e. on the coordinates of a single point.

package v3

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const cols int = 3

// Matrix is a set of vectors in 3D space, one vector per row.
type Matrix struct {
	*mat.Dense
}

// Zeros returns a zero-filled Matrix with vecs vectors and 3 in the other dimension.
func Zeros(vecs int) *Matrix {
	f := make([]float64, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

// NewMatrix generates and returns a Matrix with 3 columns from data.
func NewMatrix(data []float64) (*Matrix, error) {
	l := len(data)
	if l == 0 || l%cols != 0 {
		return nil, fmt.Errorf("v3.NewMatrix: input slice length %d not divisible by %d", l, cols)
	}
	return &Matrix{mat.NewDense(l/cols, cols, data)}, nil
}

// Dense2Matrix wraps A, which must have 3 columns, in a Matrix. Panics otherwise.
func Dense2Matrix(A *mat.Dense) *Matrix {
	if _, c := A.Dims(); c != cols {
		panic(mat.ErrShape)
	}
	return &Matrix{A}
}

// NVecs returns the number of vectors in F.
func (F *Matrix) NVecs() int {
	r, _ := F.Dims()
	return r
}

// VecView returns a view of the i-th vector of the matrix. Changes in the view are
// reflected in F and vice-versa.
func (F *Matrix) VecView(i int) *Matrix {
	r := F.Dense.Slice(i, i+1, 0, cols).(*mat.Dense)
	return &Matrix{r}
}

// SetCoord puts C in the i-th vector of F.
func (F *Matrix) SetCoord(i int, C Coord) {
	F.Set(i, 0, float64(C.X))
	F.Set(i, 1, float64(C.Y))
	F.Set(i, 2, float64(C.Z))
}

// Coord returns the i-th vector of F, converted to a Coord.
func (F *Matrix) Coord(i int) Coord {
	return Coord{float32(F.At(i, 0)), float32(F.At(i, 1)), float32(F.At(i, 2))}
}

// FromCoords returns a Matrix with one vector per element of c.
// If dst is not nil, and has exactly len(c) vectors, it is used.
func FromCoords(c []Coord, dst *Matrix) *Matrix {
	if dst == nil || dst.NVecs() != len(c) {
		dst = Zeros(len(c))
	}
	for i, v := range c {
		dst.SetCoord(i, v)
	}
	return dst
}
