/*
 * gocoords.go, part of gotraj.
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

package v3

import (
	"fmt"
	"math"
)

// Coord is a point in 3D space.
type Coord struct {
	X, Y, Z float32
}

// NewCoord returns a Coord with the given components.
func NewCoord(x, y, z float32) Coord {
	return Coord{X: x, Y: y, Z: z}
}

// Floats returns the components of C as float64, in a slice.
// If dst is given and has at least 3 elements, it is used.
func (C Coord) Floats(dst ...[]float64) []float64 {
	var ret []float64
	if len(dst) > 0 && len(dst[0]) >= 3 {
		ret = dst[0][:3]
	} else {
		ret = make([]float64, 3)
	}
	ret[0] = float64(C.X)
	ret[1] = float64(C.Y)
	ret[2] = float64(C.Z)
	return ret
}

// Add returns C+D
func (C Coord) Add(D Coord) Coord {
	return Coord{C.X + D.X, C.Y + D.Y, C.Z + D.Z}
}

// Sub returns C-D
func (C Coord) Sub(D Coord) Coord {
	return Coord{C.X - D.X, C.Y - D.Y, C.Z - D.Z}
}

// Scale returns C with each component multiplied by f
func (C Coord) Scale(f float32) Coord {
	return Coord{C.X * f, C.Y * f, C.Z * f}
}

// Norm returns the euclidean norm of C. The sum is carried out in float64.
func (C Coord) Norm() float64 {
	x, y, z := float64(C.X), float64(C.Y), float64(C.Z)
	return math.Sqrt(x*x + y*y + z*z)
}

// Distance returns the euclidean distance between C and D.
func (C Coord) Distance(D Coord) float64 {
	return C.Sub(D).Norm()
}

func (C Coord) String() string {
	return fmt.Sprintf("(%8.3f %8.3f %8.3f)", C.X, C.Y, C.Z)
}
