/*
 * doc.go, part of gotraj.
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

/*
Package v3 implements the coordinate types of gotraj.

Coord is a single point in 3D space, stored with the same precision (float32) used by
the DCD format. Matrix is a row-major Nx3 matrix, one point per row, based on gonum's
(gonum.org/v1/gonum/mat) Dense type, with the restriction of a fixed number of columns.
*/
package v3
