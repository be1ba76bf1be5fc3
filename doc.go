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
Package gotraj is the root package of the gotraj library. It holds the interfaces shared
by the trajectory readers and the analysis packages built on top of them.

	**gotraj Capabilities**

	Reads CHARMM/NAMD DCD trajectory files with random access, without loading
	the whole file into memory. Each frame is memory-mapped only when it is
	first requested.

	Gives two lazy views over a trajectory: all the free atoms at one frame
	(dcd.Frame) and one atom across all frames (dcd.AtomHistory). Both
	implement CoordSequence.

	Detects the byte order of the file, supports fixed atoms (the free-atom
	index block) and reads past CHARMM unit-cell and 4th-dimension blocks.

	Repairs DCD files with a stale frame count in the header.

	Reads gzip, lzw and zstd compressed DCD files.

	Computes per-atom statistics (mean position, RMSF, displacement) over
	trajectories (package chemstat) and plots atom histories (package chemplot).

The coordinates are given as v3.Coord values, or, in bulk, as v3.Matrix, a
Nx3 matrix based on gonum's mat.Dense.

The dcdtool command (cmd/dcdtool) exposes most of this from the command line.
*/
package gotraj
