/*
 * atomstat.go, part of gotraj.
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

//Package chemstat computes statistics over the coordinates of atoms along trajectories.
package chemstat

import (
	"context"
	"fmt"
	"math"

	"github.com/rmera/gotraj"
	v3 "github.com/rmera/gotraj/v3"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// components reads the whole sequence and returns its x, y and z components as
// separate slices.
func components(seq gotraj.CoordSequence) (x, y, z []float64, err error) {
	n := seq.Len()
	x = make([]float64, n)
	y = make([]float64, n)
	z = make([]float64, n)
	for i := 0; i < n; i++ {
		c, err := seq.Coord(i)
		if err != nil {
			return nil, nil, nil, err
		}
		x[i], y[i], z[i] = float64(c.X), float64(c.Y), float64(c.Z)
	}
	return x, y, z, nil
}

// Mean returns the average of the coordinates in seq.
func Mean(seq gotraj.CoordSequence) (v3.Coord, error) {
	if seq.Len() == 0 {
		return v3.Coord{}, fmt.Errorf("gotraj/chemstat: Mean of an empty sequence")
	}
	x, y, z, err := components(seq)
	if err != nil {
		return v3.Coord{}, err
	}
	return v3.Coord{
		X: float32(stat.Mean(x, nil)),
		Y: float32(stat.Mean(y, nil)),
		Z: float32(stat.Mean(z, nil)),
	}, nil
}

// RMSF returns the root mean square fluctuation of the coordinates in seq around
// their average, sqrt(<|r-<r>|^2>).
func RMSF(seq gotraj.CoordSequence) (float64, error) {
	if seq.Len() == 0 {
		return 0, fmt.Errorf("gotraj/chemstat: RMSF of an empty sequence")
	}
	x, y, z, err := components(seq)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(stat.PopVariance(x, nil) + stat.PopVariance(y, nil) + stat.PopVariance(z, nil)), nil
}

// Displacement returns, for each element of seq, its distance to the first one.
// If dst has the right length, it is used.
func Displacement(seq gotraj.CoordSequence, dst ...[]float64) ([]float64, error) {
	n := seq.Len()
	var ret []float64
	if len(dst) > 0 && len(dst[0]) == n {
		ret = dst[0]
	} else {
		ret = make([]float64, n)
	}
	if n == 0 {
		return ret, nil
	}
	first, err := seq.Coord(0)
	if err != nil {
		return nil, err
	}
	ref := first.Floats()
	cur := make([]float64, 3)
	for i := range ret {
		c, err := seq.Coord(i)
		if err != nil {
			return nil, err
		}
		ret[i] = floats.Distance(c.Floats(cur), ref, 2)
	}
	return ret, nil
}

// RMSFAll computes the RMSF of each of the given free atoms of traj (or all of them if
// atoms is nil), using up to workers goroutines. If done is not nil, it is called after
// each atom is finished, from any of the goroutines. The first error stops the computation.
func RMSFAll(ctx context.Context, traj gotraj.AtomTraj, atoms []int, workers int, done func()) ([]float64, error) {
	if atoms == nil {
		atoms = make([]int, traj.FreeAtoms())
		for i := range atoms {
			atoms[i] = i
		}
	}
	for _, a := range atoms {
		if a < 0 || a >= traj.FreeAtoms() {
			return nil, fmt.Errorf("gotraj/chemstat: atom %d out of range [0,%d)", a, traj.FreeAtoms())
		}
	}
	if workers < 1 {
		workers = 1
	}
	ret := make([]float64, len(atoms))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, a := range atoms {
		if gctx.Err() != nil {
			break
		}
		i, a := i, a
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := RMSF(traj.History(a))
			if err != nil {
				return fmt.Errorf("gotraj/chemstat: RMSF of atom %d: %w", a, err)
			}
			ret[i] = r
			if done != nil {
				done()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ret, ctx.Err()
}
