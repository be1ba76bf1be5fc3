/*
 * chemstat_test.go, part of gotraj.
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

package chemstat

import (
	"context"
	"errors"
	"math"
	"sync/atomic"
	"testing"

	"github.com/rmera/gotraj"
	v3 "github.com/rmera/gotraj/v3"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

// coords is an in-memory CoordSequence
type coords []v3.Coord

func (c coords) Len() int                       { return len(c) }
func (c coords) Coord(i int) (v3.Coord, error) { return c[i], nil }

// failing fails at the element bad
type failing struct {
	coords
	bad int
}

var errRead = errors.New("read error")

func (f failing) Coord(i int) (v3.Coord, error) {
	if i == f.bad {
		return v3.Coord{}, errRead
	}
	return f.coords[i], nil
}

// traj is an in-memory AtomTraj where atom a oscillates between -a and a along x.
type traj struct {
	atoms, frames int
}

func (t traj) FreeAtoms() int { return t.atoms }
func (t traj) Frames() int    { return t.frames }
func (t traj) History(a int) gotraj.CoordSequence {
	c := make(coords, t.frames)
	for i := range c {
		c[i] = v3.Coord{X: float32(a * (1 - 2*(i%2)))}
	}
	return c
}

func TestMeanRMSF(Te *testing.T) {
	seq := coords{{X: 1, Y: 0, Z: 0}, {X: -1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 0, Y: -1, Z: 0}}
	m, err := Mean(seq)
	require.NoError(Te, err)
	require.Equal(Te, v3.Coord{}, m)
	r, err := RMSF(seq)
	require.NoError(Te, err)
	require.InDelta(Te, 1.0, r, 1e-9)

	still := coords{{X: 3, Y: 4, Z: 5}, {X: 3, Y: 4, Z: 5}, {X: 3, Y: 4, Z: 5}}
	r, err = RMSF(still)
	require.NoError(Te, err)
	require.Zero(Te, r)

	_, err = RMSF(coords{})
	require.Error(Te, err)
	_, err = Mean(failing{seq, 2})
	require.ErrorIs(Te, err, errRead)
}

func TestDisplacement(Te *testing.T) {
	seq := coords{{X: 0, Y: 0, Z: 0}, {X: 3, Y: 4, Z: 0}, {X: 0, Y: 0, Z: 2}}
	d, err := Displacement(seq)
	require.NoError(Te, err)
	require.True(Te, floats.EqualApprox(d, []float64{0, 5, 2}, 1e-9), "got %v", d)
	dst := make([]float64, 3)
	d2, err := Displacement(seq, dst)
	require.NoError(Te, err)
	require.Same(Te, &dst[0], &d2[0])
	_, err = Displacement(failing{seq, 1})
	require.ErrorIs(Te, err, errRead)
}

func TestRMSFAll(Te *testing.T) {
	t := traj{atoms: 6, frames: 10}
	var calls atomic.Int32
	r, err := RMSFAll(context.Background(), t, nil, 3, func() { calls.Add(1) })
	require.NoError(Te, err)
	require.Len(Te, r, 6)
	for a, v := range r {
		require.InDelta(Te, float64(a), v, 1e-6)
	}
	require.Equal(Te, int32(6), calls.Load())

	r, err = RMSFAll(context.Background(), t, []int{5, 2}, 0, nil)
	require.NoError(Te, err)
	require.InDeltaSlice(Te, []float64{5, 2}, r, 1e-6)

	_, err = RMSFAll(context.Background(), t, []int{6}, 1, nil)
	require.Error(Te, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = RMSFAll(ctx, t, nil, 2, nil)
	require.ErrorIs(Te, err, context.Canceled)
}

func TestAutocorr(Te *testing.T) {
	seq := make(coords, 64)
	for i := range seq {
		seq[i] = v3.Coord{X: float32(math.Sin(float64(i) / 3))}
	}
	ac, err := DisplacementAutocorr(seq)
	require.NoError(Te, err)
	require.Len(Te, ac, 64)
	//the autocorrelation at lag 0 of a normalized series is 1
	require.InDelta(Te, 1.0, ac[0], 1e-6)
	for _, v := range ac[1:] {
		require.LessOrEqual(Te, v, ac[0]+1e-9)
	}
	flat := CrossCorr([]float64{2, 2, 2}, []float64{2, 2, 2})
	require.Equal(Te, []float64{0, 0, 0}, flat)
}

func TestHistogram(Te *testing.T) {
	div, counts, err := Histogram([]float64{0, 1, 1.5, 2, 3, 4}, 4)
	require.NoError(Te, err)
	require.Equal(Te, []float64{0, 1, 2, 3, 4}, div)
	require.Equal(Te, []float64{1, 2, 1, 2}, counts)
	require.Equal(Te, 6.0, floats.Sum(counts))

	div, counts, err = Histogram([]float64{2, 2, 2}, 2)
	require.NoError(Te, err)
	require.Equal(Te, []float64{1.5, 2, 2.5}, div)
	require.Equal(Te, []float64{0, 3}, counts)

	_, _, err = Histogram(nil, 3)
	require.Error(Te, err)
	_, _, err = Histogram([]float64{1}, 0)
	require.Error(Te, err)
}
