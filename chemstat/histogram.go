/*
 * histogram.go, part of gotraj.
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
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Histogram counts the values in bins equal-width bins spanning from the smallest to
// the largest value, both included. It returns the bins+1 dividers and the counts.
// If all values are equal, the bins span one unit around them.
func Histogram(values []float64, bins int) (dividers, counts []float64, err error) {
	if len(values) == 0 {
		return nil, nil, fmt.Errorf("gotraj/chemstat: Histogram of an empty series")
	}
	if bins < 1 {
		return nil, nil, fmt.Errorf("gotraj/chemstat: Histogram needs at least one bin, got %d", bins)
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	lo, hi := sorted[0], sorted[len(sorted)-1]
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	dividers = floats.Span(make([]float64, bins+1), lo, hi)
	//stat.Histogram leaves out the values equal to the last divider.
	dividers[bins] = math.Nextafter(hi, math.Inf(1))
	counts = stat.Histogram(nil, dividers, sorted, nil)
	dividers[bins] = hi
	return dividers, counts, nil
}
