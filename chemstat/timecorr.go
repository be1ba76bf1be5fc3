/*
 * timecorr.go, part of gotraj.
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
	"math/cmplx"

	"github.com/rmera/gotraj"
	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/stat"
)

func cmplxMulConj(dst, b []complex128) {
	if len(dst) != len(b) {
		panic(fmt.Sprintf("complex conjugate multiplication of slices: Both slices should have the same len %d, %d", len(dst), len(b)))
	}
	for i, v := range b {
		dst[i] *= cmplx.Conj(v)
	}
}

// CrossCorr returns the normalized cross-correlation of c1 and c2, which must have
// the same length, for lags 0 to len(c1)-1. The series are zero-padded to twice their
// length, so the correlation is not circular. The result is put in dst if it has
// enough capacity.
func CrossCorr(c1, c2 []float64, dst ...[]float64) []float64 {
	if len(c1) != len(c2) {
		panic(fmt.Sprintf("gotraj/chemstat: CrossCorr: series of different lengths %d, %d", len(c1), len(c2)))
	}
	n := len(c1)
	var ret []float64
	if len(dst) > 0 && cap(dst[0]) >= n {
		ret = dst[0][:n]
	} else {
		ret = make([]float64, n)
	}
	if n == 0 {
		return ret
	}
	c1mean, c1std := stat.PopMeanStdDev(c1, nil)
	c2mean, c2std := stat.PopMeanStdDev(c2, nil)
	c1pad := make([]complex128, 2*n)
	c2pad := make([]complex128, 2*n)
	for i := range c1 {
		c1pad[i] = complex(c1[i]-c1mean, 0)
		c2pad[i] = complex(c2[i]-c2mean, 0)
	}
	f := fourier.NewCmplxFFT(len(c1pad))
	f.Coefficients(c1pad, c1pad)
	f.Coefficients(c2pad, c2pad)
	cmplxMulConj(c1pad, c2pad)
	f.Sequence(c1pad, c1pad)
	//Sequence doesn't normalize, so the 1/len(c1pad) goes here, together with the rest.
	norm := float64(len(c1pad)) * float64(n) * c1std * c2std
	for i := range ret {
		if norm == 0 {
			ret[i] = 0 //constant series
			continue
		}
		ret[i] = real(c1pad[i]) / norm
	}
	return ret
}

// DisplacementAutocorr returns the autocorrelation function of the displacement
// of seq (see Displacement), for lags 0 to seq.Len()-1.
func DisplacementAutocorr(seq gotraj.CoordSequence) ([]float64, error) {
	d, err := Displacement(seq)
	if err != nil {
		return nil, err
	}
	return CrossCorr(d, d), nil
}
