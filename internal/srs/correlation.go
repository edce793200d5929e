package srs

import (
	"fmt"
	"math"
	"math/cmplx"
)

// NormalizedCrossCorrelation computes the zero-lag normalized
// cross-correlation magnitude between two equal-length complex signals:
// |sum(a[n]*conj(b[n]))| / (||a|| * ||b||), a value in [0, 1].
//
// Signals of unequal length are a domain error. A zero-norm input yields
// 0.0 by definition rather than an error.
func NormalizedCrossCorrelation(a, b []complex128) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(a), len(b))
	}

	var dot complex128
	var sumA, sumB float64
	for i := range a {
		dot += a[i] * cmplx.Conj(b[i])
		sumA += real(a[i])*real(a[i]) + imag(a[i])*imag(a[i])
		sumB += real(b[i])*real(b[i]) + imag(b[i])*imag(b[i])
	}
	if sumA == 0 || sumB == 0 {
		return 0, nil
	}
	return cmplx.Abs(dot) / (math.Sqrt(sumA) * math.Sqrt(sumB)), nil
}
