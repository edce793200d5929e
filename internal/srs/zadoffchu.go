package srs

import (
	"math"
	"math/cmplx"
)

// GenerateZadoffChu generates the complex Zadoff-Chu base sequence of the
// given root and length: element n is exp(-i*pi*root*n*(n+1)/length).
//
// Callers are responsible for choosing a prime length when the
// zero-autocorrelation property matters; no primality check is made here.
func GenerateZadoffChu(root, length int) ([]complex128, error) {
	if length <= 0 {
		return nil, ErrZCLength
	}
	seq := make([]complex128, length)
	for n := range seq {
		phase := -math.Pi * float64(root) * float64(n) * float64(n+1) / float64(length)
		seq[n] = cmplx.Exp(complex(0, phase))
	}
	return seq, nil
}

// ApplyCyclicShift applies the cyclic shift alpha (radians) to a base
// sequence: element n is multiplied by exp(i*alpha*n). The result has the
// same length and per-sample magnitude as the input.
func ApplyCyclicShift(seq []complex128, alpha float64) []complex128 {
	out := make([]complex128, len(seq))
	for n, v := range seq {
		out[n] = v * cmplx.Exp(complex(0, alpha*float64(n)))
	}
	return out
}
