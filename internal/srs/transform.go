package srs

import "gonum.org/v1/gonum/dsp/fourier"

// inverseFFT computes the normalized inverse DFT of a frequency grid,
// yielding the time-domain baseband signal. gonum's Sequence is
// unnormalized, so the result is scaled by 1/N to match the usual
// inverse-transform convention.
func inverseFFT(grid []complex128) []complex128 {
	n := len(grid)
	fft := fourier.NewCmplxFFT(n)
	out := fft.Sequence(nil, grid)
	scale := complex(1/float64(n), 0)
	for i := range out {
		out[i] *= scale
	}
	return out
}
