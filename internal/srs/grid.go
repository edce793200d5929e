package srs

// MapToFrequencyGrid places an SRS sequence onto a comb-structured OFDM
// frequency grid of nFFT bins. In the centered (DC-in-the-middle) layout
// the first element lands at
//
//	k0 = nFFT/2 - (len(seq)/2)*spacing + k_tc
//
// and element m at k0 + m*spacing. Indices falling outside [0, nFFT) are
// silently dropped: for small transform sizes this truncates the occupied
// band, which is the intended saturation policy rather than an error.
// All unfilled bins are exactly zero.
//
// The returned grid is circularly rotated so that bin 0 carries DC, the
// layout an inverse transform expects; k0 still refers to the centered
// layout.
func MapToFrequencyGrid(seq []complex128, cfg *Config, nFFT int) ([]complex128, int, error) {
	if nFFT <= 0 {
		return nil, 0, ErrFFTSize
	}

	shifted := make([]complex128, nFFT)
	spacing := cfg.CombSpacing()
	k0 := nFFT/2 - (len(seq)/2)*spacing + cfg.TransmissionComb()
	for m, v := range seq {
		k := k0 + m*spacing
		if k >= 0 && k < nFFT {
			shifted[k] = v
		}
	}
	return ifftShift(shifted), k0, nil
}

// ifftShift rotates a centered spectrum so that the middle bin (DC) moves
// to index 0, undoing the DC-centered layout.
func ifftShift(grid []complex128) []complex128 {
	n := len(grid)
	out := make([]complex128, n)
	shift := n / 2
	for i := range out {
		out[i] = grid[(i+shift)%n]
	}
	return out
}
