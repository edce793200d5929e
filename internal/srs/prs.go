package srs

// lfsrDiscard is the number of leading Gold-sequence samples discarded
// before output begins (the Nc offset folded into the x1/x2 buffers).
const lfsrDiscard = 31

// GeneratePRS generates a pseudo-random binary sequence using the LTE
// Gold sequence of TS 36.211 section 7.2. cInit is the 31-bit
// initialization state of the second LFSR; the result holds length
// elements, each 0 or 1, and is deterministic for fixed inputs.
//
// The first L' elements of a length-L run equal the full length-L' run,
// so callers may safely over-request and slice.
func GeneratePRS(cInit uint32, length int) ([]byte, error) {
	if length < 0 {
		return nil, ErrPRSLength
	}

	x1 := make([]byte, length+lfsrDiscard)
	x2 := make([]byte, length+lfsrDiscard)

	// x1: x1[0]=1, taps at n-3 and n-31 (the latter reads as zero while
	// the register is still filling).
	x1[0] = 1
	for n := 3; n < len(x1); n++ {
		b := x1[n-3]
		if n >= lfsrDiscard {
			b += x1[n-lfsrDiscard]
		}
		x1[n] = b % 2
	}

	// x2: seeded LSB-first from cInit, taps at n-1, n-2, n-3 and n-31.
	for n := 0; n < lfsrDiscard; n++ {
		x2[n] = byte(cInit>>n) & 1
	}
	for n := lfsrDiscard; n < len(x2); n++ {
		x2[n] = (x2[n-3] + x2[n-2] + x2[n-1] + x2[n-lfsrDiscard]) % 2
	}

	c := make([]byte, length)
	for n := range c {
		c[n] = (x1[n+lfsrDiscard] + x2[n+lfsrDiscard]) % 2
	}
	return c, nil
}
