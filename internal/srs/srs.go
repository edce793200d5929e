package srs

import "fmt"

// DefaultFFTSize is the transform size used by GenerateSRS unless
// overridden with WithFFTSize.
const DefaultFFTSize = 2048

// Option adjusts a single GenerateSRS call.
type Option func(*genOptions)

type genOptions struct {
	fftSize int
}

// WithFFTSize overrides the inverse-transform size for one call.
func WithFFTSize(n int) Option {
	return func(o *genOptions) { o.fftSize = n }
}

// MappingInfo describes how one SRS generation call mapped its sequence.
// It is purely an output artifact and is never mutated after creation.
type MappingInfo struct {
	SubframeIndex int
	SlotIndex     int
	RootIndex     int
	Alpha         float64
	MSc           int
	Comb          int
	FFTSize       int
	K0            int
	Hopping       HoppingState
}

// Summary returns a fixed-format one-line description of the mapping,
// suitable for logging and golden-output comparison. The format is a
// stable contract.
func (mi MappingInfo) Summary() string {
	return fmt.Sprintf("subframe=%d slot=%d root=%d alpha=%.3f M_sc=%d comb=%d k0=%d",
		mi.SubframeIndex, mi.SlotIndex, mi.RootIndex, mi.Alpha, mi.MSc, mi.Comb, mi.K0)
}

// GenerateSRS generates the time-domain SRS baseband signal (one OFDM
// symbol) for a subframe, along with the MappingInfo recording every
// intermediate value used.
//
// Generation fails with ErrInactiveSubframe when the configuration does
// not schedule SRS in the requested subframe; the error names both the
// subframe index and the configured T_srs periodicity. No partial result
// is returned on failure.
func GenerateSRS(cfg *Config, subframeIndex int, opts ...Option) ([]complex128, MappingInfo, error) {
	o := genOptions{fftSize: DefaultFFTSize}
	for _, opt := range opts {
		opt(&o)
	}

	if subframeIndex < 0 {
		return nil, MappingInfo{}, ErrSubframeIndex
	}
	if !cfg.IsActiveSubframe(subframeIndex) {
		return nil, MappingInfo{}, fmt.Errorf("%w: subframe %d (T_srs=%d)",
			ErrInactiveSubframe, subframeIndex, cfg.SubframeConfig())
	}

	// Two slots per subframe; SRS occupies the last symbol of the first.
	slotIndex := 2 * subframeIndex
	hopping, err := GroupAndSequenceHopping(cfg, slotIndex)
	if err != nil {
		return nil, MappingInfo{}, err
	}
	rootIndex := hopping.SequenceNumber

	base, err := GenerateZadoffChu(rootIndex, cfg.ZCLength())
	if err != nil {
		return nil, MappingInfo{}, err
	}

	mSc := cfg.BandwidthInSubcarriers()
	trunc := base
	if mSc < len(base) {
		trunc = base[:mSc]
	}
	shifted := ApplyCyclicShift(trunc, cfg.Alpha())

	grid, k0, err := MapToFrequencyGrid(shifted, cfg, o.fftSize)
	if err != nil {
		return nil, MappingInfo{}, err
	}
	signal := inverseFFT(grid)

	info := MappingInfo{
		SubframeIndex: subframeIndex,
		SlotIndex:     slotIndex,
		RootIndex:     rootIndex,
		Alpha:         cfg.Alpha(),
		MSc:           mSc,
		Comb:          cfg.TransmissionComb(),
		FFTSize:       o.fftSize,
		K0:            k0,
		Hopping:       hopping,
	}
	return signal, info, nil
}
