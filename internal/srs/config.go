package srs

// DefaultZCLength is the maximum Zadoff-Chu length defined for the LTE
// uplink, used whenever Params does not override it.
const DefaultZCLength = 839

// Params carries the UE-specific SRS settings signaled by higher layers.
// It is the mutable input to NewConfig; all generation functions operate
// on the validated, immutable Config instead.
type Params struct {
	// CellID is the physical cell identity (0..503).
	CellID int
	// BandwidthConfig is the B_srs index from TS 36.213 controlling the
	// reference bandwidth scaling.
	BandwidthConfig int
	// SubframeConfig is the T_srs periodicity in subframes. 0 disables
	// SRS scheduling entirely.
	SubframeConfig int
	// HoppingBandwidth is the b_hop frequency hopping parameter from
	// TS 36.211 section 5.5.3.3.
	HoppingBandwidth int
	// GroupHopping enables sequence-group hopping.
	GroupHopping bool
	// SequenceHopping enables base-sequence hopping within a group.
	SequenceHopping bool
	// TransmissionComb is k_tc (0 or 1), selecting even or odd subcarriers.
	TransmissionComb int
	// CyclicShift is alpha in radians. Signaled as multiples of pi/4 in
	// the standard, but a raw value is accepted for experimentation.
	CyclicShift float64
	// SRSBandwidth is the N_b value selecting the occupied SRS bandwidth.
	SRSBandwidth int
	// UplinkRB is the number of UL resource blocks in the system
	// bandwidth, bounding the resulting SRS span.
	UplinkRB int
	// ZCLength optionally overrides the underlying Zadoff-Chu sequence
	// length. nil selects DefaultZCLength.
	ZCLength *int
}

// Config is a validated, immutable SRS parameter set. A single Config may
// be shared read-only across any number of concurrent generation calls.
type Config struct {
	cellID           int
	bandwidthConfig  int
	subframeConfig   int
	hoppingBandwidth int
	groupHopping     bool
	sequenceHopping  bool
	comb             int
	alpha            float64
	srsBandwidth     int
	uplinkRB         int
	zcLength         int
}

// NewConfig validates p and returns an immutable Config. Validation fails
// fast: the first field outside its documented range is reported and no
// Config is produced.
func NewConfig(p Params) (*Config, error) {
	if p.CellID < 0 || p.CellID > 503 {
		return nil, ErrCellID
	}
	if p.TransmissionComb != 0 && p.TransmissionComb != 1 {
		return nil, ErrTransmissionComb
	}
	if p.BandwidthConfig < 0 {
		return nil, ErrBandwidthConfig
	}
	if p.SubframeConfig < 0 {
		return nil, ErrSubframeConfig
	}
	if p.HoppingBandwidth < 0 {
		return nil, ErrHoppingBandwidth
	}
	if p.SRSBandwidth < 0 {
		return nil, ErrSRSBandwidth
	}
	if p.UplinkRB <= 0 {
		return nil, ErrUplinkRB
	}
	zcLength := DefaultZCLength
	if p.ZCLength != nil {
		if *p.ZCLength <= 0 {
			return nil, ErrZCLength
		}
		zcLength = *p.ZCLength
	}
	return &Config{
		cellID:           p.CellID,
		bandwidthConfig:  p.BandwidthConfig,
		subframeConfig:   p.SubframeConfig,
		hoppingBandwidth: p.HoppingBandwidth,
		groupHopping:     p.GroupHopping,
		sequenceHopping:  p.SequenceHopping,
		comb:             p.TransmissionComb,
		alpha:            p.CyclicShift,
		srsBandwidth:     p.SRSBandwidth,
		uplinkRB:         p.UplinkRB,
		zcLength:         zcLength,
	}, nil
}

// CellID returns the physical cell identity.
func (c *Config) CellID() int { return c.cellID }

// BandwidthConfig returns the B_srs index.
func (c *Config) BandwidthConfig() int { return c.bandwidthConfig }

// SubframeConfig returns the T_srs periodicity in subframes.
func (c *Config) SubframeConfig() int { return c.subframeConfig }

// HoppingBandwidth returns the b_hop parameter.
func (c *Config) HoppingBandwidth() int { return c.hoppingBandwidth }

// GroupHoppingEnabled reports whether sequence-group hopping is enabled.
func (c *Config) GroupHoppingEnabled() bool { return c.groupHopping }

// SequenceHoppingEnabled reports whether base-sequence hopping is enabled.
func (c *Config) SequenceHoppingEnabled() bool { return c.sequenceHopping }

// TransmissionComb returns the comb index k_tc.
func (c *Config) TransmissionComb() int { return c.comb }

// Alpha returns the cyclic shift in radians.
func (c *Config) Alpha() float64 { return c.alpha }

// SRSBandwidth returns the N_b bandwidth selector.
func (c *Config) SRSBandwidth() int { return c.srsBandwidth }

// UplinkRB returns the number of UL resource blocks.
func (c *Config) UplinkRB() int { return c.uplinkRB }

// ZCLength returns the effective Zadoff-Chu sequence length, either the
// override supplied at construction or DefaultZCLength.
func (c *Config) ZCLength() int { return c.zcLength }

// CombSpacing returns the subcarrier spacing of the transmission comb.
func (c *Config) CombSpacing() int { return 2 }

// BandwidthInSubcarriers computes the occupied subcarrier count M_sc.
//
// The exact mapping between B_srs and the usable SRS bandwidth lives in
// TS 36.213 Table 8.2.1; this approximates it as (N_b+1)*12*2^B_srs,
// capped at the configured UL bandwidth. Downstream correlation checks
// are calibrated against this approximation.
func (c *Config) BandwidthInSubcarriers() int {
	maxSC := c.uplinkRB * 12
	raw := (c.srsBandwidth + 1) * 12
	// Doubling stops once the UL bandwidth cap is reached, so a large
	// B_srs saturates instead of overflowing the shift.
	for i := 0; i < c.bandwidthConfig && raw < maxSC; i++ {
		raw *= 2
	}
	if raw > maxSC {
		return maxSC
	}
	return raw
}

// IsActiveSubframe reports whether the UE is configured to sound in the
// given subframe. A T_srs of 0 means SRS is disabled; otherwise the SRS
// is active every T_srs subframes, treated as a pure modulo rule.
func (c *Config) IsActiveSubframe(subframe int) bool {
	if c.subframeConfig == 0 {
		return false
	}
	return subframe%c.subframeConfig == 0
}
