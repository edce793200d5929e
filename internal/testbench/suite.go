// Package testbench drives the SRS generator across suites of UE
// configurations and evaluates the cross-correlation of the resulting
// waveforms. It consumes the core library's outputs and contains no
// sequence-generation logic of its own.
package testbench

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hmkang/srsgen/internal/srs"
)

// UEConfig is one UE parameter set as it appears in a suite file. Field
// names follow the RRC parameter vocabulary used by the core library.
type UEConfig struct {
	Label            string  `yaml:"label,omitempty"`
	CellID           int     `yaml:"cell_id"`
	BandwidthConfig  int     `yaml:"bandwidth_config"`
	SubframeConfig   int     `yaml:"subframe_config"`
	HoppingBandwidth int     `yaml:"b_hop"`
	GroupHopping     bool    `yaml:"group_hopping"`
	SequenceHopping  bool    `yaml:"sequence_hopping"`
	TransmissionComb int     `yaml:"transmission_comb"`
	CyclicShift      float64 `yaml:"cyclic_shift"`
	SRSBandwidth     int     `yaml:"srs_bandwidth"`
	UplinkRB         int     `yaml:"n_ul_rb"`
	ZCLength         *int    `yaml:"zc_length,omitempty"`
}

// Build validates the UE parameters into an immutable core Config.
func (u UEConfig) Build() (*srs.Config, error) {
	return srs.NewConfig(srs.Params{
		CellID:           u.CellID,
		BandwidthConfig:  u.BandwidthConfig,
		SubframeConfig:   u.SubframeConfig,
		HoppingBandwidth: u.HoppingBandwidth,
		GroupHopping:     u.GroupHopping,
		SequenceHopping:  u.SequenceHopping,
		TransmissionComb: u.TransmissionComb,
		CyclicShift:      u.CyclicShift,
		SRSBandwidth:     u.SRSBandwidth,
		UplinkRB:         u.UplinkRB,
		ZCLength:         u.ZCLength,
	})
}

// Suite is a set of UE configurations evaluated against one subframe.
type Suite struct {
	Subframe int        `yaml:"subframe"`
	UEs      []UEConfig `yaml:"ues"`
}

// DefaultSuite returns a small suite of diverse UE configurations
// covering both hopping flags, both combs and a spread of cyclic shifts.
func DefaultSuite() Suite {
	base := UEConfig{
		BandwidthConfig:  2,
		SubframeConfig:   2,
		HoppingBandwidth: 1,
		UplinkRB:         50,
	}
	ues := make([]UEConfig, 0, 4)
	for i, v := range []struct {
		cellID   int
		groupHop bool
		seqHop   bool
		comb     int
		alpha    float64
		nb       int
	}{
		{0, true, false, 0, 0, 0},
		{1, true, true, 1, math.Pi / 4, 1},
		{12, false, true, 0, math.Pi / 2, 2},
		{37, false, false, 1, 3 * math.Pi / 4, 3},
	} {
		ue := base
		ue.Label = fmt.Sprintf("UE%d", i)
		ue.CellID = v.cellID
		ue.GroupHopping = v.groupHop
		ue.SequenceHopping = v.seqHop
		ue.TransmissionComb = v.comb
		ue.CyclicShift = v.alpha
		ue.SRSBandwidth = v.nb
		ues = append(ues, ue)
	}
	return Suite{Subframe: 4, UEs: ues}
}

// LoadSuite reads a YAML suite file.
func LoadSuite(path string) (Suite, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Suite{}, fmt.Errorf("testbench: reading suite: %w", err)
	}
	var s Suite
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return Suite{}, fmt.Errorf("testbench: parsing suite: %w", err)
	}
	if len(s.UEs) == 0 {
		return Suite{}, fmt.Errorf("testbench: suite %q contains no UEs", path)
	}
	return s, nil
}

// Labels returns one display label per UE, synthesizing UE<n> where the
// suite file left the label empty.
func (s Suite) Labels() []string {
	labels := make([]string, len(s.UEs))
	for i, ue := range s.UEs {
		if ue.Label != "" {
			labels[i] = ue.Label
		} else {
			labels[i] = fmt.Sprintf("UE%d", i)
		}
	}
	return labels
}
