package testbench

import (
	"fmt"

	"github.com/hmkang/srsgen/internal/srs"
)

// Result pairs one generated SRS waveform with its mapping metadata.
type Result struct {
	Label  string
	Signal []complex128
	Info   srs.MappingInfo
}

// Generate runs the SRS pipeline for every UE of the suite against the
// suite's subframe. It fails on the first UE whose configuration is
// invalid or inactive for the subframe.
func Generate(s Suite, opts ...srs.Option) ([]Result, error) {
	labels := s.Labels()
	results := make([]Result, 0, len(s.UEs))
	for i, ue := range s.UEs {
		cfg, err := ue.Build()
		if err != nil {
			return nil, fmt.Errorf("testbench: %s: %w", labels[i], err)
		}
		signal, info, err := srs.GenerateSRS(cfg, s.Subframe, opts...)
		if err != nil {
			return nil, fmt.Errorf("testbench: %s: %w", labels[i], err)
		}
		results = append(results, Result{Label: labels[i], Signal: signal, Info: info})
	}
	return results, nil
}
