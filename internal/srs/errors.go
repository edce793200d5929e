package srs

import "errors"

var (
	// ErrCellID indicates a physical cell identity outside [0, 503].
	ErrCellID = errors.New("srs: cell_id must be in [0, 503]")
	// ErrTransmissionComb indicates a comb index k_tc other than 0 or 1.
	ErrTransmissionComb = errors.New("srs: transmission comb k_tc must be 0 or 1")
	// ErrBandwidthConfig indicates a negative B_srs index.
	ErrBandwidthConfig = errors.New("srs: bandwidth_config B_srs must be non-negative")
	// ErrSubframeConfig indicates a negative T_srs periodicity.
	ErrSubframeConfig = errors.New("srs: subframe_config T_srs must be non-negative")
	// ErrHoppingBandwidth indicates a negative b_hop parameter.
	ErrHoppingBandwidth = errors.New("srs: b_hop must be non-negative")
	// ErrSRSBandwidth indicates a negative N_b selector.
	ErrSRSBandwidth = errors.New("srs: srs_bandwidth N_b must be non-negative")
	// ErrUplinkRB indicates a non-positive uplink resource-block count.
	ErrUplinkRB = errors.New("srs: n_ul_rb must be positive")
	// ErrZCLength indicates a non-positive Zadoff-Chu sequence length.
	ErrZCLength = errors.New("srs: zadoff-chu length must be positive")
	// ErrPRSLength indicates a negative pseudo-random sequence length.
	ErrPRSLength = errors.New("srs: prs length must not be negative")
	// ErrSlotIndex indicates a negative slot index.
	ErrSlotIndex = errors.New("srs: slot index must not be negative")
	// ErrSubframeIndex indicates a negative subframe index.
	ErrSubframeIndex = errors.New("srs: subframe index must not be negative")
	// ErrFFTSize indicates a non-positive transform size.
	ErrFFTSize = errors.New("srs: fft size must be positive")
	// ErrInactiveSubframe indicates generation was requested for a subframe
	// the configuration does not schedule.
	ErrInactiveSubframe = errors.New("srs: subframe not active for this configuration")
	// ErrLengthMismatch indicates two signals of unequal length were correlated.
	ErrLengthMismatch = errors.New("srs: signals must have the same length")
)
