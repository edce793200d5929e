// Package srs generates LTE uplink Sounding Reference Signal (SRS)
// waveforms and their intermediate sequence-derivation values as defined
// by 3GPP TS 36.211 / TS 36.213.
//
// The package is a pure computational library intended for simulation and
// test harnesses, not live transmission. Every operation is a deterministic
// function over immutable inputs: a validated Config may be shared across
// any number of concurrent GenerateSRS calls without synchronization.
//
// The pipeline runs strictly one way:
//
//	Config → hopping → Zadoff-Chu base sequence → cyclic shift
//	       → comb frequency grid → inverse FFT → baseband signal
//
// NormalizedCrossCorrelation operates independently on pairs of generated
// signals and is used to judge hopping and cyclic-shift orthogonality.
//
// The mapping from B_srs/T_srs to subframe activity and occupied bandwidth
// is a documented simplification of the full TS 36.213 tables; downstream
// correlation checks are calibrated against it.
package srs
