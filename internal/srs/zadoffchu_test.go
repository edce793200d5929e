package srs

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateZadoffChu_UnitMagnitude(t *testing.T) {
	for _, root := range []int{1, 25, 29} {
		seq, err := GenerateZadoffChu(root, 839)
		require.NoError(t, err)
		require.Len(t, seq, 839)
		for n, v := range seq {
			require.InDelta(t, 1.0, cmplx.Abs(v), 1e-12, "root %d sample %d", root, n)
		}
	}
}

func TestGenerateZadoffChu_FirstSample(t *testing.T) {
	// n=0 always yields exp(0) = 1 regardless of root.
	seq, err := GenerateZadoffChu(17, 139)
	require.NoError(t, err)
	require.InDelta(t, 1.0, real(seq[0]), 1e-12)
	require.InDelta(t, 0.0, imag(seq[0]), 1e-12)
}

func TestGenerateZadoffChu_ZeroRoot(t *testing.T) {
	// Root 0 degenerates to the all-ones sequence.
	seq, err := GenerateZadoffChu(0, 31)
	require.NoError(t, err)
	for _, v := range seq {
		require.InDelta(t, 1.0, real(v), 1e-12)
		require.InDelta(t, 0.0, imag(v), 1e-12)
	}
}

func TestGenerateZadoffChu_InvalidLength(t *testing.T) {
	_, err := GenerateZadoffChu(1, 0)
	require.ErrorIs(t, err, ErrZCLength)
	_, err = GenerateZadoffChu(1, -5)
	require.ErrorIs(t, err, ErrZCLength)
}

func TestApplyCyclicShift_PreservesMagnitude(t *testing.T) {
	seq, err := GenerateZadoffChu(25, 139)
	require.NoError(t, err)
	shifted := ApplyCyclicShift(seq, math.Pi/4)
	require.Len(t, shifted, len(seq))
	for n := range seq {
		require.InDelta(t, cmplx.Abs(seq[n]), cmplx.Abs(shifted[n]), 1e-12)
	}
}

func TestApplyCyclicShift_ZeroAlphaIdentity(t *testing.T) {
	seq, err := GenerateZadoffChu(3, 47)
	require.NoError(t, err)
	shifted := ApplyCyclicShift(seq, 0)
	for n := range seq {
		require.InDelta(t, real(seq[n]), real(shifted[n]), 1e-12)
		require.InDelta(t, imag(seq[n]), imag(shifted[n]), 1e-12)
	}
}

func TestApplyCyclicShift_PhaseRamp(t *testing.T) {
	ones := make([]complex128, 8)
	for i := range ones {
		ones[i] = 1
	}
	alpha := math.Pi / 2
	shifted := ApplyCyclicShift(ones, alpha)
	for n := range shifted {
		want := cmplx.Exp(complex(0, alpha*float64(n)))
		require.InDelta(t, real(want), real(shifted[n]), 1e-12)
		require.InDelta(t, imag(want), imag(shifted[n]), 1e-12)
	}
}
