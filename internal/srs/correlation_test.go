package srs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizedCrossCorrelation_Self(t *testing.T) {
	x, err := GenerateZadoffChu(25, 139)
	require.NoError(t, err)
	v, err := NormalizedCrossCorrelation(x, x)
	require.NoError(t, err)
	require.InDelta(t, 1.0, v, 1e-12)
}

func TestNormalizedCrossCorrelation_ScaleInvariant(t *testing.T) {
	x, err := GenerateZadoffChu(7, 61)
	require.NoError(t, err)
	scaled := make([]complex128, len(x))
	for i, v := range x {
		scaled[i] = v * complex(3.5, 0)
	}
	v, err := NormalizedCrossCorrelation(x, scaled)
	require.NoError(t, err)
	require.InDelta(t, 1.0, v, 1e-12)
}

func TestNormalizedCrossCorrelation_ZeroSignal(t *testing.T) {
	x, err := GenerateZadoffChu(3, 31)
	require.NoError(t, err)
	zeros := make([]complex128, len(x))

	v, err := NormalizedCrossCorrelation(x, zeros)
	require.NoError(t, err)
	require.Zero(t, v)

	v, err = NormalizedCrossCorrelation(zeros, zeros)
	require.NoError(t, err)
	require.Zero(t, v)
}

func TestNormalizedCrossCorrelation_LengthMismatch(t *testing.T) {
	a := make([]complex128, 8)
	b := make([]complex128, 9)
	_, err := NormalizedCrossCorrelation(a, b)
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestNormalizedCrossCorrelation_Bounded(t *testing.T) {
	a, err := GenerateZadoffChu(5, 139)
	require.NoError(t, err)
	b, err := GenerateZadoffChu(11, 139)
	require.NoError(t, err)
	v, err := NormalizedCrossCorrelation(a, b)
	require.NoError(t, err)
	require.GreaterOrEqual(t, v, 0.0)
	require.LessOrEqual(t, v, 1.0+1e-12)
}
