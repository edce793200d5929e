package srs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGeneratePRS_KnownPrefix(t *testing.T) {
	// With cInit=0 the x2 register never leaves the zero state, so the
	// output reduces to the x1 m-sequence alone.
	c, err := GeneratePRS(0, 8)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 0, 1, 0, 0, 1, 1, 0}, c)
}

func TestGeneratePRS_BinaryOutput(t *testing.T) {
	c, err := GeneratePRS(0x12345678, 256)
	require.NoError(t, err)
	require.Len(t, c, 256)
	for i, b := range c {
		require.LessOrEqual(t, b, byte(1), "element %d", i)
	}
}

func TestGeneratePRS_Deterministic(t *testing.T) {
	a, err := GeneratePRS(511, 128)
	require.NoError(t, err)
	b, err := GeneratePRS(511, 128)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestGeneratePRS_PrefixProperty(t *testing.T) {
	long, err := GeneratePRS(0x7FFFFFFF, 200)
	require.NoError(t, err)
	short, err := GeneratePRS(0x7FFFFFFF, 56)
	require.NoError(t, err)
	require.Equal(t, short, long[:56])
}

func TestGeneratePRS_Length(t *testing.T) {
	empty, err := GeneratePRS(7, 0)
	require.NoError(t, err)
	require.Empty(t, empty)

	_, err = GeneratePRS(7, -1)
	require.ErrorIs(t, err, ErrPRSLength)
}
