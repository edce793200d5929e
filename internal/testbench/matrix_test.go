package testbench

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/hmkang/srsgen/internal/srs"
)

func benchResults(t *testing.T) []Result {
	t.Helper()
	results, err := Generate(DefaultSuite(), srs.WithFFTSize(512))
	require.NoError(t, err)
	return results
}

func TestCorrelationMatrix(t *testing.T) {
	results := benchResults(t)
	corr, err := CorrelationMatrix(results)
	require.NoError(t, err)

	n, m := corr.Dims()
	require.Equal(t, len(results), n)
	require.Equal(t, len(results), m)

	for i := 0; i < n; i++ {
		require.InDelta(t, 1.0, corr.At(i, i), 1e-12, "diagonal %d", i)
		for j := 0; j < n; j++ {
			require.InDelta(t, corr.At(j, i), corr.At(i, j), 1e-12)
			require.GreaterOrEqual(t, corr.At(i, j), 0.0)
			require.LessOrEqual(t, corr.At(i, j), 1.0+1e-12)
		}
	}
}

func TestHighlightPairs(t *testing.T) {
	corr := mat.NewDense(3, 3, []float64{
		1.0, 0.8, 0.1,
		0.8, 1.0, 0.4,
		0.1, 0.4, 1.0,
	})
	pairs := HighlightPairs(corr, DefaultThreshold)
	require.Equal(t, []CorrelatedPair{
		{I: 0, J: 1, Value: 0.8},
		{I: 1, J: 2, Value: 0.4},
	}, pairs)

	require.Empty(t, HighlightPairs(corr, 0.9))
}

func TestWriteReport(t *testing.T) {
	results := benchResults(t)
	corr, err := CorrelationMatrix(results)
	require.NoError(t, err)

	var buf bytes.Buffer
	WriteReport(&buf, results, corr, HighlightPairs(corr, DefaultThreshold))
	out := buf.String()
	require.Contains(t, out, "Correlation matrix")
	require.Contains(t, out, "UE0")
	require.Contains(t, out, "subframe=4 slot=8")
}

func TestWriteHeatmap(t *testing.T) {
	corr := mat.NewDense(2, 2, []float64{1, 0.2, 0.2, 1})
	path := filepath.Join(t.TempDir(), "corr.png")
	require.NoError(t, WriteHeatmap(corr, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	require.Equal(t, 2*heatmapCell, img.Bounds().Dx())
	require.Equal(t, 2*heatmapCell, img.Bounds().Dy())
}

func TestWriteHeatmap_SingleCell(t *testing.T) {
	err := WriteHeatmap(mat.NewDense(1, 1, []float64{1}), filepath.Join(t.TempDir(), "one.png"))
	require.NoError(t, err)
}

func TestCorrelationMatrix_Empty(t *testing.T) {
	_, err := CorrelationMatrix(nil)
	require.Error(t, err)
}
