package testbench

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/hmkang/srsgen/internal/srs"
)

// DefaultThreshold is the correlation magnitude above which a pair of
// waveforms is flagged as poorly separated.
const DefaultThreshold = 0.3

// CorrelationMatrix computes the full pairwise normalized-correlation
// matrix for a set of generated waveforms. Entry (i, j) is the zero-lag
// correlation magnitude between signals i and j; the diagonal is 1 for
// any non-zero signal.
func CorrelationMatrix(results []Result) (*mat.Dense, error) {
	n := len(results)
	if n == 0 {
		return nil, fmt.Errorf("testbench: no waveforms to correlate")
	}
	corr := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, err := srs.NormalizedCrossCorrelation(results[i].Signal, results[j].Signal)
			if err != nil {
				return nil, err
			}
			corr.Set(i, j, v)
		}
	}
	return corr, nil
}

// CorrelatedPair identifies two waveforms whose correlation magnitude
// exceeds a threshold.
type CorrelatedPair struct {
	I, J  int
	Value float64
}

// HighlightPairs returns the upper-triangle pairs of the correlation
// matrix whose magnitude exceeds threshold, in row-major order.
func HighlightPairs(corr mat.Matrix, threshold float64) []CorrelatedPair {
	var pairs []CorrelatedPair
	n, _ := corr.Dims()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if v := corr.At(i, j); v > threshold {
				pairs = append(pairs, CorrelatedPair{I: i, J: j, Value: v})
			}
		}
	}
	return pairs
}
