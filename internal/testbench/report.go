package testbench

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/mat"
)

// WriteReport writes a human-readable summary of a bench run: one
// mapping line per UE, the correlation matrix to three decimals, and any
// pairs above the highlight threshold.
func WriteReport(w io.Writer, results []Result, corr *mat.Dense, pairs []CorrelatedPair) {
	fmt.Fprintln(w, "Generated SRS waveforms:")
	for _, r := range results {
		fmt.Fprintf(w, "  %-6s %s\n", r.Label, r.Info.Summary())
	}

	fmt.Fprintln(w, "\nCorrelation matrix (magnitude):")
	n, _ := corr.Dims()
	fmt.Fprintf(w, "%8s", "")
	for j := 0; j < n; j++ {
		fmt.Fprintf(w, " %6s", results[j].Label)
	}
	fmt.Fprintln(w)
	for i := 0; i < n; i++ {
		fmt.Fprintf(w, "%8s", results[i].Label)
		for j := 0; j < n; j++ {
			fmt.Fprintf(w, " %6.3f", corr.At(i, j))
		}
		fmt.Fprintln(w)
	}

	if len(pairs) == 0 {
		fmt.Fprintln(w, "\nNo highly correlated pairs detected.")
		return
	}
	fmt.Fprintln(w, "\nHighly correlated pairs:")
	for _, p := range pairs {
		fmt.Fprintf(w, "  %s vs %s: %.3f\n", results[p.I].Label, results[p.J].Label, p.Value)
	}
}
