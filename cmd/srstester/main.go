package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hmkang/srsgen/internal/srs"
	"github.com/hmkang/srsgen/internal/testbench"
)

func main() {
	suitePath := flag.String("suite", "", "YAML suite file (default: built-in suite)")
	subframe := flag.Int("subframe", -1, "Subframe index override (-1 keeps the suite's value)")
	fftSize := flag.Int("fft", srs.DefaultFFTSize, "Inverse transform size")
	threshold := flag.Float64("threshold", testbench.DefaultThreshold, "Correlation highlight threshold")
	heatmap := flag.String("heatmap", "", "Write a PNG correlation heatmap to this path")
	flag.Parse()

	suite := testbench.DefaultSuite()
	if *suitePath != "" {
		var err error
		suite, err = testbench.LoadSuite(*suitePath)
		if err != nil {
			log.Fatalf("Failed to load suite: %v", err)
		}
	}
	if *subframe >= 0 {
		suite.Subframe = *subframe
	}

	fmt.Printf("Generating SRS for subframe %d (%d UEs, FFT %d)\n\n",
		suite.Subframe, len(suite.UEs), *fftSize)

	results, err := testbench.Generate(suite, srs.WithFFTSize(*fftSize))
	if err != nil {
		log.Fatalf("Generation failed: %v", err)
	}

	corr, err := testbench.CorrelationMatrix(results)
	if err != nil {
		log.Fatalf("Correlation failed: %v", err)
	}
	pairs := testbench.HighlightPairs(corr, *threshold)
	testbench.WriteReport(os.Stdout, results, corr, pairs)

	if *heatmap != "" {
		if err := testbench.WriteHeatmap(corr, *heatmap); err != nil {
			log.Fatalf("Heatmap failed: %v", err)
		}
		fmt.Printf("\nCorrelation heatmap saved to %s\n", *heatmap)
	}
}
