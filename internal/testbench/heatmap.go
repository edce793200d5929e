package testbench

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"gonum.org/v1/gonum/mat"
)

// heatmapCell is the pixel size of one matrix entry in the rendered image.
const heatmapCell = 32

// viridis-like anchor colors for values 0, 0.25, 0.5, 0.75 and 1.
var heatmapStops = [][3]uint8{
	{68, 1, 84},
	{59, 82, 139},
	{33, 145, 140},
	{94, 201, 98},
	{253, 231, 37},
}

// WriteHeatmap renders the correlation matrix as a PNG heatmap with one
// cell per matrix entry, values clamped to [0, 1].
func WriteHeatmap(corr mat.Matrix, path string) error {
	rows, cols := corr.Dims()
	if rows == 0 || cols == 0 {
		return fmt.Errorf("testbench: empty correlation matrix")
	}

	img := image.NewRGBA(image.Rect(0, 0, cols*heatmapCell, rows*heatmapCell))
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			c := heatmapColor(corr.At(i, j))
			for y := i * heatmapCell; y < (i+1)*heatmapCell; y++ {
				for x := j * heatmapCell; x < (j+1)*heatmapCell; x++ {
					img.SetRGBA(x, y, c)
				}
			}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("testbench: writing heatmap: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("testbench: encoding heatmap: %w", err)
	}
	return f.Close()
}

// heatmapColor linearly interpolates between the gradient stops.
func heatmapColor(v float64) color.RGBA {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	pos := v * float64(len(heatmapStops)-1)
	idx := int(pos)
	if idx >= len(heatmapStops)-1 {
		s := heatmapStops[len(heatmapStops)-1]
		return color.RGBA{R: s[0], G: s[1], B: s[2], A: 255}
	}
	t := pos - float64(idx)
	lo, hi := heatmapStops[idx], heatmapStops[idx+1]
	lerp := func(a, b uint8) uint8 {
		return uint8(float64(a) + t*(float64(b)-float64(a)) + 0.5)
	}
	return color.RGBA{R: lerp(lo[0], hi[0]), G: lerp(lo[1], hi[1]), B: lerp(lo[2], hi[2]), A: 255}
}
