package image

import (
	"fmt"
	"planesteg/pkg/config"
	"planesteg/test"
	"testing"
)

const (
	testImageWidth  = 301
	testImageHeight = 157
)

type testFunc func(t *testing.T, iConfig config.CodecConfig)

// runImageTestsWithAllSweepSettings runs testFunc with several worker and chunk sizes, results must never depend on
// how the sweep is split
func runImageTestsWithAllSweepSettings(t *testing.T, testFunc testFunc) {
	for _, workers := range []int{1, 2, 8} {
		for _, rowsPerChunk := range []int{1, 17, config.DefaultRowsPerChunk, 1000} {
			iConfig := config.CodecConfig{Workers: workers, RowsPerChunk: rowsPerChunk}
			t.Run(fmt.Sprintf("workers-%d/rows-%d", workers, rowsPerChunk), func(t *testing.T) {
				t.Parallel()
				testFunc(t, iConfig)
			})
		}
	}
}

func generateImage(width, height int) *Image {
	return FromImage(test.GenerateRandomRGBA(width, height))
}

func mustPixel(t testing.TB, img *Image, x, y int) RGB {
	t.Helper()
	p, err := img.Pixel(x, y)
	if err != nil {
		t.Fatalf("Error reading pixel (%d,%d): %s", x, y, err)
	}
	return p
}

func channelsOf(p RGB) [3]uint8 {
	return [3]uint8{p.R, p.G, p.B}
}
