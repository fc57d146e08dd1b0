package image

import (
	"context"
	"errors"
	"fmt"
	"planesteg/pkg/config"
	"sync"
	"testing"
)

const (
	benchImageSize = 2000
)

func workersLabel(workers int) string {
	if workers == 0 {
		return "workers=NumCPU"
	}
	return fmt.Sprintf("workers=%d", workers)
}

func TestSweepRowsVisitsEveryRowOnce(t *testing.T) {
	for _, height := range []int{0, 1, 63, 64, 65, 1000} {
		for _, rowsPerChunk := range []int{1, 3, 64, 5000} {
			var mu sync.Mutex
			visits := make([]int, height)

			err := sweepRows(context.Background(), height, config.CodecConfig{Workers: 4, RowsPerChunk: rowsPerChunk},
				func(y int) {
					mu.Lock()
					visits[y]++
					mu.Unlock()
				})
			if err != nil {
				t.Fatalf("Unexpected error sweeping %d rows: %s", height, err)
			}

			for y, v := range visits {
				if v != 1 {
					t.Errorf("Row %d of %d visited %d times with %d rows per chunk", y, height, v, rowsPerChunk)
				}
			}
		}
	}
}

func TestSweepRowsStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var mu sync.Mutex
	var rowsVisited int
	err := sweepRows(ctx, 10000, config.CodecConfig{Workers: 1, RowsPerChunk: 1}, func(y int) {
		mu.Lock()
		defer mu.Unlock()
		rowsVisited++
		if rowsVisited == 10 {
			cancel()
		}
	})

	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if rowsVisited >= 10000 {
		t.Errorf("Sweep kept going after cancellation")
	}
}

func TestTransform(t *testing.T) {
	runImageTestsWithAllSweepSettings(t, func(t *testing.T, iConfig config.CodecConfig) {
		src := generateImage(testImageWidth, testImageHeight)

		swapped, err := Transform(context.Background(), src, iConfig, func(x, y int, p RGB) RGB {
			return RGB{R: p.B, G: uint8(x), B: uint8(y)}
		})
		if err != nil {
			t.Fatalf("Error transforming image: %s", err)
		}

		for y := 0; y < testImageHeight; y++ {
			for x := 0; x < testImageWidth; x++ {
				in := mustPixel(t, src, x, y)
				out := mustPixel(t, swapped, x, y)
				if out != (RGB{R: in.B, G: uint8(x), B: uint8(y)}) {
					t.Fatalf("Unexpected pixel (%d,%d): %+v", x, y, out)
				}
			}
		}
	})
}

func TestTransformNilImage(t *testing.T) {
	_, err := Transform(context.Background(), nil, config.CodecConfig{}, func(x, y int, p RGB) RGB { return p })
	if !errors.Is(err, ErrNilImage) {
		t.Errorf("Expected ErrNilImage, got %v", err)
	}
}
