package image

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"planesteg/internal/bits"
	"planesteg/pkg/config"
	"testing"
)

func TestEmbedConcreteValues(t *testing.T) {
	cover, _ := New(1, 1)
	hidden, _ := New(1, 1)
	// 11010110, 00000000, 11111111
	_ = cover.SetPixel(0, 0, 214, 0, 255)
	// 10110000, 11100000, 00011111
	_ = hidden.SetPixel(0, 0, 176, 224, 31)

	composite, err := Embed(context.Background(), cover, hidden, config.CodecConfig{})
	if err != nil {
		t.Fatalf("Error embedding image: %s", err)
	}

	// 11010|101, 00000|111, 11111|000
	expected := RGB{R: 213, G: 7, B: 248}
	if p := mustPixel(t, composite, 0, 0); p != expected {
		t.Errorf("Expected composite pixel %+v, got %+v", expected, p)
	}
}

func TestEmbed(t *testing.T) {
	runImageTestsWithAllSweepSettings(t, func(t *testing.T, iConfig config.CodecConfig) {
		cover := generateImage(testImageWidth, testImageHeight)
		hidden := generateImage(testImageWidth, testImageHeight)
		originalCover := cover.Clone()
		originalHidden := hidden.Clone()

		composite, err := Embed(context.Background(), cover, hidden, iConfig)
		if err != nil {
			t.Fatalf("Error embedding image: %s", err)
		}

		if !bytes.Equal(cover.Pix, originalCover.Pix) || !bytes.Equal(hidden.Pix, originalHidden.Pix) {
			t.Fatalf("Embedding modified its inputs")
		}
		if !composite.SameSize(cover) {
			t.Fatalf("Composite is %dx%d, expected %dx%d", composite.Width(), composite.Height(),
				cover.Width(), cover.Height())
		}

		for y := 0; y < testImageHeight; y++ {
			for x := 0; x < testImageWidth; x++ {
				coverChannels := channelsOf(mustPixel(t, cover, x, y))
				hiddenChannels := channelsOf(mustPixel(t, hidden, x, y))
				compositeChannels := channelsOf(mustPixel(t, composite, x, y))
				for c := 0; c < 3; c++ {
					if compositeChannels[c]>>3 != coverChannels[c]>>3 {
						t.Fatalf("Top 5 bits of the cover were not kept in pixel|channel (%d,%d)|%d, cover|composite %08b|%08b",
							x, y, c, coverChannels[c], compositeChannels[c])
					}
					if compositeChannels[c]&0b111 != hiddenChannels[c]>>5 {
						t.Fatalf("Top 3 bits of the hidden image were not embedded in pixel|channel (%d,%d)|%d, hidden|composite %08b|%08b",
							x, y, c, hiddenChannels[c], compositeChannels[c])
					}
				}
			}
		}
	})
}

func TestEmbedWithBlackHiddenImageClearsLowBits(t *testing.T) {
	cover := generateImage(64, 32)
	hidden, _ := New(64, 32)

	composite, err := Embed(context.Background(), cover, hidden, config.CodecConfig{})
	if err != nil {
		t.Fatalf("Error embedding image: %s", err)
	}

	for i, c := range composite.Pix {
		if c != cover.Pix[i]&^0b111 {
			t.Fatalf("Channel %d should be the cover value with its 3 low bits cleared, cover|composite %08b|%08b",
				i, cover.Pix[i], c)
		}
	}
}

func TestEmbedDimensionMismatch(t *testing.T) {
	testCases := [][4]int{
		{10, 10, 10, 11},
		{10, 10, 11, 10},
		{1, 100, 100, 1},
		{0, 5, 5, 0},
	}

	for _, dims := range testCases {
		cover, _ := New(dims[0], dims[1])
		hidden, _ := New(dims[2], dims[3])

		_, err := NewImageEmbedder(cover, hidden, config.CodecConfig{})
		if !errors.Is(err, ErrDimensionMismatch) {
			t.Errorf("Expected ErrDimensionMismatch for %v, got %v", dims, err)
		}
		if _, err = Embed(context.Background(), cover, hidden, config.CodecConfig{}); !errors.Is(err, ErrDimensionMismatch) {
			t.Errorf("Expected ErrDimensionMismatch for %v from Embed, got %v", dims, err)
		}
	}
}

func TestEmbedNilImages(t *testing.T) {
	img, _ := New(1, 1)
	if _, err := NewImageEmbedder(nil, img, config.CodecConfig{}); !errors.Is(err, ErrNilImage) {
		t.Errorf("Expected ErrNilImage for nil cover, got %v", err)
	}
	if _, err := NewImageEmbedder(img, nil, config.CodecConfig{}); !errors.Is(err, ErrNilImage) {
		t.Errorf("Expected ErrNilImage for nil hidden image, got %v", err)
	}
}

func TestEmbedCancelled(t *testing.T) {
	cover := generateImage(32, 32)
	hidden := generateImage(32, 32)
	embedder, err := NewImageEmbedder(cover, hidden, config.CodecConfig{RowsPerChunk: 1})
	if err != nil {
		t.Fatalf("Error creating image embedder: %s", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	composite, err := embedder.Embed(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if composite != nil {
		t.Errorf("No composite should be returned after cancellation")
	}
	if err = embedder.WriteEncodedPNG(&bytes.Buffer{}); !errors.Is(err, ErrNothingEmbedded) {
		t.Errorf("Expected ErrNothingEmbedded, got %v", err)
	}
}

func TestEmbedderWriteEncodedPNG(t *testing.T) {
	cover := generateImage(40, 30)
	hidden := generateImage(40, 30)
	embedder, err := NewImageEmbedder(cover, hidden, config.CodecConfig{PngCompressionLevel: png.BestSpeed})
	if err != nil {
		t.Fatalf("Error creating image embedder: %s", err)
	}

	if err = embedder.WriteEncodedPNG(&bytes.Buffer{}); !errors.Is(err, ErrNothingEmbedded) {
		t.Errorf("Expected ErrNothingEmbedded before embedding, got %v", err)
	}

	composite, err := embedder.Embed(context.Background())
	if err != nil {
		t.Fatalf("Error embedding image: %s", err)
	}

	var encoded bytes.Buffer
	if err = embedder.WriteEncodedPNG(&encoded); err != nil {
		t.Fatalf("Error writing PNG: %s", err)
	}

	decoded, format, err := Decode(&encoded)
	if err != nil {
		t.Fatalf("Error decoding written PNG: %s", err)
	}
	if format != "png" {
		t.Errorf("Expected png output, got %s", format)
	}
	if !bytes.Equal(decoded.Pix, composite.Pix) {
		t.Errorf("Written PNG does not match the composite image")
	}
}

func BenchmarkEmbed(b *testing.B) {
	cover := generateImage(benchImageSize, benchImageSize)
	hidden := generateImage(benchImageSize, benchImageSize)

	for _, workers := range []int{1, 4, 0} {
		b.Run(workersLabel(workers), func(b *testing.B) {
			b.SetBytes(int64(len(cover.Pix)))
			for i := 0; i < b.N; i++ {
				_, err := Embed(context.Background(), cover, hidden, config.CodecConfig{Workers: workers})
				if err != nil {
					b.Fatalf("Error during embedding: %s", err)
				}
			}
		})
	}
}

func BenchmarkComposeLoop(b *testing.B) {
	cover := generateImage(benchImageSize, benchImageSize)
	hidden := generateImage(benchImageSize, benchImageSize)
	out := make([]uint8, len(cover.Pix))

	b.SetBytes(int64(len(cover.Pix)))
	for i := 0; i < b.N; i++ {
		for c := range out {
			out[c] = bits.Compose(cover.Pix[c], hidden.Pix[c])
		}
	}
}
