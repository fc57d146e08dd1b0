package image

import (
	"bytes"
	"context"
	"errors"
	"planesteg/internal/bits"
	"planesteg/pkg/config"
	"testing"
)

func TestRevealConcreteValues(t *testing.T) {
	img, _ := New(2, 1)
	// 11010101 -> 101, 10111011 -> 011, 00000000 -> 000
	_ = img.SetPixel(0, 0, 213, 187, 0)
	_ = img.SetPixel(1, 0, 255, 7, 8)

	revealed, err := Reveal(context.Background(), img, config.CodecConfig{})
	if err != nil {
		t.Fatalf("Error revealing image: %s", err)
	}

	if p := mustPixel(t, revealed, 0, 0); p != (RGB{R: 176, G: 112, B: 16}) {
		t.Errorf("Unexpected revealed pixel %+v", p)
	}
	if p := mustPixel(t, revealed, 1, 0); p != (RGB{R: 240, G: 240, B: 16}) {
		t.Errorf("Unexpected revealed pixel %+v", p)
	}
}

func TestReveal(t *testing.T) {
	runImageTestsWithAllSweepSettings(t, func(t *testing.T, iConfig config.CodecConfig) {
		img := generateImage(testImageWidth, testImageHeight)
		original := img.Clone()

		revealed, err := Reveal(context.Background(), img, iConfig)
		if err != nil {
			t.Fatalf("Error revealing image: %s", err)
		}
		if !bytes.Equal(img.Pix, original.Pix) {
			t.Fatalf("Revealing modified its input")
		}

		for i, c := range revealed.Pix {
			if expected := bits.ExpandTop3(img.Pix[i] % 8); c != expected {
				t.Fatalf("Channel %d revealed as %08b, expected %08b", i, c, expected)
			}
		}
	})
}

func TestRevealOfEmbedIgnoresCover(t *testing.T) {
	runImageTestsWithAllSweepSettings(t, func(t *testing.T, iConfig config.CodecConfig) {
		hidden := generateImage(testImageWidth, testImageHeight)

		var reveals []*Image
		for i := 0; i < 3; i++ {
			cover := generateImage(testImageWidth, testImageHeight)
			composite, err := Embed(context.Background(), cover, hidden, iConfig)
			if err != nil {
				t.Fatalf("Error embedding image: %s", err)
			}
			revealed, err := Reveal(context.Background(), composite, iConfig)
			if err != nil {
				t.Fatalf("Error revealing image: %s", err)
			}
			reveals = append(reveals, revealed)
		}

		for i, c := range reveals[0].Pix {
			if expected := bits.ExpandTop3(bits.Top3Bits(hidden.Pix[i])); c != expected {
				t.Fatalf("Channel %d revealed as %08b, expected %08b from hidden value %08b", i, c, expected, hidden.Pix[i])
			}
		}
		for r := 1; r < len(reveals); r++ {
			if !bytes.Equal(reveals[0].Pix, reveals[r].Pix) {
				t.Fatalf("Revealed image depends on the cover image")
			}
		}
	})
}

func TestRevealNilImage(t *testing.T) {
	if _, err := NewImageRevealer(nil, config.CodecConfig{}); !errors.Is(err, ErrNilImage) {
		t.Errorf("Expected ErrNilImage, got %v", err)
	}
}

func TestRevealerWriteEncoded(t *testing.T) {
	revealer, err := NewImageRevealer(generateImage(20, 20), config.CodecConfig{})
	if err != nil {
		t.Fatalf("Error creating image revealer: %s", err)
	}
	if err = revealer.WriteEncodedPNG(&bytes.Buffer{}); !errors.Is(err, ErrNothingRevealed) {
		t.Errorf("Expected ErrNothingRevealed, got %v", err)
	}

	revealed, err := revealer.Reveal(context.Background())
	if err != nil {
		t.Fatalf("Error revealing image: %s", err)
	}

	var encoded bytes.Buffer
	if err = revealer.WriteEncoded(&encoded, FormatBMP); err != nil {
		t.Fatalf("Error writing BMP: %s", err)
	}
	decoded, format, err := Decode(&encoded)
	if err != nil {
		t.Fatalf("Error decoding BMP: %s", err)
	}
	if format != "bmp" || !bytes.Equal(decoded.Pix, revealed.Pix) {
		t.Errorf("BMP output does not match the revealed image")
	}
}

func TestRevealCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	revealed, err := Reveal(ctx, generateImage(16, 16), config.CodecConfig{})
	if !errors.Is(err, context.Canceled) || revealed != nil {
		t.Errorf("Expected context.Canceled and no image, got %v", err)
	}
}

func BenchmarkReveal(b *testing.B) {
	img := generateImage(benchImageSize, benchImageSize)

	for _, workers := range []int{1, 4, 0} {
		b.Run(workersLabel(workers), func(b *testing.B) {
			b.SetBytes(int64(len(img.Pix)))
			for i := 0; i < b.N; i++ {
				if _, err := Reveal(context.Background(), img, config.CodecConfig{Workers: workers}); err != nil {
					b.Fatalf("Error during reveal: %s", err)
				}
			}
		})
	}
}
