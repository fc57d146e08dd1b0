package image

import (
	"bytes"
	"errors"
	"image/jpeg"
	"image/png"
	"planesteg/test"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	img := generateImage(33, 21)

	for _, format := range []Format{FormatPNG, FormatBMP, FormatTIFF} {
		t.Run(string(format), func(t *testing.T) {
			var encoded bytes.Buffer
			if err := Encode(&encoded, img, format, png.BestSpeed); err != nil {
				t.Fatalf("Error encoding %s: %s", format, err)
			}

			decoded, decodedFormat, err := Decode(&encoded)
			if err != nil {
				t.Fatalf("Error decoding %s: %s", format, err)
			}
			if decodedFormat != string(format) {
				t.Errorf("Expected format %s, got %s", format, decodedFormat)
			}
			if !decoded.SameSize(img) || !bytes.Equal(decoded.Pix, img.Pix) {
				t.Errorf("Image changed during %s round trip", format)
			}
		})
	}
}

func TestDecodeJPEG(t *testing.T) {
	var encoded bytes.Buffer
	if err := jpeg.Encode(&encoded, test.GenerateRandomRGBA(16, 8), nil); err != nil {
		t.Fatalf("Error encoding jpeg: %s", err)
	}

	img, format, err := Decode(&encoded)
	if err != nil {
		t.Fatalf("Error decoding jpeg: %s", err)
	}
	if format != "jpeg" || img.Width() != 16 || img.Height() != 8 {
		t.Errorf("Unexpected decode result: %s %dx%d", format, img.Width(), img.Height())
	}
}

func TestDecodeInvalidImage(t *testing.T) {
	if _, _, err := Decode(bytes.NewReader([]byte("definitely not an image"))); err == nil {
		t.Errorf("Expected an error decoding garbage")
	}
}

func TestEncodeRejectsLossyFormats(t *testing.T) {
	img := generateImage(2, 2)
	if err := Encode(&bytes.Buffer{}, img, Format("jpeg"), png.DefaultCompression); !errors.Is(err, ErrUnsupportedOutputFormat) {
		t.Errorf("Expected ErrUnsupportedOutputFormat, got %v", err)
	}
	if err := Encode(&bytes.Buffer{}, nil, FormatPNG, png.DefaultCompression); !errors.Is(err, ErrNilImage) {
		t.Errorf("Expected ErrNilImage, got %v", err)
	}
}

func TestFormatFromPath(t *testing.T) {
	testCases := map[string]Format{
		"out.png":          FormatPNG,
		"out.PNG":          FormatPNG,
		"dir/out.bmp":      FormatBMP,
		"out.tif":          FormatTIFF,
		"out.tiff":         FormatTIFF,
		"no-extension":     FormatPNG,
		"/tmp/a.b/c.d.png": FormatPNG,
	}
	for path, expected := range testCases {
		format, err := FormatFromPath(path)
		if err != nil {
			t.Errorf("Unexpected error for %s: %s", path, err)
		}
		if format != expected {
			t.Errorf("Expected %s for %s, got %s", expected, path, format)
		}
	}

	for _, path := range []string{"out.jpg", "out.jpeg", "out.gif", "out.webp"} {
		if _, err := FormatFromPath(path); !errors.Is(err, ErrUnsupportedOutputFormat) {
			t.Errorf("Expected ErrUnsupportedOutputFormat for %s, got %v", path, err)
		}
	}
}
