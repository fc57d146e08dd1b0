package image

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	// decoders only, registered with image.Decode
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/webp"
)

type Format string

const (
	FormatPNG  Format = "png"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
)

var (
	ErrUnsupportedOutputFormat = errors.New("unsupported output format, only png, bmp and tiff keep the low bit-planes intact")
)

// Decode reads any registered image format (png, jpeg, gif, bmp, tiff, webp) and converts it to an Image
func Decode(r io.Reader) (*Image, string, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		return nil, "", err
	}
	return FromImage(src), format, nil
}

func Encode(w io.Writer, img *Image, format Format, pngCompressionLevel png.CompressionLevel) error {
	if img == nil {
		return ErrNilImage
	}

	switch format {
	case FormatPNG:
		enc := png.Encoder{CompressionLevel: pngCompressionLevel}
		return enc.Encode(w, img)
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedOutputFormat, format)
	}
}

func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "png":
		return FormatPNG, nil
	case "bmp":
		return FormatBMP, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedOutputFormat, name)
	}
}

// FormatFromPath picks the output format from the file extension, files without an extension are written as png
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return FormatPNG, nil
	}
	return ParseFormat(ext)
}
