// Package filter holds simple per pixel color transforms. Every filter is an image.PixelFunc, so it runs on the same
// parallel sweep as the steganography codec
package filter

import (
	"context"
	"errors"
	"fmt"
	"planesteg/pkg/config"
	"planesteg/pkg/image"
)

const (
	DefaultThreshold = 125

	Invert    = "invert"
	Threshold = "threshold"
	Line      = "line"
	Darken    = "darken"
	Lighten   = "lighten"
	NoRed     = "no-red"
)

var (
	ErrUnknownFilter = errors.New("unknown filter")

	names = []string{Invert, Threshold, Line, Darken, Lighten, NoRed}
)

// Options holds the parameters of the filters that take any, the rest ignore it
type Options struct {
	// Threshold is the highest channel value that still turns black
	Threshold uint8
	// Row is the y coordinate of the line drawn by the line filter
	Row   int
	Color image.RGB
}

func DefaultOptions() Options {
	return Options{
		Threshold: DefaultThreshold,
		Color:     image.RGB{R: 255, G: 255, B: 255},
	}
}

func Names() []string {
	return append([]string(nil), names...)
}

func Lookup(name string, opts Options) (image.PixelFunc, error) {
	switch name {
	case Invert:
		return perChannel(invertChannel), nil
	case Threshold:
		return perChannel(func(c uint8) uint8 { return thresholdChannel(c, opts.Threshold) }), nil
	case Line:
		return drawLine(opts.Row, opts.Color), nil
	case Darken:
		return perChannel(darkenChannel), nil
	case Lighten:
		return perChannel(lightenChannel), nil
	case NoRed:
		return removeRed, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFilter, name)
	}
}

// Apply runs the named filter over img and returns the filtered copy
func Apply(ctx context.Context, img *image.Image, name string, opts Options, iConfig config.CodecConfig) (*image.Image, error) {
	if img == nil {
		return nil, image.ErrNilImage
	}

	fn, err := Lookup(name, opts)
	if err != nil {
		return nil, err
	}
	if name == Line && (opts.Row < 0 || opts.Row >= img.Height()) {
		return nil, fmt.Errorf("%w: row %d in image of height %d", image.ErrOutOfBounds, opts.Row, img.Height())
	}

	return image.Transform(ctx, img, iConfig, fn)
}

func perChannel(fn func(c uint8) uint8) image.PixelFunc {
	return func(_, _ int, p image.RGB) image.RGB {
		return image.RGB{R: fn(p.R), G: fn(p.G), B: fn(p.B)}
	}
}

func invertChannel(c uint8) uint8 {
	return 255 - c
}

func thresholdChannel(c, threshold uint8) uint8 {
	if c <= threshold {
		return 0
	}
	return 255
}

func darkenChannel(c uint8) uint8 {
	return c / 2
}

func lightenChannel(c uint8) uint8 {
	if c > 127 {
		return 255
	}
	return c * 2
}

func drawLine(row int, c image.RGB) image.PixelFunc {
	return func(_, y int, p image.RGB) image.RGB {
		if y == row {
			return c
		}
		return p
	}
}

func removeRed(_, _ int, p image.RGB) image.RGB {
	p.R = 0
	return p
}
