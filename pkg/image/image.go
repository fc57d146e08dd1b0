package image

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"planesteg/internal/bits"
)

const (
	channels = 3
)

var (
	ErrOutOfBounds         = errors.New("coordinate lies outside of the image")
	ErrInvalidDimensions   = errors.New("image dimensions cannot be negative")
	ErrNilImage            = errors.New("no image supplied")
	ErrInvalidChannelValue = bits.ErrInvalidChannelValue
)

type RGB struct {
	R, G, B uint8
}

// Image is an RGB image with 8 bits per channel. Pix holds the pixels row by row, 3 bytes per pixel, starting at the
// top left corner. Image satisfies image.Image so it can be handed to any encoder from the standard library
type Image struct {
	Pix []uint8

	width, height int
}

func New(width, height int) (*Image, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return newImage(width, height), nil
}

func newImage(width, height int) *Image {
	return &Image{
		Pix:    make([]uint8, width*height*channels),
		width:  width,
		height: height,
	}
}

// FromImage copies any decoded image into a new Image with its origin moved to (0,0). Alpha is dropped and channels
// deeper than 8 bits keep their 8 most significant bits
func FromImage(src image.Image) *Image {
	b := src.Bounds()
	img := newImage(b.Dx(), b.Dy())

	switch s := src.(type) {
	case *Image:
		copy(img.Pix, s.Pix)
	case *image.NRGBA:
		img.copyFrom4Channel(s.Pix, s.Stride, s.PixOffset(b.Min.X, b.Min.Y))
	case *image.RGBA:
		img.copyFrom4Channel(s.Pix, s.Stride, s.PixOffset(b.Min.X, b.Min.Y))
	default:
		nrgba := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(nrgba, nrgba.Bounds(), src, b.Min, draw.Src)
		img.copyFrom4Channel(nrgba.Pix, nrgba.Stride, 0)
	}

	return img
}

func (img *Image) copyFrom4Channel(pix []uint8, stride, start int) {
	for y := 0; y < img.height; y++ {
		srcRow := pix[start+y*stride:]
		dstRow := img.Pix[img.rowOffset(y) : img.rowOffset(y)+img.width*channels]
		for x := 0; x < img.width; x++ {
			copy(dstRow[x*channels:x*channels+channels], srcRow[x*4:x*4+channels])
		}
	}
}

func (img *Image) Width() int {
	return img.width
}

func (img *Image) Height() int {
	return img.height
}

func (img *Image) SameSize(other *Image) bool {
	return img.width == other.width && img.height == other.height
}

func (img *Image) Clone() *Image {
	clone := newImage(img.width, img.height)
	copy(clone.Pix, img.Pix)
	return clone
}

func (img *Image) PixOffset(x, y int) int {
	return img.rowOffset(y) + x*channels
}

func (img *Image) rowOffset(y int) int {
	return y * img.width * channels
}

func (img *Image) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < img.width && y < img.height
}

func (img *Image) Pixel(x, y int) (RGB, error) {
	if !img.inBounds(x, y) {
		return RGB{}, fmt.Errorf("%w: (%d,%d) in %dx%d image", ErrOutOfBounds, x, y, img.width, img.height)
	}
	i := img.PixOffset(x, y)
	return RGB{R: img.Pix[i], G: img.Pix[i+1], B: img.Pix[i+2]}, nil
}

// SetPixel writes a channel triple at (x, y). Nothing is written unless the coordinate and every channel are valid
func (img *Image) SetPixel(x, y, r, g, b int) error {
	if !img.inBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d image", ErrOutOfBounds, x, y, img.width, img.height)
	}

	var p [channels]uint8
	for c, v := range [channels]int{r, g, b} {
		validated, err := bits.Channel(v)
		if err != nil {
			return err
		}
		p[c] = validated
	}

	i := img.PixOffset(x, y)
	copy(img.Pix[i:i+channels], p[:])
	return nil
}

func (img *Image) ColorModel() color.Model {
	return color.RGBAModel
}

func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.width, img.height)
}

func (img *Image) At(x, y int) color.Color {
	if !img.inBounds(x, y) {
		return color.RGBA{}
	}
	i := img.PixOffset(x, y)
	return color.RGBA{R: img.Pix[i], G: img.Pix[i+1], B: img.Pix[i+2], A: 255}
}
