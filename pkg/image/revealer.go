package image

import (
	"context"
	"errors"
	"io"
	"planesteg/internal/bits"
	"planesteg/pkg/config"
	"planesteg/pkg/model"
	"time"
)

var (
	ErrNothingRevealed = errors.New("no revealed image available, revealing must complete before writing the output")
)

// Revealer throws away the 5 most significant bits of every channel and stretches the remaining 3 bits over the
// whole byte. On a composite built by Embedder this shows an 8 level version of the hidden image, on any other image
// it shows the noise in its low bit-planes
type Revealer struct {
	image, revealed *Image

	config config.CodecConfig
	stats  model.RevealStats
}

func NewImageRevealer(image *Image, iConfig config.CodecConfig) (*Revealer, error) {
	if image == nil {
		return nil, ErrNilImage
	}
	iConfig.PopulateUnsetConfigVars()

	return &Revealer{
		image:  image,
		config: iConfig,
	}, nil
}

func (r *Revealer) Stats() model.RevealStats {
	return r.stats
}

func (r *Revealer) Reveal(ctx context.Context) (*Image, error) {
	revealStart := time.Now()
	defer func() {
		r.stats.Revealing = time.Since(revealStart)
	}()

	revealed := newImage(r.image.width, r.image.height)
	err := mapChannels(ctx, r.image, revealed, r.config, revealChannel)
	if err != nil {
		return nil, err
	}

	r.revealed = revealed
	return revealed, nil
}

func (r *Revealer) WriteEncodedPNG(output io.Writer) error {
	return r.WriteEncoded(output, FormatPNG)
}

func (r *Revealer) WriteEncoded(output io.Writer, format Format) error {
	if r.revealed == nil {
		return ErrNothingRevealed
	}

	imageEncodeStart := time.Now()
	defer func() {
		r.stats.OutputImageEncoding = time.Since(imageEncodeStart)
	}()
	return Encode(output, r.revealed, format, r.config.PngCompressionLevel)
}

func Reveal(ctx context.Context, image *Image, iConfig config.CodecConfig) (*Image, error) {
	r, err := NewImageRevealer(image, iConfig)
	if err != nil {
		return nil, err
	}
	return r.Reveal(ctx)
}

func revealChannel(c uint8) uint8 {
	return bits.ExpandTop3(bits.Last3BitsValue(c))
}
