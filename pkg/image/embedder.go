package image

import (
	"context"
	"errors"
	"fmt"
	"io"
	"planesteg/internal/bits"
	"planesteg/pkg/config"
	"planesteg/pkg/model"
	"time"
)

var (
	ErrDimensionMismatch = errors.New("cover and hidden images must have the same dimensions")
	ErrNothingEmbedded   = errors.New("no composite image available, embedding must complete before writing the output")
)

// Embedder hides the 3 most significant bits of every channel of the hidden image in the 3 least significant bits of
// the same channel of the cover image. The cover keeps its 5 most significant bits, so the composite looks like the
// cover
type Embedder struct {
	cover, hidden, composite *Image

	config config.CodecConfig
	stats  model.EmbedStats
}

func NewImageEmbedder(cover, hidden *Image, iConfig config.CodecConfig) (*Embedder, error) {
	setupStart := time.Now()

	if cover == nil || hidden == nil {
		return nil, ErrNilImage
	}
	if !cover.SameSize(hidden) {
		return nil, fmt.Errorf("%w: cover is %dx%d, hidden is %dx%d", ErrDimensionMismatch,
			cover.width, cover.height, hidden.width, hidden.height)
	}
	iConfig.PopulateUnsetConfigVars()

	e := &Embedder{
		cover:  cover,
		hidden: hidden,
		config: iConfig,
	}
	e.stats.Setup = time.Since(setupStart)
	return e, nil
}

func (e *Embedder) Stats() model.EmbedStats {
	return e.stats
}

// Embed builds the composite image. The cover and hidden images are only read
func (e *Embedder) Embed(ctx context.Context) (*Image, error) {
	embedStart := time.Now()
	defer func() {
		e.stats.Embedding = time.Since(embedStart)
	}()

	composite := newImage(e.cover.width, e.cover.height)
	rowLen := e.cover.width * channels
	err := sweepRows(ctx, e.cover.height, e.config, func(y int) {
		start := e.cover.rowOffset(y)
		coverRow := e.cover.Pix[start : start+rowLen]
		hiddenRow := e.hidden.Pix[start : start+rowLen]
		compositeRow := composite.Pix[start : start+rowLen]
		for i := range compositeRow {
			compositeRow[i] = bits.Compose(coverRow[i], hiddenRow[i])
		}
	})
	if err != nil {
		return nil, err
	}

	e.composite = composite
	return composite, nil
}

func (e *Embedder) WriteEncodedPNG(output io.Writer) error {
	return e.WriteEncoded(output, FormatPNG)
}

func (e *Embedder) WriteEncoded(output io.Writer, format Format) error {
	if e.composite == nil {
		return ErrNothingEmbedded
	}

	imageEncodeStart := time.Now()
	defer func() {
		e.stats.OutputImageEncoding = time.Since(imageEncodeStart)
	}()
	return Encode(output, e.composite, format, e.config.PngCompressionLevel)
}

func Embed(ctx context.Context, cover, hidden *Image, iConfig config.CodecConfig) (*Image, error) {
	e, err := NewImageEmbedder(cover, hidden, iConfig)
	if err != nil {
		return nil, err
	}
	return e.Embed(ctx)
}
