package image

import (
	"context"
	"planesteg/pkg/config"

	"golang.org/x/sync/errgroup"
)

// PixelFunc computes the output pixel at (x, y) from the input pixel at the same coordinate
type PixelFunc func(x, y int, p RGB) RGB

// sweepRows calls processRow once for every row in [0, height). Rows are handed out in chunks of RowsPerChunk to at
// most Workers goroutines, and the context is checked before each chunk starts
func sweepRows(ctx context.Context, height int, iConfig config.CodecConfig, processRow func(y int)) error {
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(iConfig.Workers)

	for chunkStart := 0; chunkStart < height; chunkStart += iConfig.RowsPerChunk {
		if egCtx.Err() != nil {
			break
		}
		chunkEnd := min(chunkStart+iConfig.RowsPerChunk, height)
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			for y := chunkStart; y < chunkEnd; y++ {
				processRow(y)
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// Transform applies fn to every pixel of src and returns the result as a new image. src is not modified, and no image
// is returned if the context is cancelled before the sweep completes
func Transform(ctx context.Context, src *Image, iConfig config.CodecConfig, fn PixelFunc) (*Image, error) {
	if src == nil {
		return nil, ErrNilImage
	}
	iConfig.PopulateUnsetConfigVars()

	dst := newImage(src.width, src.height)
	err := sweepRows(ctx, src.height, iConfig, func(y int) {
		for x := 0; x < src.width; x++ {
			i := src.PixOffset(x, y)
			p := fn(x, y, RGB{R: src.Pix[i], G: src.Pix[i+1], B: src.Pix[i+2]})
			dst.Pix[i], dst.Pix[i+1], dst.Pix[i+2] = p.R, p.G, p.B
		}
	})
	if err != nil {
		return nil, err
	}
	return dst, nil
}

// mapChannels writes fn(src) for every channel of every pixel of src into dst, both images must have the same size
func mapChannels(ctx context.Context, src, dst *Image, iConfig config.CodecConfig, fn func(c uint8) uint8) error {
	rowLen := src.width * channels
	return sweepRows(ctx, src.height, iConfig, func(y int) {
		start := src.rowOffset(y)
		srcRow := src.Pix[start : start+rowLen]
		dstRow := dst.Pix[start : start+rowLen]
		for i, c := range srcRow {
			dstRow[i] = fn(c)
		}
	})
}
