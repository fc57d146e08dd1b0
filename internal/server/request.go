package server

import (
	"bytes"
	"image/png"
	"net/http"
	"planesteg/internal/logging"
	"planesteg/pkg/config"
	planestegImage "planesteg/pkg/image"

	"github.com/gin-gonic/gin"
)

// decodeRequestImage aborts the request and returns false if the supplied bytes are not a supported image
func decodeRequestImage(ctx *gin.Context, logger *logging.Logger, imageBytes []byte) (*planestegImage.Image, bool) {
	img, format, err := planestegImage.Decode(bytes.NewReader(imageBytes))
	if err != nil {
		logger.WithError(err).Error("Error decoding request image")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errInvalidImage)
		return nil, false
	}
	logger.Debug("Decoded request image", "format", format, "width", img.Width(), "height", img.Height())
	return img, true
}

// responseCodecConfig applies the compression requested by the client. Best compression is the default to reduce
// bandwidth costs, since uncompressed PNGs are huge
func responseCodecConfig(iConfig config.CodecConfig, pngCompression string) config.CodecConfig {
	iConfig.PngCompressionLevel = config.ParsePngCompression(pngCompression, png.BestCompression)
	return iConfig
}
