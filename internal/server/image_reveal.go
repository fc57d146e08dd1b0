package server

import (
	"bytes"
	"net/http"
	"planesteg/api"
	"planesteg/internal/logging"
	"planesteg/pkg/config"
	planestegImage "planesteg/pkg/image"

	"github.com/gin-gonic/gin"
)

// RevealImageHandler godoc
//
// @Summary Reveal the image hidden in the low bits of an image
// @Description Stretches the 3 least significant bits of every channel over the whole channel and returns the result as PNG. On an image produced by /embed/image this shows the hidden image
// @Tags image
// @Accept json
// @Produce json
// @Param requestBody body api.RevealImageRequest true "Body with the image to reveal"
// @Success 200 {object} api.RevealImageResponse
// @Failure 400 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /reveal/image [post]
func RevealImageHandler(iConfig config.CodecConfig) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var requestBody api.RevealImageRequest

		logger := logging.BuildLoggerFromCtx(ctx)
		logger.Debug("Processing image reveal request")

		if err := ctx.ShouldBindJSON(&requestBody); err != nil {
			logger.WithError(err).Error("Error decoding request body")
			ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
			return
		}

		img, ok := decodeRequestImage(ctx, logger, requestBody.Image)
		if !ok {
			return
		}

		revealer, err := planestegImage.NewImageRevealer(img, responseCodecConfig(iConfig, requestBody.PngCompression))
		if err != nil {
			handleCodecError(ctx, logger, err)
			return
		}
		if _, err = revealer.Reveal(ctx.Request.Context()); err != nil {
			handleCodecError(ctx, logger, err)
			return
		}

		encodedReveal := bytes.NewBuffer(make([]byte, 0, len(requestBody.Image)))
		if err = revealer.WriteEncodedPNG(encodedReveal); err != nil {
			handleCodecError(ctx, logger, err)
			return
		}

		logger.With("stats", toHumanizedRevealStats(revealer.Stats())).Info("Image reveal was successful")

		ctx.JSON(http.StatusOK, api.RevealImageResponse{
			RevealedImage: encodedReveal.Bytes(),
			Stats:         revealer.Stats(),
		})
	}
}
