package server

import (
	"bytes"
	"net/http"
	"planesteg/api"
	"planesteg/internal/logging"
	"planesteg/pkg/config"
	"planesteg/pkg/filter"
	planestegImage "planesteg/pkg/image"
	"planesteg/pkg/model"
	"time"

	"github.com/gin-gonic/gin"
)

// FilterImageHandler godoc
//
// @Summary Apply a color filter to an image
// @Description Applies one of the per pixel filters (invert, threshold, line, darken, lighten, no-red) and returns the result as PNG
// @Tags image
// @Accept json
// @Produce json
// @Param requestBody body api.FilterImageRequest true "Body with the image and the filter to apply"
// @Success 200 {object} api.FilterImageResponse
// @Failure 400 {object} api.Error
// @Failure 422 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /filter/image [post]
func FilterImageHandler(iConfig config.CodecConfig) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var requestBody api.FilterImageRequest

		logger := logging.BuildLoggerFromCtx(ctx)
		logger.Debug("Processing image filter request")

		if err := ctx.ShouldBindJSON(&requestBody); err != nil {
			logger.WithError(err).Error("Error decoding request body")
			ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
			return
		}

		img, ok := decodeRequestImage(ctx, logger, requestBody.Image)
		if !ok {
			return
		}

		var stats model.FilterStats
		filterStart := time.Now()
		requestConfig := responseCodecConfig(iConfig, requestBody.PngCompression)
		filtered, err := filter.Apply(ctx.Request.Context(), img, requestBody.Filter, toFilterOptions(requestBody), requestConfig)
		if err != nil {
			handleCodecError(ctx, logger, err)
			return
		}
		stats.Filtering = time.Since(filterStart)

		encodeStart := time.Now()
		encodedFiltered := bytes.NewBuffer(make([]byte, 0, len(requestBody.Image)))
		err = planestegImage.Encode(encodedFiltered, filtered, planestegImage.FormatPNG, requestConfig.PngCompressionLevel)
		if err != nil {
			handleCodecError(ctx, logger, err)
			return
		}
		stats.OutputImageEncoding = time.Since(encodeStart)

		logger.With("filter", requestBody.Filter, "stats", toHumanizedFilterStats(stats)).Info("Image filtering was successful")

		ctx.JSON(http.StatusOK, api.FilterImageResponse{
			FilteredImage: encodedFiltered.Bytes(),
			Stats:         stats,
		})
	}
}

func toFilterOptions(requestBody api.FilterImageRequest) filter.Options {
	opts := filter.DefaultOptions()
	if requestBody.Threshold != nil {
		opts.Threshold = *requestBody.Threshold
	}
	opts.Row = requestBody.Row
	if requestBody.Color != nil {
		opts.Color = planestegImage.RGB{R: requestBody.Color.R, G: requestBody.Color.G, B: requestBody.Color.B}
	}
	return opts
}
