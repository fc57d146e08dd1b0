package server

import (
	"bytes"
	"image/png"
	"io"
	"net/http"
	"planesteg/api"
	"planesteg/api/planesteg/EmbedImage"
	"planesteg/internal/logging"
	"planesteg/pkg/config"
	planestegImage "planesteg/pkg/image"

	"github.com/gin-gonic/gin"
	flatbuffers "github.com/google/flatbuffers/go"
)

// EmbedImageHandler godoc
//
// @Summary Hide an image inside another image
// @Description Embeds the 3 most significant bits of every channel of the hidden image into the 3 least significant bits of the cover image, and returns the composite as PNG. Both images must have the same dimensions
// @Tags image
// @Accept json
// @Produce json
// @Param requestBody body api.EmbedImageRequest true "Body with the cover and hidden images"
// @Success 200 {object} api.EmbedImageResponse
// @Failure 400 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /embed/image [post]
func EmbedImageHandler(iConfig config.CodecConfig) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var requestBody api.EmbedImageRequest

		logger := logging.BuildLoggerFromCtx(ctx)
		logger.Debug("Processing image embed request")

		if err := ctx.ShouldBindJSON(&requestBody); err != nil {
			logger.WithError(err).Error("Error decoding request body")
			ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
			return
		}

		encodedComposite, embedder, ok := embedAndEncode(ctx, logger, requestBody.CoverImage, requestBody.HiddenImage,
			responseCodecConfig(iConfig, requestBody.PngCompression))
		if !ok {
			return
		}

		ctx.JSON(http.StatusOK, api.EmbedImageResponse{
			CompositeImage: encodedComposite,
			Stats:          embedder.Stats(),
		})
	}
}

// EmbedImageFlatbufferHandler godoc
//
// @Summary Hide an image inside another image, using flatbuffers
// @Description Same as /embed/image, but the request body is an ImageEmbedRequest flatbuffer and the response an ImageEmbedResponse flatbuffer (see api/planesteg.fbs). Errors are returned as JSON
// @Tags image
// @Accept octet-stream
// @Produce octet-stream
// @Success 200 {file} binary
// @Failure 400 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /embed/image/fb [post]
func EmbedImageFlatbufferHandler(iConfig config.CodecConfig) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		logger := logging.BuildLoggerFromCtx(ctx)
		logger.Debug("Processing flatbuffer image embed request")

		requestBody, err := io.ReadAll(ctx.Request.Body)
		if err != nil {
			logger.WithError(err).Error("Error reading request body")
			ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
			return
		}

		coverImage, hiddenImage, pngCompression, ok := readEmbedRequestFlatbuffer(requestBody)
		if !ok {
			logger.Error("Request body is not a valid flatbuffer")
			ctx.AbortWithStatusJSON(http.StatusBadRequest, errInvalidFlatbuffer)
			return
		}
		requestConfig := iConfig
		requestConfig.PngCompressionLevel = pngCompression

		encodedComposite, _, ok := embedAndEncode(ctx, logger, coverImage, hiddenImage, requestConfig)
		if !ok {
			return
		}

		fbResponseBuilder := flatbuffers.NewBuilder(len(encodedComposite) + 64)
		compositeOffset := fbResponseBuilder.CreateByteVector(encodedComposite)
		EmbedImage.ImageEmbedResponseStart(fbResponseBuilder)
		EmbedImage.ImageEmbedResponseAddCompositeImage(fbResponseBuilder, compositeOffset)
		EmbedImage.FinishImageEmbedResponseBuffer(fbResponseBuilder, EmbedImage.ImageEmbedResponseEnd(fbResponseBuilder))

		ctx.Data(http.StatusOK, "application/octet-stream", fbResponseBuilder.FinishedBytes())
	}
}

// readEmbedRequestFlatbuffer returns false instead of panicking when the buffer offsets point outside of the body
func readEmbedRequestFlatbuffer(body []byte) (coverImage, hiddenImage []byte, level png.CompressionLevel, ok bool) {
	if len(body) < flatbuffers.SizeUOffsetT {
		return nil, nil, 0, false
	}
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()

	embedRequest := EmbedImage.GetRootAsImageEmbedRequest(body, 0)
	coverImage = embedRequest.CoverImageBytes()
	hiddenImage = embedRequest.HiddenImageBytes()
	level = png.CompressionLevel(embedRequest.PngCompression())
	if level < png.BestCompression || level > png.DefaultCompression {
		level = png.BestCompression
	}
	return coverImage, hiddenImage, level, coverImage != nil && hiddenImage != nil
}

func embedAndEncode(ctx *gin.Context, logger *logging.Logger, coverImage, hiddenImage []byte,
	iConfig config.CodecConfig) ([]byte, *planestegImage.Embedder, bool) {

	cover, ok := decodeRequestImage(ctx, logger, coverImage)
	if !ok {
		return nil, nil, false
	}
	hidden, ok := decodeRequestImage(ctx, logger, hiddenImage)
	if !ok {
		return nil, nil, false
	}

	embedder, err := planestegImage.NewImageEmbedder(cover, hidden, iConfig)
	if err != nil {
		handleCodecError(ctx, logger, err)
		return nil, nil, false
	}
	if _, err = embedder.Embed(ctx.Request.Context()); err != nil {
		handleCodecError(ctx, logger, err)
		return nil, nil, false
	}

	// pre allocate with size of the cover, since the composite should be similar
	encodedComposite := bytes.NewBuffer(make([]byte, 0, len(coverImage)))
	if err = embedder.WriteEncodedPNG(encodedComposite); err != nil {
		handleCodecError(ctx, logger, err)
		return nil, nil, false
	}

	logger.With("stats", toHumanizedEmbedStats(embedder.Stats())).Info("Image embedding was successful")
	return encodedComposite.Bytes(), embedder, true
}
