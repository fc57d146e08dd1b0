package server

import (
	"context"
	"errors"
	"net/http"
	"planesteg/api"
	"planesteg/internal/logging"
	"planesteg/pkg/filter"
	planestegImage "planesteg/pkg/image"

	"github.com/gin-gonic/gin"
)

var (
	errRequestBodyDecode = api.Error{Code: "invalid_body", Error: "Error reading request body"}
	errInvalidImage      = api.Error{Code: "invalid_image", Error: "Invalid image supplied in request body"}
	errInvalidFlatbuffer = api.Error{Code: "invalid_flatbuffer", Error: "Request body is not a valid ImageEmbedRequest flatbuffer"}
	errRequestCancelled  = api.Error{Code: "cancelled", Error: "Request was cancelled before the image was processed"}
	errProcessing        = api.Error{Code: "processing_error", Error: "An error occurred while processing the image"}
)

func handleCodecError(ctx *gin.Context, logger *logging.Logger, err error) {
	logger.WithError(err).Error("Error processing image")

	switch {
	case errors.Is(err, planestegImage.ErrDimensionMismatch):
		ctx.AbortWithStatusJSON(http.StatusBadRequest, api.Error{Code: "dimension_mismatch", Error: err.Error()})
	case errors.Is(err, filter.ErrUnknownFilter):
		ctx.AbortWithStatusJSON(http.StatusUnprocessableEntity, api.Error{Code: "unknown_filter", Error: err.Error()})
	case errors.Is(err, planestegImage.ErrOutOfBounds):
		ctx.AbortWithStatusJSON(http.StatusUnprocessableEntity, api.Error{Code: "out_of_bounds", Error: err.Error()})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		ctx.AbortWithStatusJSON(http.StatusRequestTimeout, errRequestCancelled)
	default:
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, errProcessing)
	}
}
