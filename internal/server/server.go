package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"planesteg/internal/logging"
	"planesteg/pkg/config"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "planesteg/docs"
)

const (
	RFC3339Millis = "2006-01-02T15:04:05.000Z07:00"

	shutdownTimeout = 10 * time.Second
)

// StartServer godoc
// @title planesteg API
// @version 1.0
// @description An API to hide images inside the low bit-planes of other images, reveal them, and apply simple color filters
// @BasePath /api/v1
func StartServer(ctx context.Context, sConfig config.ServerConfig) error {
	sConfig.PopulateUnsetConfigVars()
	logging.SetLevel(sConfig.LogLevel)
	logger := logging.BuildLogger()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", sConfig.Port),
		Handler: NewRouter(sConfig.Codec),
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Starting server", "port", sConfig.Port, "workers", sConfig.Codec.Workers)
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
		logger.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-serveErr; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func NewRouter(iConfig config.CodecConfig) *gin.Engine {
	iConfig.PopulateUnsetConfigVars()

	r := gin.New()
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{Formatter: logFormatter}), gin.Recovery())
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	v1.POST("/embed/image", EmbedImageHandler(iConfig))
	v1.POST("/embed/image/fb", EmbedImageFlatbufferHandler(iConfig))
	v1.POST("/reveal/image", RevealImageHandler(iConfig))
	v1.POST("/filter/image", FilterImageHandler(iConfig))

	return r
}

type accessLogEntry struct {
	Timestamp       string `json:"timestamp"`
	StatusCode      int    `json:"status_code"`
	Latency         string `json:"latency"`
	LatencyRaw      int64  `json:"latency_raw"`
	ResponseSize    string `json:"response_size"`
	ResponseSizeRaw int    `json:"response_size_raw"`
	ClientIP        string `json:"client_ip"`
	Method          string `json:"method"`
	Path            string `json:"path"`
	Error           string `json:"error"`
}

func logFormatter(param gin.LogFormatterParams) string {
	if param.Latency > time.Minute {
		param.Latency = param.Latency.Truncate(time.Second)
	}

	entry, err := json.Marshal(accessLogEntry{
		Timestamp:       param.TimeStamp.Format(RFC3339Millis),
		StatusCode:      param.StatusCode,
		Latency:         param.Latency.String(),
		LatencyRaw:      int64(param.Latency),
		ResponseSize:    humanize.Bytes(uint64(max(param.BodySize, 0))),
		ResponseSizeRaw: param.BodySize,
		ClientIP:        param.ClientIP,
		Method:          param.Method,
		Path:            param.Path,
		Error:           param.ErrorMessage,
	})
	if err != nil {
		return fmt.Sprintf("{\"error\": %q}\n", err.Error())
	}
	return string(entry) + "\n"
}
