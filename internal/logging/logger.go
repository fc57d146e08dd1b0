package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	level  = new(slog.LevelVar)
	output atomic.Pointer[io.Writer]
)

type Logger struct {
	*slog.Logger
}

// SetLevel changes the level of every logger built by this package, unknown names fall back to info
func SetLevel(name string) {
	level.Set(ParseLevel(name))
}

// SetOutput redirects loggers built afterwards, nil restores stdout
func SetOutput(w io.Writer) {
	if w == nil {
		output.Store(nil)
		return
	}
	output.Store(&w)
}

func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func BuildLogger() *Logger {
	w := io.Writer(os.Stdout)
	if o := output.Load(); o != nil {
		w = *o
	}
	logger := Logger{Logger: slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))}
	return &logger
}

func BuildLoggerFromCtx(ctx *gin.Context) *Logger {
	logger := BuildLogger()
	return &Logger{Logger: logger.With("path", ctx.Request.URL.Path, "method", ctx.Request.Method)}
}

func (l *Logger) WithError(err error) *Logger {
	modifiedLogger := Logger{Logger: l.With("error", err.Error())}
	return &modifiedLogger
}
