package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/gin-gonic/gin"
	"gopkg.in/natefinch/lumberjack.v2"
)

type ctxKey struct{}

const ginLoggerKey = "logger"

var (
	once sync.Once
	base *slog.Logger
)

// Init configures the global logger exactly once. An empty filePath logs to
// stdout only.
func Init(component, filePath string) *slog.Logger {
	once.Do(func() {
		var w io.Writer = os.Stdout
		if filePath != "" {
			_ = os.MkdirAll(filepath.Dir(filePath), 0o755)
			rot := &lumberjack.Logger{
				Filename:   filePath,
				MaxSize:    50, // MB
				MaxBackups: 3,
				MaxAge:     7, // days
			}
			w = io.MultiWriter(os.Stdout, rot)
		}
		base = newLogger(w, component)
	})
	return base
}

func newLogger(w io.Writer, component string) *slog.Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	return slog.New(h).With("component", component)
}

// Base returns the global logger. Before Init it settles on a stdout-only
// logger, and a later Init keeps that one.
func Base() *slog.Logger {
	return Init("pix-server", "")
}

// New tags the global logger with a layer (http, bootstrap, janitor).
func New(layer string) *slog.Logger {
	return withLayer(Base(), layer)
}

func withLayer(l *slog.Logger, layer string) *slog.Logger {
	return l.With("layer", layer)
}

func WithCtx(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromCtx fetches a logger from ctx or falls back to the global one.
func FromCtx(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && l != nil {
			return l
		}
	}
	return Base()
}

// With stores the logger in gin.Context and in the request context, so use
// cases receiving c.Request.Context() see the same request-scoped logger.
func With(c *gin.Context, l *slog.Logger) {
	c.Set(ginLoggerKey, l)
	if c.Request != nil {
		c.Request = c.Request.WithContext(WithCtx(c.Request.Context(), l))
	}
}

func From(c *gin.Context) *slog.Logger {
	if v, ok := c.Get(ginLoggerKey); ok {
		if l, ok := v.(*slog.Logger); ok && l != nil {
			return l
		}
	}
	return Base()
}
