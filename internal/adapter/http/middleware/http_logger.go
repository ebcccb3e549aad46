package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"pix_server/internal/logging"
	"pix_server/pkg"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	bodyLogLimit   = 8 * 1024
	maxRequestBody = 1 << 20
)

var redactedKeys = map[string]struct{}{
	"authorization": {},
	"token":         {},
	"access_token":  {},
	"secret":        {},
	"documento":     {},
	"document":      {},
	"cpf":           {},
}

// redactJSON masks sensitive keys. ok is false when raw is not valid JSON, in
// which case nothing may be logged.
func redactJSON(raw []byte) (out []byte, ok bool) {
	if len(raw) == 0 {
		return raw, true
	}
	var m any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, false
	}
	var scrub func(any) any
	scrub = func(x any) any {
		switch v := x.(type) {
		case map[string]any:
			for k, val := range v {
				if _, ok := redactedKeys[strings.ToLower(k)]; ok {
					v[k] = "***redacted***"
					continue
				}
				v[k] = scrub(val)
			}
			return v
		case []any:
			for i := range v {
				v[i] = scrub(v[i])
			}
			return v
		default:
			return v
		}
	}
	b, err := json.Marshal(scrub(m))
	if err != nil {
		return nil, false
	}
	return b, true
}

// Logging injects a request-scoped slog.Logger and logs one line per request.
// Request bodies are capped at maxRequestBody (413 above it) and restored for
// the handlers. JSON bodies up to bodyLogLimit are logged redacted; anything
// else only has its size logged.
func Logging(base *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		reqID := c.GetHeader("X-Request-Id")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Header("X-Request-Id", reqID)

		l := base.With(
			"req_id", reqID,
			"method", c.Request.Method,
			"path", c.FullPath(),
			"remote", c.ClientIP(),
		)
		logging.With(c, l)

		var reqBody string
		reqBytes := -1
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxRequestBody)
		}
		if strings.Contains(c.GetHeader("Content-Type"), "application/json") && c.Request.Body != nil {
			raw, err := io.ReadAll(c.Request.Body)
			_ = c.Request.Body.Close()
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				l.Warn("http_request", "status", http.StatusRequestEntityTooLarge, "limit_bytes", maxRequestBody)
				appErr := pkg.NewDomainErrorSimple("REQUEST_TOO_LARGE", "Requisição muito grande", http.StatusRequestEntityTooLarge)
				c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
				return
			}
			c.Request.Body = io.NopCloser(bytes.NewReader(raw))

			reqBytes = len(raw)
			if len(raw) <= bodyLogLimit {
				if redacted, ok := redactJSON(raw); ok {
					reqBody = string(redacted)
				}
			}
		}

		c.Next()

		status := c.Writer.Status()
		attrs := []any{"status", status, "dur_ms", time.Since(start).Milliseconds(), "resp_bytes", c.Writer.Size()}
		if reqBody != "" {
			attrs = append(attrs, "req_body", reqBody)
		} else if reqBytes > 0 {
			attrs = append(attrs, "req_body_bytes", reqBytes)
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, "error", c.Errors.String())
		}
		if status >= http.StatusInternalServerError {
			l.Error("http_request", attrs...)
			return
		}
		l.Info("http_request", attrs...)
	}
}
