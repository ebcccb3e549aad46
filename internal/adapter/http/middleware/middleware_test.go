package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pix_server/internal/logging"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedactJSON(t *testing.T) {
	out, ok := redactJSON([]byte(`{"nome":"Maria","documento":"12345678909","nested":[{"token":"abc"}]}`))
	require.True(t, ok)
	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	assert.Equal(t, "Maria", m["nome"])
	assert.Equal(t, "***redacted***", m["documento"])
	assert.Equal(t, "***redacted***", m["nested"].([]any)[0].(map[string]any)["token"])

	out, ok = redactJSON([]byte(`not json "documento":"12345678909"`))
	assert.False(t, ok)
	assert.Nil(t, out)
}

func TestLogging_RestoresBodyAndInjectsLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var logs bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&logs, nil))

	r := gin.New()
	r.Use(Logging(base))
	r.POST("/echo", func(c *gin.Context) {
		raw, _ := io.ReadAll(c.Request.Body)
		assert.Same(t, logging.From(c), logging.FromCtx(c.Request.Context()))
		c.Data(http.StatusOK, "application/json", raw)
	})

	body := `{"nome":"Maria","documento":"123"}`
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", "req-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, body, w.Body.String())
	assert.Equal(t, "req-1", w.Header().Get("X-Request-Id"))
	assert.Contains(t, logs.String(), `"req_id":"req-1"`)
	assert.NotContains(t, logs.String(), `\"documento\":\"123\"`)
}

func newLoggedEcho(logs *bytes.Buffer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Logging(slog.New(slog.NewJSONHandler(logs, nil))))
	r.POST("/gerar-pix", func(c *gin.Context) {
		raw, _ := io.ReadAll(c.Request.Body)
		c.Data(http.StatusOK, "application/json", raw)
	})
	return r
}

func TestLogging_LargeBodyLogsSizeOnly(t *testing.T) {
	var logs bytes.Buffer
	r := newLoggedEcho(&logs)

	body := `{"documento":"12345678909","nome":"` + strings.Repeat("x", 9*1024) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/gerar-pix", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, body, w.Body.String())
	assert.NotContains(t, logs.String(), "12345678909")
	assert.Contains(t, logs.String(), `"req_body_bytes":`)
}

func TestLogging_InvalidJSONBodyIsNotLogged(t *testing.T) {
	var logs bytes.Buffer
	r := newLoggedEcho(&logs)

	req := httptest.NewRequest(http.MethodPost, "/gerar-pix", strings.NewReader(`{"documento":"12345678909",`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(httptest.NewRecorder(), req)

	assert.NotContains(t, logs.String(), "12345678909")
}

func TestLogging_RejectsOversizedBody(t *testing.T) {
	var logs bytes.Buffer
	r := newLoggedEcho(&logs)

	body := `{"nome":"` + strings.Repeat("x", maxRequestBody) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/gerar-pix", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "REQUEST_TOO_LARGE", resp["code"])
}

func TestMetricsMiddleware_PassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(MetricsMiddleware())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, "pong", w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
