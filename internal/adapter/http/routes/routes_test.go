package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pix_server/internal/config"
	"pix_server/internal/infrastructure/payments"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mockConfig() config.Config {
	var cfg config.Config
	cfg.App.VendorTimeout = time.Second
	cfg.Gateway.Provider = config.GatewayBuckPay
	cfg.Gateway.Mock = true
	cfg.Store.Driver = config.DriverMemory
	cfg.Store.TTL = time.Hour
	cfg.Ledger.Driver = config.DriverMemory
	cfg.Ledger.TTL = time.Hour
	return cfg
}

func do(t *testing.T, r http.Handler, method, path, body string) map[string]any {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestBuild_CheckoutFlowWithMockGateway(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	router, cleanup, err := Build(ctx, mockConfig(), prometheus.NewRegistry())
	require.NoError(t, err)
	defer cleanup()

	assert.Equal(t, "pong", do(t, router, http.MethodGet, "/ping", "")["message"])

	order := do(t, router, http.MethodPost, "/gerar-pix", `{"nome":"Maria","telefone":"11999999999","cart":[{"title":"A","price":10,"qty":2}],"shipping":5}`)
	txid, _ := order["txid"].(string)
	require.True(t, strings.HasPrefix(txid, "mock-"), "txid %q", txid)
	assert.Equal(t, float64(2500), order["amount"])
	assert.NotEmpty(t, order["copiaecola"])

	status := do(t, router, http.MethodGet, "/status-pix/"+txid, "")
	assert.Equal(t, "pending", status["status"])
	assert.Nil(t, status["paidAt"])

	first := do(t, router, http.MethodPost, "/webhook-pix", `{"status":"paid","txid":"`+txid+`"}`)
	assert.Equal(t, true, first["confirmed"])
	assert.Nil(t, first["duplicate"])

	replay := do(t, router, http.MethodPost, "/webhook-pix", `{"data":{"payment_status":"approved","hash":"`+txid+`"}}`)
	assert.Equal(t, true, replay["duplicate"])

	status = do(t, router, http.MethodGet, "/status-pix/"+txid, "")
	assert.Equal(t, "paid", status["status"])
	assert.NotNil(t, status["paidAt"])

	// the mock resolver reports every looked-up payment as approved
	mp := do(t, router, http.MethodPost, "/webhook-pix", `{"type":"payment","action":"payment.updated","data":{"id":"42"}}`)
	assert.Equal(t, true, mp["confirmed"])
	assert.Equal(t, "paid", do(t, router, http.MethodGet, "/status-pix/42", "")["status"])

	ignored := do(t, router, http.MethodPost, "/webhook-pix", `{"hello":"world"}`)
	assert.NotEmpty(t, ignored["ignored"])
}

func TestBuild_UnknownTxIDIsPending(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router, cleanup, err := Build(context.Background(), mockConfig(), prometheus.NewRegistry())
	require.NoError(t, err)
	defer cleanup()

	status := do(t, router, http.MethodGet, "/status-pix/never-seen", "")
	assert.Equal(t, "pending", status["status"])
}

func TestBuild_GatewayNotConfigured(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := mockConfig()
	cfg.Gateway.Mock = false

	router, cleanup, err := Build(context.Background(), cfg, prometheus.NewRegistry())
	require.NoError(t, err)
	defer cleanup()

	req := httptest.NewRequest(http.MethodPost, "/gerar-pix", strings.NewReader(`{"telefone":"11999999999","valor":10}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Falha ao gerar PIX")
}

func TestNewGateway(t *testing.T) {
	cfg := mockConfig()
	g, r := newGateway(cfg)
	assert.IsType(t, payments.MockGateway{}, g)
	assert.IsType(t, payments.MockGateway{}, r)

	cfg.Gateway.Mock = false
	cfg.BuckPay.Token = "bp"
	cfg.BuckPay.BaseURL = "https://buckpay.example"
	g, r = newGateway(cfg)
	assert.IsType(t, &payments.BuckPayGateway{}, g)
	assert.Nil(t, r)

	cfg.MercadoPago.AccessToken = "TEST-123"
	g, r = newGateway(cfg)
	assert.IsType(t, &payments.BuckPayGateway{}, g)
	assert.IsType(t, &payments.MercadoPagoGateway{}, r)

	cfg.Gateway.Provider = config.GatewayMercadoPago
	g, _ = newGateway(cfg)
	assert.IsType(t, &payments.MercadoPagoGateway{}, g)
}

func TestNewMessagingClient(t *testing.T) {
	cfg := mockConfig()
	assert.Nil(t, newMessagingClient(cfg))

	cfg.ZAPI.Instance = "inst"
	cfg.ZAPI.Token = "tok"
	cfg.ZAPI.BaseURL = "https://api.z-api.io"
	assert.NotNil(t, newMessagingClient(cfg))
}
