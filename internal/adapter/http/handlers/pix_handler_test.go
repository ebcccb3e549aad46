package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pix_server/internal/adapter/http/handlers/mocks"
	"pix_server/internal/domain/entities"
	"pix_server/internal/usecase"
	"pix_server/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newPixRouter(h *PixHandler) *gin.Engine {
	r := gin.New()
	r.POST("/gerar-pix", h.CreatePixOrder)
	r.GET("/status-pix/:txid", h.GetPaymentStatus)
	return r
}

func postJSON(r http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPixHandler_CreatePixOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewPixHandler(mocks.NewMockIPixOrderUseCase(ctrl), nil)

		w := postJSON(newPixRouter(h), "/gerar-pix", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("empty cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewPixHandler(mocks.NewMockIPixOrderUseCase(ctrl), nil)

		w := postJSON(newPixRouter(h), "/gerar-pix", `{"telefone":"11999999999","cart":[]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body pkg.HTTPError
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Erro != "Carrinho vazio" || body.Code != "EMPTY_CART" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("invalid phone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewPixHandler(mocks.NewMockIPixOrderUseCase(ctrl), nil)

		w := postJSON(newPixRouter(h), "/gerar-pix", `{"telefone":"123","valor":10}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("gateway failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPixOrderUseCase(ctrl)
		h := NewPixHandler(uc, nil)

		uc.EXPECT().CreatePixOrder(gomock.Any(), gomock.Any()).Return(entities.PixTransaction{}, usecase.ErrPaymentGatewayFailed)

		w := postJSON(newPixRouter(h), "/gerar-pix", `{"telefone":"11999999999","valor":25}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		var body pkg.HTTPError
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Erro != "Falha ao gerar PIX" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPixOrderUseCase(ctrl)
		h := NewPixHandler(uc, nil)

		uc.EXPECT().CreatePixOrder(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, order entities.PixOrder) (entities.PixTransaction, error) {
			if order.AmountCents != 2500 || order.Phone != "5511999999999" {
				t.Fatalf("unexpected order: %+v", order)
			}
			return entities.PixTransaction{TxID: "tx1", GatewayStatus: "waiting_payment", CopiaECola: "000201", QRCode: "iVBOR", AmountCents: 2500}, nil
		})

		w := postJSON(newPixRouter(h), "/gerar-pix", `{"nome":"Maria","telefone":"11999999999","cart":[{"title":"A","price":10,"qty":2}],"shipping":5}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["txid"] != "tx1" || body["copiaecola"] != "000201" || body["qrcode"] != "iVBOR" || body["status"] != "waiting_payment" || body["amount"] != float64(2500) {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestPixHandler_GetPaymentStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentStatusUseCase(ctrl)
		h := NewPixHandler(nil, uc)
		paidAt := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

		uc.EXPECT().GetStatus(gomock.Any(), "tx1").Return(entities.PaymentRecord{TxID: "tx1", Status: entities.PaymentStatusPaid, PaidAt: &paidAt}, nil)

		w := httptest.NewRecorder()
		newPixRouter(h).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/status-pix/tx1", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "paid" || body["paidAt"] != "2025-01-02T03:04:05Z" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("store error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentStatusUseCase(ctrl)
		h := NewPixHandler(nil, uc)

		uc.EXPECT().GetStatus(gomock.Any(), "tx1").Return(entities.PaymentRecord{}, errors.New("dynamo"))

		w := httptest.NewRecorder()
		newPixRouter(h).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/status-pix/tx1", nil))
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestMapPixOrderError(t *testing.T) {
	cases := map[string]struct {
		err    error
		status int
		code   string
	}{
		"zero amount":        {usecase.ErrInvalidOrderAmount, http.StatusBadRequest, "INVALID_AMOUNT"},
		"phone":              {entities.ErrInvalidPhone, http.StatusBadRequest, "INVALID_PHONE"},
		"gateway unset":      {usecase.ErrPaymentGatewayNotConfig, http.StatusInternalServerError, "PAYMENT_GATEWAY_NOT_CONFIGURED"},
		"unexpected failure": {errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			appErr := mapPixOrderError(tc.err)
			if appErr.HTTPStatus != tc.status || appErr.Code != tc.code {
				t.Fatalf("unexpected mapping: %+v", appErr)
			}
		})
	}
}
