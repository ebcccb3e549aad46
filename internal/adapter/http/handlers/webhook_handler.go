package handlers

import (
	"errors"
	"net/http"

	"pix_server/internal/adapter/http/dto/request"
	"pix_server/internal/adapter/http/dto/response"
	"pix_server/internal/logging"
	"pix_server/internal/usecase"
	"pix_server/pkg"

	"github.com/gin-gonic/gin"
)

// WebhookHandler receives gateway payment callbacks. Payloads it cannot use
// are acknowledged with 200; lookup, store and ledger failures answer 500.
type WebhookHandler struct {
	usecase usecase.IPaymentWebhookUseCase
}

func NewWebhookHandler(uc usecase.IPaymentWebhookUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

// HandlePaymentWebhook godoc
// @Summary      Gateway payment callback
// @Tags         pix
// @Accept       json
// @Produce      json
// @Param        event  body      object  true  "Vendor payload (BuckPay, Mercado Pago or generic)"
// @Success      200    {object}  response.WebhookAckResponse
// @Failure      500    {object}  pkg.HTTPError
// @Router       /webhook-pix [post]
func (h *WebhookHandler) HandlePaymentWebhook(c *gin.Context) {
	log := logging.From(c)

	raw, err := c.GetRawData()
	if err != nil {
		log.Warn("[pix][webhook] body read failed", "err", err)
		c.JSON(http.StatusOK, response.IgnoredWebhook("unreadable body"))
		return
	}

	event, err := request.ParseWebhookEvent(raw)
	if err != nil {
		log.Warn("[pix][webhook] payload ignored", "err", err, "bytes", len(raw))
		c.JSON(http.StatusOK, response.IgnoredWebhook(err.Error()))
		return
	}

	out, err := h.usecase.HandlePaymentEvent(c.Request.Context(), event)
	if err != nil {
		appErr := mapWebhookError(err)
		log.Error("[pix][webhook] handling failed", "txid", event.TxID, "code", appErr.Code, "err", err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWebhookOutcome(out))
}

func mapWebhookError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrStatusLookupFailed):
		return pkg.NewDomainError("STATUS_LOOKUP_FAILED", "Falha ao consultar pagamento", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrStatusStoreFailed):
		return pkg.NewDomainError("STATUS_STORE_FAILED", "Falha ao registrar pagamento", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrLedgerFailed):
		return pkg.NewDomainError("NOTIFICATION_LEDGER_FAILED", "Falha ao registrar notificação", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Erro interno", err, http.StatusInternalServerError)
	}
}
