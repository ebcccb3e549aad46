package handlers

import (
	"errors"
	"net/http"

	"pix_server/internal/adapter/http/dto/request"
	"pix_server/internal/adapter/http/dto/response"
	"pix_server/internal/domain/entities"
	"pix_server/internal/logging"
	"pix_server/internal/usecase"
	"pix_server/pkg"

	"github.com/gin-gonic/gin"
)

// PixHandler serves the checkout endpoints.
type PixHandler struct {
	orders usecase.IPixOrderUseCase
	status usecase.IPaymentStatusUseCase
}

func NewPixHandler(orders usecase.IPixOrderUseCase, status usecase.IPaymentStatusUseCase) *PixHandler {
	return &PixHandler{orders: orders, status: status}
}

// CreatePixOrder godoc
// @Summary      Create a PIX charge
// @Description  Validates the order, creates the PIX transaction and sends it to the customer over WhatsApp.
// @Tags         pix
// @Accept       json
// @Produce      json
// @Param        order  body      request.PixOrderRequest  true  "Order"
// @Success      200    {object}  response.PixOrderResponse
// @Failure      400    {object}  pkg.HTTPError
// @Failure      500    {object}  pkg.HTTPError
// @Router       /gerar-pix [post]
func (h *PixHandler) CreatePixOrder(c *gin.Context) {
	log := logging.From(c)

	var req request.PixOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Info("[pix][handler] invalid payload", "err", err)
		appErr := pkg.NewDomainError("INVALID_REQUEST", "Requisição inválida", err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	order, err := req.ToOrder()
	if err != nil {
		log.Info("[pix][handler] order rejected", "err", err)
		appErr := mapPixOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	tx, err := h.orders.CreatePixOrder(c.Request.Context(), order)
	if err != nil {
		appErr := mapPixOrderError(err)
		log.Error("[pix][handler] create failed", "code", appErr.Code, "err", err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Info("[pix][handler] create success", "txid", tx.TxID, "amount_cents", tx.AmountCents)

	c.JSON(http.StatusOK, response.FromPixTransaction(tx))
}

// GetPaymentStatus godoc
// @Summary      Payment status
// @Description  Unknown transaction ids report pending.
// @Tags         pix
// @Produce      json
// @Param        txid  path      string  true  "Transaction id"
// @Success      200   {object}  response.PaymentStatusResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      500   {object}  pkg.HTTPError
// @Router       /status-pix/{txid} [get]
func (h *PixHandler) GetPaymentStatus(c *gin.Context) {
	txid := c.Param("txid")
	rec, err := h.status.GetStatus(c.Request.Context(), txid)
	if err != nil {
		appErr := mapPaymentStatusError(err)
		logging.From(c).Error("[pix][handler] status failed", "txid", txid, "err", err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentRecord(rec))
}

func mapPixOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, request.ErrEmptyCart):
		return pkg.NewDomainError("EMPTY_CART", "Carrinho vazio", err, http.StatusBadRequest)
	case errors.Is(err, request.ErrInvalidCartItem):
		return pkg.NewDomainError("INVALID_CART_ITEM", "Item do carrinho inválido", err, http.StatusBadRequest)
	case errors.Is(err, request.ErrInvalidShipping):
		return pkg.NewDomainError("INVALID_SHIPPING", "Frete inválido", err, http.StatusBadRequest)
	case errors.Is(err, request.ErrInvalidAmount), errors.Is(err, usecase.ErrInvalidOrderAmount):
		return pkg.NewDomainError("INVALID_AMOUNT", "Valor inválido", err, http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidPhone):
		return pkg.NewDomainError("INVALID_PHONE", "Telefone inválido", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayFailed):
		return pkg.NewDomainError("PIX_GENERATION_FAILED", "Falha ao gerar PIX", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfig):
		return pkg.NewDomainError("PAYMENT_GATEWAY_NOT_CONFIGURED", "Falha ao gerar PIX", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Falha ao gerar PIX", err, http.StatusInternalServerError)
	}
}

func mapPaymentStatusError(err error) *pkg.AppError {
	if errors.Is(err, usecase.ErrInvalidTxID) {
		return pkg.NewDomainError("INVALID_TXID", "TXID inválido", err, http.StatusBadRequest)
	}
	return pkg.NewDomainError("INTERNAL_ERROR", "Erro interno", err, http.StatusInternalServerError)
}
