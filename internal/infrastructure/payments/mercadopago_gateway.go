package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"pix_server/internal/domain/entities"
	"pix_server/internal/logging"
	"pix_server/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway creates PIX payments through the Mercado Pago SDK and
// resolves payment status for its id-only webhook notifications.
type MercadoPagoGateway struct {
	client payment.Client
}

var (
	_ interfaces.IPaymentGateway        = (*MercadoPagoGateway)(nil)
	_ interfaces.IPaymentStatusResolver = (*MercadoPagoGateway)(nil)
)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if accessToken == "" {
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, err
	}
	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) CreatePixPayment(ctx context.Context, order entities.PixOrder) (entities.PixTransaction, error) {
	if g == nil || g.client == nil {
		return entities.PixTransaction{}, ErrMercadoPagoGatewayNotConfigured
	}
	log := logging.FromCtx(ctx)

	payer := map[string]any{
		"email":      order.Email,
		"first_name": firstName(order.Name),
	}
	if doc := entities.StripNonDigits(order.Document); doc != "" {
		payer["identification"] = map[string]any{"type": documentType(doc), "number": doc}
	}
	body := map[string]any{
		"transaction_amount": order.Amount().InexactFloat64(),
		"description":        "Pedido PIX",
		"payment_method_id":  "pix",
		"external_reference": "pedido-" + uuid.NewString(),
		"payer":              payer,
	}

	// The request goes through JSON so payer fields follow the API names.
	raw, err := json.Marshal(body)
	if err != nil {
		return entities.PixTransaction{}, err
	}
	var req payment.Request
	if err := json.Unmarshal(raw, &req); err != nil {
		log.Error("[pix][gateway] mercadopago payload unmarshal failed", "err", err)
		return entities.PixTransaction{}, err
	}

	log.Info("[pix][gateway] mercadopago create start", "amount_cents", order.AmountCents)
	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Error("[pix][gateway] mercadopago sdk create failed", "err", err)
		return entities.PixTransaction{}, err
	}

	respRaw, err := json.Marshal(resp)
	if err != nil {
		return entities.PixTransaction{}, err
	}
	code, qr := pixDataFromMercadoPago(respRaw)

	tx := entities.PixTransaction{
		TxID:          fmt.Sprintf("%d", resp.ID),
		GatewayStatus: resp.Status,
		CopiaECola:    code,
		QRCode:        qr,
		AmountCents:   order.AmountCents,
	}
	log.Info("[pix][gateway] mercadopago create success", "txid", tx.TxID, "gateway_status", tx.GatewayStatus)
	return tx, nil
}

func (g *MercadoPagoGateway) ResolveStatus(ctx context.Context, txid string) (string, error) {
	if g == nil || g.client == nil {
		return "", ErrMercadoPagoGatewayNotConfigured
	}
	id, err := strconv.Atoi(strings.TrimSpace(txid))
	if err != nil {
		return "", fmt.Errorf("mercado pago payment id %q: %w", txid, err)
	}
	resp, err := g.client.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return resp.Status, nil
}

// pixDataFromMercadoPago reads point_of_interaction.transaction_data from the
// serialized SDK response.
func pixDataFromMercadoPago(raw []byte) (code, qrBase64 string) {
	var parsed struct {
		PointOfInteraction struct {
			TransactionData struct {
				QRCode       string `json:"qr_code"`
				QRCodeBase64 string `json:"qr_code_base64"`
				TicketURL    string `json:"ticket_url"`
			} `json:"transaction_data"`
		} `json:"point_of_interaction"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", ""
	}
	td := parsed.PointOfInteraction.TransactionData
	qr := td.QRCodeBase64
	if qr == "" {
		qr = td.TicketURL
	}
	return td.QRCode, qr
}

func firstName(name string) string {
	if f := strings.Fields(name); len(f) > 0 {
		return f[0]
	}
	return ""
}

func documentType(digits string) string {
	if len(digits) == 14 {
		return "CNPJ"
	}
	return "CPF"
}
