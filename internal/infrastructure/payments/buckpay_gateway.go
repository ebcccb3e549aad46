package payments

import (
	"context"
	"errors"
	"strings"
	"time"

	"pix_server/internal/domain/entities"
	"pix_server/internal/infrastructure/vendorhttp"
	"pix_server/internal/logging"
	"pix_server/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrMissingBuckPayToken = errors.New("missing BUCKPAY_TOKEN")

const (
	buckPayTransactionsPath = "/v1/transactions"
	buckPayUserAgent        = "Buckpay API"
)

type buckPayBuyer struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Document string `json:"document,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

type buckPayOffer struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

type buckPayCreateRequest struct {
	ExternalID    string        `json:"external_id"`
	PaymentMethod string        `json:"payment_method"`
	Amount        int64         `json:"amount"`
	Buyer         buckPayBuyer  `json:"buyer"`
	Offer         *buckPayOffer `json:"offer,omitempty"`
}

type buckPayCreateResponse struct {
	Data struct {
		ID          string `json:"id"`
		Status      string `json:"status"`
		TotalAmount int64  `json:"total_amount"`
		Pix         struct {
			Code         string `json:"code"`
			QRCodeBase64 string `json:"qrcode_base64"`
		} `json:"pix"`
	} `json:"data"`
}

// BuckPayGateway creates PIX transactions on BuckPay. Amounts go out in cents.
type BuckPayGateway struct {
	http    *vendorhttp.Client
	baseURL string
	token   string
	offerID string
}

var _ interfaces.IPaymentGateway = (*BuckPayGateway)(nil)

func NewBuckPayGateway(baseURL, token, offerID string, timeout time.Duration) (*BuckPayGateway, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrMissingBuckPayToken
	}
	return &BuckPayGateway{
		http:    vendorhttp.New("buckpay", nil, timeout),
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		offerID: offerID,
	}, nil
}

func (g *BuckPayGateway) CreatePixPayment(ctx context.Context, order entities.PixOrder) (entities.PixTransaction, error) {
	log := logging.FromCtx(ctx)
	req := buckPayCreateRequest{
		ExternalID:    "pedido-" + uuid.NewString(),
		PaymentMethod: "pix",
		Amount:        order.AmountCents,
		Buyer: buckPayBuyer{
			Name:     order.Name,
			Email:    order.Email,
			Document: entities.StripNonDigits(order.Document),
			Phone:    order.Phone,
		},
	}
	if g.offerID != "" {
		req.Offer = &buckPayOffer{ID: g.offerID, Quantity: 1}
	}
	log.Info("[pix][gateway] buckpay create start", "external_id", req.ExternalID, "amount_cents", req.Amount)

	var resp buckPayCreateResponse
	err := g.http.PostJSON(ctx, g.baseURL+buckPayTransactionsPath, map[string]string{
		"Authorization": "Bearer " + g.token,
		"User-Agent":    buckPayUserAgent,
	}, req, &resp)
	if err != nil {
		return entities.PixTransaction{}, err
	}

	tx := entities.PixTransaction{
		TxID:          resp.Data.ID,
		GatewayStatus: resp.Data.Status,
		CopiaECola:    resp.Data.Pix.Code,
		QRCode:        resp.Data.Pix.QRCodeBase64,
		AmountCents:   resp.Data.TotalAmount,
	}
	if tx.AmountCents == 0 {
		tx.AmountCents = order.AmountCents
	}
	log.Info("[pix][gateway] buckpay create success", "txid", tx.TxID, "gateway_status", tx.GatewayStatus)
	return tx, nil
}
