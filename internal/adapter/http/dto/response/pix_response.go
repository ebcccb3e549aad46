package response

import (
	"time"

	"pix_server/internal/domain/entities"
	"pix_server/internal/usecase"
)

// PixOrderResponse is returned by POST /gerar-pix. Amount is in cents.
type PixOrderResponse struct {
	Status     string `json:"status"`
	CopiaECola string `json:"copiaecola"`
	QRCode     string `json:"qrcode"`
	TxID       string `json:"txid"`
	Amount     int64  `json:"amount"`
}

func FromPixTransaction(tx entities.PixTransaction) PixOrderResponse {
	status := tx.GatewayStatus
	if status == "" {
		status = string(tx.Status())
	}
	return PixOrderResponse{
		Status:     status,
		CopiaECola: tx.CopiaECola,
		QRCode:     tx.QRCode,
		TxID:       tx.TxID,
		Amount:     tx.AmountCents,
	}
}

type PaymentStatusResponse struct {
	TxID   string     `json:"txid"`
	Status string     `json:"status"`
	PaidAt *time.Time `json:"paidAt"`
}

func FromPaymentRecord(rec entities.PaymentRecord) PaymentStatusResponse {
	return PaymentStatusResponse{
		TxID:   rec.TxID,
		Status: string(rec.Status),
		PaidAt: rec.PaidAt,
	}
}

// WebhookAckResponse acknowledges a gateway callback.
type WebhookAckResponse struct {
	Received  bool   `json:"received"`
	TxID      string `json:"txid,omitempty"`
	Confirmed bool   `json:"confirmed"`
	Duplicate bool   `json:"duplicate,omitempty"`
	Ignored   string `json:"ignored,omitempty"`
}

func FromWebhookOutcome(out usecase.WebhookOutcome) WebhookAckResponse {
	return WebhookAckResponse{
		Received:  true,
		TxID:      out.TxID,
		Confirmed: out.Confirmed,
		Duplicate: out.Duplicate,
		Ignored:   out.Ignored,
	}
}

func IgnoredWebhook(reason string) WebhookAckResponse {
	return WebhookAckResponse{Received: true, Ignored: reason}
}
