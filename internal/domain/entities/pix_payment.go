package entities

import (
	"strings"
	"time"
)

// PaymentStatus is the normalized status exposed by /status-pix.
//
// Gateways report many spellings (waiting_payment, approved, confirmed, ...);
// only two values are stored.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// IsConfirmedStatus is the confirmed predicate applied to any vendor status.
func IsConfirmedStatus(vendorStatus string) bool {
	switch strings.ToLower(strings.TrimSpace(vendorStatus)) {
	case "confirmed", "paid", "approved":
		return true
	}
	return false
}

// NormalizeStatus maps a vendor status to the stored status.
func NormalizeStatus(vendorStatus string) PaymentStatus {
	if IsConfirmedStatus(vendorStatus) {
		return PaymentStatusPaid
	}
	return PaymentStatusPending
}

// PixTransaction is the canonical result of a gateway "create payment" call.
//
// AmountCents is always integer cents; QRCode holds either a base64 PNG or a
// URL, depending on the gateway.
type PixTransaction struct {
	TxID          string `json:"txid"`
	GatewayStatus string `json:"gateway_status"`
	CopiaECola    string `json:"copiaecola"`
	QRCode        string `json:"qrcode"`
	AmountCents   int64  `json:"amount_cents"`
}

func (t PixTransaction) Status() PaymentStatus {
	return NormalizeStatus(t.GatewayStatus)
}

// PaymentRecord is the status-store entry keyed by txid.
//
// Storage model (DynamoDB):
//   - PK: txid
//   - TTL attribute: expires_at (epoch seconds)
//
// Customer fields are captured at order time so webhook fan-out can fall back
// to them when the gateway callback omits the buyer.
type PaymentRecord struct {
	TxID        string        `json:"txid"`
	Status      PaymentStatus `json:"status"`
	AmountCents int64         `json:"amount_cents"`
	Name        string        `json:"name,omitempty"`
	Email       string        `json:"email,omitempty"`
	Phone       string        `json:"phone,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	PaidAt      *time.Time    `json:"paid_at,omitempty"`
	ExpiresAt   time.Time     `json:"expires_at"`
}

func (r PaymentRecord) IsPaid() bool {
	return r.Status == PaymentStatusPaid
}

// UnknownPaymentRecord is what the store returns for an unset txid.
func UnknownPaymentRecord(txid string) PaymentRecord {
	return PaymentRecord{TxID: txid, Status: PaymentStatusPending}
}
