package entities

import "time"

// MessageButton is a WhatsApp reply button.
type MessageButton struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Purchase is the conversion event sent once a payment is confirmed.
type Purchase struct {
	TxID        string
	Phone       string
	Email       string
	AmountCents int64
	Currency    string
	OccurredAt  time.Time
}

// StatusNotification is the body posted to the automation webhook.
type StatusNotification struct {
	Event       string        `json:"event"`
	TxID        string        `json:"txid"`
	Status      PaymentStatus `json:"status"`
	Name        string        `json:"name,omitempty"`
	Phone       string        `json:"phone,omitempty"`
	Email       string        `json:"email,omitempty"`
	AmountCents int64         `json:"amount_cents,omitempty"`
	PaidAt      *time.Time    `json:"paid_at,omitempty"`
}
