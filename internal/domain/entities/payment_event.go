package entities

// WebhookSchema names the vendor payload layout a webhook matched.
type WebhookSchema string

const (
	WebhookSchemaBuckPay     WebhookSchema = "buckpay"
	WebhookSchemaNested      WebhookSchema = "nested"
	WebhookSchemaMercadoPago WebhookSchema = "mercadopago"
	WebhookSchemaFlat        WebhookSchema = "flat"
)

// PaymentEvent is the canonical record produced from any gateway webhook.
//
// NeedsLookup is set when the payload only carries the payment id (Mercado
// Pago notifications); the status must be fetched from the gateway.
type PaymentEvent struct {
	Schema      WebhookSchema `json:"schema"`
	TxID        string        `json:"txid"`
	Status      string        `json:"status"`
	Phone       string        `json:"phone,omitempty"`
	Email       string        `json:"email,omitempty"`
	Name        string        `json:"name,omitempty"`
	AmountCents int64         `json:"amount_cents,omitempty"`
	NeedsLookup bool          `json:"needs_lookup,omitempty"`
}

func (e PaymentEvent) Confirmed() bool {
	return IsConfirmedStatus(e.Status)
}
