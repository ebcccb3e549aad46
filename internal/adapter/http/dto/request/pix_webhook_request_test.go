package request

import (
	"errors"
	"testing"

	"pix_server/internal/domain/entities"
)

func TestParseWebhookEvent_Schemas(t *testing.T) {
	cases := []struct {
		name      string
		body      string
		schema    entities.WebhookSchema
		txid      string
		status    string
		phone     string
		confirmed bool
		lookup    bool
	}{
		{
			name:      "nested approved",
			body:      `{"data":{"payment_status":"approved","customer":{"phone":"5511999999999"},"hash":"tx1"}}`,
			schema:    entities.WebhookSchemaNested,
			txid:      "tx1",
			status:    "approved",
			phone:     "5511999999999",
			confirmed: true,
		},
		{
			name:      "buckpay paid",
			body:      `{"event":"transaction.processed","data":{"id":"bp-1","status":"paid","total_amount":2500,"buyer":{"name":"Maria","email":"m@x.com","phone":"11999999999"}}}`,
			schema:    entities.WebhookSchemaBuckPay,
			txid:      "bp-1",
			status:    "paid",
			phone:     "11999999999",
			confirmed: true,
		},
		{
			name:   "buckpay pending",
			body:   `{"event":"transaction.created","data":{"id":"bp-2","status":"pending"}}`,
			schema: entities.WebhookSchemaBuckPay,
			txid:   "bp-2",
			status: "pending",
		},
		{
			name:   "mercado pago notification",
			body:   `{"action":"payment.updated","type":"payment","data":{"id":123456789}}`,
			schema: entities.WebhookSchemaMercadoPago,
			txid:   "123456789",
			lookup: true,
		},
		{
			name:   "mercado pago legacy topic",
			body:   `{"topic":"payment","resource":"https://api.mercadopago.com/v1/payments/555"}`,
			schema: entities.WebhookSchemaMercadoPago,
			txid:   "555",
			lookup: true,
		},
		{
			name:      "flat confirmed upper case",
			body:      `{"status":" CONFIRMED ","txid":"tx9","telefone":"11988887777"}`,
			schema:    entities.WebhookSchemaFlat,
			txid:      "tx9",
			status:    "CONFIRMED",
			phone:     "11988887777",
			confirmed: true,
		},
		{
			name:      "nested status without txid",
			body:      `{"data":{"status":"paid"}}`,
			schema:    entities.WebhookSchemaNested,
			status:    "paid",
			confirmed: true,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ev, err := ParseWebhookEvent([]byte(tc.body))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ev.Schema != tc.schema || ev.TxID != tc.txid || ev.Status != tc.status || ev.Phone != tc.phone {
				t.Fatalf("unexpected event: %+v", ev)
			}
			if ev.Confirmed() != tc.confirmed || ev.NeedsLookup != tc.lookup {
				t.Fatalf("confirmed=%v lookup=%v for %+v", ev.Confirmed(), ev.NeedsLookup, ev)
			}
		})
	}
}

func TestParseWebhookEvent_BuckPayAmount(t *testing.T) {
	ev, err := ParseWebhookEvent([]byte(`{"event":"x","data":{"id":"bp-1","status":"paid","total_amount":2500}}`))
	if err != nil || ev.AmountCents != 2500 {
		t.Fatalf("expected 2500 cents, got %+v %v", ev, err)
	}
}

func TestParseWebhookEvent_Errors(t *testing.T) {
	cases := map[string]struct {
		body string
		want error
	}{
		"invalid json":   {`{`, ErrInvalidWebhookPayload},
		"array body":     {`[1,2]`, ErrInvalidWebhookPayload},
		"null body":      {`null`, ErrInvalidWebhookPayload},
		"unknown shape":  {`{"hello":"world"}`, ErrUnknownWebhookSchema},
		"non payment mp": {`{"type":"merchant_order","data":{"id":"1"}}`, ErrUnknownWebhookSchema},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseWebhookEvent([]byte(tc.body)); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}
