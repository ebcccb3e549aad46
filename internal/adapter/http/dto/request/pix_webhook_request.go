package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"pix_server/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidWebhookPayload = errors.New("invalid webhook payload")
	ErrUnknownWebhookSchema  = errors.New("unknown webhook schema")
)

type webhookSchema struct {
	name  entities.WebhookSchema
	match func(body object) (entities.PaymentEvent, bool)
}

// webhookSchemas are tried in order; the first match wins.
var webhookSchemas = []webhookSchema{
	{entities.WebhookSchemaBuckPay, matchBuckPay},
	{entities.WebhookSchemaNested, matchNested},
	{entities.WebhookSchemaMercadoPago, matchMercadoPago},
	{entities.WebhookSchemaFlat, matchFlat},
}

// ParseWebhookEvent turns a gateway callback body into a PaymentEvent.
func ParseWebhookEvent(raw []byte) (entities.PaymentEvent, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var body map[string]any
	if err := dec.Decode(&body); err != nil || body == nil {
		return entities.PaymentEvent{}, ErrInvalidWebhookPayload
	}

	for _, s := range webhookSchemas {
		if ev, ok := s.match(object(body)); ok {
			ev.Schema = s.name
			ev.TxID = strings.TrimSpace(ev.TxID)
			ev.Status = strings.TrimSpace(ev.Status)
			return ev, nil
		}
	}
	return entities.PaymentEvent{}, ErrUnknownWebhookSchema
}

// {event, data:{id, status, buyer:{phone,email,name}, total_amount}}
func matchBuckPay(body object) (entities.PaymentEvent, bool) {
	data := body.obj("data")
	if body.str("event") == "" || data == nil || data.str("id") == "" || data.str("status") == "" {
		return entities.PaymentEvent{}, false
	}
	buyer := data.obj("buyer")
	return entities.PaymentEvent{
		TxID:        data.str("id"),
		Status:      data.str("status"),
		Phone:       buyer.str("phone"),
		Email:       buyer.str("email"),
		Name:        buyer.str("name"),
		AmountCents: data.cents("total_amount"),
	}, true
}

// {data:{payment_status|status, customer:{phone,email,name}, hash|txid|id}}
func matchNested(body object) (entities.PaymentEvent, bool) {
	data := body.obj("data")
	status := data.str("payment_status", "status")
	if data == nil || status == "" {
		return entities.PaymentEvent{}, false
	}
	customer := data.obj("customer")
	return entities.PaymentEvent{
		TxID:   data.str("hash", "txid", "id"),
		Status: status,
		Phone:  firstNonEmpty(customer.str("phone"), data.str("phone")),
		Email:  customer.str("email"),
		Name:   customer.str("name"),
	}, true
}

// {type|topic:"payment", action, data:{id}} or the legacy {topic, resource}.
// Only the id is delivered; the status has to be looked up.
func matchMercadoPago(body object) (entities.PaymentEvent, bool) {
	if !strings.EqualFold(body.str("type", "topic"), "payment") {
		return entities.PaymentEvent{}, false
	}
	id := body.obj("data").str("id")
	if id == "" {
		id = lastPathSegment(body.str("resource"))
	}
	if id == "" {
		return entities.PaymentEvent{}, false
	}
	return entities.PaymentEvent{TxID: id, NeedsLookup: true}, true
}

// {status|payment_status, txid|hash|id, phone|telefone}
func matchFlat(body object) (entities.PaymentEvent, bool) {
	status := body.str("status", "payment_status")
	if status == "" {
		return entities.PaymentEvent{}, false
	}
	return entities.PaymentEvent{
		TxID:   body.str("txid", "hash", "id"),
		Status: status,
		Phone:  body.str("phone", "telefone"),
		Email:  body.str("email"),
		Name:   body.str("name", "nome"),
	}, true
}

type object map[string]any

func (o object) obj(key string) object {
	if o == nil {
		return nil
	}
	if m, ok := o[key].(map[string]any); ok {
		return object(m)
	}
	return nil
}

// str returns the first key holding a non-empty string or number.
func (o object) str(keys ...string) string {
	for _, k := range keys {
		switch v := o[k].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case json.Number:
			return v.String()
		}
	}
	return ""
}

// cents reads an integer amount in cents; non-numeric values read as 0.
func (o object) cents(key string) int64 {
	s := o.str(key)
	if s == "" {
		return 0
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	return d.Round(0).IntPart()
}

func lastPathSegment(s string) string {
	s = strings.TrimRight(strings.TrimSpace(s), "/")
	if i := strings.LastIndex(s, "/"); i >= 0 {
		s = s[i+1:]
	}
	return s
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
