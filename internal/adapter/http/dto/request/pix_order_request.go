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
	ErrEmptyCart       = errors.New("empty cart")
	ErrInvalidCartItem = errors.New("invalid cart item")
	ErrInvalidShipping = errors.New("invalid shipping")
	ErrInvalidAmount   = errors.New("invalid amount")
)

// CartItemRequest is one cart line. Price and quantity accept JSON numbers or
// numeric strings; quantity may come as "quantity" or "qty" and defaults to 1.
type CartItemRequest struct {
	Title    string          `json:"title"`
	Price    json.RawMessage `json:"price" swaggertype:"number"`
	Quantity json.RawMessage `json:"quantity,omitempty" swaggertype:"number"`
	Qty      json.RawMessage `json:"qty,omitempty" swaggertype:"number"`
}

// PixOrderRequest is the storefront checkout payload for POST /gerar-pix.
// Either Cart (plus optional Shipping) or the flat Valor, in reais, is used.
type PixOrderRequest struct {
	Name     string            `json:"nome"`
	Email    string            `json:"email"`
	Document string            `json:"documento"`
	Phone    string            `json:"telefone"`
	Valor    json.RawMessage   `json:"valor,omitempty" swaggertype:"number"`
	Cart     []CartItemRequest `json:"cart"`
	Shipping json.RawMessage   `json:"shipping,omitempty" swaggertype:"number"`
}

// ToOrder validates the payload and computes the charge in cents:
// Σ(price×qty) + shipping, rounded half away from zero.
func (r PixOrderRequest) ToOrder() (entities.PixOrder, error) {
	order := entities.PixOrder{
		Name:     strings.TrimSpace(r.Name),
		Email:    strings.TrimSpace(r.Email),
		Document: strings.TrimSpace(r.Document),
	}

	var total decimal.Decimal
	if r.Cart != nil {
		if len(r.Cart) == 0 {
			return entities.PixOrder{}, ErrEmptyCart
		}
		order.Cart = make([]entities.CartItem, 0, len(r.Cart))
		for _, line := range r.Cart {
			item, err := line.toCartItem()
			if err != nil {
				return entities.PixOrder{}, err
			}
			order.Cart = append(order.Cart, item)
			total = total.Add(item.Subtotal())
		}

		shipping, ok, err := parseDecimal(r.Shipping)
		if err != nil || (ok && shipping.IsNegative()) {
			return entities.PixOrder{}, ErrInvalidShipping
		}
		order.Shipping = shipping
		total = total.Add(shipping)
	} else {
		valor, ok, err := parseDecimal(r.Valor)
		if err != nil || !ok {
			return entities.PixOrder{}, ErrInvalidAmount
		}
		total = valor
	}

	cents, ok := toCents(total)
	if !ok || cents <= 0 {
		return entities.PixOrder{}, ErrInvalidAmount
	}
	order.AmountCents = cents

	phone, err := entities.NormalizePhone(r.Phone)
	if err != nil {
		return entities.PixOrder{}, err
	}
	order.Phone = phone
	return order, nil
}

func (l CartItemRequest) toCartItem() (entities.CartItem, error) {
	price, ok, err := parseDecimal(l.Price)
	if err != nil || !ok || price.IsNegative() {
		return entities.CartItem{}, ErrInvalidCartItem
	}

	rawQty := l.Quantity
	if len(bytes.TrimSpace(rawQty)) == 0 {
		rawQty = l.Qty
	}
	qty, ok, err := parseDecimal(rawQty)
	if err != nil || (ok && qty.IsNegative()) {
		return entities.CartItem{}, ErrInvalidCartItem
	}
	if !ok {
		qty = decimal.NewFromInt(1)
	}

	return entities.CartItem{Title: strings.TrimSpace(l.Title), UnitPrice: price, Quantity: qty}, nil
}

// parseDecimal reads a JSON number or numeric string. ok is false for an
// absent or null value.
func parseDecimal(raw json.RawMessage) (d decimal.Decimal, ok bool, err error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return decimal.Zero, false, nil
	}
	var nd decimal.NullDecimal
	if err := nd.UnmarshalJSON(trimmed); err != nil {
		return decimal.Zero, false, err
	}
	if !nd.Valid {
		return decimal.Zero, false, nil
	}
	return nd.Decimal, true, nil
}

// maxOrderCents caps a single charge at R$ 100 million.
const maxOrderCents = 10_000_000_000

// toCents rounds reais to cents. ok is false when the result is above
// maxOrderCents, which also keeps IntPart inside int64.
func toCents(reais decimal.Decimal) (int64, bool) {
	cents := reais.Shift(2).Round(0)
	if cents.GreaterThan(decimal.NewFromInt(maxOrderCents)) {
		return 0, false
	}
	return cents.IntPart(), true
}
