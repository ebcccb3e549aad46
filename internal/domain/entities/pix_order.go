package entities

import "github.com/shopspring/decimal"

// CartItem is one priced cart line.
type CartItem struct {
	Title     string          `json:"title"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  decimal.Decimal `json:"quantity"`
}

func (i CartItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(i.Quantity)
}

// PixOrder is a validated order ready to be charged.
//
// Phone is already normalized to digits with the country code; AmountCents is
// the charge sent to the gateway.
type PixOrder struct {
	Name        string
	Email       string
	Document    string
	Phone       string
	Cart        []CartItem
	Shipping    decimal.Decimal
	AmountCents int64
}

func (o PixOrder) HasCart() bool {
	return len(o.Cart) > 0
}

// Amount is the charge in reais.
func (o PixOrder) Amount() decimal.Decimal {
	return decimal.New(o.AmountCents, -2)
}
