package request

import (
	"encoding/json"
	"errors"
	"testing"

	"pix_server/internal/domain/entities"
)

func decodeOrder(t *testing.T, body string) PixOrderRequest {
	t.Helper()
	var r PixOrderRequest
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return r
}

func TestPixOrderRequest_ToOrder_Amounts(t *testing.T) {
	cases := []struct {
		name string
		body string
		want int64
	}{
		{"cart with qty and shipping", `{"telefone":"11999999999","cart":[{"title":"A","price":10,"qty":2}],"shipping":5}`, 2500},
		{"numeric strings", `{"telefone":"11999999999","cart":[{"title":"A","price":"19.90","quantity":"3"}]}`, 5970},
		{"quantity defaults to one", `{"telefone":"11999999999","cart":[{"title":"A","price":7.5}]}`, 750},
		{"half cent rounds away from zero", `{"telefone":"11999999999","cart":[{"title":"A","price":0.125,"qty":1}]}`, 13},
		{"decimal drift free", `{"telefone":"11999999999","cart":[{"title":"A","price":0.1,"qty":3},{"title":"B","price":0.2,"qty":1}]}`, 50},
		{"flat valor", `{"telefone":"11999999999","valor":"49.99"}`, 4999},
		{"flat valor number", `{"telefone":"11999999999","valor":25}`, 2500},
		{"valor at charge cap", `{"telefone":"11999999999","valor":100000000}`, 10_000_000_000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			order, err := decodeOrder(t, tc.body).ToOrder()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if order.AmountCents != tc.want {
				t.Fatalf("expected %d cents, got %d", tc.want, order.AmountCents)
			}
		})
	}
}

func TestPixOrderRequest_ToOrder_NormalizesCustomer(t *testing.T) {
	order, err := decodeOrder(t, `{"nome":" Maria Silva ","email":"maria@example.com","documento":"123.456.789-09","telefone":"(11) 99999-9999","cart":[{"title":"A","price":10,"qty":2}],"shipping":5}`).ToOrder()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Phone != "5511999999999" || order.Name != "Maria Silva" || order.Document != "123.456.789-09" {
		t.Fatalf("unexpected order: %+v", order)
	}
	if len(order.Cart) != 1 || order.Cart[0].Quantity.IntPart() != 2 || order.Shipping.IntPart() != 5 {
		t.Fatalf("unexpected cart: %+v", order.Cart)
	}
}

func TestPixOrderRequest_ToOrder_Validation(t *testing.T) {
	cases := []struct {
		name string
		body string
		want error
	}{
		{"empty cart", `{"telefone":"11999999999","cart":[]}`, ErrEmptyCart},
		{"non numeric price", `{"telefone":"11999999999","cart":[{"title":"A","price":"abc","qty":1}]}`, ErrInvalidCartItem},
		{"missing price", `{"telefone":"11999999999","cart":[{"title":"A","qty":1}]}`, ErrInvalidCartItem},
		{"negative qty", `{"telefone":"11999999999","cart":[{"title":"A","price":1,"qty":-1}]}`, ErrInvalidCartItem},
		{"bool qty", `{"telefone":"11999999999","cart":[{"title":"A","price":1,"qty":true}]}`, ErrInvalidCartItem},
		{"negative shipping", `{"telefone":"11999999999","cart":[{"title":"A","price":1,"qty":1}],"shipping":-2}`, ErrInvalidShipping},
		{"zero total", `{"telefone":"11999999999","cart":[{"title":"A","price":0,"qty":1}]}`, ErrInvalidAmount},
		{"no cart no valor", `{"telefone":"11999999999"}`, ErrInvalidAmount},
		{"valor past int64 cents", `{"telefone":"11999999999","valor":184467440737095516.17}`, ErrInvalidAmount},
		{"cart total past int64 cents", `{"telefone":"11999999999","cart":[{"title":"A","price":"1e18","qty":1000}]}`, ErrInvalidAmount},
		{"valor above charge cap", `{"telefone":"11999999999","valor":100000000.01}`, ErrInvalidAmount},
		{"short phone", `{"telefone":"12345","valor":10}`, entities.ErrInvalidPhone},
		{"missing phone", `{"valor":10}`, entities.ErrInvalidPhone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := decodeOrder(t, tc.body).ToOrder()
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}
