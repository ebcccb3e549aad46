package entities

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestIsConfirmedStatus(t *testing.T) {
	cases := map[string]bool{
		"confirmed":       true,
		"paid":            true,
		"approved":        true,
		" APPROVED ":      true,
		"Paid":            true,
		"pending":         false,
		"waiting_payment": false,
		"refused":         false,
		"":                false,
	}
	for in, want := range cases {
		if got := IsConfirmedStatus(in); got != want {
			t.Fatalf("IsConfirmedStatus(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNormalizeStatus(t *testing.T) {
	if NormalizeStatus("approved") != PaymentStatusPaid {
		t.Fatalf("approved should normalize to paid")
	}
	if NormalizeStatus("waiting_payment") != PaymentStatusPending {
		t.Fatalf("waiting_payment should normalize to pending")
	}
	tx := PixTransaction{GatewayStatus: "confirmed"}
	if tx.Status() != PaymentStatusPaid {
		t.Fatalf("unexpected transaction status %q", tx.Status())
	}
}

func TestUnknownPaymentRecord(t *testing.T) {
	rec := UnknownPaymentRecord("tx1")
	if rec.TxID != "tx1" || rec.Status != PaymentStatusPending || rec.PaidAt != nil || rec.IsPaid() {
		t.Fatalf("unexpected record: %+v", rec)
	}
}

func TestPixOrder_Amount(t *testing.T) {
	o := PixOrder{AmountCents: 2500}
	if !o.Amount().Equal(decimal.NewFromInt(25)) {
		t.Fatalf("expected 25, got %s", o.Amount())
	}
	item := CartItem{UnitPrice: decimal.RequireFromString("10.5"), Quantity: decimal.NewFromInt(3)}
	if !item.Subtotal().Equal(decimal.RequireFromString("31.5")) {
		t.Fatalf("unexpected subtotal %s", item.Subtotal())
	}
}
