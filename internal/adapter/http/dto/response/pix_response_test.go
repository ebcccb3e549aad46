package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"pix_server/internal/domain/entities"
	"pix_server/internal/usecase"
)

func TestFromPixTransaction(t *testing.T) {
	got := FromPixTransaction(entities.PixTransaction{TxID: "tx1", GatewayStatus: "waiting_payment", CopiaECola: "000201", QRCode: "iVBOR", AmountCents: 2500})
	if got.Status != "waiting_payment" || got.TxID != "tx1" || got.CopiaECola != "000201" || got.QRCode != "iVBOR" || got.Amount != 2500 {
		t.Fatalf("unexpected response: %+v", got)
	}

	fallback := FromPixTransaction(entities.PixTransaction{TxID: "tx2"})
	if fallback.Status != string(entities.PaymentStatusPending) {
		t.Fatalf("expected normalized status fallback, got %q", fallback.Status)
	}
}

func TestFromPaymentRecord_JSON(t *testing.T) {
	pending, _ := json.Marshal(FromPaymentRecord(entities.PaymentRecord{TxID: "tx1", Status: entities.PaymentStatusPending}))
	if !strings.Contains(string(pending), `"paidAt":null`) || !strings.Contains(string(pending), `"status":"pending"`) {
		t.Fatalf("unexpected pending body: %s", pending)
	}

	paidAt := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	paid, _ := json.Marshal(FromPaymentRecord(entities.PaymentRecord{TxID: "tx1", Status: entities.PaymentStatusPaid, PaidAt: &paidAt}))
	if !strings.Contains(string(paid), `"paidAt":"2025-01-02T03:04:05Z"`) {
		t.Fatalf("unexpected paid body: %s", paid)
	}
}

func TestFromWebhookOutcome(t *testing.T) {
	got := FromWebhookOutcome(usecase.WebhookOutcome{TxID: "tx1", Confirmed: true, Duplicate: true})
	if !got.Received || !got.Confirmed || !got.Duplicate || got.TxID != "tx1" {
		t.Fatalf("unexpected ack: %+v", got)
	}
	if ig := IgnoredWebhook("unknown schema"); !ig.Received || ig.Ignored != "unknown schema" || ig.Confirmed {
		t.Fatalf("unexpected ignored ack: %+v", ig)
	}
}
