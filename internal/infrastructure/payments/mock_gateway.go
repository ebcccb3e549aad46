package payments

import (
	"context"
	"encoding/base64"
	"fmt"

	"pix_server/internal/domain/entities"
	"pix_server/internal/logging"
	"pix_server/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// MockGateway fabricates pending transactions for local runs
// (PAYMENT_GATEWAY_MOCK=true). Its status lookups always report approved, so
// a Mercado Pago style webhook confirms the payment.
type MockGateway struct{}

var (
	_ interfaces.IPaymentGateway        = MockGateway{}
	_ interfaces.IPaymentStatusResolver = MockGateway{}
)

func (MockGateway) CreatePixPayment(ctx context.Context, order entities.PixOrder) (entities.PixTransaction, error) {
	txid := "mock-" + uuid.NewString()
	code := fmt.Sprintf("00020126580014BR.GOV.BCB.PIX0136%s5204000053039865406%s5802BR", txid, order.Amount().StringFixed(2))
	logging.FromCtx(ctx).Info("[pix][gateway] mock create", "txid", txid, "amount_cents", order.AmountCents)
	return entities.PixTransaction{
		TxID:          txid,
		GatewayStatus: "waiting_payment",
		CopiaECola:    code,
		QRCode:        base64.StdEncoding.EncodeToString([]byte(code)),
		AmountCents:   order.AmountCents,
	}, nil
}

func (MockGateway) ResolveStatus(_ context.Context, _ string) (string, error) {
	return "approved", nil
}
