package interfaces

import (
	"context"

	"pix_server/internal/domain/entities"
)

// IPaymentGateway abstracts PIX payment providers (BuckPay, Mercado Pago).
//
// CreatePixPayment returns the transaction already normalized; vendor errors
// are surfaced verbatim to the caller.
type IPaymentGateway interface {
	CreatePixPayment(ctx context.Context, order entities.PixOrder) (entities.PixTransaction, error)
}

// IPaymentStatusResolver is implemented by gateways whose webhooks only carry
// the payment id.
type IPaymentStatusResolver interface {
	ResolveStatus(ctx context.Context, txid string) (vendorStatus string, err error)
}
