package interfaces

import (
	"context"

	"pix_server/internal/domain/entities"
)

// IPaymentStatusRepository is the status store keyed by txid.
//
//   - Get never fails for an unknown txid; it returns entities.UnknownPaymentRecord.
//   - Set overwrites unconditionally.
type IPaymentStatusRepository interface {
	Get(ctx context.Context, txid string) (entities.PaymentRecord, error)
	Set(ctx context.Context, record entities.PaymentRecord) error
}
