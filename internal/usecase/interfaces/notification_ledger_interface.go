package interfaces

import "context"

// INotificationLedger remembers which txids already triggered the
// confirmation fan-out. Claim returns true only for the first caller.
type INotificationLedger interface {
	Claim(ctx context.Context, txid string) (bool, error)
}
