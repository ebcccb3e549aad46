package repository

import (
	"context"
	"sync"
	"time"

	"pix_server/internal/usecase/interfaces"
)

// NotificationLedgerMemory is the single-instance ledger. A claim is kept for
// ttl; zero keeps it forever.
type NotificationLedgerMemory struct {
	mu      sync.Mutex
	claimed map[string]time.Time
	ttl     time.Duration
	now     func() time.Time
}

var _ interfaces.INotificationLedger = (*NotificationLedgerMemory)(nil)

func NewNotificationLedgerMemory(ttl time.Duration) *NotificationLedgerMemory {
	return &NotificationLedgerMemory{
		claimed: make(map[string]time.Time),
		ttl:     ttl,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (l *NotificationLedgerMemory) Claim(_ context.Context, txid string) (bool, error) {
	now := l.now()
	l.mu.Lock()
	defer l.mu.Unlock()
	if exp, ok := l.claimed[txid]; ok && (exp.IsZero() || now.Before(exp)) {
		return false, nil
	}
	var exp time.Time
	if l.ttl > 0 {
		exp = now.Add(l.ttl)
	}
	l.claimed[txid] = exp
	return true, nil
}

func (l *NotificationLedgerMemory) Compact() int {
	now := l.now()
	l.mu.Lock()
	defer l.mu.Unlock()
	removed := 0
	for k, exp := range l.claimed {
		if !exp.IsZero() && !now.Before(exp) {
			delete(l.claimed, k)
			removed++
		}
	}
	return removed
}
