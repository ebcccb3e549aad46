package repository

import (
	"context"
	"sync"
	"time"

	"pix_server/internal/domain/entities"
	"pix_server/internal/logging"
	"pix_server/internal/usecase/interfaces"
)

// PaymentStatusMemoryRepository keeps payment records in process memory.
//
// Records expire ttl after their last Set; expired records read as unknown
// and are dropped by Compact. A ttl of zero disables expiry.
type PaymentStatusMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]entities.PaymentRecord
	ttl   time.Duration
	now   func() time.Time
}

var _ interfaces.IPaymentStatusRepository = (*PaymentStatusMemoryRepository)(nil)

func NewPaymentStatusMemoryRepository(ttl time.Duration) *PaymentStatusMemoryRepository {
	return &PaymentStatusMemoryRepository{
		items: make(map[string]entities.PaymentRecord),
		ttl:   ttl,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (r *PaymentStatusMemoryRepository) Get(_ context.Context, txid string) (entities.PaymentRecord, error) {
	r.mu.RLock()
	rec, ok := r.items[txid]
	r.mu.RUnlock()
	if !ok || r.expired(rec, r.now()) {
		return entities.UnknownPaymentRecord(txid), nil
	}
	return rec, nil
}

func (r *PaymentStatusMemoryRepository) Set(_ context.Context, record entities.PaymentRecord) error {
	if r.ttl > 0 {
		record.ExpiresAt = r.now().Add(r.ttl)
	}
	r.mu.Lock()
	r.items[record.TxID] = record
	r.mu.Unlock()
	return nil
}

// Compact removes expired records and returns how many were dropped.
func (r *PaymentStatusMemoryRepository) Compact() int {
	now := r.now()
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for k, rec := range r.items {
		if r.expired(rec, now) {
			delete(r.items, k)
			removed++
		}
	}
	return removed
}

func (r *PaymentStatusMemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

func (r *PaymentStatusMemoryRepository) expired(rec entities.PaymentRecord, now time.Time) bool {
	return r.ttl > 0 && !rec.ExpiresAt.IsZero() && !now.Before(rec.ExpiresAt)
}

// Compactor is anything with an expiry sweep.
type Compactor interface {
	Compact() int
}

// StartJanitor runs Compact on every tick until ctx is done.
func StartJanitor(ctx context.Context, name string, interval time.Duration, c Compactor) {
	if interval <= 0 {
		return
	}
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				if n := c.Compact(); n > 0 {
					logging.New("janitor").Info("[pix][store] compacted", "store", name, "removed", n)
				}
			}
		}
	}()
}
