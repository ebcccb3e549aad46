package cache

import (
	"context"
	"time"

	"pix_server/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const notifiedKeyPrefix = "pix:notified:"

// RedisNotificationLedger shares fan-out claims across instances.
type RedisNotificationLedger struct {
	rdb redis.Cmdable
	ttl time.Duration
	now func() time.Time
}

var _ interfaces.INotificationLedger = (*RedisNotificationLedger)(nil)

func NewRedisNotificationLedger(rdb redis.Cmdable, ttl time.Duration) *RedisNotificationLedger {
	return &RedisNotificationLedger{rdb: rdb, ttl: ttl, now: func() time.Time { return time.Now().UTC() }}
}

func (l *RedisNotificationLedger) Claim(ctx context.Context, txid string) (bool, error) {
	return l.rdb.SetNX(ctx, notifiedKeyPrefix+txid, l.now().Format(time.RFC3339Nano), l.ttl).Result()
}
