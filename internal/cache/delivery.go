package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"github.com/lamkn06/delivery-ops/internal/domain"
	"github.com/lamkn06/delivery-ops/internal/logx"
)

// DeliveryCache keeps read-mostly delivery snapshots in Redis. A snapshot
// is written whenever the authoritative record is read or mutated (the
// explicit apply-server-state step) and dropped on TTL or invalidation.
// The cache is best-effort: every failure degrades to a miss.
type DeliveryCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger logx.Logger
	hits   prometheus.Counter
	misses prometheus.Counter
}

// NewDeliveryCache creates a DeliveryCache. A nil client disables caching.
func NewDeliveryCache(rdb *redis.Client, ttl time.Duration, logger logx.Logger, hits, misses prometheus.Counter) *DeliveryCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &DeliveryCache{rdb: rdb, ttl: ttl, logger: logger, hits: hits, misses: misses}
}

func snapshotKey(id int64) string {
	return fmt.Sprintf("delivery:%d", id)
}

// Get returns the cached snapshot for a delivery, if present.
func (c *DeliveryCache) Get(ctx context.Context, id int64) (*domain.Delivery, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, snapshotKey(id)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Debug("snapshot get failed",
				logx.Int64("delivery_id", id), logx.Any("err", err))
		}
		c.miss()
		return nil, false
	}

	var d domain.Delivery
	if err := json.Unmarshal(raw, &d); err != nil {
		c.logger.Warn("snapshot decode failed, dropping",
			logx.Int64("delivery_id", id), logx.Any("err", err))
		c.Invalidate(ctx, id)
		c.miss()
		return nil, false
	}

	if c.hits != nil {
		c.hits.Inc()
	}
	return &d, true
}

// Put stores the authoritative record as the new snapshot.
func (c *DeliveryCache) Put(ctx context.Context, d *domain.Delivery) {
	if c == nil || c.rdb == nil || d == nil {
		return
	}

	raw, err := json.Marshal(d)
	if err != nil {
		c.logger.Warn("snapshot encode failed",
			logx.Int64("delivery_id", d.ID), logx.Any("err", err))
		return
	}
	if err := c.rdb.Set(ctx, snapshotKey(d.ID), raw, c.ttl).Err(); err != nil {
		c.logger.Debug("snapshot put failed",
			logx.Int64("delivery_id", d.ID), logx.Any("err", err))
	}
}

// Invalidate drops the snapshot for a delivery.
func (c *DeliveryCache) Invalidate(ctx context.Context, id int64) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, snapshotKey(id)).Err(); err != nil {
		c.logger.Debug("snapshot invalidate failed",
			logx.Int64("delivery_id", id), logx.Any("err", err))
	}
}

func (c *DeliveryCache) miss() {
	if c.misses != nil {
		c.misses.Inc()
	}
}
