package oracle

import (
	"context"
	"time"

	"github.com/GlebRadaev/stockvote/internal/metrics"
	"go.uber.org/zap"
)

const DefaultCacheTTL = 24 * time.Hour

type PriceCache interface {
	GetPrice(ctx context.Context, stockCode string, at time.Time) (float64, bool, error)
	SetPrice(ctx context.Context, stockCode string, at time.Time, price float64, ttl time.Duration) error
}

// Cached remembers successful answers of another oracle. Cache errors are
// logged and fall through to the wrapped oracle.
type Cached struct {
	next    PriceOracle
	cache   PriceCache
	ttl     time.Duration
	metrics *metrics.Metrics
}

func NewCached(next PriceOracle, cache PriceCache, ttl time.Duration, m *metrics.Metrics) *Cached {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if m == nil {
		m = metrics.New()
	}
	return &Cached{next: next, cache: cache, ttl: ttl, metrics: m}
}

func (c *Cached) PriceAt(ctx context.Context, stockCode string, at time.Time) (float64, error) {
	price, ok, err := c.cache.GetPrice(ctx, stockCode, at)
	switch {
	case err != nil:
		c.metrics.PriceCache.WithLabelValues("error").Inc()
		zap.L().Warn("Price cache read failed", zap.Error(err), zap.String("stockCode", stockCode))
	case ok:
		c.metrics.PriceCache.WithLabelValues("hit").Inc()
		return price, nil
	default:
		c.metrics.PriceCache.WithLabelValues("miss").Inc()
	}

	price, err = c.next.PriceAt(ctx, stockCode, at)
	if err != nil {
		return 0, err
	}
	if err := c.cache.SetPrice(ctx, stockCode, at, price, c.ttl); err != nil {
		zap.L().Warn("Price cache write failed", zap.Error(err), zap.String("stockCode", stockCode))
	}
	return price, nil
}
