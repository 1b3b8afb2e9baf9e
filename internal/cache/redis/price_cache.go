package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// PriceCache stores oracle answers under "price:{code}:{unix seconds}".
type PriceCache struct {
	rdb *redis.Client
}

func NewPriceCache(c *Client) *PriceCache {
	return &PriceCache{rdb: c.Underlying()}
}

func priceKey(stockCode string, at time.Time) string {
	return "price:" + stockCode + ":" + strconv.FormatInt(at.Unix(), 10)
}

// GetPrice reports ok=false when nothing is cached for the key.
func (pc *PriceCache) GetPrice(ctx context.Context, stockCode string, at time.Time) (float64, bool, error) {
	val, err := pc.rdb.Get(ctx, priceKey(stockCode, at)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("redis: get price %s: %w", stockCode, err)
	}
	price, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, false, fmt.Errorf("redis: parse price %s: %w", stockCode, err)
	}
	return price, true, nil
}

func (pc *PriceCache) SetPrice(ctx context.Context, stockCode string, at time.Time, price float64, ttl time.Duration) error {
	val := strconv.FormatFloat(price, 'f', -1, 64)
	if err := pc.rdb.Set(ctx, priceKey(stockCode, at), val, ttl).Err(); err != nil {
		return fmt.Errorf("redis: set price %s: %w", stockCode, err)
	}
	return nil
}
