// Package oracle answers "what was the price of this stock at that time".
package oracle

import (
	"context"
	"time"
)

type PriceOracle interface {
	PriceAt(ctx context.Context, stockCode string, at time.Time) (float64, error)
}
