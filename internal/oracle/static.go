package oracle

import (
	"context"
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math"
	"strings"
	"time"

	"github.com/GlebRadaev/stockvote/internal/domain"
)

// DefaultPrices is the demo table served when no oracle address is configured.
var DefaultPrices = map[string]float64{
	"000001":    12.48,
	"000002":    18.35,
	"600000":    8.88,
	"600036":    35.10,
	"000001.SH": 3145.60,
	"399001.SZ": 10265.40,
}

// DefaultDrift bounds how far the built-in table moves away from its listed
// price, as a fraction of it.
const DefaultDrift = 0.02

// Static serves prices from a fixed table. With a non-zero drift each code
// moves around its listed price in steps of one minute, so a market priced at
// creation and again at settlement can actually move. The same code and
// minute always yield the same price.
type Static struct {
	prices map[string]float64
	drift  float64
}

func NewStatic(prices map[string]float64) *Static {
	table := make(map[string]float64, len(prices))
	for code, price := range prices {
		table[strings.ToUpper(code)] = price
	}
	return &Static{prices: table}
}

// WithDrift sets the largest relative move from the listed price.
func (s *Static) WithDrift(drift float64) *Static {
	s.drift = math.Abs(drift)
	return s
}

func (s *Static) PriceAt(_ context.Context, stockCode string, at time.Time) (float64, error) {
	code := strings.ToUpper(stockCode)
	price, ok := s.prices[code]
	if !ok {
		return 0, fmt.Errorf("no price for %s: %w", stockCode, domain.ErrPriceUnavailable)
	}
	if s.drift == 0 {
		return price, nil
	}
	moved := price * (1 + s.drift*step(code, at))
	return math.Round(moved*100) / 100, nil
}

// step maps a code and the minute holding at onto [-1, 1].
func step(code string, at time.Time) float64 {
	h := fnv.New64a()
	h.Write([]byte(code))
	var minute [8]byte
	binary.BigEndian.PutUint64(minute[:], uint64(at.Truncate(time.Minute).Unix()))
	h.Write(minute[:])
	return float64(h.Sum64()%2001)/1000 - 1
}
