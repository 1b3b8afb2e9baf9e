package oracle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/GlebRadaev/stockvote/internal/domain"
	"github.com/GlebRadaev/stockvote/internal/metrics"
	"github.com/GlebRadaev/stockvote/pkg/clients"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

var errUnexpectedStatus = errors.New("unexpected status code")

type Response struct {
	Code      string    `json:"code"`
	Price     float64   `json:"price"`
	Timestamp time.Time `json:"timestamp"`
}

// Client queries a remote price service. Calls are rate limited, retried on
// transport errors and 429, and guarded by a circuit breaker.
type Client struct {
	url           string
	client        clients.HTTPClientI
	limiter       *rate.Limiter
	breaker       *gobreaker.CircuitBreaker
	metrics       *metrics.Metrics
	retryInterval time.Duration
}

type ClientOption func(*Client)

// WithRetryInterval sets the base backoff between attempts.
func WithRetryInterval(d time.Duration) ClientOption {
	return func(c *Client) { c.retryInterval = d }
}

func WithBreakerSettings(st gobreaker.Settings) ClientOption {
	return func(c *Client) { c.breaker = gobreaker.NewCircuitBreaker(st) }
}

func NewClient(addr string, client clients.HTTPClientI, rps float64, m *metrics.Metrics, opts ...ClientOption) *Client {
	if m == nil {
		m = metrics.New()
	}
	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
	}

	c := &Client{
		url:           strings.TrimRight(addr, "/"),
		client:        client,
		limiter:       rate.NewLimiter(limit, 1),
		breaker:       gobreaker.NewCircuitBreaker(defaultBreakerSettings()),
		metrics:       m,
		retryInterval: retryInterval,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func defaultBreakerSettings() gobreaker.Settings {
	return gobreaker.Settings{
		Name:     "price-oracle",
		Interval: 60 * time.Second,
		Timeout:  30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		// a missing quote is an answer, not an outage
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, domain.ErrPriceUnavailable)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			zap.L().Warn("Circuit breaker state changed",
				zap.String("name", name), zap.String("from", from.String()), zap.String("to", to.String()))
		},
	}
}

func (c *Client) PriceAt(ctx context.Context, stockCode string, at time.Time) (float64, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, err
	}

	res, err := c.breaker.Execute(func() (interface{}, error) {
		return c.fetch(ctx, stockCode, at)
	})
	if err != nil {
		c.metrics.OracleRequests.WithLabelValues(resultLabel(err)).Inc()
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return 0, fmt.Errorf("oracle circuit open: %w", domain.ErrPriceUnavailable)
		}
		if errors.Is(err, domain.ErrPriceUnavailable) || ctx.Err() != nil {
			return 0, err
		}
		return 0, fmt.Errorf("%w: %v", domain.ErrPriceUnavailable, err)
	}
	c.metrics.OracleRequests.WithLabelValues("ok").Inc()
	return res.(float64), nil
}

func resultLabel(err error) string {
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return "open"
	case errors.Is(err, domain.ErrPriceUnavailable):
		return "unavailable"
	default:
		return "error"
	}
}

func (c *Client) fetch(ctx context.Context, stockCode string, at time.Time) (float64, error) {
	code := strings.ToUpper(stockCode)
	reqURL := c.url + "/api/stock/history/" + url.PathEscape(code) + "?at=" + url.QueryEscape(at.UTC().Format(time.RFC3339))

	for attempt := 1; attempt <= maxRetries; attempt++ {
		statusCode, respBody, respHeaders, err := c.client.Get(ctx, reqURL, nil)
		if err != nil {
			if ctx.Err() != nil {
				return 0, ctx.Err()
			}
			if attempt < maxRetries {
				if err := c.sleep(ctx, c.retryInterval*time.Duration(attempt)); err != nil {
					return 0, err
				}
				continue
			}
			return 0, fmt.Errorf("failed to get price of %s after %d retries: %w", code, maxRetries, err)
		}

		switch statusCode {
		case http.StatusOK:
			return parsePrice(code, respBody)
		case http.StatusNotFound, http.StatusNoContent:
			return 0, fmt.Errorf("no quote for %s at %s: %w", code, at.Format(time.RFC3339), domain.ErrPriceUnavailable)
		case http.StatusTooManyRequests:
			if attempt < maxRetries {
				if err := c.handleRateLimit(ctx, code, respHeaders, attempt); err != nil {
					return 0, err
				}
				continue
			}
			return 0, fmt.Errorf("oracle rate limit for %s persisted after %d retries", code, maxRetries)
		default:
			zap.L().Error("Unexpected status code", zap.Int("status", statusCode), zap.String("stockCode", code))
			return 0, fmt.Errorf("%w: %d", errUnexpectedStatus, statusCode)
		}
	}
	return 0, fmt.Errorf("failed to get price of %s", code)
}

func parsePrice(code string, respBody []byte) (float64, error) {
	var response Response
	if err := json.Unmarshal(respBody, &response); err != nil {
		return 0, fmt.Errorf("failed to parse response body: %w", err)
	}
	if response.Code != "" && !strings.EqualFold(response.Code, code) {
		return 0, fmt.Errorf("stock code mismatch: expected %s, got %s", code, response.Code)
	}
	if response.Price <= 0 {
		return 0, fmt.Errorf("non-positive price %v for %s: %w", response.Price, code, domain.ErrPriceUnavailable)
	}
	return response.Price, nil
}

func (c *Client) handleRateLimit(ctx context.Context, code string, respHeaders http.Header, attempt int) error {
	retryAfter := c.retryInterval * time.Duration(attempt)
	if header := respHeaders.Get("Retry-After"); header != "" {
		if seconds, err := strconv.Atoi(header); err == nil {
			retryAfter = time.Duration(seconds) * time.Second
		}
	}
	zap.L().Warn(
		"Rate limit detected, retrying",
		zap.String("stockCode", code),
		zap.Int("attempt", attempt),
		zap.Duration("retryAfter", retryAfter),
	)
	return c.sleep(ctx, retryAfter)
}

func (c *Client) sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
