package clients

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultTimeout = 15 * time.Second
	// quote responses are a few hundred bytes
	defaultMaxBody = 1 << 20
	userAgent      = "stockvote/1.0"
)

var (
	ErrFailedCloseResponseBody = errors.New("failed close response body")
	ErrResponseTooLarge        = errors.New("response body too large")
)

type HTTPClientI interface {
	Do(req *http.Request) (*http.Response, error)
	Get(ctx context.Context, url string, headers http.Header) (statusCode int, respBody []byte, respHeaders http.Header, err error)
}

type HTTPClientAdapter struct {
	client  *http.Client
	maxBody int64
}

func (h *HTTPClientAdapter) Do(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", userAgent)
	}
	return h.client.Do(req)
}

// Get reads at most maxBody bytes; a longer body fails with ErrResponseTooLarge.
func (h *HTTPClientAdapter) Get(ctx context.Context, url string, headers http.Header) (statusCode int, respBody []byte, respHeaders http.Header, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return 0, nil, nil, err
	}
	for key, values := range headers {
		req.Header[key] = values
	}

	resp, err := h.Do(req)
	if err != nil {
		return 0, nil, nil, err
	}
	defer func() {
		if e := resp.Body.Close(); e != nil {
			err = errors.Join(err, ErrFailedCloseResponseBody)
		}
	}()

	respBody, err = io.ReadAll(io.LimitReader(resp.Body, h.maxBody+1))
	if err != nil {
		return 0, nil, nil, err
	}
	if int64(len(respBody)) > h.maxBody {
		return resp.StatusCode, nil, resp.Header, fmt.Errorf("%s: %w", url, ErrResponseTooLarge)
	}
	return resp.StatusCode, respBody, resp.Header, nil
}

type Option func(*HTTPClientAdapter)

func WithTimeout(d time.Duration) Option {
	return func(a *HTTPClientAdapter) { a.client.Timeout = d }
}

func WithMaxBody(n int64) Option {
	return func(a *HTTPClientAdapter) { a.maxBody = n }
}

type HTTPClient struct {
	client HTTPClientI
}

func NewHTTPClient(opts ...Option) *HTTPClient {
	adapter := &HTTPClientAdapter{
		client:  &http.Client{Timeout: defaultTimeout},
		maxBody: defaultMaxBody,
	}
	for _, opt := range opts {
		opt(adapter)
	}
	return &HTTPClient{client: adapter}
}

func (h *HTTPClient) Get(ctx context.Context, url string, headers http.Header) (statusCode int, respBody []byte, respHeaders http.Header, err error) {
	return h.client.Get(ctx, url, headers)
}

func (h *HTTPClient) Do(req *http.Request) (*http.Response, error) {
	return h.client.Do(req)
}

func (h *HTTPClient) SetClient(mock HTTPClientI) {
	h.client = mock
}
