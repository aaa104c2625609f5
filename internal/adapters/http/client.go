// Package http provides the resty-backed HTTP adapter used for network
// reads and existence probes.
package http

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

const (
	// Rate limiting configuration.
	rateLimitRequestsPerSecond = 10
	rateLimitBurst             = 20
)

// Adapter is an HTTP client adapter using resty with rate limiting.
type Adapter struct {
	client  *resty.Client
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewAdapter creates a new HTTP adapter with rate limiting. Requests are
// never retried: a transport failure surfaces immediately so the caller's
// one-shot local fallback is not delayed behind a backoff ladder.
// Rate limit: 10 requests per second with burst of 20.
func NewAdapter(timeout time.Duration, insecureSkipVerify bool, logger *slog.Logger) *Adapter {
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(0).
		SetTLSClientConfig(&tls.Config{
			InsecureSkipVerify: insecureSkipVerify, //nolint:gosec // User-configurable for self-signed certificates
		})

	// Rate limiter: 10 requests/second with burst of 20
	limiter := rate.NewLimiter(rate.Limit(rateLimitRequestsPerSecond), rateLimitBurst)

	// Add rate limiting middleware
	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		return limiter.Wait(req.Context())
	})

	// Add logging middleware
	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		logger.DebugContext(req.Context(), "HTTP request",
			"method", req.Method,
			"url", req.URL,
		)
		return nil
	})

	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		logger.DebugContext(resp.Request.Context(), "HTTP response",
			"method", resp.Request.Method,
			"url", resp.Request.URL,
			"status", resp.StatusCode(),
			"duration", resp.Time(),
		)
		return nil
	})

	return &Adapter{
		client:  client,
		limiter: limiter,
		logger:  logger,
	}
}

// Get performs a GET request.
func (a *Adapter) Get(ctx context.Context, url string) (*http.Response, error) {
	resp, err := a.client.R().SetContext(ctx).SetDoNotParseResponse(true).Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to execute GET request: %w", err)
	}
	return resp.RawResponse, nil
}

// Head performs a HEAD request.
func (a *Adapter) Head(ctx context.Context, url string) (*http.Response, error) {
	resp, err := a.client.R().SetContext(ctx).SetDoNotParseResponse(true).Head(url)
	if err != nil {
		return nil, fmt.Errorf("failed to execute HEAD request: %w", err)
	}
	return resp.RawResponse, nil
}
