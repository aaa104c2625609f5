// Package filebridge provides a unified file read/write API that works the
// same in runtimes with direct filesystem access and in sandboxed,
// network-only runtimes. The environment-appropriate backend is selected
// lazily on first use and cached for the life of the client.
package filebridge

import (
	"context"
	"log/slog"
	"sync"

	"filebridge/internal/adapters/filesystem"
	httpadapter "filebridge/internal/adapters/http"
	"filebridge/internal/backend/browser"
	"filebridge/internal/backend/local"
	"filebridge/internal/config"
	"filebridge/internal/domain"
	"filebridge/internal/env"
	"filebridge/internal/errors"
	"filebridge/internal/logging"
	"filebridge/internal/resolve"
)

// Client is the public facade. Its backend is initialized once, on the
// first operation, and reused by every subsequent call.
type Client struct {
	settings config.Settings
	logger   *slog.Logger
	strategy domain.Strategy
	trigger  domain.DownloadTrigger
	http     domain.HTTPAdapter
	fs       domain.FileSystemAdapter

	once    sync.Once
	backend domain.FileBackend
	initErr error
}

// Option customizes a Client.
type Option func(*Client)

// WithSettings replaces the default settings.
func WithSettings(settings Settings) Option {
	return func(c *Client) { c.settings = settings }
}

// WithLogger replaces the default logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithStrategy pins the backend strategy, bypassing environment detection.
func WithStrategy(strategy Strategy) Option {
	return func(c *Client) { c.strategy = strategy }
}

// WithDownloadTrigger registers the delivery mechanism for browser writes.
func WithDownloadTrigger(trigger DownloadTrigger) Option {
	return func(c *Client) { c.trigger = trigger }
}

// WithHTTPAdapter replaces the default resty-backed HTTP adapter.
func WithHTTPAdapter(adapter domain.HTTPAdapter) Option {
	return func(c *Client) { c.http = adapter }
}

// WithFileSystem replaces the default afero-backed filesystem adapter.
func WithFileSystem(fs domain.FileSystemAdapter) Option {
	return func(c *Client) { c.fs = fs }
}

// New creates a client. No environment detection or backend setup happens
// until the first operation.
func New(opts ...Option) *Client {
	c := &Client{
		settings: config.Defaults(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = logging.NewLogger(logging.ParseLevel(c.settings.LogLevel))
	}
	return c
}

// initialize runs exactly once under the client's sync.Once guard, so
// concurrent first-use cannot diverge on backend selection.
func (c *Client) initialize() {
	strategy := c.strategy
	if strategy == "" {
		if c.settings.Environment != "" {
			strategy = env.FromName(c.settings.Environment)
		} else {
			strategy = env.Detect()
		}
	}

	httpAdapter := c.http
	if httpAdapter == nil {
		httpAdapter = httpadapter.NewAdapter(c.settings.HTTPTimeout, c.settings.InsecureSkipVerify, c.logger)
	}

	switch strategy {
	case domain.StrategyLocal:
		fs := c.fs
		if fs == nil {
			fs = filesystem.New()
		}
		c.backend = local.New(httpAdapter, fs, c.logger)
	case domain.StrategyBrowser:
		c.backend = browser.New(httpAdapter, c.trigger, c.settings.DownloadTimeout, c.logger)
	default:
		c.initErr = errors.NewEnvironmentError(c.settings.Environment)
	}
}

func (c *Client) acquire() (domain.FileBackend, error) {
	c.once.Do(c.initialize)
	return c.backend, c.initErr
}

// currentStrategy reports the backend strategy for error context. It goes
// through acquire so the read of the backend is ordered by the once-guard
// against concurrent first use.
func (c *Client) currentStrategy() domain.Strategy {
	backend, err := c.acquire()
	if err != nil || backend == nil {
		return domain.StrategyUnsupported
	}
	return backend.Strategy()
}

// ReadFile reads from a path, URL, *Blob, or *File and decodes the contents
// into the format selected by opts. With Options.UseDetails the result is a
// *Envelope; otherwise the bare decoded value.
func (c *Client) ReadFile(ctx context.Context, input any, opts *Options) (any, error) {
	backend, err := c.acquire()
	if err != nil {
		return nil, errors.NewOperationError(errors.OpRead, domain.StrategyUnsupported, resolve.InputFilename(input), err)
	}
	return backend.ReadFile(ctx, input, opts)
}

// WriteFile persists data under filename. The returned envelope is nil
// unless Options.UseDetails is set.
func (c *Client) WriteFile(ctx context.Context, filename string, data any, opts *Options) (*Envelope, error) {
	backend, err := c.acquire()
	if err != nil {
		return nil, errors.NewOperationError(errors.OpWrite, domain.StrategyUnsupported, filename, err)
	}
	return backend.WriteFile(ctx, filename, data, opts)
}

// Exists reports whether the path or URL refers to an existing resource.
// Every failure, including backend acquisition, is swallowed as false.
func (c *Client) Exists(ctx context.Context, locator string) bool {
	backend, err := c.acquire()
	if err != nil {
		return false
	}
	return backend.Exists(ctx, locator)
}

// Flag reads a named key from the process environment through a
// caller-supplied interpretation function.
func Flag[T any](key string, interpret func(string) T) T {
	return env.Flag(key, interpret)
}

// Default client, used by the package-level convenience functions.
//
//nolint:gochecknoglobals // Deliberate process-wide default instance
var defaultClient = New()

// Default returns the process-wide default client.
func Default() *Client {
	return defaultClient
}

// SetDefault replaces the process-wide default client.
func SetDefault(c *Client) {
	defaultClient = c
}

// ReadFile reads through the default client.
func ReadFile(ctx context.Context, input any, opts *Options) (any, error) {
	return defaultClient.ReadFile(ctx, input, opts)
}

// WriteFile writes through the default client.
func WriteFile(ctx context.Context, filename string, data any, opts *Options) (*Envelope, error) {
	return defaultClient.WriteFile(ctx, filename, data, opts)
}

// Exists checks through the default client.
func Exists(ctx context.Context, locator string) bool {
	return defaultClient.Exists(ctx, locator)
}
