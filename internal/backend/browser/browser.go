// Package browser implements the sandboxed read/write dispatch: network-only
// reads and writes delivered as user-facing downloads through a trigger.
package browser

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"filebridge/internal/convert"
	"filebridge/internal/domain"
	"filebridge/internal/errors"
	"filebridge/internal/mimetype"
	"filebridge/internal/pathutil"
	"filebridge/internal/resolve"
)

// DefaultDownloadTimeout bounds the wait for a download acknowledgment.
const DefaultDownloadTimeout = 30 * time.Second

// Backend dispatches reads over the network and writes through a
// DownloadTrigger. It has no filesystem access and no local-path fallback.
type Backend struct {
	resolver *resolve.Resolver
	http     domain.HTTPAdapter
	trigger  domain.DownloadTrigger
	timeout  time.Duration
	logger   *slog.Logger
}

// New creates a browser backend. A non-positive timeout selects
// DefaultDownloadTimeout; trigger may be nil, in which case writes fail.
func New(httpAdapter domain.HTTPAdapter, trigger domain.DownloadTrigger, timeout time.Duration, logger *slog.Logger) *Backend {
	if timeout <= 0 {
		timeout = DefaultDownloadTimeout
	}
	return &Backend{
		resolver: resolve.New(httpAdapter, nil, logger),
		http:     httpAdapter,
		trigger:  trigger,
		timeout:  timeout,
		logger:   logger,
	}
}

// Strategy identifies the backend.
func (b *Backend) Strategy() domain.Strategy {
	return domain.StrategyBrowser
}

// ReadFile resolves the input over the network or from an in-memory blob,
// converts it, and optionally wraps the result in an envelope.
func (b *Backend) ReadFile(ctx context.Context, input any, opts *domain.Options) (any, error) {
	result, err := b.read(ctx, input, opts)
	if err != nil {
		return nil, errors.NewOperationError(errors.OpRead, domain.StrategyBrowser, resolve.InputFilename(input), err)
	}
	return result, nil
}

func (b *Backend) read(ctx context.Context, input any, opts *domain.Options) (any, error) {
	o := opts.Normalized()
	if err := convert.ValidateFormat(o.Format); err != nil {
		return nil, err
	}

	res, err := b.resolver.Resolve(ctx, input, o.Format)
	if err != nil {
		return nil, err
	}

	value := res.PreConverted
	if value == nil {
		value, err = convert.Convert(res.Raw, res.MIMEType, &o)
		if err != nil {
			return nil, err
		}
	}

	if !o.UseDetails {
		return value, nil
	}

	return &domain.Envelope{
		Filename:  res.Filename,
		Size:      res.Size,
		Strategy:  domain.StrategyBrowser,
		Timestamp: time.Now(),
		URL:       res.Locator,
		MIMEType:  res.MIMEType,
		Data:      value,
	}, nil
}

// WriteFile delivers the payload as a user-facing download: mint a transient
// object locator, hand the blob to the trigger, and wait for acknowledgment.
// The transient resource is released on every exit path, exactly once.
func (b *Backend) WriteFile(ctx context.Context, filename string, data any, opts *domain.Options) (*domain.Envelope, error) {
	envelope, err := b.write(ctx, filename, data, opts)
	if err != nil {
		return nil, errors.NewOperationError(errors.OpWrite, domain.StrategyBrowser, filename, err)
	}
	return envelope, nil
}

func (b *Backend) write(ctx context.Context, filename string, data any, opts *domain.Options) (*domain.Envelope, error) {
	o := opts.Normalized()

	if b.trigger == nil {
		return nil, errors.NewDownloadError("no download trigger registered", nil)
	}

	payload, err := convert.NormalizeData(data, o.Encoding)
	if err != nil {
		return nil, err
	}

	blob := domain.NewBlob(payload, mimetype.ByFilename(filename))
	objectURL := "blob:filebridge/" + uuid.NewString()
	resource := domain.NewDownloadResource(objectURL, pathutil.SanitizeFilename(filename), blob, func() {
		b.logger.DebugContext(ctx, "Download resource released", "object_url", objectURL)
	})
	defer resource.Release()

	ack, err := b.trigger.Begin(ctx, resource)
	if err != nil {
		return nil, errors.NewDownloadError("failed to start download", err)
	}

	timer := time.NewTimer(b.timeout)
	defer timer.Stop()

	select {
	case err := <-ack:
		if err != nil {
			return nil, errors.NewDownloadError("download failed", err)
		}
	case <-timer.C:
		return nil, errors.NewDownloadError("Download timeout", nil)
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if !o.UseDetails {
		return nil, nil
	}

	return &domain.Envelope{
		Filename:  filename,
		Size:      blob.Size(),
		Strategy:  domain.StrategyBrowser,
		Timestamp: time.Now(),
		URL:       objectURL,
		MIMEType:  blob.ContentType(),
	}, nil
}

// Exists probes the locator with a HEAD request. All failures are swallowed
// and reported as false.
func (b *Backend) Exists(ctx context.Context, locator string) bool {
	resp, err := b.http.Head(ctx, locator)
	if err != nil || resp == nil {
		return false
	}
	defer func() { _ = resp.Body.Close() }()
	return resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices
}
