// Package local implements the filesystem-backed read/write dispatch used
// in runtimes with direct disk access.
package local

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"filebridge/internal/convert"
	"filebridge/internal/domain"
	"filebridge/internal/errors"
	"filebridge/internal/mimetype"
	"filebridge/internal/resolve"
)

const (
	dirPermissions  = 0o700 // Owner-only access
	filePermissions = 0o600 // Read/write owner only
)

// Backend dispatches reads and writes against the local filesystem, with
// network resolution for URL inputs and a one-shot local-path fallback.
type Backend struct {
	resolver *resolve.Resolver
	fs       domain.FileSystemAdapter
	logger   *slog.Logger
}

// New creates a local backend.
func New(httpAdapter domain.HTTPAdapter, fs domain.FileSystemAdapter, logger *slog.Logger) *Backend {
	return &Backend{
		resolver: resolve.New(httpAdapter, fs, logger),
		fs:       fs,
		logger:   logger,
	}
}

// Strategy identifies the backend.
func (b *Backend) Strategy() domain.Strategy {
	return domain.StrategyLocal
}

// ReadFile resolves, converts, and optionally wraps the result in an
// envelope. Every failure surfaces as a single *errors.OperationError.
func (b *Backend) ReadFile(ctx context.Context, input any, opts *domain.Options) (any, error) {
	result, err := b.read(ctx, input, opts)
	if err != nil {
		return nil, errors.NewOperationError(errors.OpRead, domain.StrategyLocal, resolve.InputFilename(input), err)
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

	envelope := &domain.Envelope{
		Filename:  res.Filename,
		Size:      res.Size,
		Strategy:  domain.StrategyLocal,
		Timestamp: time.Now(),
		MIMEType:  res.MIMEType,
		Data:      value,
	}
	if res.Path != "" {
		envelope.Path = res.Path
	} else {
		envelope.URL = res.Locator
	}
	return envelope, nil
}

// WriteFile normalizes the payload to bytes, creates the destination
// directory chain, and writes the file.
func (b *Backend) WriteFile(ctx context.Context, filename string, data any, opts *domain.Options) (*domain.Envelope, error) {
	envelope, err := b.write(ctx, filename, data, opts)
	if err != nil {
		return nil, errors.NewOperationError(errors.OpWrite, domain.StrategyLocal, filename, err)
	}
	return envelope, nil
}

func (b *Backend) write(ctx context.Context, filename string, data any, opts *domain.Options) (*domain.Envelope, error) {
	o := opts.Normalized()

	payload, err := convert.NormalizeData(data, o.Encoding)
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %q: %w", filename, err)
	}

	if err := b.fs.MkdirAll(filepath.Dir(abs), dirPermissions); err != nil {
		return nil, fmt.Errorf("failed to create directory for file: %w", err)
	}
	if err := b.fs.WriteFile(abs, payload, filePermissions); err != nil {
		return nil, fmt.Errorf("failed to write file: %w", err)
	}
	b.logger.DebugContext(ctx, "File written", "path", abs, "size", len(payload))

	if !o.UseDetails {
		return nil, nil
	}

	size := int64(len(payload))
	if info, statErr := b.fs.Stat(abs); statErr == nil {
		size = info.Size()
	}

	return &domain.Envelope{
		Filename:  filename,
		Size:      size,
		Strategy:  domain.StrategyLocal,
		Timestamp: time.Now(),
		Path:      abs,
		MIMEType:  mimetype.ByFilename(filename),
	}, nil
}

// Exists reports whether the path names an existing file. All failures are
// swallowed and reported as false.
func (b *Backend) Exists(_ context.Context, locator string) bool {
	abs, err := filepath.Abs(locator)
	if err != nil {
		return false
	}
	_, err = b.fs.Stat(abs)
	return err == nil
}
