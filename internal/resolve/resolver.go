// Package resolve turns heterogeneous read inputs (URL or path strings,
// in-memory blobs and files) into raw bytes plus origin metadata.
package resolve

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"filebridge/internal/domain"
	"filebridge/internal/errors"
	"filebridge/internal/mimetype"
	"filebridge/internal/pathutil"
)

// AnonymousFilename names blob inputs that carry no name of their own.
const AnonymousFilename = "anonymous"

// Resolver resolves read inputs for one backend. A nil filesystem adapter
// disables the local-path fallback (the browser strategy).
type Resolver struct {
	http   domain.HTTPAdapter
	fs     domain.FileSystemAdapter
	logger *slog.Logger
}

// New creates a resolver. fs may be nil when local-path access is unavailable.
func New(httpAdapter domain.HTTPAdapter, fs domain.FileSystemAdapter, logger *slog.Logger) *Resolver {
	return &Resolver{
		http:   httpAdapter,
		fs:     fs,
		logger: logger,
	}
}

// Resolve dispatches over the closed set of supported input shapes.
func (r *Resolver) Resolve(ctx context.Context, input any, format domain.Format) (*domain.Resolution, error) {
	switch v := input.(type) {
	case string:
		return r.resolveLocator(ctx, v)
	case *domain.File:
		return r.resolveBlobLike(v, v.Name(), format, input)
	case *domain.Blob:
		return r.resolveBlobLike(v, "", format, input)
	default:
		return nil, errors.NewUnsupportedInputError(input)
	}
}

// resolveLocator resolves a string locator. Strings without an http(s)
// scheme go straight to path resolution when a filesystem is available; a
// doomed network attempt would only add latency. URL fetches that fail at
// the network layer (not a non-2xx response) get a one-shot fallback to
// path resolution; if that also fails, the fallback failure supersedes the
// network error.
func (r *Resolver) resolveLocator(ctx context.Context, locator string) (*domain.Resolution, error) {
	if r.fs != nil && !isHTTPURL(locator) {
		return r.ResolvePath(locator)
	}

	resp, err := r.http.Get(ctx, locator)
	if err != nil {
		if r.fs == nil {
			return nil, err
		}
		r.logger.DebugContext(ctx, "Network resolution failed, falling back to local path",
			"locator", locator,
			"error", err)
		res, pathErr := r.ResolvePath(locator)
		if pathErr != nil {
			return nil, pathErr
		}
		return res, nil
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, errors.NewHTTPError(resp.StatusCode, locator)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	mimeType := contentType(resp)
	filename := filenameFromLocator(locator)
	if mimeType == "" {
		mimeType = mimetype.ByFilename(filename)
	}

	return &domain.Resolution{
		Locator:  locator,
		Size:     int64(len(raw)),
		Raw:      raw,
		MIMEType: mimeType,
		Filename: filename,
	}, nil
}

// ResolvePath resolves a local filesystem path: absolutize, stat, reject
// non-regular files, read contents. Local strategy only.
func (r *Resolver) ResolvePath(path string) (*domain.Resolution, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %q: %w", path, err)
	}

	info, err := r.fs.Stat(abs)
	if err != nil {
		return nil, errors.NewNotFoundError(abs, "", err)
	}
	if !info.Mode().IsRegular() {
		return nil, errors.NewNotFoundError(abs, fmt.Sprintf("Path is not a file: %s", abs), nil)
	}

	raw, err := r.fs.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", abs, err)
	}

	return &domain.Resolution{
		Locator:  abs,
		Path:     abs,
		Size:     int64(len(raw)),
		Raw:      raw,
		MIMEType: mimetype.ByFilename(abs),
		Filename: pathutil.BaseName(abs),
	}, nil
}

// resolveBlobLike derives metadata from an in-memory payload. When the
// requested format is exactly blob, the original object passes through as
// PreConverted and no bytes are extracted.
func (r *Resolver) resolveBlobLike(blob domain.BlobLike, name string, format domain.Format, original any) (*domain.Resolution, error) {
	kind := "blob"
	filename := name
	if name != "" {
		kind = "file"
	} else {
		filename = AnonymousFilename
	}

	mimeType := blob.ContentType()
	if mimeType == "" {
		mimeType = mimetype.ByFilename(filename)
	}

	res := &domain.Resolution{
		Locator:  fmt.Sprintf("memory://%s/%s", kind, url.PathEscape(filename)),
		Size:     blob.Size(),
		MIMEType: mimeType,
		Filename: filename,
	}

	if format == domain.FormatBlob {
		res.PreConverted = original
		return res, nil
	}

	res.Raw = blob.Bytes()
	return res, nil
}

// InputFilename derives the caller-facing filename from a raw input for
// error context, before any resolution has happened.
func InputFilename(input any) string {
	switch v := input.(type) {
	case string:
		return pathutil.BaseName(v)
	case *domain.File:
		return v.Name()
	case *domain.Blob:
		return AnonymousFilename
	default:
		return ""
	}
}

func isHTTPURL(locator string) bool {
	u, err := url.Parse(locator)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https")
}

func contentType(resp *http.Response) string {
	ct := resp.Header.Get("Content-Type")
	if idx := strings.Index(ct, ";"); idx != -1 {
		ct = strings.TrimSpace(ct[:idx])
	}
	return ct
}

func filenameFromLocator(locator string) string {
	if u, err := url.Parse(locator); err == nil && u.Path != "" {
		return pathutil.BaseName(u.Path)
	}
	return pathutil.BaseName(locator)
}
