package domain

import "context"

// FileBackend is the environment-specific read/write dispatch.
type FileBackend interface {
	// ReadFile resolves the input (path, URL, or in-memory blob), decodes it
	// into the requested format, and returns either the bare value or an
	// *Envelope when details are requested.
	ReadFile(ctx context.Context, input any, opts *Options) (any, error)

	// WriteFile persists data under filename. The returned envelope is nil
	// unless details are requested.
	WriteFile(ctx context.Context, filename string, data any, opts *Options) (*Envelope, error)

	// Exists reports whether the locator refers to an existing resource.
	// All failures are swallowed and reported as false.
	Exists(ctx context.Context, locator string) bool

	// Strategy identifies the backend.
	Strategy() Strategy
}
