package domain

import "time"

// Strategy identifies the backend servicing an operation.
type Strategy string

const (
	StrategyLocal       Strategy = "local"
	StrategyBrowser     Strategy = "browser"
	StrategyUnsupported Strategy = "unsupported"
)

// Label returns the human-readable backend name used in error messages.
func (s Strategy) Label() string {
	switch s {
	case StrategyLocal:
		return "LocalFileManager"
	case StrategyBrowser:
		return "BrowserFileManager"
	default:
		return "UnknownFileManager"
	}
}

// DefaultEncoding is the character encoding applied when none is specified.
const DefaultEncoding = "utf8"

// Options configures a single read or write operation.
type Options struct {
	// Encoding is the character encoding for text decode/encode. Defaults to "utf8".
	Encoding string

	// Format selects the canonical representation a read is decoded into.
	// Ignored on writes. Defaults to "text".
	Format Format

	// UseDetails requests a full Envelope instead of the bare value.
	UseDetails bool
}

// Normalized returns a copy of the options with defaults filled in.
// A nil receiver yields the default options.
func (o *Options) Normalized() Options {
	out := Options{}
	if o != nil {
		out = *o
	}
	if out.Encoding == "" {
		out.Encoding = DefaultEncoding
	}
	if out.Format == "" {
		out.Format = DefaultFormat
	}
	return out
}

// Envelope is the metadata wrapper returned when details are requested.
// Path is populated only by the local backend, URL only by the browser
// backend. Data is absent (nil, omitted on serialization) when the
// operation produced no value.
type Envelope struct {
	Filename  string    `json:"filename" yaml:"filename"`
	Size      int64     `json:"size" yaml:"size"`
	Strategy  Strategy  `json:"strategy" yaml:"strategy"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Path      string    `json:"path,omitempty" yaml:"path,omitempty"`
	URL       string    `json:"url,omitempty" yaml:"url,omitempty"`
	MIMEType  string    `json:"mimeType" yaml:"mimeType"`
	Data      any       `json:"data,omitempty" yaml:"data,omitempty"`
}

// Resolution is the outcome of resolving an input to raw bytes.
type Resolution struct {
	// Locator records the resource origin: a URL, an absolute local path,
	// or a synthesized memory:// pseudo-locator for in-memory inputs.
	Locator string

	// Path is the absolute filesystem path, set only when the bytes came
	// from local-path resolution.
	Path string

	Size     int64
	Raw      []byte
	MIMEType string

	// Filename is the name derived from the input: the base name of a path
	// or URL, the blob's own name, or "anonymous".
	Filename string

	// PreConverted carries the original input object when conversion is a
	// no-op (a blob-like input read with the blob format). When set, Raw
	// is empty and the converter is bypassed.
	PreConverted any
}
