package domain

import "strings"

// Format identifies the canonical representation a read is decoded into.
type Format string

const (
	FormatText        Format = "text"
	FormatJSON        Format = "json"
	FormatBinary      Format = "binary"
	FormatArrayBuffer Format = "arrayBuffer"
	FormatBlob        Format = "blob"
)

// DefaultFormat is applied when an operation does not specify a format.
const DefaultFormat = FormatText

// supportedFormats contains every recognized format tag.
//
//nolint:gochecknoglobals // Package-level constant set for format validation
var supportedFormats = []Format{
	FormatText,
	FormatJSON,
	FormatBinary,
	FormatArrayBuffer,
	FormatBlob,
}

// IsValidFormat checks if the provided format is supported.
func IsValidFormat(format Format) bool {
	for _, valid := range supportedFormats {
		if valid == format {
			return true
		}
	}
	return false
}

// SupportedFormatsString returns a formatted string of all supported formats.
func SupportedFormatsString() string {
	names := make([]string, 0, len(supportedFormats))
	for _, f := range supportedFormats {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}
