// Package convert turns raw bytes into one of the five canonical formats
// (text, json, binary, arrayBuffer, blob) and normalizes heterogeneous
// write payloads into bytes.
package convert

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"

	"filebridge/internal/domain"
	"filebridge/internal/errors"
)

// previewLimit bounds the source excerpt embedded in parse errors.
const previewLimit = 100

var whitespaceRuns = regexp.MustCompile(`\s+`)

// ValidateFormat rejects unrecognized format tags. Dispatchers call this
// before any I/O so a bad option never costs a fetch or disk read.
func ValidateFormat(format domain.Format) error {
	if !domain.IsValidFormat(format) {
		return errors.NewInvalidFormatError(format)
	}
	return nil
}

// Convert decodes raw bytes into the format selected by opts. The blob
// format tags the result with mimeType; text and json honor opts.Encoding.
func Convert(raw []byte, mimeType string, opts *domain.Options) (any, error) {
	o := opts.Normalized()

	switch o.Format {
	case domain.FormatText:
		return DecodeText(raw, o.Encoding)

	case domain.FormatJSON:
		text, err := DecodeText(raw, o.Encoding)
		if err != nil {
			return nil, err
		}
		var value any
		if err := json.Unmarshal([]byte(text), &value); err != nil {
			return nil, errors.NewParseError(Preview(text), err)
		}
		return value, nil

	case domain.FormatBinary:
		return raw, nil

	case domain.FormatArrayBuffer:
		return bytes.NewBuffer(bytes.Clone(raw)), nil

	case domain.FormatBlob:
		if mimeType == "" {
			mimeType = "application/octet-stream"
		}
		return domain.NewBlob(bytes.Clone(raw), mimeType), nil

	default:
		return nil, errors.NewInvalidFormatError(o.Format)
	}
}

// Preview collapses whitespace runs to single spaces and truncates the
// result to a bounded excerpt, appending an ellipsis marker when cut.
func Preview(text string) string {
	collapsed := whitespaceRuns.ReplaceAllString(text, " ")
	runes := []rune(collapsed)
	if len(runes) <= previewLimit {
		return collapsed
	}
	return string(runes[:previewLimit]) + "..."
}

// IsBinaryEncoding reports whether the encoding name selects raw byte
// semantics rather than character decoding.
func IsBinaryEncoding(name string) bool {
	return canonicalEncoding(name) == "binary"
}

func canonicalEncoding(name string) string {
	return strings.ReplaceAll(strings.ReplaceAll(strings.ToLower(name), "-", ""), "_", "")
}

// DecodeText decodes raw bytes into a string using the named character
// encoding. The full buffer is always decoded.
func DecodeText(raw []byte, encodingName string) (string, error) {
	switch canonicalEncoding(encodingName) {
	case "", "utf8":
		return string(raw), nil
	case "binary", "latin1":
		decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
		if err != nil {
			return "", fmt.Errorf("failed to decode latin1 text: %w", err)
		}
		return string(decoded), nil
	default:
		enc, err := htmlindex.Get(encodingName)
		if err != nil {
			return "", errors.NewConfigurationError(
				"encoding",
				encodingName,
				fmt.Sprintf("unknown character encoding %q", encodingName),
				err,
			)
		}
		decoded, err := enc.NewDecoder().Bytes(raw)
		if err != nil {
			return "", fmt.Errorf("failed to decode %s text: %w", encodingName, err)
		}
		return string(decoded), nil
	}
}

// EncodeText encodes a string into bytes using the named character encoding.
func EncodeText(text, encodingName string) ([]byte, error) {
	switch canonicalEncoding(encodingName) {
	case "", "utf8":
		return []byte(text), nil
	case "binary", "latin1":
		encoded, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(text))
		if err != nil {
			return nil, fmt.Errorf("failed to encode latin1 text: %w", err)
		}
		return encoded, nil
	default:
		enc, err := htmlindex.Get(encodingName)
		if err != nil {
			return nil, errors.NewConfigurationError(
				"encoding",
				encodingName,
				fmt.Sprintf("unknown character encoding %q", encodingName),
				err,
			)
		}
		encoded, err := enc.NewEncoder().Bytes([]byte(text))
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s text: %w", encodingName, err)
		}
		return encoded, nil
	}
}

// NormalizeData flattens a write payload into bytes. Byte slices pass
// through unchanged; strings are encoded per encodingName; buffers are
// unwrapped; blob-like payloads are read through their byte or text
// accessor depending on whether the encoding selects binary semantics.
func NormalizeData(data any, encodingName string) ([]byte, error) {
	switch v := data.(type) {
	case []byte:
		return v, nil
	case string:
		return EncodeText(v, encodingName)
	case *bytes.Buffer:
		return v.Bytes(), nil
	case domain.BlobLike:
		if IsBinaryEncoding(encodingName) {
			return v.Bytes(), nil
		}
		return EncodeText(v.Text(), encodingName)
	default:
		return nil, errors.NewUnsupportedDataError(data)
	}
}
