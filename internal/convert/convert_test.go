package convert

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filebridge/internal/domain"
	"filebridge/internal/errors"
)

func TestValidateFormat(t *testing.T) {
	for _, f := range []domain.Format{domain.FormatText, domain.FormatJSON, domain.FormatBinary, domain.FormatArrayBuffer, domain.FormatBlob} {
		assert.NoError(t, ValidateFormat(f), "format %q", f)
	}

	err := ValidateFormat(domain.Format("foobar"))
	require.Error(t, err)
	assert.True(t, errors.IsConfiguration(err))
	for _, name := range []string{"text", "json", "binary", "arrayBuffer", "blob"} {
		assert.Contains(t, err.Error(), name)
	}
}

func TestConvertText(t *testing.T) {
	value, err := Convert([]byte("Hello, World!"), "text/plain", &domain.Options{Format: domain.FormatText})
	require.NoError(t, err)
	assert.Equal(t, "Hello, World!", value)
}

func TestConvertTextLatin1(t *testing.T) {
	// 0xE9 is é in latin1.
	value, err := Convert([]byte{0x63, 0x61, 0x66, 0xE9}, "text/plain", &domain.Options{
		Format:   domain.FormatText,
		Encoding: "latin1",
	})
	require.NoError(t, err)
	assert.Equal(t, "café", value)
}

func TestConvertTextUnknownEncoding(t *testing.T) {
	_, err := Convert([]byte("x"), "text/plain", &domain.Options{
		Format:   domain.FormatText,
		Encoding: "klingon-8",
	})
	require.Error(t, err)
	assert.True(t, errors.IsConfiguration(err))
}

func TestConvertJSON(t *testing.T) {
	value, err := Convert([]byte(`{"a": 1, "b": 2}`), "application/json", &domain.Options{Format: domain.FormatJSON})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": float64(1), "b": float64(2)}, value)
}

func TestConvertJSONMalformed(t *testing.T) {
	_, err := Convert([]byte("{not json at all"), "application/json", &domain.Options{Format: domain.FormatJSON})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid")
	assert.Contains(t, err.Error(), "{not json at all")

	var parseErr *errors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestConvertBinary(t *testing.T) {
	raw := []byte{0x00, 0x01, 0xFF}
	value, err := Convert(raw, "application/octet-stream", &domain.Options{Format: domain.FormatBinary})
	require.NoError(t, err)
	assert.Equal(t, raw, value)
}

func TestConvertArrayBuffer(t *testing.T) {
	raw := []byte("buffer contents")
	value, err := Convert(raw, "text/plain", &domain.Options{Format: domain.FormatArrayBuffer})
	require.NoError(t, err)

	buf, ok := value.(*bytes.Buffer)
	require.True(t, ok)
	assert.Equal(t, raw, buf.Bytes())

	// The container holds its own copy.
	raw[0] = 'X'
	assert.Equal(t, byte('b'), buf.Bytes()[0])
}

func TestConvertBlob(t *testing.T) {
	value, err := Convert([]byte("payload"), "text/csv", &domain.Options{Format: domain.FormatBlob})
	require.NoError(t, err)

	blob, ok := value.(*domain.Blob)
	require.True(t, ok)
	assert.Equal(t, "payload", blob.Text())
	assert.Equal(t, "text/csv", blob.ContentType())
}

func TestConvertBlobDefaultsMIME(t *testing.T) {
	value, err := Convert([]byte("x"), "", &domain.Options{Format: domain.FormatBlob})
	require.NoError(t, err)

	blob, ok := value.(*domain.Blob)
	require.True(t, ok)
	assert.Equal(t, "application/octet-stream", blob.ContentType())
}

func TestPreview(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "short text unchanged",
			input:    "short",
			expected: "short",
		},
		{
			name:     "whitespace collapsed",
			input:    "a\n\t b   c",
			expected: "a b c",
		},
		{
			name:     "long text truncated with ellipsis",
			input:    strings.Repeat("x", 150),
			expected: strings.Repeat("x", 100) + "...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Preview(tt.input))
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	original := "héllo wörld"

	for _, enc := range []string{"utf8", "utf-8", "latin1"} {
		encoded, err := EncodeText(original, enc)
		require.NoError(t, err, "encoding %q", enc)

		decoded, err := DecodeText(encoded, enc)
		require.NoError(t, err, "encoding %q", enc)
		assert.Equal(t, original, decoded, "encoding %q", enc)
	}
}

func TestNormalizeData(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		encoding string
		expected []byte
	}{
		{
			name:     "byte slice passes through",
			data:     []byte{1, 2, 3},
			expected: []byte{1, 2, 3},
		},
		{
			name:     "string encoded as utf8",
			data:     "hello",
			expected: []byte("hello"),
		},
		{
			name:     "buffer unwrapped",
			data:     bytes.NewBufferString("buffered"),
			expected: []byte("buffered"),
		},
		{
			name:     "blob via text accessor",
			data:     domain.NewBlob([]byte("blob text"), "text/plain"),
			expected: []byte("blob text"),
		},
		{
			name:     "blob via byte accessor in binary mode",
			data:     domain.NewBlob([]byte{0xFF, 0x00}, "application/octet-stream"),
			encoding: "binary",
			expected: []byte{0xFF, 0x00},
		},
		{
			name:     "named file payload",
			data:     domain.NewFile([]byte("file text"), "a.txt", "text/plain"),
			expected: []byte("file text"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeData(tt.data, tt.encoding)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNormalizeDataUnsupported(t *testing.T) {
	for _, data := range []any{nil, 42, struct{}{}, map[string]int{}} {
		_, err := NormalizeData(data, "utf8")
		require.Error(t, err, "data %T", data)
		assert.Contains(t, err.Error(), "Unsupported data type")
	}
}
