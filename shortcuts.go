package filebridge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"filebridge/internal/convert"
	"filebridge/internal/errors"
	"filebridge/internal/resolve"
)

// Format-fixed shortcuts. Each pins the format option and delegates to the
// generic dispatch; none carries conversion logic of its own.

// ReadText reads the input decoded as text.
func (c *Client) ReadText(ctx context.Context, input any) (string, error) {
	value, err := c.ReadFile(ctx, input, &Options{Format: FormatText})
	if err != nil {
		return "", err
	}
	text, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("unexpected text result type %T", value)
	}
	return text, nil
}

// ReadJSON reads the input parsed as JSON.
func (c *Client) ReadJSON(ctx context.Context, input any) (any, error) {
	return c.ReadFile(ctx, input, &Options{Format: FormatJSON})
}

// ReadBuffer reads the input as raw bytes.
func (c *Client) ReadBuffer(ctx context.Context, input any) ([]byte, error) {
	value, err := c.ReadFile(ctx, input, &Options{Format: FormatBinary})
	if err != nil {
		return nil, err
	}
	raw, ok := value.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected binary result type %T", value)
	}
	return raw, nil
}

// ReadArrayBuffer reads the input into a fixed byte container.
func (c *Client) ReadArrayBuffer(ctx context.Context, input any) (*bytes.Buffer, error) {
	value, err := c.ReadFile(ctx, input, &Options{Format: FormatArrayBuffer})
	if err != nil {
		return nil, err
	}
	buf, ok := value.(*bytes.Buffer)
	if !ok {
		return nil, fmt.Errorf("unexpected buffer result type %T", value)
	}
	return buf, nil
}

// ReadBlob reads the input as a MIME-tagged blob. A blob-like input passes
// through unchanged.
func (c *Client) ReadBlob(ctx context.Context, input any) (BlobLike, error) {
	value, err := c.ReadFile(ctx, input, &Options{Format: FormatBlob})
	if err != nil {
		return nil, err
	}
	blob, ok := value.(BlobLike)
	if !ok {
		return nil, fmt.Errorf("unexpected blob result type %T", value)
	}
	return blob, nil
}

// WriteText writes a string payload.
func (c *Client) WriteText(ctx context.Context, filename, text string) error {
	_, err := c.WriteFile(ctx, filename, text, nil)
	return err
}

// WriteJSON serializes the value with 2-space indentation and writes it.
func (c *Client) WriteJSON(ctx context.Context, filename string, value any) error {
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return errors.NewOperationError(errors.OpWrite, c.currentStrategy(), filename, err)
	}
	_, err = c.WriteFile(ctx, filename, payload, nil)
	return err
}

// WriteBuffer writes a raw byte payload.
func (c *Client) WriteBuffer(ctx context.Context, filename string, data []byte) error {
	_, err := c.WriteFile(ctx, filename, data, nil)
	return err
}

// WriteBlob writes a blob payload.
func (c *Client) WriteBlob(ctx context.Context, filename string, blob BlobLike) error {
	_, err := c.WriteFile(ctx, filename, blob, nil)
	return err
}

// ReadJSONAs reads the input as JSON decoded into a concrete type.
func ReadJSONAs[T any](ctx context.Context, c *Client, input any) (T, error) {
	var out T
	text, err := c.ReadText(ctx, input)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		parseErr := errors.NewParseError(convert.Preview(text), err)
		return out, errors.NewOperationError(errors.OpRead, c.currentStrategy(), resolve.InputFilename(input), parseErr)
	}
	return out, nil
}
