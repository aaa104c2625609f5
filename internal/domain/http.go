package domain

import (
	"context"
	"net/http"
)

// HTTPAdapter defines the interface for HTTP operations.
type HTTPAdapter interface {
	Get(ctx context.Context, url string) (*http.Response, error)
	Head(ctx context.Context, url string) (*http.Response, error)
}
