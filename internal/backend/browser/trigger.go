package browser

import (
	"context"

	"filebridge/internal/domain"
)

// TriggerFunc adapts a plain function into a DownloadTrigger. The function
// runs in its own goroutine; its return value becomes the acknowledgment.
type TriggerFunc func(ctx context.Context, res *domain.DownloadResource) error

// Begin implements domain.DownloadTrigger.
func (f TriggerFunc) Begin(ctx context.Context, res *domain.DownloadResource) (<-chan error, error) {
	ack := make(chan error, 1)
	go func() {
		ack <- f(ctx, res)
	}()
	return ack, nil
}
