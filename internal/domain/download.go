package domain

import (
	"context"
	"sync"
)

// DownloadResource is the transient payload handed to a DownloadTrigger: a
// blob bound to a one-time object locator. It must be released before the
// originating write call returns, on every exit path.
type DownloadResource struct {
	ObjectURL string
	Filename  string
	Blob      *Blob

	releaseOnce sync.Once
	cleanup     func()
}

// NewDownloadResource binds a blob to a transient object locator. cleanup
// runs when the resource is released and may be nil.
func NewDownloadResource(objectURL, filename string, blob *Blob, cleanup func()) *DownloadResource {
	return &DownloadResource{
		ObjectURL: objectURL,
		Filename:  filename,
		Blob:      blob,
		cleanup:   cleanup,
	}
}

// Release frees the transient locator. Safe to call multiple times; the
// cleanup runs exactly once.
func (r *DownloadResource) Release() {
	r.releaseOnce.Do(func() {
		if r.cleanup != nil {
			r.cleanup()
		}
	})
}

// DownloadTrigger presents a DownloadResource to the user. It is the
// anchor-click analog for runtimes without a DOM. Begin returns a channel
// that receives exactly one value: nil when the download was acknowledged,
// or the delivery failure.
type DownloadTrigger interface {
	Begin(ctx context.Context, res *DownloadResource) (<-chan error, error)
}
