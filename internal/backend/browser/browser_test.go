package browser

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "filebridge/internal/adapters/http"
	"filebridge/internal/domain"
	"filebridge/internal/errors"
	"filebridge/internal/testutil"
)

// failingHTTP simulates a network-layer failure for every request.
type failingHTTP struct {
	err error
}

func (f *failingHTTP) Get(_ context.Context, _ string) (*http.Response, error) {
	return nil, f.err
}

func (f *failingHTTP) Head(_ context.Context, _ string) (*http.Response, error) {
	return nil, f.err
}

// silentTrigger accepts the download but never acknowledges it.
type silentTrigger struct {
	began chan *domain.DownloadResource
}

func (s *silentTrigger) Begin(_ context.Context, res *domain.DownloadResource) (<-chan error, error) {
	if s.began != nil {
		s.began <- res
	}
	return make(chan error), nil
}

func newRestyAdapter(t *testing.T) domain.HTTPAdapter {
	t.Helper()
	return httpadapter.NewAdapter(5*time.Second, false, testutil.Logger())
}

func TestReadFromURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"ok": true}`)
	}))
	defer server.Close()

	backend := New(newRestyAdapter(t), nil, 0, testutil.Logger())
	value, err := backend.ReadFile(context.Background(), server.URL+"/api/state.json", &domain.Options{Format: domain.FormatJSON})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"ok": true}, value)
}

func TestReadWithDetailsCarriesURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "contents")
	}))
	defer server.Close()

	backend := New(newRestyAdapter(t), nil, 0, testutil.Logger())
	value, err := backend.ReadFile(context.Background(), server.URL+"/files/a.txt", &domain.Options{UseDetails: true})
	require.NoError(t, err)

	envelope, ok := value.(*domain.Envelope)
	require.True(t, ok)
	assert.Equal(t, domain.StrategyBrowser, envelope.Strategy)
	assert.Equal(t, server.URL+"/files/a.txt", envelope.URL)
	assert.Empty(t, envelope.Path, "the browser strategy never resolves local paths")
	assert.Equal(t, "contents", envelope.Data)
}

func TestReadNetworkFailureDoesNotFallBack(t *testing.T) {
	netErr := fmt.Errorf("dial tcp: connection refused")
	backend := New(&failingHTTP{err: netErr}, nil, 0, testutil.Logger())

	_, err := backend.ReadFile(context.Background(), "https://nowhere.invalid/x.txt", nil)
	require.Error(t, err)

	// The original network error propagates, untouched by any path logic.
	assert.Contains(t, err.Error(), "Failed to read file in BrowserFileManager")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestWriteDeliversDownload(t *testing.T) {
	var delivered *domain.DownloadResource
	trigger := TriggerFunc(func(_ context.Context, res *domain.DownloadResource) error {
		delivered = res
		return nil
	})

	backend := New(&failingHTTP{err: fmt.Errorf("unused")}, trigger, 0, testutil.Logger())
	envelope, err := backend.WriteFile(context.Background(), "report.csv", "a,b\n1,2\n", &domain.Options{UseDetails: true})
	require.NoError(t, err)

	require.NotNil(t, delivered)
	assert.Equal(t, "report.csv", delivered.Filename)
	assert.Equal(t, "a,b\n1,2\n", delivered.Blob.Text())
	assert.Equal(t, "text/csv", delivered.Blob.ContentType())
	assert.True(t, strings.HasPrefix(delivered.ObjectURL, "blob:filebridge/"))

	require.NotNil(t, envelope)
	assert.Equal(t, domain.StrategyBrowser, envelope.Strategy)
	assert.Equal(t, delivered.ObjectURL, envelope.URL)
	assert.Equal(t, int64(len("a,b\n1,2\n")), envelope.Size)
	assert.Nil(t, envelope.Data)
}

func TestWriteTimeout(t *testing.T) {
	began := make(chan *domain.DownloadResource, 1)
	backend := New(&failingHTTP{err: fmt.Errorf("unused")}, &silentTrigger{began: began}, 50*time.Millisecond, testutil.Logger())

	start := time.Now()
	_, err := backend.WriteFile(context.Background(), "big.bin", []byte{1, 2, 3}, nil)
	require.Error(t, err)

	assert.Contains(t, err.Error(), "Download timeout")
	assert.True(t, stderrors.Is(err, errors.ErrDownload))
	assert.Less(t, time.Since(start), 5*time.Second)

	// The transient resource is released even on the timeout path.
	res := <-began
	released := make(chan struct{})
	go func() {
		res.Release() // must be a no-op after the backend's own release
		close(released)
	}()
	select {
	case <-released:
	case <-time.After(time.Second):
		t.Fatal("release after timeout blocked")
	}
}

func TestWriteTriggerFailure(t *testing.T) {
	trigger := TriggerFunc(func(_ context.Context, _ *domain.DownloadResource) error {
		return fmt.Errorf("user dismissed the download")
	})

	backend := New(&failingHTTP{err: fmt.Errorf("unused")}, trigger, 0, testutil.Logger())
	_, err := backend.WriteFile(context.Background(), "out.txt", "x", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "download failed")
	assert.Contains(t, err.Error(), "user dismissed the download")
}

func TestWriteWithoutTrigger(t *testing.T) {
	backend := New(&failingHTTP{err: fmt.Errorf("unused")}, nil, 0, testutil.Logger())

	_, err := backend.WriteFile(context.Background(), "out.txt", "x", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to write file in BrowserFileManager")
	assert.Contains(t, err.Error(), "no download trigger registered")
}

func TestWriteContextCancellation(t *testing.T) {
	backend := New(&failingHTTP{err: fmt.Errorf("unused")}, &silentTrigger{}, time.Minute, testutil.Logger())

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := backend.WriteFile(ctx, "out.txt", "x", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "context canceled")
}

func TestExists(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/present.txt" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	backend := New(newRestyAdapter(t), nil, 0, testutil.Logger())
	ctx := context.Background()

	assert.True(t, backend.Exists(ctx, server.URL+"/present.txt"))
	assert.False(t, backend.Exists(ctx, server.URL+"/absent.txt"))
}

func TestExistsSwallowsNetworkErrors(t *testing.T) {
	backend := New(&failingHTTP{err: fmt.Errorf("dial tcp: no route to host")}, nil, 0, testutil.Logger())
	assert.False(t, backend.Exists(context.Background(), "https://nowhere.invalid/x"))
}
