package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DocumentFetcher reads a published catalog document by name.
type DocumentFetcher interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
}

// maxDocumentSize bounds how much of a catalog document is read.
const maxDocumentSize = 16 << 20

// Fetcher reads documents relative to BaseURL, which is either an http(s) URL or a
// local directory. HTTP requests always bypass caches.
type Fetcher struct {
	BaseURL string
	Client  *http.Client
}

// NewFetcher returns a Fetcher whose HTTP requests give up after timeout.
func NewFetcher(baseURL string, timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Fetcher{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: timeout},
	}
}

func (f *Fetcher) isRemote() bool {
	return strings.HasPrefix(f.BaseURL, "http://") || strings.HasPrefix(f.BaseURL, "https://")
}

func (f *Fetcher) Fetch(ctx context.Context, name string) ([]byte, error) {
	if f.isRemote() {
		return f.fetchHTTP(ctx, name)
	}
	return f.fetchFile(name)
}

func (f *Fetcher) fetchHTTP(ctx context.Context, name string) ([]byte, error) {
	url := strings.TrimRight(f.BaseURL, "/") + "/" + strings.TrimLeft(name, "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, loadError(name, ErrUnreachable, err)
	}
	req.Header.Set("Cache-Control", "no-cache, no-store")
	req.Header.Set("Pragma", "no-cache")
	req.Header.Set("Accept", "application/json")

	res, err := f.Client.Do(req)
	if err != nil {
		return nil, loadError(name, ErrUnreachable, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &LoadError{Resource: name, Reason: ErrBadStatus, Status: res.StatusCode, Err: fmt.Errorf("%s", res.Status)}
	}
	body, err := io.ReadAll(io.LimitReader(res.Body, maxDocumentSize))
	if err != nil {
		return nil, loadError(name, ErrUnreachable, err)
	}
	return body, nil
}

func (f *Fetcher) fetchFile(name string) ([]byte, error) {
	path := filepath.Join(f.BaseURL, filepath.FromSlash(name))
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, loadError(name, ErrUnreachable, err)
	}
	return body, nil
}
