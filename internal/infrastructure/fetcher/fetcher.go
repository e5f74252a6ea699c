// Package fetcher retrieves raw source image bytes, either from a remote URL
// (bulk ingestion) or from a file already received by the upload endpoint.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"vaulttube/pkg/errors"
)

type Fetcher struct {
	client *http.Client
}

// New takes the process-wide HTTP client; the fetcher never builds its own.
func New(client *http.Client) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &Fetcher{client: client}
}

// FetchURL issues a single GET with no retries. Any transport error or non-2xx
// status is a fetch error carrying the remote status.
func (f *Fetcher) FetchURL(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, errors.ErrFetch(fmt.Sprintf("Invalid image URL %s", rawURL), err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, errors.ErrFetch(fmt.Sprintf("Failed to download image from %s", rawURL), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.ErrFetch(
			fmt.Sprintf("Failed to download image: %s", resp.Status),
			fmt.Errorf("GET %s returned %d", rawURL, resp.StatusCode),
		)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.ErrFetch(fmt.Sprintf("Failed to read image body from %s", rawURL), err)
	}
	return body, nil
}

// FetchFile reads a previously received upload. The source is never mutated or
// removed here; cleanup is the caller's decision.
func (f *Fetcher) FetchFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ErrFetch(fmt.Sprintf("Could not read uploaded file %s", path), err)
	}
	return data, nil
}
