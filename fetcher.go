package githubv2

import (
	"context"
	"io"
	"net/http"

	"github.com/nixon/githubv2/errors"
)

//go:generate go run github.com/matryer/moq@latest -out mocks/fetcher.go -pkg mocks . Fetcher

// Fetcher retrieves the raw response body for a fully qualified request
// URL. The default implementation is HTTPFetcher; swapping it supports
// restricted execution environments and testing.
//
// The returned reader must be closed by the caller.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (io.ReadCloser, error)
}

// HTTPFetcher is the default Fetcher, issuing one GET per call through
// net/http. It applies no retries and no timeout of its own; cancellation
// and deadlines come from the caller's context and the underlying client.
type HTTPFetcher struct {
	client *http.Client
}

// NewHTTPFetcher creates a fetcher backed by the given http.Client.
// Passing nil uses http.DefaultClient.
func NewHTTPFetcher(client *http.Client) *HTTPFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPFetcher{client: client}
}

// Fetch issues a GET for the URL and returns the response body. Non-200
// statuses are drained and reported as coded errors.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidInput, "failed to build request")
	}

	resp, err := f.client.Do(req)
	if err != nil {
		werr := errors.Wrap(err, errors.CodeNetwork, "request failed")
		return nil, errors.WithContext(werr, "url", url)
	}

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
		return nil, newStatusError(resp.StatusCode, url)
	}

	return resp.Body, nil
}
