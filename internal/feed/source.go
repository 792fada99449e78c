package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
)

// HTTPClient interface for making HTTP requests (allows injection for testing).
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// SourceOption configures the Source.
type SourceOption func(*Source)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient HTTPClient) SourceOption {
	return func(s *Source) {
		s.httpClient = httpClient
	}
}

// Source obtains raw feed bytes from either a remote URL or a local file.
// Exactly one of url and path is set; config validation guarantees this
// before a Source is constructed.
type Source struct {
	url        string
	path       string
	httpClient HTTPClient
}

// NewURLSource creates a Source that fetches the feed over HTTP.
func NewURLSource(url string, opts ...SourceOption) *Source {
	s := &Source{
		url:        url,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewFileSource creates a Source that reads the feed from a local file.
func NewFileSource(path string) *Source {
	return &Source{path: path}
}

// Location returns the URL or path the source reads from.
func (s *Source) Location() string {
	if s.url != "" {
		return s.url
	}
	return s.path
}

// Fetch retrieves the raw feed content. A single attempt, no retries, no
// caching; the HTTP client's default timeout applies. Failures are returned
// as *FetchError.
func (s *Source) Fetch(ctx context.Context) ([]byte, error) {
	if s.url != "" {
		return s.fetchURL(ctx)
	}
	return s.fetchFile()
}

func (s *Source) fetchURL(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, &FetchError{Source: s.url, Err: err}
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Source: s.url, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{Source: s.url, Err: fmt.Errorf("HTTP %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Source: s.url, Err: err}
	}
	return body, nil
}

func (s *Source) fetchFile() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, &FetchError{Source: s.path, Err: err}
	}
	return data, nil
}
