package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// TimeoutError means the page did not come back within the fetch budget.
type TimeoutError struct {
	URL string
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request timed out fetching %s", e.URL)
}

// FetchError carries a non-success HTTP status.
type FetchError struct {
	StatusCode int
	Status     string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("Failed to fetch URL: %s", e.Status)
}

// Fetcher retrieves raw HTML with a hard per-request time budget. One attempt
// only, no retries.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

func New(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Fetcher{
		client:    &http.Client{},
		timeout:   timeout,
		userAgent: "Mozilla/5.0",
	}
}

// Fetch issues a single GET and returns the body as text. A deadline hit maps
// to TimeoutError, a non-2xx status to FetchError; anything else comes back
// wrapped.
func (f *Fetcher) Fetch(ctx context.Context, target string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", &TimeoutError{URL: target}
		}
		return "", fmt.Errorf("request document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &FetchError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", &TimeoutError{URL: target}
		}
		return "", fmt.Errorf("read body: %w", err)
	}
	return string(body), nil
}
