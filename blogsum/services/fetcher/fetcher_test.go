package fetcher

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestFetchReturnsBodyAndSendsUserAgent(t *testing.T) {
	t.Parallel()

	var gotUA string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte("<html>hello</html>"))
	}))
	defer ts.Close()

	body, err := New(2*time.Second).Fetch(context.Background(), ts.URL)
	if err != nil {
		t.Fatalf("fetch error: %v", err)
	}
	if body != "<html>hello</html>" {
		t.Fatalf("unexpected body: %q", body)
	}
	if gotUA != "Mozilla/5.0" {
		t.Fatalf("unexpected user agent: %q", gotUA)
	}
}

func TestFetchNonSuccessStatus(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer ts.Close()

	_, err := New(2*time.Second).Fetch(context.Background(), ts.URL)

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected FetchError, got %v", err)
	}
	if fetchErr.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", fetchErr.StatusCode)
	}
	if !strings.Contains(err.Error(), "404") {
		t.Fatalf("error message should carry the status: %q", err.Error())
	}
}

func TestFetchTimeout(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.Write([]byte("late"))
	}))
	defer ts.Close()

	_, err := New(50*time.Millisecond).Fetch(context.Background(), ts.URL)

	var timeoutErr *TimeoutError
	if !errors.As(err, &timeoutErr) {
		t.Fatalf("expected TimeoutError, got %v", err)
	}
}

func TestFetchUnreachableHost(t *testing.T) {
	t.Parallel()

	// closed server: connection refused, not a timeout and not a status error
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	target := ts.URL
	ts.Close()

	_, err := New(2*time.Second).Fetch(context.Background(), target)
	if err == nil {
		t.Fatal("expected an error")
	}
	var timeoutErr *TimeoutError
	var fetchErr *FetchError
	if errors.As(err, &timeoutErr) || errors.As(err, &fetchErr) {
		t.Fatalf("network error should stay generic, got %v", err)
	}
}
