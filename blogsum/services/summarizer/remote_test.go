package summarizer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"unicode/utf8"

	"blogsum/blogsum/utils/logging"
)

func TestMain(m *testing.M) {
	logging.InitLogger()
	os.Exit(m.Run())
}

func TestRemoteSummarizeReturnsTrimmedContent(t *testing.T) {
	var gotReq chatRequest
	var gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotReq)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"  A tight summary.  "}}]}`))
	}))
	defer ts.Close()

	remote := NewRemote(ts.URL, "test-key", "test-model")
	got := remote.Summarize(context.Background(), "Body text of the post.")

	if got != "A tight summary." {
		t.Fatalf("unexpected summary: %q", got)
	}
	if gotAuth != "Bearer test-key" {
		t.Fatalf("unexpected auth header: %q", gotAuth)
	}
	if gotReq.Model != "test-model" {
		t.Fatalf("unexpected model: %q", gotReq.Model)
	}
	if gotReq.Temperature != 0.7 {
		t.Fatalf("unexpected temperature: %v", gotReq.Temperature)
	}
	if len(gotReq.Messages) != 2 || gotReq.Messages[0].Role != "system" {
		t.Fatalf("unexpected messages: %+v", gotReq.Messages)
	}
	if !strings.Contains(gotReq.Messages[1].Content, "Body text of the post.") {
		t.Fatalf("user message missing the input text: %q", gotReq.Messages[1].Content)
	}
}

func TestRemoteSummarizeTruncatesInput(t *testing.T) {
	var gotReq chatRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotReq)
		w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
	}))
	defer ts.Close()

	NewRemote(ts.URL, "k", "m").Summarize(context.Background(), strings.Repeat("x", 6000))

	embedded := strings.TrimPrefix(gotReq.Messages[1].Content, userPrompt)
	if utf8.RuneCountInString(embedded) != maxPromptRunes {
		t.Fatalf("expected %d runes of input, got %d", maxPromptRunes, utf8.RuneCountInString(embedded))
	}
}

func TestRemoteSummarizeNeverErrors(t *testing.T) {
	cases := map[string]http.HandlerFunc{
		"server error": func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		},
		"no choices": func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"choices":[]}`))
		},
		"empty content": func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"choices":[{"message":{"content":"   "}}]}`))
		},
		"not json": func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<html>gateway</html>`))
		},
	}

	for name, handler := range cases {
		ts := httptest.NewServer(handler)
		got := NewRemote(ts.URL, "k", "m").Summarize(context.Background(), "text")
		ts.Close()
		if got != Unavailable {
			t.Errorf("%s: expected sentinel, got %q", name, got)
		}
	}
}
