package types

// SummarizeRequest is the inbound body of POST /api/summarize. URL is decoded
// untyped so a missing field and a non-string value can both be rejected with
// the same client error.
type SummarizeRequest struct {
	URL any `json:"url"`
}

// SummarizeResult is what the pipeline hands back on success. Content is the
// full extracted body, not the capped copy the document store receives.
type SummarizeResult struct {
	Title       string
	Content     string
	Summary     string
	UrduSummary string
}

type SummarizeResponse struct {
	Success     bool   `json:"success"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	Summary     string `json:"summary"`
	UrduSummary string `json:"urduSummary"`
}

// ErrorResponse is the uniform failure body. Details is only set for fetch
// timeouts.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
