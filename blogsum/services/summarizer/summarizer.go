package summarizer

import "context"

// Unavailable is returned by the remote strategy whenever the model call
// degrades; the pipeline carries on with it as the summary.
const Unavailable = "Summary not available"

// Summarizer reduces body text to a short summary. Implementations are total:
// they always return a value and never abort the pipeline.
type Summarizer interface {
	Summarize(ctx context.Context, text string) string
}
