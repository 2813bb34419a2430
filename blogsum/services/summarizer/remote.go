package summarizer

import (
	"context"
	"strings"

	httputils "blogsum/blogsum/utils/http"
	"blogsum/blogsum/utils/logging"

	"go.uber.org/zap"
)

const (
	maxPromptRunes = 4000
	systemPrompt   = "You are a concise assistant that summarizes blog posts."
	userPrompt     = "Summarize the following blog post in 3-4 sentences. " +
		"Do not begin with introductory phrases such as \"This article\" or \"The blog post\". " +
		"Respond with the summary text only.\n\n"
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Remote delegates summarization to an OpenAI-compatible chat completion
// endpoint. Failures are swallowed here: the pipeline always gets a value.
type Remote struct {
	endpoint string
	apiKey   string
	model    string
}

func NewRemote(endpoint, apiKey, model string) *Remote {
	return &Remote{endpoint: endpoint, apiKey: apiKey, model: model}
}

func (r *Remote) Summarize(ctx context.Context, text string) string {
	defer logging.LogDuration(ctx, "remote_summarize")()

	req := chatRequest{
		Model: r.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt + headRunes(text, maxPromptRunes)},
		},
		Temperature: 0.7,
	}

	var resp chatResponse
	if err := httputils.PostJSONWithAuth(ctx, r.endpoint, r.apiKey, req, &resp); err != nil {
		logging.ErrorLogger.Error("remote summary request failed", zap.Error(err))
		return Unavailable
	}
	if len(resp.Choices) == 0 {
		logging.ErrorLogger.Error("remote summary returned no choices")
		return Unavailable
	}

	summary := strings.TrimSpace(resp.Choices[0].Message.Content)
	if summary == "" {
		return Unavailable
	}
	return summary
}
