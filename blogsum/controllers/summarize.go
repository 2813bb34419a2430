// blogsum/controllers/summarize.go
package controllers

import (
	"context"
	"strings"
	"time"

	"blogsum/blogsum/services/extractor"
	"blogsum/blogsum/services/fetcher"
	"blogsum/blogsum/services/summarizer"
	"blogsum/blogsum/services/translator"
	"blogsum/blogsum/sources/mongodb"
	"blogsum/blogsum/sources/psql/dao"
	"blogsum/blogsum/sources/psql/models"
	"blogsum/blogsum/utils/logging"
	"blogsum/blogsum/utils/types"

	"go.uber.org/zap"
)

// ValidationError rejects input before any collaborator is invoked.
type ValidationError struct{}

func (e *ValidationError) Error() string {
	return "Invalid URL provided"
}

// SummarizeController runs the whole pipeline for one request:
// fetch -> extract -> summarize -> translate -> persist. Only fetch and
// extract can fail it; the summarizer and translator are total, and both
// store writes are best effort.
type SummarizeController struct {
	fetcher    *fetcher.Fetcher
	extractor  *extractor.Extractor
	summarizer summarizer.Summarizer
	translator *translator.Translator
	blogs      *mongodb.Client // nil when the document store is not configured
	summaries  *dao.SummaryDAO // nil when the row store is not configured
	contentCap int
}

func NewSummarizeController(
	f *fetcher.Fetcher,
	e *extractor.Extractor,
	s summarizer.Summarizer,
	t *translator.Translator,
	blogs *mongodb.Client,
	summaries *dao.SummaryDAO,
	contentCap int,
) *SummarizeController {
	if contentCap <= 0 {
		contentCap = 15000
	}
	return &SummarizeController{
		fetcher:    f,
		extractor:  e,
		summarizer: s,
		translator: t,
		blogs:      blogs,
		summaries:  summaries,
		contentCap: contentCap,
	}
}

func (c *SummarizeController) Summarize(ctx context.Context, rawURL string) (*types.SummarizeResult, error) {
	defer logging.LogDuration(ctx, "summarize_pipeline")()

	if rawURL == "" || !strings.HasPrefix(strings.ToLower(rawURL), "http") {
		return nil, &ValidationError{}
	}

	html, err := c.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	doc, err := c.extractor.Extract(html)
	if err != nil {
		return nil, err
	}

	summary := c.summarizer.Summarize(ctx, doc.Body)
	urduSummary := c.translator.Translate(ctx, summary)

	c.persist(ctx, rawURL, doc.Title, doc.Body, summary, urduSummary)

	logging.AppLogger.Info("blog summarized",
		zap.String("url", rawURL),
		zap.String("title", doc.Title),
	)

	return &types.SummarizeResult{
		Title:       doc.Title,
		Content:     doc.Body,
		Summary:     summary,
		UrduSummary: urduSummary,
	}, nil
}

// persist fans the result out to both stores. The writes are independent:
// either may fail without affecting the other or the response, and a skipped
// store (nil handle) is not an error.
func (c *SummarizeController) persist(ctx context.Context, url, title, content, summary, urduSummary string) {
	if c.blogs != nil {
		doc := mongodb.BlogDocument{
			URL:       url,
			Title:     title,
			Content:   headRunes(content, c.contentCap),
			CreatedAt: time.Now(),
		}
		if err := c.blogs.SaveBlog(ctx, doc); err != nil {
			logging.ErrorLogger.Error("mongo write failed", zap.String("url", url), zap.Error(err))
		}
	}

	if c.summaries != nil {
		row := &models.Summary{
			URL:            url,
			Title:          title,
			EnglishSummary: summary,
			UrduSummary:    urduSummary,
			CreatedAt:      time.Now(),
		}
		if err := c.summaries.CreateSummary(ctx, row); err != nil {
			logging.ErrorLogger.Error("row store write failed", zap.String("url", url), zap.Error(err))
		}
	}
}

func headRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
