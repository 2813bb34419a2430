package summarizer

import (
	"context"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// A sentence is the run of characters up to and including its terminator.
var sentenceExpr = regexp.MustCompile(`[^.!?]+[.!?]+`)

const (
	minSentenceRunes = 30
	maxSentences     = 3
	rawFallbackRunes = 200
)

// Heuristic scores sentences by length and keeps the longest few. It is a
// pure function of its input, which is what makes the pipeline testable
// without any network dependency.
type Heuristic struct{}

func NewHeuristic() *Heuristic {
	return &Heuristic{}
}

func (h *Heuristic) Summarize(_ context.Context, text string) string {
	sentences := sentenceExpr.FindAllString(text, -1)
	if len(sentences) == 0 {
		return headRunes(text, rawFallbackRunes)
	}

	var kept []string
	for _, s := range sentences {
		if utf8.RuneCountInString(s) > minSentenceRunes {
			kept = append(kept, s)
		}
	}

	// longest first; stable keeps document order for equal lengths
	sort.SliceStable(kept, func(i, j int) bool {
		return utf8.RuneCountInString(kept[i]) > utf8.RuneCountInString(kept[j])
	})
	if len(kept) > maxSentences {
		kept = kept[:maxSentences]
	}

	summary := strings.Join(kept, " ")
	if summary == "" {
		return headRunes(text, rawFallbackRunes)
	}
	return summary
}

func headRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
