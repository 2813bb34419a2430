package extractor

import (
	"errors"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// ErrNoContent means the page yielded no readable text after trimming.
var ErrNoContent = errors.New("no readable content found on the page")

const fallbackTitle = "Untitled Blog Post"

// Document is the readable slice of a fetched page.
type Document struct {
	Title string
	Body  string
}

// Extractor turns raw HTML into a title and a plain-text body. Paragraph text
// is preferred; pages without paragraph elements fall back to a capped
// whole-page text walk.
type Extractor struct {
	fallbackChars int
}

func New(fallbackChars int) *Extractor {
	if fallbackChars <= 0 {
		fallbackChars = 5000
	}
	return &Extractor{fallbackChars: fallbackChars}
}

func (e *Extractor) Extract(htmlSrc string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlSrc))
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = fallbackTitle
	}

	var paragraphs []string
	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		paragraphs = append(paragraphs, s.Text())
	})

	body := strings.Join(paragraphs, "\n\n")
	if len(paragraphs) == 0 {
		body = headRunes(PageText(htmlSrc), e.fallbackChars)
	}
	if strings.TrimSpace(body) == "" {
		return nil, ErrNoContent
	}

	return &Document{Title: title, Body: body}, nil
}

// PageText walks the whole document and concatenates its text nodes,
// skipping script, style and noscript subtrees.
func PageText(htmlSrc string) string {
	root, err := html.Parse(strings.NewReader(htmlSrc))
	if err != nil {
		return ""
	}

	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style" || n.Data == "noscript") {
			return
		}
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				sb.WriteString(text + " ")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	return strings.TrimSpace(sb.String())
}

func headRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
