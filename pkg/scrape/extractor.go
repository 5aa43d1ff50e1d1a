// Package scrape downloads news pages and turns them into plain text fit
// for an LLM prompt.
package scrape

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// Known article-body containers, tried in order. Korean news portals vary
// in markup, so the list covers the common ones before falling back to a
// paragraph heuristic.
var bodySelectors = []string{
	"div#articleBodyContents",
	"article#dic_area",
	"div#dic_area",
	"div.article_body",
}

// Paragraphs at or below this rune count are treated as boilerplate
// (nav links, captions) by the fallback path.
const minParagraphRunes = 50

const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// ExtractionError reports a page that yielded no usable article text.
type ExtractionError struct {
	URL string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("본문 추출 실패: %s", e.URL)
}

type Extractor struct {
	httpClient *http.Client
}

func NewExtractor() *Extractor {
	return &Extractor{
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

// Extract fetches the page and returns its article body text. Some news
// hosts block non-browser clients, so the request carries a browser
// User-Agent.
func (e *Extractor) Extract(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("article request: %w", err)
	}
	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("article fetch %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("article fetch %s: unexpected status %d", pageURL, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("article parse %s: %w", pageURL, err)
	}

	for _, selector := range bodySelectors {
		node := doc.Find(selector).First()
		if node.Length() == 0 {
			continue
		}
		node.Find("script, .ad_banner, .advertisement").Remove()
		if text := normalizeSpacing(node.Text()); text != "" {
			return text, nil
		}
	}

	var paragraphs []string
	doc.Find("p").Each(func(_ int, p *goquery.Selection) {
		text := strings.TrimSpace(p.Text())
		if utf8.RuneCountInString(text) > minParagraphRunes {
			paragraphs = append(paragraphs, text)
		}
	})
	if len(paragraphs) > 0 {
		return strings.Join(paragraphs, "\n"), nil
	}

	return "", &ExtractionError{URL: pageURL}
}

// normalizeSpacing collapses all runs of whitespace into single spaces.
func normalizeSpacing(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
