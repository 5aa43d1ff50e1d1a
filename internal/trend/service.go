// Package trend runs the keyword → search → extract → summarize → digest
// pipeline for one request.
package trend

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jinhansol/news-summary-porject/internal/model"
	"github.com/jinhansol/news-summary-porject/internal/purpose"
	"github.com/jinhansol/news-summary-porject/pkg/llm"
	"github.com/jinhansol/news-summary-porject/pkg/news"
	"github.com/jinhansol/news-summary-porject/pkg/scrape"
)

const (
	maxArticles   = 3
	articleLocale = "KR"
)

type Extractor interface {
	Extract(ctx context.Context, url string) (string, error)
}

type Service struct {
	searcher   news.SearchClient
	extractor  Extractor
	summarizer llm.Summarizer
}

func NewService(searcher news.SearchClient, extractor Extractor, summarizer llm.Summarizer) *Service {
	return &Service{
		searcher:   searcher,
		extractor:  extractor,
		summarizer: summarizer,
	}
}

// Report builds the trend report for a keyword. Articles are fetched and
// summarized concurrently; results are written by index so the report keeps
// the search provider's ordering. The first failing article aborts the
// whole request, and the digest runs only after every summary is in.
func (s *Service) Report(ctx context.Context, keyword string) (*model.TrendReport, error) {
	p := purpose.Classify(keyword)

	links, err := s.searcher.Search(ctx, keyword, maxArticles)
	if err != nil {
		return nil, err
	}

	summaries := make([]string, len(links))
	articles := make([]model.ArticleSummary, len(links))

	g, gctx := errgroup.WithContext(ctx)
	for i, link := range links {
		i, link := i, link
		g.Go(func() error {
			text, err := s.extractor.Extract(gctx, link.URL)
			if err != nil {
				return err
			}

			summary, err := s.summarizer.Summarize(gctx, p, scrape.Clean(text, articleLocale))
			if err != nil {
				return err
			}

			summaries[i] = summary
			articles[i] = model.ArticleSummary{
				Title:   link.Title,
				URL:     link.URL,
				Summary: summary,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	digest, err := s.summarizer.SynthesizeTrend(ctx, p, summaries)
	if err != nil {
		return nil, err
	}

	return &model.TrendReport{
		Keyword:  keyword,
		Purpose:  p,
		Digest:   digest,
		Articles: articles,
	}, nil
}
