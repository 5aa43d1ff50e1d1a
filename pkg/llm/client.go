package llm

import "context"

// Summarizer is the two-stage summarization pipeline: per-article summaries
// first, then one trend digest over the collected summaries.
type Summarizer interface {
	Summarize(ctx context.Context, purpose, article string) (string, error)
	SynthesizeTrend(ctx context.Context, purpose string, summaries []string) (string, error)
}
