package model

// ArticleSummary pairs a search result with its LLM summary.
type ArticleSummary struct {
	Title   string
	URL     string
	Summary string
}

// TrendReport is the full result of one keyword request. Articles keep the
// search provider's ordering.
type TrendReport struct {
	Keyword  string
	Purpose  string
	Digest   string
	Articles []ArticleSummary
}

type PopularKeyword struct {
	Keyword   string
	NewsCount int
}
