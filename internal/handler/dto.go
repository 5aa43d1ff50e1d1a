package handler

type NewsTrendRequest struct {
	Keyword string `json:"keyword"`
}

type TrendArticleResponse struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Summary string `json:"summary"`
}

type NewsTrendResponse struct {
	Keyword       string                 `json:"keyword"`
	Purpose       string                 `json:"purpose"`
	TrendDigest   string                 `json:"trend_digest"`
	TrendArticles []TrendArticleResponse `json:"trend_articles"`
}

type PopularKeywordResponse struct {
	Keyword   string `json:"keyword"`
	NewsCount int    `json:"news_count"`
}

type TTSRequest struct {
	Text string `json:"text"`
}

type STTResponse struct {
	Text string `json:"text"`
}
