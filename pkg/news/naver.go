package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const naverSearchURL = "https://openapi.naver.com/v1/search/news.json"

type NaverClient struct {
	clientID     string
	clientSecret string
	httpClient   *http.Client
}

func NewNaverClient(clientID, clientSecret string) *NaverClient {
	return &NaverClient{
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient:   &http.Client{Timeout: 5 * time.Second},
	}
}

func (c *NaverClient) Name() string {
	return "Naver"
}

// Search returns at most limit links for the keyword, most recent first.
func (c *NaverClient) Search(ctx context.Context, keyword string, limit int) ([]Link, error) {
	params := url.Values{}
	params.Set("query", keyword)
	params.Set("display", fmt.Sprintf("%d", limit))
	params.Set("start", "1")
	params.Set("sort", "date")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, naverSearchURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("naver request: %w", err)
	}
	req.Header.Set("X-Naver-Client-Id", c.clientID)
	req.Header.Set("X-Naver-Client-Secret", c.clientSecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("naver search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("naver search: unexpected status %d", resp.StatusCode)
	}

	var raw naverResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("naver decode: %w", err)
	}

	if len(raw.Items) == 0 {
		return nil, ErrNoResults
	}

	items := raw.Items
	if len(items) > limit {
		items = items[:limit]
	}

	links := make([]Link, 0, len(items))
	for _, item := range items {
		links = append(links, Link{
			Title: item.Title,
			URL:   item.Link,
		})
	}

	return links, nil
}

type naverResponse struct {
	Total int         `json:"total"`
	Items []naverItem `json:"items"`
}

type naverItem struct {
	Title        string `json:"title"`
	OriginalLink string `json:"originallink"`
	Link         string `json:"link"`
	Description  string `json:"description"`
	PubDate      string `json:"pubDate"`
}
