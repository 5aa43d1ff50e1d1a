package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jinhansol/news-summary-porject/internal/model"
	"github.com/jinhansol/news-summary-porject/pkg/news"
	"github.com/jinhansol/news-summary-porject/pkg/scrape"
)

type TrendService interface {
	Report(ctx context.Context, keyword string) (*model.TrendReport, error)
}

type TrendHandler struct {
	service TrendService
}

func NewTrendHandler(service TrendService) *TrendHandler {
	return &TrendHandler{service: service}
}

// Placeholder data: the frontend's popular-keyword widget is not backed by
// any live source.
var popularKeywords = []model.PopularKeyword{
	{Keyword: "코인", NewsCount: 120},
	{Keyword: "부동산", NewsCount: 95},
	{Keyword: "아파트", NewsCount: 80},
	{Keyword: "AI", NewsCount: 60},
	{Keyword: "테슬라", NewsCount: 35},
}

func (h *TrendHandler) GetNewsTrend(c *gin.Context) {
	var req NewsTrendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "잘못된 요청 형식입니다."})
		return
	}

	if strings.TrimSpace(req.Keyword) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "검색 키워드가 없습니다."})
		return
	}

	report, err := h.service.Report(c.Request.Context(), req.Keyword)
	if err != nil {
		h.writeTrendError(c, req.Keyword, err)
		return
	}

	articles := make([]TrendArticleResponse, 0, len(report.Articles))
	for _, a := range report.Articles {
		articles = append(articles, TrendArticleResponse{
			Title:   a.Title,
			URL:     a.URL,
			Summary: a.Summary,
		})
	}

	c.JSON(http.StatusOK, NewsTrendResponse{
		Keyword:       report.Keyword,
		Purpose:       report.Purpose,
		TrendDigest:   report.Digest,
		TrendArticles: articles,
	})
}

func (h *TrendHandler) writeTrendError(c *gin.Context, keyword string, err error) {
	if errors.Is(err, news.ErrNoResults) {
		c.JSON(http.StatusNotFound, gin.H{"error": "관련 뉴스 기사를 찾을 수 없습니다."})
		return
	}

	var exErr *scrape.ExtractionError
	if errors.As(err, &exErr) {
		slog.Error("article extraction failed", "keyword", keyword, "url", exErr.URL)
		c.JSON(http.StatusInternalServerError, gin.H{"error": exErr.Error()})
		return
	}

	slog.Error("error building trend report", "keyword", keyword, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "뉴스 트렌드 생성 중 서버 오류가 발생했습니다."})
}

func (h *TrendHandler) GetPopularKeywords(c *gin.Context) {
	res := make([]PopularKeywordResponse, 0, len(popularKeywords))
	for _, k := range popularKeywords {
		res = append(res, PopularKeywordResponse{
			Keyword:   k.Keyword,
			NewsCount: k.NewsCount,
		})
	}

	c.JSON(http.StatusOK, res)
}

func (h *TrendHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
