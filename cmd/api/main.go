package main

import (
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/jinhansol/news-summary-porject/internal/handler"
	"github.com/jinhansol/news-summary-porject/internal/trend"
	"github.com/jinhansol/news-summary-porject/pkg/llm"
	"github.com/jinhansol/news-summary-porject/pkg/news"
	"github.com/jinhansol/news-summary-porject/pkg/scrape"
	"github.com/jinhansol/news-summary-porject/pkg/voice"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	openAIKey := os.Getenv("OPENAI_API_KEY")
	naverID := os.Getenv("NAVER_CLIENT_ID")
	naverSecret := os.Getenv("NAVER_CLIENT_SECRET")
	if openAIKey == "" || naverID == "" || naverSecret == "" {
		log.Fatal("OPENAI_API_KEY, NAVER_CLIENT_ID and NAVER_CLIENT_SECRET must all be set")
	}

	searcher := news.NewNaverClient(naverID, naverSecret)
	extractor := scrape.NewExtractor()
	summarizer := llm.NewOpenAIClient(openAIKey)
	speech := voice.NewOpenAIVoice(openAIKey)

	trendService := trend.NewService(searcher, extractor, summarizer)
	trendHandler := handler.NewTrendHandler(trendService)
	voiceHandler := handler.NewVoiceHandler(speech)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}
	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	r.POST("/news_trend/", trendHandler.GetNewsTrend)
	r.GET("/popular_keywords", trendHandler.GetPopularKeywords)
	r.GET("/popular_keywords/", trendHandler.GetPopularKeywords)
	r.POST("/generate-tts/", voiceHandler.GenerateTTS)
	r.POST("/generate-stt/", voiceHandler.GenerateSTT)
	r.GET("/health", trendHandler.GetHealth)

	// Built frontend: static assets plus the SPA entry document for every
	// unmatched route, so client-side routing keeps working on reload.
	frontendDir := os.Getenv("FRONTEND_DIR")
	if frontendDir == "" {
		frontendDir = filepath.Join("..", "frontend", "build")
	}
	r.Static("/static", filepath.Join(frontendDir, "static"))
	r.NoRoute(func(c *gin.Context) {
		c.File(filepath.Join(frontendDir, "index.html"))
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
