package handler

import (
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jinhansol/news-summary-porject/pkg/voice"
)

type VoiceHandler struct {
	speech voice.SpeechService
}

func NewVoiceHandler(speech voice.SpeechService) *VoiceHandler {
	return &VoiceHandler{speech: speech}
}

func (h *VoiceHandler) GenerateTTS(c *gin.Context) {
	var req TTSRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "잘못된 요청 형식입니다."})
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "TTS 텍스트가 없습니다."})
		return
	}

	path, err := h.speech.Synthesize(c.Request.Context(), req.Text)
	if err != nil {
		slog.Error("speech synthesis failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "음성 파일 생성 실패"})
		return
	}
	// The synthesized file is request-scoped; delete it once the response
	// bytes are in memory so nothing accumulates in the temp dir.
	defer os.Remove(path)

	audio, err := os.ReadFile(path)
	if err != nil {
		slog.Error("reading synthesized audio failed", "path", path, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "음성 파일 생성 실패"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="response.mp3"`)
	c.Data(http.StatusOK, "audio/mpeg", audio)
}

func (h *VoiceHandler) GenerateSTT(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		slog.Error("missing audio upload", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "STT 처리 중 서버 오류가 발생했습니다."})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		slog.Error("opening audio upload failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "STT 처리 중 서버 오류가 발생했습니다."})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		slog.Error("reading audio upload failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "STT 처리 중 서버 오류가 발생했습니다."})
		return
	}

	text, err := h.speech.Transcribe(c.Request.Context(), data, fileHeader.Filename)
	if err != nil {
		slog.Error("transcription failed", "filename", fileHeader.Filename, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "STT 처리 중 서버 오류가 발생했습니다."})
		return
	}

	c.JSON(http.StatusOK, STTResponse{Text: text})
}
