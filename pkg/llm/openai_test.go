package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
	"github.com/openai/openai-go/option"
)

type chatRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
	Temperature float64 `json:"temperature"`
}

// newEchoServer answers every chat completion with the prompt it received.
func newEchoServer(t *testing.T, requests *[]chatRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var req chatRequest
		if err := json.Unmarshal(body, &req); err != nil {
			t.Errorf("invalid chat request body: %v", err)
		}
		*requests = append(*requests, req)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":     "chatcmpl-test",
			"object": "chat.completion",
			"model":  req.Model,
			"choices": []map[string]interface{}{
				{
					"index":         0,
					"finish_reason": "stop",
					"message": map[string]interface{}{
						"role":    "assistant",
						"content": "요약: " + req.Messages[0].Content,
					},
				},
			},
		})
	}))
}

func newTestClient(srvURL string) *OpenAIClient {
	return NewOpenAIClient("test-key",
		option.WithBaseURL(srvURL+"/v1/"),
		option.WithMaxRetries(0),
	)
}

func TestSummarizeEmbedsPurposeAndArticle(t *testing.T) {
	var requests []chatRequest
	srv := newEchoServer(t, &requests)
	defer srv.Close()

	client := newTestClient(srv.URL)
	summary, err := client.Summarize(context.Background(), "가상자산 뉴스 요약", "비트코인이 올랐다.")

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(requests))
	assert.Equal(t, "gpt-4o", requests[0].Model)
	assert.Equal(t, 0.7, requests[0].Temperature)

	prompt := requests[0].Messages[0].Content
	if !strings.Contains(prompt, "가상자산 뉴스 요약") {
		t.Errorf("prompt missing purpose: %q", prompt)
	}
	if !strings.Contains(prompt, "비트코인이 올랐다.") {
		t.Errorf("prompt missing article text: %q", prompt)
	}
	if summary == "" {
		t.Error("empty summary")
	}
}

func TestSynthesizeTrendJoinsSummariesInOrder(t *testing.T) {
	var requests []chatRequest
	srv := newEchoServer(t, &requests)
	defer srv.Close()

	client := newTestClient(srv.URL)
	digest, err := client.SynthesizeTrend(context.Background(), "주식 시장 트렌드 요약",
		[]string{"첫 요약", "둘째 요약", "셋째 요약"})

	assert.Equal(t, nil, err)
	if digest == "" {
		t.Error("empty digest")
	}

	prompt := requests[0].Messages[0].Content
	if !strings.Contains(prompt, "첫 요약\n둘째 요약\n셋째 요약") {
		t.Errorf("summaries not newline-joined in order: %q", prompt)
	}
	if !strings.Contains(prompt, "3~5줄") {
		t.Errorf("trend prompt missing length instruction: %q", prompt)
	}
}

func TestCompleteEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"choices": []interface{}{},
		})
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.Summarize(context.Background(), "목적", "본문")

	assert.NotEqual(t, nil, err)
}

func TestCompleteProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.Summarize(context.Background(), "목적", "본문")

	assert.NotEqual(t, nil, err)
}
