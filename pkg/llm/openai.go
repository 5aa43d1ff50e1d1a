package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const samplingTemperature = 0.7

type OpenAIClient struct {
	client *openai.Client
	model  openai.ChatModel
}

func NewOpenAIClient(apiKey string, opts ...option.RequestOption) *OpenAIClient {
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	client := openai.NewClient(opts...)
	return &OpenAIClient{
		client: &client,
		model:  openai.ChatModelGPT4o,
	}
}

// Summarize produces a purpose-conditioned summary of one article.
func (c *OpenAIClient) Summarize(ctx context.Context, purpose, article string) (string, error) {
	prompt := fmt.Sprintf(summaryPrompt, purpose, article)
	return c.complete(ctx, prompt)
}

// SynthesizeTrend produces the cross-article trend digest. Summaries are
// joined in the order they were produced.
func (c *OpenAIClient) SynthesizeTrend(ctx context.Context, purpose string, summaries []string) (string, error) {
	prompt := fmt.Sprintf(trendPrompt, purpose, strings.Join(summaries, "\n"))
	return c.complete(ctx, prompt)
}

func (c *OpenAIClient) complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(samplingTemperature),
	})

	if err != nil {
		return "", fmt.Errorf("openai API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from openai")
	}

	return resp.Choices[0].Message.Content, nil
}
