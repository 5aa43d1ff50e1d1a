// Package voice wraps the provider's speech synthesis and transcription
// APIs.
package voice

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// SpeechService converts text to a synthesized audio file and audio bytes
// back to text.
type SpeechService interface {
	Synthesize(ctx context.Context, text string) (string, error)
	Transcribe(ctx context.Context, data []byte, filename string) (string, error)
}

type OpenAIVoice struct {
	client *openai.Client
}

func NewOpenAIVoice(apiKey string, opts ...option.RequestOption) *OpenAIVoice {
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	client := openai.NewClient(opts...)
	return &OpenAIVoice{client: &client}
}

// Synthesize renders text to speech and writes it to a new temporary mp3
// file. The caller owns the file and is responsible for deleting it.
func (v *OpenAIVoice) Synthesize(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("empty text for speech synthesis")
	}

	resp, err := v.client.Audio.Speech.New(ctx, openai.AudioSpeechNewParams{
		Model:          openai.SpeechModelTTS1,
		Voice:          openai.AudioSpeechNewParamsVoiceAlloy,
		Input:          text,
		ResponseFormat: openai.AudioSpeechNewParamsResponseFormatMP3,
	})
	if err != nil {
		return "", fmt.Errorf("failed to synthesize speech: %w", err)
	}
	defer resp.Body.Close()

	out, err := os.CreateTemp("", "tts-*.mp3")
	if err != nil {
		return "", fmt.Errorf("failed to create audio file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		os.Remove(out.Name())
		return "", fmt.Errorf("failed to write audio file: %w", err)
	}

	return out.Name(), nil
}

// Transcribe sends uploaded audio to the speech-to-text model. The filename
// hint is required for the provider to infer the codec.
func (v *OpenAIVoice) Transcribe(ctx context.Context, data []byte, filename string) (string, error) {
	resp, err := v.client.Audio.Transcriptions.New(ctx, openai.AudioTranscriptionNewParams{
		Model: openai.AudioModelWhisper1,
		File:  openai.File(bytes.NewReader(data), filename, "application/octet-stream"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to transcribe audio: %w", err)
	}

	return resp.Text, nil
}
