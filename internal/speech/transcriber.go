package speech

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("transcription service not configured")

// Transcriber turns an audio recording into a transcript string.
type Transcriber interface {
	Transcribe(ctx context.Context, fileName string, audio []byte) (string, error)
}

// OpenAITranscriber implements Transcriber using the Whisper API.
type OpenAITranscriber struct {
	client *openai.Client
}

// NewOpenAITranscriber constructs a Whisper-backed transcriber.
func NewOpenAITranscriber(apiKey string) (*OpenAITranscriber, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}
	return &OpenAITranscriber{client: openai.NewClient(apiKey)}, nil
}

// NewOpenAITranscriberWithClient wires an existing client, mainly for tests.
func NewOpenAITranscriberWithClient(client *openai.Client) *OpenAITranscriber {
	return &OpenAITranscriber{client: client}
}

// Transcribe sends the audio bytes to Whisper and returns the transcript.
// The file name matters: the API infers the container format from its extension.
func (t *OpenAITranscriber) Transcribe(ctx context.Context, fileName string, audio []byte) (string, error) {
	if len(audio) == 0 {
		return "", fmt.Errorf("audio is empty")
	}

	resp, err := t.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: fileName,
		Reader:   bytes.NewReader(audio),
	})
	if err != nil {
		return "", fmt.Errorf("whisper transcription: %w", err)
	}
	return resp.Text, nil
}

// PlaceholderTranscriber is a stub implementation until provider wiring is added.
type PlaceholderTranscriber struct{}

// Transcribe returns ErrNotConfigured.
func (PlaceholderTranscriber) Transcribe(ctx context.Context, fileName string, audio []byte) (string, error) {
	_ = ctx
	_ = fileName
	_ = audio
	return "", ErrNotConfigured
}

var _ Transcriber = (*OpenAITranscriber)(nil)
