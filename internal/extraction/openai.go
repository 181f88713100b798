package extraction

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"hirehand-backend/internal/shared/telemetry"
)

const promptTemplate = `You are an expert HR assistant. Extract the following information from the audio transcript.
Respond with ONLY a valid JSON object.

Transcript: %q

Extract:
- skills: string[] (e.g., ["North Indian cooking", "cleaning"])
- experience_years: number (just the number)
- salary_expectation: string (e.g., "10,000 rupees per month")`

// OpenAIExtractor implements Extractor using a chat completion constrained to
// JSON output.
type OpenAIExtractor struct {
	client *openai.Client
	model  string
}

// NewOpenAIExtractor constructs an extractor for the given model.
func NewOpenAIExtractor(apiKey, model string) (*OpenAIExtractor, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("LLM_MODEL is required")
	}
	return &OpenAIExtractor{client: openai.NewClient(apiKey), model: model}, nil
}

// NewOpenAIExtractorWithClient wires an existing client, mainly for tests.
func NewOpenAIExtractorWithClient(client *openai.Client, model string) *OpenAIExtractor {
	return &OpenAIExtractor{client: client, model: model}
}

// Extract asks the model for the fixed three-field schema and decodes the
// completion defensively. A transport-level failure is an error; a malformed
// completion degrades to defaults.
func (e *OpenAIExtractor) Extract(ctx context.Context, transcript string) (Fields, error) {
	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: e.model,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: fmt.Sprintf(promptTemplate, transcript),
			},
		},
	})
	if err != nil {
		return Fields{}, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Fields{}, fmt.Errorf("chat completion missing choices")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	fields := DecodeFields([]byte(content))
	if len(fields.Skills) == 0 && fields.ExperienceYears == 0 && fields.SalaryExpectation == DefaultSalaryExpectation {
		telemetry.Info("extraction.degraded", map[string]any{
			"model":        e.model,
			"content_size": len(content),
		})
	}
	return fields, nil
}

var _ Extractor = (*OpenAIExtractor)(nil)
