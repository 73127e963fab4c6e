package service

import (
	"context"
	"strings"

	"github.com/sashabaranov/go-openai"

	"meetsum/types"
)

// OpenAIService requests completions from any OpenAI-compatible endpoint.
// The default configuration points it at Groq.
type OpenAIService struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
}

func NewOpenAIService(baseURL, apiKey, model string, temperature float32, maxTokens int) *OpenAIService {
	config := openai.DefaultConfig(apiKey)
	config.BaseURL = baseURL
	client := openai.NewClientWithConfig(config)
	return &OpenAIService{
		client:      client,
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
	}
}

func (s *OpenAIService) Summarize(ctx context.Context, transcript, instruction string) (string, error) {
	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: BuildPrompt(transcript, instruction),
				},
			},
			Model:       s.model,
			Temperature: s.temperature,
			MaxTokens:   s.maxTokens,
		},
	)

	if err != nil {
		return "", types.NewAppError(types.ErrProvider, err.Error(), err)
	}

	if len(resp.Choices) == 0 {
		return "", types.NewAppError(types.ErrProvider, "no response generated", nil)
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
