package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"meetsum/types"
)

// GeminiService is the alternative completion provider. It keeps a list of
// API keys and rotates to the next one when a call fails.
type GeminiService struct {
	apiKeys     []string
	currentKey  int
	client      *genai.Client
	model       *genai.GenerativeModel
	modelName   string
	temperature float32
	maxTokens   int32
	mu          sync.Mutex
}

func NewGeminiService(apiKeys []string, modelName string, temperature float32, maxTokens int) (*GeminiService, error) {
	if len(apiKeys) == 0 {
		return nil, errors.New("no API keys provided")
	}

	service := &GeminiService{
		apiKeys:     apiKeys,
		currentKey:  0,
		modelName:   modelName,
		temperature: temperature,
		maxTokens:   int32(maxTokens),
	}

	if err := service.initClient(); err != nil {
		return nil, err
	}
	return service, nil
}

// initClient must be called with s.mu held or before the service is shared.
func (s *GeminiService) initClient() error {
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(s.apiKeys[s.currentKey]))
	if err != nil {
		return err
	}
	s.client = client

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(s.temperature)
	model.SetMaxOutputTokens(s.maxTokens)
	s.model = model
	return nil
}

func (s *GeminiService) rotateAPIKey() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
	if err := s.client.Close(); err != nil {
		return err
	}
	return s.initClient()
}

func (s *GeminiService) Summarize(ctx context.Context, transcript, instruction string) (string, error) {
	prompt := genai.Text(BuildPrompt(transcript, instruction))

	resp, err := s.model.GenerateContent(ctx, prompt)
	if err != nil {
		// Try rotating API key if there's an error
		if rerr := s.rotateAPIKey(); rerr != nil {
			return "", types.NewAppError(types.ErrProvider, rerr.Error(), rerr)
		}
		resp, err = s.model.GenerateContent(ctx, prompt)
		if err != nil {
			return "", types.NewAppError(types.ErrProvider, err.Error(), err)
		}
	}

	if len(resp.Candidates) == 0 {
		return "", types.NewAppError(types.ErrProvider, "no response generated", nil)
	}

	content := ""
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if text, ok := part.(genai.Text); ok {
					content += string(text)
				}
			}
		}
	}

	return strings.TrimSpace(content), nil
}
