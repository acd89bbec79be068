package openai

import (
	"errors"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/sashabaranov/go-openai"
)

type Service struct {
	mu     sync.RWMutex
	client *openai.Client
	model  string
}

func NewService(apiKey, model string) (*Service, error) {
	if apiKey == "" {
		return nil, errors.New("OpenAI service not configured - OPENAI_API_KEY missing")
	}
	return NewServiceWithConfig(openai.DefaultConfig(apiKey), model), nil
}

// NewServiceWithConfig allows overriding the base URL or HTTP client
func NewServiceWithConfig(cfg openai.ClientConfig, model string) *Service {
	log.Info().Str("model", model).Msg("Initialising OpenAI service")

	return &Service{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (s *Service) GetClient() *openai.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.client
}

func (s *Service) Model() string {
	return s.model
}
