package stream

import (
	"errors"
	"sync"

	stream "github.com/GetStream/stream-chat-go/v7"
	"github.com/rs/zerolog/log"
)

type Service struct {
	mu     sync.RWMutex
	client *stream.Client
}

func NewService(apiKey, apiSecret string) (*Service, error) {
	if apiKey == "" || apiSecret == "" {
		return nil, errors.New("Stream service not configured - STREAM_API_KEY or STREAM_API_SECRET missing")
	}

	log.Info().Msg("Initialising Stream Chat service")

	client, err := stream.NewClient(apiKey, apiSecret)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create Stream Chat client")
		return nil, err
	}

	return NewServiceFromClient(client), nil
}

// NewServiceFromClient wraps a prebuilt client, used by tests to point BaseURL at a fake server
func NewServiceFromClient(client *stream.Client) *Service {
	return &Service{client: client}
}

func (s *Service) GetClient() *stream.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.client
}
