package completion

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/sashabaranov/go-openai"

	"github.com/cortexa/relay/internal/domain/models"
	openaiinfra "github.com/cortexa/relay/internal/infrastructure/openai"
)

type Implementation struct {
	client *openai.Client
	model  string
}

func NewService(openAIService *openaiinfra.Service) *Implementation {
	return &Implementation{
		client: openAIService.GetClient(),
		model:  openAIService.Model(),
	}
}

func (s *Implementation) Complete(ctx context.Context, transcript []models.ChatMessage) (string, error) {
	log.Debug().Int("message_count", len(transcript)).Msg("Requesting chat completion")

	if len(transcript) == 0 {
		return "", fmt.Errorf("empty transcript")
	}

	messages := make([]openai.ChatCompletionMessage, len(transcript))
	for i, msg := range transcript {
		messages[i] = openai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		}
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    s.model,
		Messages: messages,
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to get chat completion")
		return "", fmt.Errorf("failed to get chat completion: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		log.Warn().Str("model", s.model).Msg("Completion returned no content")
		return NoReplyText, nil
	}

	log.Debug().
		Int("prompt_tokens", resp.Usage.PromptTokens).
		Int("completion_tokens", resp.Usage.CompletionTokens).
		Msg("Chat completion received")

	return resp.Choices[0].Message.Content, nil
}
