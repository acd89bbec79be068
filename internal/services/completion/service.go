package completion

import (
	"context"

	"github.com/cortexa/relay/internal/domain/models"
)

// NoReplyText is returned when the model produces no content
const NoReplyText = "AI response not found."

// Service defines the interface for completion operations
type Service interface {
	// Complete sends the ordered transcript and returns the assistant reply
	Complete(ctx context.Context, transcript []models.ChatMessage) (string, error)
}
