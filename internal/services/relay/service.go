package relay

import (
	"context"
	"errors"

	"github.com/cortexa/relay/internal/domain/models"
	"github.com/cortexa/relay/internal/repository"
)

var (
	// ErrPresenceUserNotFound means the chat provider has no record for the user
	ErrPresenceUserNotFound = errors.New("presence user not found")
	// ErrUserNotFound means the database has no row for the user
	ErrUserNotFound = errors.New("user not found")
)

// Service defines the operations behind the relay endpoints
type Service interface {
	RegisterUser(ctx context.Context, name, email string) (*models.User, error)
	CheckUser(ctx context.Context, userID string) ([]models.User, error)
	Chat(ctx context.Context, userID, message string) (string, error)
	GetMessages(ctx context.Context, userID string) ([]models.Chat, error)
}

type UserStore interface {
	FindUser(ctx context.Context, userID string) ([]models.User, error)
	InsertUser(ctx context.Context, userID, name, email string) error
}

type ChatStore interface {
	ListChats(ctx context.Context, userID string, opts repository.ListOptions) ([]models.Chat, error)
	InsertChat(ctx context.Context, userID, message, reply string) error
}

// Options configures chat history and the channel replies are mirrored into
type Options struct {
	HistoryLimit  int
	RecentHistory bool
	BotUserID     string
	ChannelType   string
	ChannelPrefix string
	ChannelName   string
}
