package presence

import "context"

// User is the presence record mirrored in the chat provider
type User struct {
	ID    string
	Name  string
	Email string
	Role  string
}

// ChannelData is applied when a channel is created
type ChannelData struct {
	Name        string
	CreatedByID string
}

// Channel is a handle to a provider channel messages can be sent into
type Channel interface {
	SendMessage(ctx context.Context, text, authorID string) error
}

// Service defines the chat provider operations the relay relies on
type Service interface {
	// FindUser returns every presence record with exactly this id
	FindUser(ctx context.Context, userID string) ([]User, error)
	// UpsertUser creates or replaces the presence record
	UpsertUser(ctx context.Context, user User) error
	// EnsureChannel creates the channel if it does not exist yet
	EnsureChannel(ctx context.Context, channelType, channelID string, data ChannelData) (Channel, error)
}
