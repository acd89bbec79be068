package presence

import (
	"context"
	"fmt"

	stream "github.com/GetStream/stream-chat-go/v7"
	"github.com/rs/zerolog/log"

	streaminfra "github.com/cortexa/relay/internal/infrastructure/stream"
	"github.com/cortexa/relay/internal/logger"
)

type StreamImplementation struct {
	client *stream.Client
}

func NewStreamService(streamService *streaminfra.Service) *StreamImplementation {
	return &StreamImplementation{client: streamService.GetClient()}
}

func (s *StreamImplementation) FindUser(ctx context.Context, userID string) ([]User, error) {
	resp, err := s.client.QueryUsers(ctx, &stream.QueryOption{
		Filter: map[string]interface{}{
			"id": map[string]interface{}{"$eq": userID},
		},
	})
	if err != nil {
		log.Error().Err(err).Str("component", logger.STREAM).Str("user_id", userID).Msg("Failed to query Stream users")
		return nil, fmt.Errorf("failed to query presence user %s: %w", userID, err)
	}

	users := make([]User, 0, len(resp.Users))
	for _, u := range resp.Users {
		users = append(users, fromStreamUser(u))
	}
	return users, nil
}

func (s *StreamImplementation) UpsertUser(ctx context.Context, user User) error {
	_, err := s.client.UpsertUser(ctx, &stream.User{
		ID:        user.ID,
		Name:      user.Name,
		Role:      user.Role,
		ExtraData: map[string]interface{}{"email": user.Email},
	})
	if err != nil {
		log.Error().Err(err).Str("component", logger.STREAM).Str("user_id", user.ID).Msg("Failed to upsert Stream user")
		return fmt.Errorf("failed to upsert presence user %s: %w", user.ID, err)
	}
	return nil
}

func (s *StreamImplementation) EnsureChannel(ctx context.Context, channelType, channelID string, data ChannelData) (Channel, error) {
	resp, err := s.client.CreateChannel(ctx, channelType, channelID, data.CreatedByID, &stream.ChannelRequest{
		ExtraData: map[string]interface{}{"name": data.Name},
	})
	if err != nil {
		log.Error().Err(err).Str("component", logger.STREAM).Str("channel_id", channelID).Msg("Failed to create Stream channel")
		return nil, fmt.Errorf("failed to create channel %s: %w", channelID, err)
	}
	return &streamChannel{channel: resp.Channel}, nil
}

type streamChannel struct {
	channel *stream.Channel
}

func (c *streamChannel) SendMessage(ctx context.Context, text, authorID string) error {
	if _, err := c.channel.SendMessage(ctx, &stream.Message{Text: text}, authorID); err != nil {
		log.Error().Err(err).Str("component", logger.STREAM).Str("channel_id", c.channel.ID).Msg("Failed to send Stream message")
		return fmt.Errorf("failed to send message to %s: %w", c.channel.ID, err)
	}
	return nil
}

func fromStreamUser(u *stream.User) User {
	user := User{ID: u.ID, Name: u.Name, Role: u.Role}
	if email, ok := u.ExtraData["email"].(string); ok {
		user.Email = email
	}
	return user
}
