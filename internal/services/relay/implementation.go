package relay

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/cortexa/relay/internal/domain/models"
	"github.com/cortexa/relay/internal/logger"
	"github.com/cortexa/relay/internal/repository"
	"github.com/cortexa/relay/internal/services/completion"
	"github.com/cortexa/relay/internal/services/presence"
)

const presenceRole = "user"

type Implementation struct {
	users      UserStore
	chats      ChatStore
	presence   presence.Service
	completion completion.Service
	opts       Options
}

func NewService(users UserStore, chats ChatStore, presenceService presence.Service, completionService completion.Service, opts Options) *Implementation {
	return &Implementation{
		users:      users,
		chats:      chats,
		presence:   presenceService,
		completion: completionService,
		opts:       opts,
	}
}

// RegisterUser makes sure the user exists in both the chat provider and the
// database. Each store is checked on its own, so calling it again repairs a
// registration that previously failed halfway.
func (s *Implementation) RegisterUser(ctx context.Context, name, email string) (*models.User, error) {
	userID := models.DeriveUserID(email)

	presenceUsers, err := s.presence.FindUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(presenceUsers) == 0 {
		log.Info().Str("user_id", userID).Msg("Adding user to chat provider")
		if err := s.presence.UpsertUser(ctx, presence.User{
			ID:    userID,
			Name:  name,
			Email: email,
			Role:  presenceRole,
		}); err != nil {
			return nil, err
		}
	}

	existing, err := s.users.FindUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(existing) == 0 {
		log.Info().Str("user_id", userID).Msg("User does not exist in the database, adding them")
		err := s.users.InsertUser(ctx, userID, name, email)
		if err != nil && !errors.Is(err, repository.ErrUserExists) {
			return nil, err
		}
	}

	return &models.User{UserID: userID, Name: name, Email: email}, nil
}

func (s *Implementation) CheckUser(ctx context.Context, userID string) ([]models.User, error) {
	return s.users.FindUser(ctx, userID)
}

// Chat sends the new message with recent history to the model, stores the turn
// and mirrors the reply into the user's channel
func (s *Implementation) Chat(ctx context.Context, userID, message string) (string, error) {
	if err := s.checkRegistered(ctx, userID); err != nil {
		return "", err
	}

	history, err := s.chats.ListChats(ctx, userID, repository.ListOptions{
		Limit:  s.opts.HistoryLimit,
		Recent: s.opts.RecentHistory,
	})
	if err != nil {
		return "", err
	}

	transcript := models.BuildTranscript(history, message)

	reply, err := s.completion.Complete(ctx, transcript)
	if err != nil {
		return "", err
	}
	if reply == "" {
		reply = completion.NoReplyText
	}

	if err := s.chats.InsertChat(ctx, userID, message, reply); err != nil {
		return "", err
	}

	channel, err := s.presence.EnsureChannel(ctx, s.opts.ChannelType, s.opts.ChannelPrefix+userID, presence.ChannelData{
		Name:        s.opts.ChannelName,
		CreatedByID: s.opts.BotUserID,
	})
	if err != nil {
		return "", err
	}

	if err := channel.SendMessage(ctx, reply, s.opts.BotUserID); err != nil {
		return "", err
	}

	log.Info().
		Str("component", logger.CHAT).
		Str("user_id", userID).
		Int("history_turns", len(history)).
		Msg("Chat turn completed")

	return reply, nil
}

// checkRegistered looks the user up in both stores concurrently. A missing
// presence record is reported before anything about the database, including a
// failed database lookup.
func (s *Implementation) checkRegistered(ctx context.Context, userID string) error {
	var (
		presenceUsers []presence.User
		dbUsers       []models.User
		presenceErr   error
		dbErr         error
	)

	var g errgroup.Group
	g.Go(func() error {
		presenceUsers, presenceErr = s.presence.FindUser(ctx, userID)
		return nil
	})
	g.Go(func() error {
		dbUsers, dbErr = s.users.FindUser(ctx, userID)
		return nil
	})
	_ = g.Wait()

	if presenceErr != nil {
		return fmt.Errorf("failed to verify presence user %s: %w", userID, presenceErr)
	}
	if len(presenceUsers) == 0 {
		return ErrPresenceUserNotFound
	}
	if dbErr != nil {
		return fmt.Errorf("failed to verify user %s: %w", userID, dbErr)
	}
	if len(dbUsers) == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (s *Implementation) GetMessages(ctx context.Context, userID string) ([]models.Chat, error) {
	return s.chats.ListChats(ctx, userID, repository.ListOptions{})
}
