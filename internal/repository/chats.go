package repository

import (
	"context"
	"fmt"

	"github.com/cortexa/relay/internal/domain/models"
	"github.com/jmoiron/sqlx"
)

const (
	listChatsQuery = `SELECT id, user_id, message, reply, created_at FROM chats WHERE user_id = $1 ORDER BY created_at ASC, id ASC`

	listOldestChatsQuery = `SELECT id, user_id, message, reply, created_at FROM chats WHERE user_id = $1 ORDER BY created_at ASC, id ASC LIMIT $2`

	listRecentChatsQuery = `SELECT id, user_id, message, reply, created_at FROM (
		SELECT id, user_id, message, reply, created_at FROM chats WHERE user_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2
	) recent ORDER BY created_at ASC, id ASC`

	insertChatQuery = `INSERT INTO chats (user_id, message, reply) VALUES ($1, $2, $3)`
)

// ListOptions selects which slice of a user's history is returned.
// A Limit of zero or less returns the whole history. With a Limit, Recent picks
// the newest turns and otherwise the oldest. Results are always chronological.
type ListOptions struct {
	Limit  int
	Recent bool
}

type ChatRepository struct {
	db *sqlx.DB
}

func NewChatRepository(db *sqlx.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

func (r *ChatRepository) ListChats(ctx context.Context, userID string, opts ListOptions) ([]models.Chat, error) {
	chats := []models.Chat{}

	var err error
	switch {
	case opts.Limit <= 0:
		err = r.db.SelectContext(ctx, &chats, listChatsQuery, userID)
	case opts.Recent:
		err = r.db.SelectContext(ctx, &chats, listRecentChatsQuery, userID, opts.Limit)
	default:
		err = r.db.SelectContext(ctx, &chats, listOldestChatsQuery, userID, opts.Limit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list chats for %s: %w", userID, err)
	}

	return chats, nil
}

// InsertChat appends one turn; id and created_at are assigned by the database
func (r *ChatRepository) InsertChat(ctx context.Context, userID, message, reply string) error {
	if _, err := r.db.ExecContext(ctx, insertChatQuery, userID, message, reply); err != nil {
		return fmt.Errorf("failed to insert chat for %s: %w", userID, err)
	}
	return nil
}
