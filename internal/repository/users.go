package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/cortexa/relay/internal/domain/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
)

// ErrUserExists is returned by InsertUser when the identifier is already taken
var ErrUserExists = errors.New("user already exists")

const uniqueViolation = "23505"

const (
	findUserQuery   = `SELECT user_id, name, email, created_at FROM users WHERE user_id = $1`
	insertUserQuery = `INSERT INTO users (user_id, name, email) VALUES ($1, $2, $3)`
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindUser returns zero or one users with the given identifier
func (r *UserRepository) FindUser(ctx context.Context, userID string) ([]models.User, error) {
	users := []models.User{}
	if err := r.db.SelectContext(ctx, &users, findUserQuery, userID); err != nil {
		return nil, fmt.Errorf("failed to find user %s: %w", userID, err)
	}
	return users, nil
}

func (r *UserRepository) InsertUser(ctx context.Context, userID, name, email string) error {
	if _, err := r.db.ExecContext(ctx, insertUserQuery, userID, name, email); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrUserExists
		}
		return fmt.Errorf("failed to insert user %s: %w", userID, err)
	}
	return nil
}
