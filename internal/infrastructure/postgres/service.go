package postgres

import (
	"context"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Service struct {
	db *sqlx.DB
}

// NewService opens a pooled connection to PostgreSQL and verifies it
func NewService(ctx context.Context, databaseURL string) (*Service, error) {
	start := time.Now()

	db, err := sqlx.ConnectContext(ctx, "pgx", databaseURL)
	if err != nil {
		log.Error().Err(err).Msg("Failed to open PostgreSQL connection")
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	log.Info().
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("PostgreSQL connection established")

	return &Service{db: db}, nil
}

// NewServiceFromDB wraps an existing handle, used by tests
func NewServiceFromDB(db *sqlx.DB) *Service {
	return &Service{db: db}
}

func (s *Service) DB() *sqlx.DB {
	return s.db
}

// Ping checks if the database is reachable
func (s *Service) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the connection pool
func (s *Service) Close() error {
	if err := s.db.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close database connection")
		return err
	}
	log.Info().Msg("Database connection closed")
	return nil
}
