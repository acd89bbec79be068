package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateChatsTable, downCreateChatsTable)
}

// user_id has no foreign key; handlers check the user exists before inserting.
func upCreateChatsTable(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS chats (
			id SERIAL PRIMARY KEY,
			user_id TEXT NOT NULL,
			message TEXT NOT NULL,
			reply TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT now()
		);

		CREATE INDEX IF NOT EXISTS idx_chats_user_id_created_at ON chats(user_id, created_at, id);
	`)
	return err
}

func downCreateChatsTable(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS chats;`)
	return err
}
