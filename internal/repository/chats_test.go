package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

var chatColumns = []string{"id", "user_id", "message", "reply", "created_at"}

func TestChatRepository_ListChats(t *testing.T) {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		opts  ListOptions
		query string
		args  []driver.Value
	}{
		{
			name:  "whole history",
			opts:  ListOptions{},
			query: listChatsQuery,
			args:  []driver.Value{"ana_x_com"},
		},
		{
			name:  "most recent turns",
			opts:  ListOptions{Limit: 10, Recent: true},
			query: listRecentChatsQuery,
			args:  []driver.Value{"ana_x_com", 10},
		},
		{
			name:  "oldest turns",
			opts:  ListOptions{Limit: 10},
			query: listOldestChatsQuery,
			args:  []driver.Value{"ana_x_com", 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			r := NewChatRepository(db)

			rows := sqlmock.NewRows(chatColumns).
				AddRow(1, "ana_x_com", "Hello", "Hi there", base).
				AddRow(2, "ana_x_com", "How are you?", "Fine", base.Add(time.Minute))

			mock.ExpectQuery(regexp.QuoteMeta(tt.query)).WithArgs(tt.args...).WillReturnRows(rows)

			chats, err := r.ListChats(context.Background(), "ana_x_com", tt.opts)
			require.NoError(t, err)
			require.Len(t, chats, 2)
			require.Equal(t, int64(1), chats[0].ID)
			require.Equal(t, "Hello", chats[0].Message)
			require.Equal(t, "Hi there", chats[0].Reply)
			require.Equal(t, "Fine", chats[1].Reply)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestChatRepository_ListChats_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewChatRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(listChatsQuery)).WithArgs("ana_x_com").WillReturnRows(sqlmock.NewRows(chatColumns))

	chats, err := r.ListChats(context.Background(), "ana_x_com", ListOptions{})
	require.NoError(t, err)
	require.NotNil(t, chats)
	require.Empty(t, chats)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestChatRepository_ListChats_Error(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewChatRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(listRecentChatsQuery)).WithArgs("ana_x_com", 10).WillReturnError(errors.New("timeout"))

	_, err := r.ListChats(context.Background(), "ana_x_com", ListOptions{Limit: 10, Recent: true})
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestChatRepository_InsertChat(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewChatRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(insertChatQuery)).
		WithArgs("ana_x_com", "Hello", "Hi there").
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, r.InsertChat(context.Background(), "ana_x_com", "Hello", "Hi there"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestChatRepository_InsertChat_Error(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewChatRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(insertChatQuery)).
		WithArgs("ana_x_com", "Hello", "Hi there").
		WillReturnError(errors.New("read only transaction"))

	require.Error(t, r.InsertChat(context.Background(), "ana_x_com", "Hello", "Hi there"))
	require.NoError(t, mock.ExpectationsWereMet())
}
