package models

import "time"

// Chat is one persisted turn: the user's message and the assistant's reply
type Chat struct {
	ID        int64     `json:"id" db:"id"`
	UserID    string    `json:"userId" db:"user_id"`
	Message   string    `json:"message" db:"message"`
	Reply     string    `json:"reply" db:"reply"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
