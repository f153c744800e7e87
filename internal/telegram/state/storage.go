package state

import (
	"context"
	"time"
)

// ChatState ties a Telegram user to a live assessment session plus the
// UI bookkeeping needed to edit messages in place.
type ChatState struct {
	UserID        int64     `json:"user_id"`
	ChatID        int64     `json:"chat_id"`
	SessionID     string    `json:"session_id,omitempty"`
	LastMessageID int       `json:"last_message_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Storage defines the interface for chat state persistence. Get returns
// (nil, nil) when the user has no stored state.
type Storage interface {
	Get(ctx context.Context, userID int64) (*ChatState, error)
	Set(ctx context.Context, st *ChatState) error
	Delete(ctx context.Context, userID int64) error
}
