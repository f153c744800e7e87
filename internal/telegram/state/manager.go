package state

import (
	"context"
	"fmt"
	"time"
)

// Manager manages chat state on top of a Storage backend.
type Manager struct {
	storage Storage
}

// NewManager creates a new state manager
func NewManager(storage Storage) *Manager {
	return &Manager{storage: storage}
}

// Get retrieves chat state; (nil, nil) means the user has none.
func (m *Manager) Get(ctx context.Context, userID int64) (*ChatState, error) {
	st, err := m.storage.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get chat state from storage: %w", err)
	}
	return st, nil
}

// Bind associates the user with a live assessment session.
func (m *Manager) Bind(ctx context.Context, userID, chatID int64, sessionID string) (*ChatState, error) {
	now := time.Now()
	st := &ChatState{
		UserID:    userID,
		ChatID:    chatID,
		SessionID: sessionID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := m.storage.Set(ctx, st); err != nil {
		return nil, fmt.Errorf("save chat state to storage: %w", err)
	}
	return st, nil
}

// SetLastMessage remembers the message the bot edits in place.
func (m *Manager) SetLastMessage(ctx context.Context, st *ChatState, messageID int) error {
	st.LastMessageID = messageID
	st.UpdatedAt = time.Now()
	if err := m.storage.Set(ctx, st); err != nil {
		return fmt.Errorf("save chat state to storage: %w", err)
	}
	return nil
}

// Clear removes the user's chat state.
func (m *Manager) Clear(ctx context.Context, userID int64) error {
	if err := m.storage.Delete(ctx, userID); err != nil {
		return fmt.Errorf("delete chat state from storage: %w", err)
	}
	return nil
}
