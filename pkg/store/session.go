// Package store defines the in-flight chat session state shared by the
// session manager and its pluggable backends.
package store

import (
	"context"
	"time"
)

// Turn is one entry of a session transcript.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Session is the active conversation state for one user. History starts with
// a single system turn and then alternates user and assistant turns.
type Session struct {
	UserID       string    `json:"user_id"`
	SystemPrompt string    `json:"system_prompt"`
	History      []Turn    `json:"history"`
	CreatedAt    time.Time `json:"created_at"`
}

// SessionStore is the transcript backend. Entries expire on their own after
// the backend's TTL; callers treat a miss as "no session yet".
type SessionStore interface {
	Save(ctx context.Context, session *Session) error
	Get(ctx context.Context, userID string) (*Session, bool, error)
	Delete(ctx context.Context, userID string) error
}
