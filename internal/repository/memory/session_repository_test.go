package memory

import (
	"context"
	"testing"
	"time"

	"ai-healthassist-be/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRoundTrip(t *testing.T) {
	repo := NewSessionRepository(time.Hour)
	ctx := context.Background()

	sess := &store.Session{
		UserID:       "u1",
		SystemPrompt: "prompt",
		History:      []store.Turn{{Role: "system", Content: "prompt"}},
		CreatedAt:    time.Now(),
	}
	require.NoError(t, repo.Save(ctx, sess))

	got, found, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "u1", got.UserID)
	assert.Len(t, got.History, 1)
}

func TestSessionMiss(t *testing.T) {
	repo := NewSessionRepository(time.Hour)

	_, found, err := repo.Get(context.Background(), "nobody")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSessionDelete(t *testing.T) {
	repo := NewSessionRepository(time.Hour)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &store.Session{UserID: "u1"}))
	require.NoError(t, repo.Delete(ctx, "u1"))

	_, found, _ := repo.Get(ctx, "u1")
	assert.False(t, found)
}

func TestSessionExpiry(t *testing.T) {
	repo := NewSessionRepository(20 * time.Millisecond)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &store.Session{UserID: "u1"}))
	time.Sleep(50 * time.Millisecond)

	_, found, _ := repo.Get(ctx, "u1")
	assert.False(t, found)
}
