package ai

import (
	"context"
	"testing"
	"time"

	"github.com/J-Hunxho/LowkeyLuxuryMain/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryTranscriptStore_CopiesTurns(t *testing.T) {
	store := NewMemoryTranscriptStore()
	ctx := context.Background()

	transcript := &models.ChatTranscript{
		SessionID: "s1",
		Turns:     []models.ChatTurn{{Role: models.ChatRoleUser, Text: "hello"}},
		CreatedAt: time.Now(),
	}
	require.NoError(t, store.Save(ctx, transcript))

	fetched, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	fetched.Turns[0].Text = "mutated"

	again, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "hello", again.Turns[0].Text)
}

func TestRedisTranscriptStore_RoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	store := NewRedisTranscriptStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}), time.Minute)
	ctx := context.Background()

	transcript := &models.ChatTranscript{
		SessionID: "s1",
		Turns: []models.ChatTurn{
			{Role: models.ChatRoleUser, Text: "hello"},
			{Role: models.ChatRoleModel, Text: "greetings"},
		},
		CreatedAt: time.Now(),
	}
	require.NoError(t, store.Save(ctx, transcript))

	fetched, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, fetched.Turns, 2)
	assert.Equal(t, models.ChatRoleModel, fetched.Turns[1].Role)

	require.NoError(t, store.Delete(ctx, "s1"))
	_, err = store.Get(ctx, "s1")
	assert.ErrorIs(t, err, ErrChatSessionNotFound)
}
