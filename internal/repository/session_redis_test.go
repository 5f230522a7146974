package repository

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/campus_connect/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Тест требует живого Redis: TEST_REDIS_ADDR=localhost:6379
func TestRedisSessionStore_RoundTrip(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR is not set")
	}
	ctx := context.Background()
	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { client.Close() })
	require.NoError(t, client.Ping(ctx).Err())

	store := NewRedisSessionStore(client, uuid.NewString())
	user := models.UserProfile{ID: 5, FirstName: "Alan", CampusID: 1}

	require.NoError(t, store.Store(ctx, "redis-token", user))
	sess, err := store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, user, sess.User)

	require.NoError(t, store.Clear(ctx))
	assert.False(t, store.IsAuthenticated(ctx))
}
