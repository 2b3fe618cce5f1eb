package challenge

import (
	"context"
	"testing"
	"time"

	"voiceauth/internal/domain/entity"
	"voiceauth/internal/domain/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisStore(client), mr
}

func TestRedisStore_SingleUse(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()

	challenge := newChallenge("m.s1", time.Now().UTC().Truncate(time.Second))
	challenge.Flow = entity.FlowMobile
	require.NoError(t, store.Save(ctx, challenge, testTTL))
	assert.True(t, mr.Exists("oauth:challenge:m.s1"))

	got, err := store.Consume(ctx, "m.s1")
	require.NoError(t, err)
	assert.Equal(t, challenge.Verifier, got.Verifier)
	assert.Equal(t, entity.FlowMobile, got.Flow)
	assert.True(t, challenge.CreatedAt.Equal(got.CreatedAt))

	_, err = store.Consume(ctx, "m.s1")
	assert.ErrorIs(t, err, repository.ErrChallengeNotFound)
}

func TestRedisStore_Expiry(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, newChallenge("s1", time.Now()), testTTL))
	mr.FastForward(testTTL + time.Second)

	_, err := store.Consume(ctx, "s1")
	assert.ErrorIs(t, err, repository.ErrChallengeNotFound)
}

func TestRedisStore_Unavailable(t *testing.T) {
	store, mr := newRedisStore(t)
	mr.Close()

	_, err := store.Consume(context.Background(), "s1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrChallengeNotFound)
}
