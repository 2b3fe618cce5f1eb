package challenge

import (
	"context"
	"encoding/json"
	"time"

	"voiceauth/internal/domain/entity"
	"voiceauth/internal/domain/repository"
	"voiceauth/internal/errors"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "oauth:challenge:"

// RedisStore shares challenges between instances. Expiry is delegated to
// the key TTL and consumption to GETDEL.
type RedisStore struct {
	client redis.Cmdable
}

// NewRedisStore creates a store on top of client.
func NewRedisStore(client redis.Cmdable) *RedisStore {
	return &RedisStore{client: client}
}

var _ repository.ChallengeRepository = (*RedisStore)(nil)

func (s *RedisStore) key(state string) string {
	return redisKeyPrefix + state
}

// Save stores the challenge as JSON with ttl as the key expiry.
func (s *RedisStore) Save(ctx context.Context, challenge *entity.Challenge, ttl time.Duration) error {
	payload, err := json.Marshal(challenge)
	if err != nil {
		return errors.Wrap(err, "encode challenge")
	}

	if err := s.client.Set(ctx, s.key(challenge.State), payload, ttl).Err(); err != nil {
		return errors.Wrap(err, "store challenge")
	}

	return nil
}

// Consume fetches and deletes the key in a single command.
func (s *RedisStore) Consume(ctx context.Context, state string) (*entity.Challenge, error) {
	payload, err := s.client.GetDel(ctx, s.key(state)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrChallengeNotFound
		}

		return nil, errors.Wrap(err, "consume challenge")
	}

	var challenge entity.Challenge
	if err := json.Unmarshal(payload, &challenge); err != nil {
		return nil, errors.Wrap(err, "decode challenge")
	}

	return &challenge, nil
}
