package repository

import (
	"context"
	"errors"
	"time"

	"voiceauth/internal/domain/entity"
)

// ErrChallengeNotFound is returned when a state is unknown, already consumed or expired.
// Callers cannot tell the three apart.
var ErrChallengeNotFound = errors.New("challenge not found")

// ChallengeRepository stores in-flight PKCE challenges keyed by state.
type ChallengeRepository interface {
	// Save stores challenge until ttl elapses.
	Save(ctx context.Context, challenge *entity.Challenge, ttl time.Duration) error

	// Consume atomically removes and returns the challenge for state.
	// At most one caller ever receives a given challenge.
	Consume(ctx context.Context, state string) (*entity.Challenge, error)
}
