// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"time"

	"voiceauth/config"
	"voiceauth/internal/domain/entity"
	"voiceauth/internal/domain/repository"
	"voiceauth/internal/errors"
	"voiceauth/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/oauth2"
)

// stateEntropyBytes is the amount of randomness in a state value.
const stateEntropyBytes = 32

type challengeStore struct {
	repo repository.ChallengeRepository
	ttl  time.Duration
	now  func() time.Time
}

// ChallengeStoreParams holds dependencies for the challenge store, injected by Fx.
type ChallengeStoreParams struct {
	fx.In

	Repo   repository.ChallengeRepository
	Config *config.Config
}

// NewChallengeStore is the constructor for challengeStore.
func NewChallengeStore(params ChallengeStoreParams) usecase.ChallengeStore {
	return newChallengeStore(params.Repo, params.Config.Challenge.TTL, time.Now)
}

func newChallengeStore(repo repository.ChallengeRepository, ttl time.Duration, now func() time.Time) *challengeStore {
	return &challengeStore{repo: repo, ttl: ttl, now: now}
}

// Create mints a verifier (32 random bytes, base64url), its S256 challenge
// and a state carrying the flow prefix, then stores them.
func (s *challengeStore) Create(ctx context.Context, provider entity.ProviderType, flow entity.Flow) (*entity.Challenge, error) {
	state, err := newState(flow)
	if err != nil {
		return nil, err
	}

	verifier := oauth2.GenerateVerifier()
	challenge := &entity.Challenge{
		State:           state,
		Verifier:        verifier,
		CodeChallenge:   oauth2.S256ChallengeFromVerifier(verifier),
		ChallengeMethod: entity.ChallengeMethodS256,
		Provider:        provider,
		Flow:            flow,
		CreatedAt:       s.now().UTC(),
	}

	if err := s.repo.Save(ctx, challenge, s.ttl); err != nil {
		return nil, errors.Wrap(err, "failed to store challenge")
	}

	return challenge, nil
}

// Consume redeems state. Entries past the TTL are reported as missing even
// if the backend has not evicted them yet.
func (s *challengeStore) Consume(ctx context.Context, state string) (*entity.Challenge, error) {
	challenge, err := s.repo.Consume(ctx, state)
	if err != nil {
		return nil, err
	}

	if challenge.Expired(s.now(), s.ttl) {
		return nil, repository.ErrChallengeNotFound
	}

	return challenge, nil
}

func (s *challengeStore) TTL() time.Duration {
	return s.ttl
}

func newState(flow entity.Flow) (string, error) {
	buf := make([]byte, stateEntropyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to generate state")
	}

	return flow.StatePrefix() + base64.RawURLEncoding.EncodeToString(buf), nil
}
