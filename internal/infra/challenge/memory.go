// Package challenge contains the PKCE challenge stores.
package challenge

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"voiceauth/internal/domain/entity"
	"voiceauth/internal/domain/repository"
)

type memoryEntry struct {
	challenge entity.Challenge
	expiresAt time.Time
}

// MemoryStore keeps challenges in process memory. It is only correct for a
// single instance; use the Redis store when running more than one.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
	logger  *slog.Logger

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// NewMemoryStore creates an empty store. now may be nil.
func NewMemoryStore(logger *slog.Logger, now func() time.Time) *MemoryStore {
	if now == nil {
		now = time.Now
	}

	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     now,
		logger:  logger,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

var _ repository.ChallengeRepository = (*MemoryStore)(nil)

// Save stores challenge until ttl elapses.
func (s *MemoryStore) Save(_ context.Context, challenge *entity.Challenge, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[challenge.State] = memoryEntry{
		challenge: *challenge,
		expiresAt: challenge.ExpiresAt(ttl),
	}

	return nil
}

// Consume removes and returns the challenge in one critical section, so a
// concurrent sweep or second consumer can never observe it.
func (s *MemoryStore) Consume(_ context.Context, state string) (*entity.Challenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[state]
	if !ok {
		return nil, repository.ErrChallengeNotFound
	}
	delete(s.entries, state)

	if !s.now().Before(entry.expiresAt) {
		return nil, repository.ErrChallengeNotFound
	}

	challenge := entry.challenge

	return &challenge, nil
}

// Sweep evicts every expired challenge and returns how many were removed.
func (s *MemoryStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for state, entry := range s.entries {
		if !now.Before(entry.expiresAt) {
			delete(s.entries, state)
			removed++
		}
	}

	return removed
}

// Len returns the number of stored challenges, expired ones included.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.entries)
}

// StartSweeper runs Sweep every interval until StopSweeper is called.
func (s *MemoryStore) StartSweeper(interval time.Duration) {
	go func() {
		defer close(s.done)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-s.stop:
				return
			case <-ticker.C:
				if removed := s.Sweep(); removed > 0 && s.logger != nil {
					s.logger.Debug("Swept expired challenges", slog.Int("removed", removed))
				}
			}
		}
	}()
}

// StopSweeper stops the background sweep and waits for it to exit.
func (s *MemoryStore) StopSweeper(ctx context.Context) error {
	s.stopOnce.Do(func() { close(s.stop) })

	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
