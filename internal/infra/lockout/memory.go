// Package lockout contains the non-relational lockout record store.
package lockout

import (
	"context"
	"sync"
	"time"

	"voiceauth/internal/domain/entity"
	"voiceauth/internal/domain/repository"
)

// MemoryStore keeps lockout records in process memory behind one mutex.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]entity.LockoutRecord
	now     func() time.Time
}

// NewMemoryStore creates an empty store. now may be nil.
func NewMemoryStore(now func() time.Time) *MemoryStore {
	if now == nil {
		now = time.Now
	}

	return &MemoryStore{records: make(map[string]entity.LockoutRecord), now: now}
}

var _ repository.LockoutRepository = (*MemoryStore)(nil)

// Find returns a copy of the record for key, or nil.
func (s *MemoryStore) Find(_ context.Context, key string) (*entity.LockoutRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[key]
	if !ok {
		return nil, nil
	}

	return &record, nil
}

// Apply mutates the record for key while holding the store lock.
func (s *MemoryStore) Apply(_ context.Context, key string, mutate repository.LockoutMutation) (*entity.LockoutRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[key]
	if !ok {
		record = entity.LockoutRecord{AccountKey: key}
	}

	mutate(&record)
	record.UpdatedAt = s.now()
	s.records[key] = record

	result := record

	return &result, nil
}
