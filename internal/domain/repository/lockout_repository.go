package repository

import (
	"context"

	"voiceauth/internal/domain/entity"
)

// LockoutMutation edits a lockout record in place. The record is never nil:
// a missing row is handed over as a zero record for the key.
type LockoutMutation func(record *entity.LockoutRecord)

// LockoutRepository persists failed-attempt counters keyed by normalized email.
type LockoutRepository interface {
	// Find returns the record for key, or nil when none exists.
	Find(ctx context.Context, key string) (*entity.LockoutRecord, error)

	// Apply runs mutate against the current record for key and stores the
	// result as one atomic read-modify-write. Concurrent Apply calls for the
	// same key are serialized, so no increment is lost.
	Apply(ctx context.Context, key string, mutate LockoutMutation) (*entity.LockoutRecord, error)
}
