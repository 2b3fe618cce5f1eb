package entity

import "time"

// LockoutRecord tracks failed password attempts for one account key.
// It is upserted in place and never deleted.
type LockoutRecord struct {
	AccountKey     string     // Normalized email.
	FailedAttempts int        // Consecutive failures inside the lockout window.
	LastFailedAt   *time.Time // Used for stale-failure decay.
	LockedUntil    *time.Time // Set once FailedAttempts reaches the threshold.
	UpdatedAt      time.Time
}

// IsLocked reports whether the record blocks logins at now.
func (r *LockoutRecord) IsLocked(now time.Time) bool {
	return r != nil && r.LockedUntil != nil && r.LockedUntil.After(now)
}

// Clear resets the record after a verified successful authentication.
func (r *LockoutRecord) Clear() {
	r.FailedAttempts = 0
	r.LastFailedAt = nil
	r.LockedUntil = nil
}
