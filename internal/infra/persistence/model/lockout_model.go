package model

import "time"

// LockoutModel mirrors the 'login_lockouts' table, one row per account key.
type LockoutModel struct {
	AccountKey     string `gorm:"type:varchar(255);primaryKey"`
	FailedAttempts int    `gorm:"not null;default:0"`
	LastFailedAt   *time.Time
	LockedUntil    *time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (LockoutModel) TableName() string {
	return "login_lockouts"
}
