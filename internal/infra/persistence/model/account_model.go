package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table. IDs are UUIDv7 generated by the application.
type AccountModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex:idx_accounts_email;not null"`
	Handle       string    `gorm:"type:varchar(64);uniqueIndex:idx_accounts_handle;not null"`
	DisplayName  string    `gorm:"type:varchar(100)"`
	AvatarURL    string    `gorm:"type:text"`
	PasswordHash string    `gorm:"type:varchar(255)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Providers []ProviderLinkModel `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}

// ProviderLinkModel mirrors the 'account_providers' table. A provider subject
// belongs to one account, and an account links each provider at most once.
type ProviderLinkModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_account_providers_account_provider"`
	Provider       string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_account_providers_account_provider;uniqueIndex:idx_account_providers_subject"`
	ProviderUserID string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_account_providers_subject"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProviderLinkModel) TableName() string {
	return "account_providers"
}
