package postgres

import (
	"context"
	"time"

	"voiceauth/internal/domain/entity"
	"voiceauth/internal/domain/repository"
	"voiceauth/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// lockoutRepository stores lockout records in 'login_lockouts'.
type lockoutRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewLockoutRepository is the constructor for lockoutRepository.
func NewLockoutRepository(db *gorm.DB) repository.LockoutRepository {
	return &lockoutRepository{db: db, now: time.Now}
}

// Find returns the record for key, or nil when none exists. Replica lag must
// not hide a fresh lock, so the read goes to the primary.
func (repo *lockoutRepository) Find(ctx context.Context, key string) (*entity.LockoutRecord, error) {
	var lockoutM model.LockoutModel

	err := repo.db.WithContext(ctx).Clauses(dbresolver.Write).Where("account_key = ?", key).First(&lockoutM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find lockout record")
	}

	return toLockoutDomain(&lockoutM), nil
}

// Apply seeds the row if missing, locks it with SELECT ... FOR UPDATE and
// writes the mutated record back in the same transaction.
func (repo *lockoutRepository) Apply(ctx context.Context, key string, mutate repository.LockoutMutation) (*entity.LockoutRecord, error) {
	var result *entity.LockoutRecord

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		seed := model.LockoutModel{AccountKey: key, UpdatedAt: repo.now()}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&seed).Error; err != nil {
			return errors.Wrap(err, "failed to seed lockout record")
		}

		var lockoutM model.LockoutModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("account_key = ?", key).
			First(&lockoutM).Error; err != nil {
			return errors.Wrap(err, "failed to lock lockout record")
		}

		record := toLockoutDomain(&lockoutM)
		mutate(record)
		record.UpdatedAt = repo.now()

		if err := tx.Save(fromLockoutDomain(record)).Error; err != nil {
			return errors.Wrap(err, "failed to save lockout record")
		}
		result = record

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func toLockoutDomain(data *model.LockoutModel) *entity.LockoutRecord {
	return &entity.LockoutRecord{
		AccountKey:     data.AccountKey,
		FailedAttempts: data.FailedAttempts,
		LastFailedAt:   data.LastFailedAt,
		LockedUntil:    data.LockedUntil,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromLockoutDomain(data *entity.LockoutRecord) *model.LockoutModel {
	return &model.LockoutModel{
		AccountKey:     data.AccountKey,
		FailedAttempts: data.FailedAttempts,
		LastFailedAt:   data.LastFailedAt,
		LockedUntil:    data.LockedUntil,
		UpdatedAt:      data.UpdatedAt,
	}
}
