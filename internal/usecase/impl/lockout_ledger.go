package impl

import (
	"context"
	"log/slog"
	"time"

	"voiceauth/config"
	deliverycontext "voiceauth/internal/delivery/context"
	"voiceauth/internal/domain/entity"
	"voiceauth/internal/domain/repository"
	"voiceauth/internal/usecase"

	"go.uber.org/fx"
)

// lockoutLedger implements usecase.LockoutLedger. Every storage error is
// logged and treated as "not locked".
type lockoutLedger struct {
	repo      repository.LockoutRepository
	threshold int
	window    time.Duration
	duration  time.Duration
	now       func() time.Time
	logger    *slog.Logger
}

// LockoutLedgerParams holds dependencies for the lockout ledger, injected by Fx.
type LockoutLedgerParams struct {
	fx.In

	Repo   repository.LockoutRepository
	Config *config.Config
	Logger *slog.Logger
}

// NewLockoutLedger is the constructor for lockoutLedger.
func NewLockoutLedger(params LockoutLedgerParams) usecase.LockoutLedger {
	return newLockoutLedger(params.Repo, params.Config.Lockout, params.Logger, time.Now)
}

func newLockoutLedger(repo repository.LockoutRepository, cfg config.LockoutConfig, logger *slog.Logger, now func() time.Time) *lockoutLedger {
	return &lockoutLedger{
		repo:      repo,
		threshold: cfg.Threshold,
		window:    cfg.Window,
		duration:  cfg.Duration,
		now:       now,
		logger:    logger,
	}
}

func (l *lockoutLedger) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, l.logger)
}

// CheckLocked reports whether key is locked right now.
func (l *lockoutLedger) CheckLocked(ctx context.Context, key string) bool {
	record, err := l.repo.Find(ctx, key)
	if err != nil {
		l.log(ctx).Warn("Lockout lookup failed, allowing attempt", slog.Any("error", err))

		return false
	}

	return record.IsLocked(l.now())
}

// RecordFailure increments the counter, restarting it at 1 when the previous
// failure is older than the window, and locks once the threshold is reached.
func (l *lockoutLedger) RecordFailure(ctx context.Context, key string) bool {
	becameLocked := false

	record, err := l.repo.Apply(ctx, key, func(record *entity.LockoutRecord) {
		becameLocked = false
		now := l.now()

		if record.LastFailedAt != nil && now.Sub(*record.LastFailedAt) > l.window {
			record.FailedAttempts = 0
			record.LockedUntil = nil
		}

		record.FailedAttempts++
		record.LastFailedAt = &now

		if record.FailedAttempts >= l.threshold && !record.IsLocked(now) {
			lockedUntil := now.Add(l.duration)
			record.LockedUntil = &lockedUntil
			becameLocked = true
		}
	})
	if err != nil {
		l.log(ctx).Warn("Failed to record login failure", slog.Any("error", err))

		return false
	}

	if becameLocked {
		l.log(ctx).Warn("Account locked after repeated failures",
			slog.Int("attempts", record.FailedAttempts),
			slog.Time("locked_until", *record.LockedUntil),
		)
	}

	return becameLocked
}

// Reset clears failures for key. Keys without failures are not written.
func (l *lockoutLedger) Reset(ctx context.Context, key string) {
	record, err := l.repo.Find(ctx, key)
	if err != nil {
		l.log(ctx).Warn("Lockout lookup failed during reset", slog.Any("error", err))

		return
	}
	if record == nil || (record.FailedAttempts == 0 && record.LockedUntil == nil) {
		return
	}

	if _, err := l.repo.Apply(ctx, key, func(record *entity.LockoutRecord) {
		record.Clear()
	}); err != nil {
		l.log(ctx).Warn("Failed to reset lockout record", slog.Any("error", err))
	}
}
