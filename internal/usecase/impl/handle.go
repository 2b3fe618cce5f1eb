package impl

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	domainerrors "voiceauth/internal/domain/errors"
	"voiceauth/internal/domain/repository"
	"voiceauth/internal/errors"
)

const (
	maxHandleAttempts = 10
	maxHandleBase     = 20
	handleTailDigits  = 4
	fallbackHandle    = "user"
)

var errHandleExhausted = domainerrors.NewAuthError(domainerrors.KindHandleExhausted, nil)

// handleTail returns a random numeric suffix.
type handleTail func() (string, error)

func randomHandleTail() (string, error) {
	limit := big.NewInt(1)
	for range handleTailDigits {
		limit.Mul(limit, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate handle tail")
	}

	return fmt.Sprintf("%0*d", handleTailDigits, n.Int64()), nil
}

// handleBase derives the stem of a handle from a display name, falling back
// to the email local part. Only [a-z0-9_] survive.
func handleBase(displayName, email string) string {
	if base := sanitizeHandle(displayName); base != "" {
		return base
	}

	local, _, _ := strings.Cut(email, "@")
	if base := sanitizeHandle(local); base != "" {
		return base
	}

	return fallbackHandle
}

func sanitizeHandle(s string) string {
	var b strings.Builder
	lastUnderscore := true

	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		case r == '_' || r == ' ' || r == '.' || r == '-':
			if !lastUnderscore {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
		if b.Len() >= maxHandleBase {
			break
		}
	}

	return strings.Trim(b.String(), "_")
}

// allocateHandle probes candidate handles until a free one is found.
func allocateHandle(ctx context.Context, repo repository.AccountRepository, base string, tail handleTail) (string, error) {
	for range maxHandleAttempts {
		suffix, err := tail()
		if err != nil {
			return "", err
		}

		candidate := base + suffix
		_, err = repo.FindByHandle(ctx, candidate)
		if errors.Is(err, repository.ErrAccountNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", errors.Wrap(err, "failed to probe handle")
		}
	}

	return "", errHandleExhausted
}
