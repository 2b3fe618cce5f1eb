package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is the signed session token handed to a client.
type Session struct {
	Token     string
	SubjectID uuid.UUID
	Email     string
	Handle    string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
