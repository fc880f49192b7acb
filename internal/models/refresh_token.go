package models

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken — persisted refresh capability. Only the sha256 digest of the
// token handed to the client is stored.
type RefreshToken struct {
	TokenHash string
	UserID    uuid.UUID
	ExpiresAt time.Time
	CreatedAt time.Time
}
