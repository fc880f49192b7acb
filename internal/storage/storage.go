package storage

//go:generate mockgen -destination=../../mocks/mock_storage.go -package=mocks github.com/pribylovaa/credit-dispute/internal/storage Storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/pribylovaa/credit-dispute/internal/models"
)

var (
	// ErrNotFound — record not found (user/token/profile/item/dispute).
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — unique violation (email/refresh token hash).
	ErrAlreadyExists = errors.New("already exists")
)

// UserStorage — operations on users.
type UserStorage interface {
	// SaveUser inserts a new user.
	SaveUser(ctx context.Context, user *models.User) error
	// UpsertUser inserts or overwrites a user keyed by email (seeding only).
	UpsertUser(ctx context.Context, user *models.User) error
	// UserByEmail finds a user by exact email.
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	// UserByID finds a user by id.
	UserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	// ListUsers returns all users, newest first.
	ListUsers(ctx context.Context) ([]models.User, error)
}

// RefreshTokenStorage — operations on refresh tokens.
type RefreshTokenStorage interface {
	// SaveRefreshToken inserts a token record.
	SaveRefreshToken(ctx context.Context, token *models.RefreshToken) error
	// ConsumeRefreshToken deletes the token with the given hash iff it exists
	// and has not expired at now, returning its owner. Otherwise ErrNotFound
	// and nothing is deleted.
	ConsumeRefreshToken(ctx context.Context, hash string, now time.Time) (uuid.UUID, error)
	// DeleteUserRefreshTokens removes every token of the user.
	DeleteUserRefreshTokens(ctx context.Context, userID uuid.UUID) (int64, error)
	// DeleteExpiredTokens removes tokens with expires_at <= now.
	DeleteExpiredTokens(ctx context.Context, now time.Time) (int64, error)
}

// CreditStorage — credit profiles and their report items.
type CreditStorage interface {
	// CreditProfileByUser returns the profile of the user.
	CreditProfileByUser(ctx context.Context, userID uuid.UUID) (*models.CreditProfile, error)
	// CreateCreditReport stores a profile with its items in one transaction.
	// If the user already has a profile it is left intact and returned.
	CreateCreditReport(ctx context.Context, report *models.CreditReport) (*models.CreditProfile, error)
	// UpdateCreditProfile overwrites the summary fields of the user's profile.
	UpdateCreditProfile(ctx context.Context, profile *models.CreditProfile) (*models.CreditProfile, error)
	// CreditReportItems lists items of the user's profile, newest account first.
	CreditReportItems(ctx context.Context, userID uuid.UUID) ([]models.CreditReportItem, error)
	// CreditReportItemOwner returns the user that owns the item.
	CreditReportItemOwner(ctx context.Context, itemID uuid.UUID) (uuid.UUID, error)
}

// DisputeStorage — disputes.
type DisputeStorage interface {
	// SaveDispute inserts a dispute.
	SaveDispute(ctx context.Context, d *models.Dispute) error
	// DisputeByID returns the dispute joined with item and owner fields.
	DisputeByID(ctx context.Context, id uuid.UUID) (*models.Dispute, error)
	// ListDisputes returns disputes matching the filter, newest first.
	ListDisputes(ctx context.Context, filter models.DisputeFilter) ([]models.Dispute, error)
	// UpdateDispute applies the admin update.
	UpdateDispute(ctx context.Context, id uuid.UUID, upd models.DisputeUpdate, now time.Time) error
	// DisputeStats aggregates counts; disputes created after since count as recent.
	DisputeStats(ctx context.Context, since time.Time) (*models.DisputeStats, error)
}

// LetterStorage — generated dispute letters.
type LetterStorage interface {
	// SaveDisputeLetter inserts a letter.
	SaveDisputeLetter(ctx context.Context, l *models.DisputeLetter) error
	// DisputeLetters lists letters of a dispute, newest first.
	DisputeLetters(ctx context.Context, disputeID uuid.UUID) ([]models.DisputeLetter, error)
}

// Storage — the persistence contract of the service.
type Storage interface {
	UserStorage
	RefreshTokenStorage
	CreditStorage
	DisputeStorage
	LetterStorage
	Close()
}
