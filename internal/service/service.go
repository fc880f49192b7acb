// service holds the business logic: the session lifecycle (register, login,
// refresh rotation, forced re-issue, logout), access-token verification and
// the credit/dispute/letter operations that consume the verified identity.
//
// Service keeps no per-request state and is safe for concurrent use as long
// as the storage passed to New is.
//
// Errors below are mapped to HTTP statuses by internal/http/errors.
package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pribylovaa/credit-dispute/internal/cache"
	"github.com/pribylovaa/credit-dispute/internal/config"
	"github.com/pribylovaa/credit-dispute/internal/credit"
	"github.com/pribylovaa/credit-dispute/internal/letter"
	"github.com/pribylovaa/credit-dispute/internal/models"
	"github.com/pribylovaa/credit-dispute/internal/storage"
	"golang.org/x/sync/singleflight"
)

var (
	// ErrInvalidCredentials — unknown email or wrong password. The two cases
	// are indistinguishable to the caller. HTTP 401.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken — malformed/forged access token, or a refresh token that
	// is unknown or expired, or whose owner no longer exists. HTTP 401.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired — access token past its expiry. HTTP 401.
	ErrTokenExpired = errors.New("token expired")

	// ErrEmailTaken — registration with an email that is already stored. HTTP 409.
	ErrEmailTaken = errors.New("email already taken")

	// ErrRefreshTokenCollision — could not store a unique refresh token after
	// several attempts. HTTP 500.
	ErrRefreshTokenCollision = errors.New("refresh token collision")

	// ErrInvalidEmail — malformed email. HTTP 400.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrWeakPassword — password shorter than the configured minimum. HTTP 400.
	ErrWeakPassword = errors.New("password is too short")

	// ErrPasswordTooLong — password exceeds the 72 bytes bcrypt can hash. HTTP 400.
	ErrPasswordTooLong = errors.New("password is too long")

	// ErrForbidden — authenticated caller is neither the owner nor an admin. HTTP 403.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound — referenced profile, item, dispute or user does not exist. HTTP 404.
	ErrNotFound = errors.New("not found")

	// ErrInvalidStatus — unknown dispute status. HTTP 400.
	ErrInvalidStatus = errors.New("invalid dispute status")

	// ErrInvalidInput — missing or malformed argument. HTTP 400.
	ErrInvalidInput = errors.New("invalid input")
)

// CreditProvider fetches a user's report from the (mock) bureau.
type CreditProvider interface {
	Fetch(ctx context.Context, userID uuid.UUID, now time.Time) (*models.CreditReport, error)
}

// Service implements the business operations.
type Service struct {
	storage storage.Storage
	cfg     config.AuthConfig

	stats    cache.StatsCache // nil when Redis is not configured
	statsTTL time.Duration

	provider CreditProvider
	letters  letter.Generator

	// collapses concurrent first-time profile creation per user.
	profiles singleflight.Group

	dummyOnce sync.Once
	dummyHash string

	now func() time.Time
}

// New creates a Service with the mock credit provider and template letters.
func New(storage storage.Storage, cfg config.AuthConfig) *Service {
	return &Service{
		storage:  storage,
		cfg:      cfg,
		provider: credit.New(0),
		letters:  letter.NewTemplate(),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// SetStatsCache enables caching of the dispute overview.
func (s *Service) SetStatsCache(c cache.StatsCache, ttl time.Duration) {
	s.stats = c
	s.statsTTL = ttl
}

// SetCreditProvider replaces the credit data source.
func (s *Service) SetCreditProvider(p CreditProvider) {
	s.provider = p
}

// SetLetterGenerator replaces the letter strategy.
func (s *Service) SetLetterGenerator(g letter.Generator) {
	s.letters = g
}
