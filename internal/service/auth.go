package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/pribylovaa/credit-dispute/internal/models"
	"github.com/pribylovaa/credit-dispute/internal/pkg/log"
	"github.com/pribylovaa/credit-dispute/internal/pkg/redact"
	"github.com/pribylovaa/credit-dispute/internal/storage"
)

// RegisterInput — registration fields.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// Register creates a user with role "user" and opens its first session.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*models.Session, error) {
	const op = "service.auth.Register"

	lg := log.From(ctx)

	email, err := validateEmail(in.Email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.validatePassword(in.Password); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	_, err = s.storage.UserByEmail(ctx, email)
	if err == nil {
		lg.Info("register_email_taken",
			slog.String("op", op),
			slog.String("email", redact.Email(email)),
		)
		return nil, fmt.Errorf("%s: %w", op, ErrEmailTaken)
	}
	if !errors.Is(err, storage.ErrNotFound) {
		lg.Error("register_lookup_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	hashed, err := hashPassword(in.Password, s.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	user := &models.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hashed,
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Role:         models.RoleUser,
		CreatedAt:    s.now(),
	}

	if err := s.storage.SaveUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, fmt.Errorf("%s: %w", op, ErrEmailTaken)
		}

		lg.Error("register_save_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	sess, err := s.issueTokenPair(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lg.Info("user_registered",
		slog.String("op", op),
		slog.String("user_id", user.ID.String()),
	)

	return sess, nil
}

// Login verifies credentials and opens a new session. Unknown email and
// wrong password both yield ErrInvalidCredentials after one bcrypt check.
func (s *Service) Login(ctx context.Context, email, password string) (*models.Session, error) {
	const op = "service.auth.Login"

	lg := log.From(ctx)

	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	user, err := s.storage.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.burnPasswordCheck(password)
			lg.Info("login_failed",
				slog.String("op", op),
				slog.String("email", redact.Email(email)),
			)
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}

		lg.Error("login_lookup_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !checkPassword(user.PasswordHash, password) {
		lg.Info("login_failed",
			slog.String("op", op),
			slog.String("email", redact.Email(email)),
		)
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	sess, err := s.issueTokenPair(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return sess, nil
}

// Refresh rotates a refresh token: the presented token is consumed and a new
// pair is issued. Unknown or expired tokens delete nothing.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*models.Session, error) {
	const op = "service.auth.Refresh"

	lg := log.From(ctx)

	if strings.TrimSpace(refreshToken) == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	userID, err := s.storage.ConsumeRefreshToken(ctx, hashRefreshToken(refreshToken), s.now())
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("refresh_rejected",
				slog.String("op", op),
				slog.String("token", redact.Token()),
			)
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
		}

		lg.Error("refresh_consume_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	user, err := s.loadSessionUser(ctx, op, userID)
	if err != nil {
		return nil, err
	}

	sess, err := s.issueTokenPair(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return sess, nil
}

// RegenerateToken revokes every refresh token of userID and issues exactly
// one new pair.
func (s *Service) RegenerateToken(ctx context.Context, userID uuid.UUID) (*models.Session, error) {
	const op = "service.auth.RegenerateToken"

	user, err := s.loadSessionUser(ctx, op, userID)
	if err != nil {
		return nil, err
	}

	n, err := s.storage.DeleteUserRefreshTokens(ctx, userID)
	if err != nil {
		log.From(ctx).Error("regenerate_revoke_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.From(ctx).Info("refresh_tokens_revoked",
		slog.String("op", op),
		slog.String("user_id", userID.String()),
		slog.Int64("count", n),
	)

	sess, err := s.issueTokenPair(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return sess, nil
}

// Logout revokes every refresh token of userID. Issued access tokens stay
// valid until they expire.
func (s *Service) Logout(ctx context.Context, userID uuid.UUID) error {
	const op = "service.auth.Logout"

	n, err := s.storage.DeleteUserRefreshTokens(ctx, userID)
	if err != nil {
		log.From(ctx).Error("logout_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return fmt.Errorf("%s: %w", op, err)
	}

	log.From(ctx).Info("user_logged_out",
		slog.String("op", op),
		slog.String("user_id", userID.String()),
		slog.Int64("revoked", n),
	)

	return nil
}

// loadSessionUser fetches the user a token refers to; a vanished user is
// reported as ErrInvalidToken.
func (s *Service) loadSessionUser(ctx context.Context, op string, userID uuid.UUID) (*models.User, error) {
	user, err := s.storage.UserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.From(ctx).Warn("session_user_missing",
				slog.String("op", op),
				slog.String("user_id", userID.String()),
			)
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// PurgeExpiredRefreshTokens deletes refresh tokens expired at now.
func (s *Service) PurgeExpiredRefreshTokens(ctx context.Context) (int64, error) {
	const op = "service.auth.PurgeExpiredRefreshTokens"

	n, err := s.storage.DeleteExpiredTokens(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if n > 0 {
		log.From(ctx).Info("refresh_tokens_purged",
			slog.String("op", op),
			slog.Int64("count", n),
		)
	}

	return n, nil
}
