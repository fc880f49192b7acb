package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pribylovaa/credit-dispute/internal/models"
	"github.com/pribylovaa/credit-dispute/internal/storage"
)

// SaveRefreshToken inserts a token record.
func (s *Storage) SaveRefreshToken(ctx context.Context, token *models.RefreshToken) error {
	const op = "storage.postgres.SaveRefreshToken"

	query := `
        INSERT INTO refresh_tokens(token_hash, user_id, expires_at, created_at)
        VALUES ($1, $2, $3, $4)
    `

	_, err := s.db.Exec(ctx, query,
		token.TokenHash,
		token.UserID,
		token.ExpiresAt,
		token.CreatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ConsumeRefreshToken deletes a live token in a single statement, so two
// concurrent refreshes with the same token cannot both succeed.
func (s *Storage) ConsumeRefreshToken(ctx context.Context, hash string, now time.Time) (uuid.UUID, error) {
	const op = "storage.postgres.ConsumeRefreshToken"

	query := `
		DELETE FROM refresh_tokens
		WHERE token_hash = $1 AND expires_at > $2
		RETURNING user_id
	`

	var userID uuid.UUID
	err := s.db.QueryRow(ctx, query, hash, now).Scan(&userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return userID, nil
}

// DeleteUserRefreshTokens removes every token of the user.
func (s *Storage) DeleteUserRefreshTokens(ctx context.Context, userID uuid.UUID) (int64, error) {
	const op = "storage.postgres.DeleteUserRefreshTokens"

	tag, err := s.db.Exec(ctx, `DELETE FROM refresh_tokens WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return tag.RowsAffected(), nil
}

// DeleteExpiredTokens removes tokens with expires_at <= now.
func (s *Storage) DeleteExpiredTokens(ctx context.Context, now time.Time) (int64, error) {
	const op = "storage.postgres.DeleteExpiredTokens"

	query := `
        DELETE FROM refresh_tokens
        WHERE expires_at <= $1
    `

	tag, err := s.db.Exec(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return tag.RowsAffected(), nil
}
