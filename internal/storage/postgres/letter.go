package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pribylovaa/credit-dispute/internal/models"
)

// SaveDisputeLetter inserts a letter.
func (s *Storage) SaveDisputeLetter(ctx context.Context, l *models.DisputeLetter) error {
	const op = "storage.postgres.SaveDisputeLetter"

	query := `
		INSERT INTO dispute_letters(id, dispute_id, letter_content, generated_with_ai, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	if _, err := s.db.Exec(ctx, query, l.ID, l.DisputeID, l.Content, l.GeneratedWithAI, l.CreatedAt); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// DisputeLetters lists letters of a dispute, newest first.
func (s *Storage) DisputeLetters(ctx context.Context, disputeID uuid.UUID) ([]models.DisputeLetter, error) {
	const op = "storage.postgres.DisputeLetters"

	query := `
		SELECT id, dispute_id, letter_content, generated_with_ai, created_at
		FROM dispute_letters
		WHERE dispute_id = $1
		ORDER BY created_at DESC
	`

	rows, err := s.db.Query(ctx, query, disputeID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	letters := make([]models.DisputeLetter, 0)
	for rows.Next() {
		var l models.DisputeLetter
		if err := rows.Scan(&l.ID, &l.DisputeID, &l.Content, &l.GeneratedWithAI, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		letters = append(letters, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return letters, nil
}
