package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pribylovaa/credit-dispute/internal/models"
	"github.com/pribylovaa/credit-dispute/internal/pkg/log"
	"github.com/pribylovaa/credit-dispute/internal/storage"
)

// letterSaveTimeout bounds persisting a generated letter. The write runs
// detached from the request deadline, which a slow AI call may have used up.
const letterSaveTimeout = 5 * time.Second

// LetterInput — letter generation request. DisputeID is optional; when set
// the letter is stored against that dispute.
type LetterInput struct {
	DisputeID   uuid.UUID
	Reason      string
	AccountName string
	AccountType string
}

// GenerateLetter writes a dispute letter with the configured strategy. The
// generator never fails the request: AI errors fall back to the template.
func (s *Service) GenerateLetter(ctx context.Context, caller models.Identity, in LetterInput) (*models.GeneratedLetter, error) {
	const op = "service.letters.GenerateLetter"

	req := models.LetterRequest{
		DisputeID:   in.DisputeID,
		Reason:      strings.TrimSpace(in.Reason),
		AccountName: strings.TrimSpace(in.AccountName),
		AccountType: strings.TrimSpace(in.AccountType),
	}

	if in.DisputeID != uuid.Nil {
		d, err := s.Dispute(ctx, caller, in.DisputeID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		if req.Reason == "" {
			req.Reason = d.Reason
		}
		if req.AccountName == "" {
			req.AccountName = d.AccountName
		}
		if req.AccountType == "" {
			req.AccountType = d.AccountType
		}
	}

	if req.Reason == "" || req.AccountName == "" || req.AccountType == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidInput)
	}

	res, err := s.letters.Generate(ctx, req)
	if err != nil {
		log.From(ctx).Error("letter_generate_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	res.Timestamp = s.now()

	if in.DisputeID != uuid.Nil {
		l := &models.DisputeLetter{
			ID:              uuid.New(),
			DisputeID:       in.DisputeID,
			Content:         res.Content,
			GeneratedWithAI: res.GeneratedWithAI,
			CreatedAt:       res.Timestamp,
		}
		sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), letterSaveTimeout)
		err := s.storage.SaveDisputeLetter(sctx, l)
		cancel()
		if err != nil {
			log.From(ctx).Error("letter_save_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	log.From(ctx).Info("letter_generated",
		slog.String("op", op),
		slog.Bool("ai", res.GeneratedWithAI),
	)

	return &res, nil
}

// DisputeLetters lists stored letters of a dispute. Owner or admin only.
func (s *Service) DisputeLetters(ctx context.Context, caller models.Identity, disputeID uuid.UUID) ([]models.DisputeLetter, error) {
	const op = "service.letters.DisputeLetters"

	if _, err := s.Dispute(ctx, caller, disputeID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	letters, err := s.storage.DisputeLetters(ctx, disputeID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return letters, nil
}
