package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pribylovaa/credit-dispute/internal/models"
	"github.com/pribylovaa/credit-dispute/internal/pkg/log"
	"github.com/pribylovaa/credit-dispute/internal/storage"
	"golang.org/x/sync/singleflight"
)

// profileCreateTimeout bounds a shared first-time profile creation. The work
// is detached from any single caller so one caller leaving does not fail
// the others waiting on it.
const profileCreateTimeout = 30 * time.Second

// CreditProfile returns the profile of userID, creating it from the credit
// provider on first access. Owner or admin only.
func (s *Service) CreditProfile(ctx context.Context, caller models.Identity, userID uuid.UUID) (*models.CreditProfile, error) {
	const op = "service.credit.CreditProfile"

	if !caller.CanAccess(userID) {
		return nil, fmt.Errorf("%s: %w", op, ErrForbidden)
	}

	p, err := s.profileOrCreate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}

// CreditReportItems lists the report items of userID, newest account first.
func (s *Service) CreditReportItems(ctx context.Context, caller models.Identity, userID uuid.UUID) ([]models.CreditReportItem, error) {
	const op = "service.credit.CreditReportItems"

	if !caller.CanAccess(userID) {
		return nil, fmt.Errorf("%s: %w", op, ErrForbidden)
	}

	if _, err := s.profileOrCreate(ctx, userID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	items, err := s.storage.CreditReportItems(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

// RefreshCreditProfile re-fetches the summary from the provider and
// overwrites the stored profile. Items are kept.
func (s *Service) RefreshCreditProfile(ctx context.Context, caller models.Identity, userID uuid.UUID) (*models.CreditProfile, error) {
	const op = "service.credit.RefreshCreditProfile"

	if !caller.CanAccess(userID) {
		return nil, fmt.Errorf("%s: %w", op, ErrForbidden)
	}

	if _, err := s.profileOrCreate(ctx, userID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := s.now()
	report, err := s.provider.Fetch(ctx, userID, now)
	if err != nil {
		log.From(ctx).Error("credit_fetch_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	report.Profile.UpdatedAt = now
	p, err := s.storage.UpdateCreditProfile(ctx, &report.Profile)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}

// profileOrCreate loads the profile; on a miss it fetches a report and
// stores it. Concurrent misses for one user share a single fetch.
func (s *Service) profileOrCreate(ctx context.Context, userID uuid.UUID) (*models.CreditProfile, error) {
	const op = "service.credit.profileOrCreate"

	p, err := s.storage.CreditProfileByUser(ctx, userID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ch := s.profiles.DoChan(userID.String(), func() (any, error) {
		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), profileCreateTimeout)
		defer cancel()

		if _, err := s.storage.UserByID(fctx, userID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}

		report, err := s.provider.Fetch(fctx, userID, s.now())
		if err != nil {
			return nil, err
		}

		return s.storage.CreateCreditReport(fctx, report)
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	case res = <-ch:
	}

	if res.Err != nil {
		log.From(ctx).Warn("credit_profile_create_failed",
			slog.String("op", op),
			slog.String("user_id", userID.String()),
			slog.String("err", res.Err.Error()),
		)
		return nil, fmt.Errorf("%s: %w", op, res.Err)
	}

	log.From(ctx).Info("credit_profile_created",
		slog.String("op", op),
		slog.String("user_id", userID.String()),
		slog.Bool("shared", res.Shared),
	)

	return res.Val.(*models.CreditProfile), nil
}
