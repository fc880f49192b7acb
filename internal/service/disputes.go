package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pribylovaa/credit-dispute/internal/cache"
	"github.com/pribylovaa/credit-dispute/internal/models"
	"github.com/pribylovaa/credit-dispute/internal/pkg/log"
	"github.com/pribylovaa/credit-dispute/internal/storage"
)

// recentWindow — disputes newer than this count as recent in stats.
const recentWindow = 7 * 24 * time.Hour

// CreateDispute files a pending dispute against itemID. The item must be on
// the caller's report unless the caller is an admin.
func (s *Service) CreateDispute(ctx context.Context, caller models.Identity, itemID uuid.UUID, reason string) (*models.Dispute, error) {
	const op = "service.disputes.CreateDispute"

	reason = strings.TrimSpace(reason)
	if itemID == uuid.Nil || reason == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidInput)
	}

	owner, err := s.storage.CreditReportItemOwner(ctx, itemID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !caller.CanAccess(owner) {
		return nil, fmt.Errorf("%s: %w", op, ErrForbidden)
	}

	d := &models.Dispute{
		ID:                 uuid.New(),
		UserID:             owner,
		CreditReportItemID: itemID,
		Reason:             reason,
		Status:             models.DisputePending,
		CreatedAt:          s.now(),
	}

	if err := s.storage.SaveDispute(ctx, d); err != nil {
		log.From(ctx).Error("dispute_save_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.invalidateStats(ctx, op)

	created, err := s.storage.DisputeByID(ctx, d.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.From(ctx).Info("dispute_created",
		slog.String("op", op),
		slog.String("dispute_id", d.ID.String()),
	)

	return created, nil
}

// DisputeHistory lists disputes: all for admins, own for users. An empty
// status means any.
func (s *Service) DisputeHistory(ctx context.Context, caller models.Identity, status models.DisputeStatus) ([]models.Dispute, error) {
	const op = "service.disputes.DisputeHistory"

	if status != "" && !status.Valid() {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidStatus)
	}

	filter := models.DisputeFilter{Status: status}
	if !caller.IsAdmin() {
		filter.UserID = caller.UserID
	}

	list, err := s.storage.ListDisputes(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return list, nil
}

// Dispute returns one dispute. Owner or admin only.
func (s *Service) Dispute(ctx context.Context, caller models.Identity, id uuid.UUID) (*models.Dispute, error) {
	const op = "service.disputes.Dispute"

	d, err := s.storage.DisputeByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !caller.CanAccess(d.UserID) {
		return nil, fmt.Errorf("%s: %w", op, ErrForbidden)
	}

	return d, nil
}

// UpdateDisputeStatus applies an admin review. Admin only.
func (s *Service) UpdateDisputeStatus(ctx context.Context, caller models.Identity, id uuid.UUID, upd models.DisputeUpdate) (*models.Dispute, error) {
	const op = "service.disputes.UpdateDisputeStatus"

	if !caller.IsAdmin() {
		return nil, fmt.Errorf("%s: %w", op, ErrForbidden)
	}

	if upd.Status != nil && !upd.Status.Valid() {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidStatus)
	}

	if upd.Status == nil && upd.AdminNotes == nil && upd.ResolutionNotes == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidInput)
	}

	if err := s.storage.UpdateDispute(ctx, id, upd, s.now()); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		log.From(ctx).Error("dispute_update_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.invalidateStats(ctx, op)

	d, err := s.storage.DisputeByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return d, nil
}

// DisputeStats returns the admin overview, served from cache when possible.
func (s *Service) DisputeStats(ctx context.Context, caller models.Identity) (*models.DisputeStats, error) {
	const op = "service.disputes.DisputeStats"

	if !caller.IsAdmin() {
		return nil, fmt.Errorf("%s: %w", op, ErrForbidden)
	}

	lg := log.From(ctx)

	// version stays -1 unless the cache answered, so a broken cache is
	// bypassed instead of written to.
	version := int64(-1)
	if s.stats != nil {
		cached, ok, err := s.stats.Get(ctx)
		switch {
		case err != nil:
			lg.Warn("stats_cache_get_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
		case ok:
			return cached, nil
		default:
			if version, err = s.stats.Version(ctx); err != nil {
				version = -1
				lg.Warn("stats_cache_version_failed",
					slog.String("op", op),
					slog.String("err", err.Error()),
				)
			}
		}
	}

	stats, err := s.storage.DisputeStats(ctx, s.now().Add(-recentWindow))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if version >= 0 {
		err := s.stats.Set(ctx, stats, version, s.statsTTL)
		switch {
		case errors.Is(err, cache.ErrStale):
			lg.Debug("stats_cache_set_skipped", slog.String("op", op))
		case err != nil:
			lg.Warn("stats_cache_set_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
		}
	}

	return stats, nil
}

// invalidateStats drops the cached overview; failures are only logged.
func (s *Service) invalidateStats(ctx context.Context, op string) {
	if s.stats == nil {
		return
	}

	if err := s.stats.Invalidate(ctx); err != nil {
		log.From(ctx).Warn("stats_cache_invalidate_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
	}
}
