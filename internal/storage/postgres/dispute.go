package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pribylovaa/credit-dispute/internal/models"
	"github.com/pribylovaa/credit-dispute/internal/storage"
)

const disputeSelect = `
	SELECT d.id, d.user_id, d.credit_report_item_id, d.dispute_reason, d.status,
	       COALESCE(d.admin_notes, ''), COALESCE(d.resolution_notes, ''),
	       d.created_at, d.updated_at, d.resolved_at,
	       i.account_name, i.account_type, i.balance, i.payment_status,
	       u.first_name, u.last_name, u.email
	FROM disputes d
	JOIN credit_report_items i ON i.id = d.credit_report_item_id
	JOIN users u ON u.id = d.user_id
`

// SaveDispute inserts a dispute.
func (s *Storage) SaveDispute(ctx context.Context, d *models.Dispute) error {
	const op = "storage.postgres.SaveDispute"

	query := `
		INSERT INTO disputes(id, user_id, credit_report_item_id, dispute_reason, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
	`

	_, err := s.db.Exec(ctx, query,
		d.ID,
		d.UserID,
		d.CreditReportItemID,
		d.Reason,
		d.Status,
		d.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// DisputeByID returns the dispute joined with item and owner fields.
func (s *Storage) DisputeByID(ctx context.Context, id uuid.UUID) (*models.Dispute, error) {
	const op = "storage.postgres.DisputeByID"

	d, err := scanDispute(s.db.QueryRow(ctx, disputeSelect+` WHERE d.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return d, nil
}

// ListDisputes returns disputes matching the filter, newest first.
func (s *Storage) ListDisputes(ctx context.Context, filter models.DisputeFilter) ([]models.Dispute, error) {
	const op = "storage.postgres.ListDisputes"

	var (
		where []string
		args  []any
	)
	if filter.UserID != uuid.Nil {
		args = append(args, filter.UserID)
		where = append(where, fmt.Sprintf("d.user_id = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		where = append(where, fmt.Sprintf("d.status = $%d", len(args)))
	}

	query := disputeSelect
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY d.created_at DESC"

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	disputes := make([]models.Dispute, 0)
	for rows.Next() {
		d, err := scanDispute(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		disputes = append(disputes, *d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return disputes, nil
}

// UpdateDispute applies the admin update. Moving to resolved stamps resolved_at.
func (s *Storage) UpdateDispute(ctx context.Context, id uuid.UUID, upd models.DisputeUpdate, now time.Time) error {
	const op = "storage.postgres.UpdateDispute"

	query := `
		UPDATE disputes
		SET status           = COALESCE($2, status),
		    admin_notes      = COALESCE($3, admin_notes),
		    resolution_notes = COALESCE($4, resolution_notes),
		    resolved_at      = CASE WHEN $2 = 'resolved' THEN $5 ELSE resolved_at END,
		    updated_at       = $5
		WHERE id = $1
	`

	var status *string
	if upd.Status != nil {
		v := string(*upd.Status)
		status = &v
	}

	tag, err := s.db.Exec(ctx, query, id, status, upd.AdminNotes, upd.ResolutionNotes, now)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// DisputeStats aggregates counts; disputes created after since count as recent.
// Every known status is present in ByStatus.
func (s *Storage) DisputeStats(ctx context.Context, since time.Time) (*models.DisputeStats, error) {
	const op = "storage.postgres.DisputeStats"

	stats := &models.DisputeStats{ByStatus: make(map[models.DisputeStatus]int64, len(models.DisputeStatuses))}
	for _, st := range models.DisputeStatuses {
		stats.ByStatus[st] = 0
	}

	err := s.db.QueryRow(ctx,
		`SELECT COUNT(*), COUNT(*) FILTER (WHERE created_at >= $1) FROM disputes`, since,
	).Scan(&stats.Total, &stats.Recent)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := s.db.Query(ctx, `SELECT status, COUNT(*) FROM disputes GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			status models.DisputeStatus
			n      int64
		)
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		stats.ByStatus[status] = n
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return stats, nil
}

func scanDispute(row pgx.Row) (*models.Dispute, error) {
	var d models.Dispute
	err := row.Scan(
		&d.ID, &d.UserID, &d.CreditReportItemID, &d.Reason, &d.Status,
		&d.AdminNotes, &d.ResolutionNotes,
		&d.CreatedAt, &d.UpdatedAt, &d.ResolvedAt,
		&d.AccountName, &d.AccountType, &d.Balance, &d.PaymentStatus,
		&d.FirstName, &d.LastName, &d.Email,
	)
	if err != nil {
		return nil, err
	}

	return &d, nil
}
