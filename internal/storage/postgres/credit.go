package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pribylovaa/credit-dispute/internal/models"
	"github.com/pribylovaa/credit-dispute/internal/storage"
)

const profileColumns = `id, user_id, credit_score, report_date, total_accounts, open_accounts,
	total_balance, payment_history_score, credit_utilization, length_of_history_months,
	created_at, updated_at`

const itemColumns = `i.id, i.credit_profile_id, i.account_name, i.account_type, i.account_status,
	i.balance, i.payment_status, i.date_opened, i.last_activity, i.created_at`

// CreditProfileByUser returns the profile of the user.
func (s *Storage) CreditProfileByUser(ctx context.Context, userID uuid.UUID) (*models.CreditProfile, error) {
	const op = "storage.postgres.CreditProfileByUser"

	query := `SELECT ` + profileColumns + ` FROM credit_profiles WHERE user_id = $1`

	p, err := scanProfile(s.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}

// CreateCreditReport stores the profile and its items in one transaction.
// A concurrent creator that lost the race gets the winner's profile back.
func (s *Storage) CreateCreditReport(ctx context.Context, report *models.CreditReport) (*models.CreditProfile, error) {
	const op = "storage.postgres.CreateCreditReport"

	var created *models.CreditProfile
	err := pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		p := report.Profile
		insert := `
			INSERT INTO credit_profiles(id, user_id, credit_score, report_date, total_accounts,
				open_accounts, total_balance, payment_history_score, credit_utilization,
				length_of_history_months, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
			ON CONFLICT (user_id) DO NOTHING
			RETURNING ` + profileColumns

		row := tx.QueryRow(ctx, insert,
			p.ID, p.UserID, p.CreditScore, p.ReportDate, p.TotalAccounts,
			p.OpenAccounts, p.TotalBalance, p.PaymentHistoryScore, p.CreditUtilization,
			p.LengthOfHistoryMonths, p.CreatedAt,
		)

		var err error
		created, err = scanProfile(row)
		if err != nil {
			return err
		}

		batch := &pgx.Batch{}
		for _, it := range report.Items {
			batch.Queue(`
				INSERT INTO credit_report_items(id, credit_profile_id, account_name, account_type,
					account_status, balance, payment_status, date_opened, last_activity, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
				it.ID, created.ID, it.AccountName, it.AccountType, it.AccountStatus,
				it.Balance, it.PaymentStatus, it.DateOpened, it.LastActivity, it.CreatedAt,
			)
		}

		return tx.SendBatch(ctx, batch).Close()
	})

	if errors.Is(err, pgx.ErrNoRows) {
		// another request created the profile first.
		return s.CreditProfileByUser(ctx, report.Profile.UserID)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return created, nil
}

// UpdateCreditProfile overwrites the summary fields of the user's profile.
func (s *Storage) UpdateCreditProfile(ctx context.Context, p *models.CreditProfile) (*models.CreditProfile, error) {
	const op = "storage.postgres.UpdateCreditProfile"

	query := `
		UPDATE credit_profiles
		SET credit_score = $2, report_date = $3, total_accounts = $4, open_accounts = $5,
		    total_balance = $6, payment_history_score = $7, credit_utilization = $8,
		    length_of_history_months = $9, updated_at = $10
		WHERE user_id = $1
		RETURNING ` + profileColumns

	updated, err := scanProfile(s.db.QueryRow(ctx, query,
		p.UserID, p.CreditScore, p.ReportDate, p.TotalAccounts, p.OpenAccounts,
		p.TotalBalance, p.PaymentHistoryScore, p.CreditUtilization,
		p.LengthOfHistoryMonths, p.UpdatedAt,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return updated, nil
}

// CreditReportItems lists items of the user's profile, newest account first.
func (s *Storage) CreditReportItems(ctx context.Context, userID uuid.UUID) ([]models.CreditReportItem, error) {
	const op = "storage.postgres.CreditReportItems"

	query := `
		SELECT ` + itemColumns + `
		FROM credit_report_items i
		JOIN credit_profiles p ON p.id = i.credit_profile_id
		WHERE p.user_id = $1
		ORDER BY i.date_opened DESC, i.account_name
	`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	items := make([]models.CreditReportItem, 0)
	for rows.Next() {
		var it models.CreditReportItem
		if err := rows.Scan(
			&it.ID, &it.ProfileID, &it.AccountName, &it.AccountType, &it.AccountStatus,
			&it.Balance, &it.PaymentStatus, &it.DateOpened, &it.LastActivity, &it.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		items = append(items, it)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

// CreditReportItemOwner returns the user that owns the item.
func (s *Storage) CreditReportItemOwner(ctx context.Context, itemID uuid.UUID) (uuid.UUID, error) {
	const op = "storage.postgres.CreditReportItemOwner"

	query := `
		SELECT p.user_id
		FROM credit_report_items i
		JOIN credit_profiles p ON p.id = i.credit_profile_id
		WHERE i.id = $1
	`

	var owner uuid.UUID
	if err := s.db.QueryRow(ctx, query, itemID).Scan(&owner); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return owner, nil
}

func scanProfile(row pgx.Row) (*models.CreditProfile, error) {
	var p models.CreditProfile
	err := row.Scan(
		&p.ID, &p.UserID, &p.CreditScore, &p.ReportDate, &p.TotalAccounts, &p.OpenAccounts,
		&p.TotalBalance, &p.PaymentHistoryScore, &p.CreditUtilization, &p.LengthOfHistoryMonths,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &p, nil
}
