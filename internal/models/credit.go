package models

import (
	"time"

	"github.com/google/uuid"
)

// CreditProfile — summary of a (mocked) credit report, one per user.
type CreditProfile struct {
	ID                    uuid.UUID `json:"id"`
	UserID                uuid.UUID `json:"user_id"`
	CreditScore           int       `json:"credit_score"`
	ReportDate            time.Time `json:"report_date"`
	TotalAccounts         int       `json:"total_accounts"`
	OpenAccounts          int       `json:"open_accounts"`
	TotalBalance          float64   `json:"total_balance"`
	PaymentHistoryScore   int       `json:"payment_history_score"`
	CreditUtilization     float64   `json:"credit_utilization"`
	LengthOfHistoryMonths int       `json:"length_of_history_months"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// CreditReportItem — a single account line on the report; disputes target these.
type CreditReportItem struct {
	ID            uuid.UUID `json:"id"`
	ProfileID     uuid.UUID `json:"credit_profile_id"`
	AccountName   string    `json:"account_name"`
	AccountType   string    `json:"account_type"`
	AccountStatus string    `json:"account_status"`
	Balance       float64   `json:"balance"`
	PaymentStatus string    `json:"payment_status"`
	DateOpened    time.Time `json:"date_opened"`
	LastActivity  time.Time `json:"last_activity"`
	CreatedAt     time.Time `json:"created_at"`
}

// CreditReport — what the credit provider returns for a user.
type CreditReport struct {
	Profile CreditProfile
	Items   []CreditReportItem
}
