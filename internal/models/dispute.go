package models

import (
	"time"

	"github.com/google/uuid"
)

// DisputeStatus — review state of a dispute.
type DisputeStatus string

const (
	DisputePending     DisputeStatus = "pending"
	DisputeSubmitted   DisputeStatus = "submitted"
	DisputeUnderReview DisputeStatus = "under_review"
	DisputeResolved    DisputeStatus = "resolved"
	DisputeRejected    DisputeStatus = "rejected"
)

// DisputeStatuses lists every status in display order.
var DisputeStatuses = []DisputeStatus{
	DisputePending,
	DisputeSubmitted,
	DisputeUnderReview,
	DisputeResolved,
	DisputeRejected,
}

// Valid reports whether s is a known status.
func (s DisputeStatus) Valid() bool {
	for _, v := range DisputeStatuses {
		if s == v {
			return true
		}
	}

	return false
}

// Dispute — a user's challenge of one credit report item, joined with the
// item and owner fields shown in lists.
type Dispute struct {
	ID                 uuid.UUID     `json:"id"`
	UserID             uuid.UUID     `json:"user_id"`
	CreditReportItemID uuid.UUID     `json:"credit_report_item_id"`
	Reason             string        `json:"dispute_reason"`
	Status             DisputeStatus `json:"status"`
	AdminNotes         string        `json:"admin_notes,omitempty"`
	ResolutionNotes    string        `json:"resolution_notes,omitempty"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
	ResolvedAt         *time.Time    `json:"resolved_at,omitempty"`

	AccountName   string  `json:"account_name"`
	AccountType   string  `json:"account_type"`
	Balance       float64 `json:"balance"`
	PaymentStatus string  `json:"payment_status"`
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	Email         string  `json:"email"`
}

// DisputeFilter narrows dispute listings. Zero values mean "any".
type DisputeFilter struct {
	UserID uuid.UUID
	Status DisputeStatus
}

// DisputeUpdate — admin changes; nil fields are left untouched.
type DisputeUpdate struct {
	Status          *DisputeStatus
	AdminNotes      *string
	ResolutionNotes *string
}

// DisputeStats — admin overview.
type DisputeStats struct {
	Total    int64                   `json:"total"`
	Recent   int64                   `json:"recent"`
	ByStatus map[DisputeStatus]int64 `json:"by_status"`
}
