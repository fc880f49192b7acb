package handlers

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pribylovaa/credit-dispute/internal/models"
	"github.com/pribylovaa/credit-dispute/internal/service"
)

type registerRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (r *registerRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" || r.Password == "" {
		return fmt.Errorf("email and password are required: %w", service.ErrInvalidInput)
	}
	if strings.TrimSpace(r.FirstName) == "" || strings.TrimSpace(r.LastName) == "" {
		return fmt.Errorf("first_name and last_name are required: %w", service.ErrInvalidInput)
	}
	return nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *loginRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" || r.Password == "" {
		return fmt.Errorf("email and password are required: %w", service.ErrInvalidInput)
	}
	return nil
}

// refreshRequest accepts the token under either key; the web client sends
// refreshToken.
type refreshRequest struct {
	RefreshToken      string `json:"refresh_token"`
	RefreshTokenCamel string `json:"refreshToken"`
}

func (r *refreshRequest) token() string {
	if r.RefreshToken != "" {
		return r.RefreshToken
	}
	return r.RefreshTokenCamel
}

func (r *refreshRequest) Validate() error {
	if strings.TrimSpace(r.token()) == "" {
		return fmt.Errorf("refresh_token is required: %w", service.ErrInvalidInput)
	}
	return nil
}

type createDisputeRequest struct {
	CreditReportItemID uuid.UUID `json:"credit_report_item_id"`
	Reason             string    `json:"dispute_reason"`
}

func (r *createDisputeRequest) Validate() error {
	if r.CreditReportItemID == uuid.Nil {
		return fmt.Errorf("credit_report_item_id is required: %w", service.ErrInvalidInput)
	}
	if strings.TrimSpace(r.Reason) == "" {
		return fmt.Errorf("dispute_reason is required: %w", service.ErrInvalidInput)
	}
	return nil
}

type updateDisputeStatusRequest struct {
	Status          *models.DisputeStatus `json:"status"`
	AdminNotes      *string               `json:"admin_notes"`
	ResolutionNotes *string               `json:"resolution_notes"`
}

func (r *updateDisputeStatusRequest) Validate() error {
	if r.Status != nil && !r.Status.Valid() {
		return fmt.Errorf("status %q: %w", *r.Status, service.ErrInvalidStatus)
	}
	if r.Status == nil && r.AdminNotes == nil && r.ResolutionNotes == nil {
		return fmt.Errorf("nothing to update: %w", service.ErrInvalidInput)
	}
	return nil
}

func (r *updateDisputeStatusRequest) update() models.DisputeUpdate {
	return models.DisputeUpdate{
		Status:          r.Status,
		AdminNotes:      r.AdminNotes,
		ResolutionNotes: r.ResolutionNotes,
	}
}

type generateLetterRequest struct {
	DisputeID   *uuid.UUID `json:"dispute_id"`
	Reason      string     `json:"dispute_reason"`
	AccountName string     `json:"account_name"`
	AccountType string     `json:"account_type"`
}

func (r *generateLetterRequest) Validate() error {
	if r.DisputeID != nil {
		return nil
	}
	if strings.TrimSpace(r.Reason) == "" || strings.TrimSpace(r.AccountName) == "" || strings.TrimSpace(r.AccountType) == "" {
		return fmt.Errorf("dispute_reason, account_name and account_type are required: %w", service.ErrInvalidInput)
	}
	return nil
}

func (r *generateLetterRequest) input() service.LetterInput {
	in := service.LetterInput{
		Reason:      r.Reason,
		AccountName: r.AccountName,
		AccountType: r.AccountType,
	}
	if r.DisputeID != nil {
		in.DisputeID = *r.DisputeID
	}
	return in
}
