// handlers adapts REST requests to service calls. Handlers decode strictly,
// validate, call the service with the caller identity from ctx and write
// either JSON or the error envelope.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	apierrors "github.com/pribylovaa/credit-dispute/internal/http/errors"
	"github.com/pribylovaa/credit-dispute/internal/http/middleware"
	"github.com/pribylovaa/credit-dispute/internal/models"
	"github.com/pribylovaa/credit-dispute/internal/service"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// Service — business operations used by the handlers.
type Service interface {
	Register(ctx context.Context, in service.RegisterInput) (*models.Session, error)
	Login(ctx context.Context, email, password string) (*models.Session, error)
	Refresh(ctx context.Context, refreshToken string) (*models.Session, error)
	RegenerateToken(ctx context.Context, userID uuid.UUID) (*models.Session, error)
	Logout(ctx context.Context, userID uuid.UUID) error

	Me(ctx context.Context, caller models.Identity) (*models.PublicUser, error)
	ListUsers(ctx context.Context, caller models.Identity) ([]models.PublicUser, error)

	CreditProfile(ctx context.Context, caller models.Identity, userID uuid.UUID) (*models.CreditProfile, error)
	CreditReportItems(ctx context.Context, caller models.Identity, userID uuid.UUID) ([]models.CreditReportItem, error)
	RefreshCreditProfile(ctx context.Context, caller models.Identity, userID uuid.UUID) (*models.CreditProfile, error)

	CreateDispute(ctx context.Context, caller models.Identity, itemID uuid.UUID, reason string) (*models.Dispute, error)
	DisputeHistory(ctx context.Context, caller models.Identity, status models.DisputeStatus) ([]models.Dispute, error)
	Dispute(ctx context.Context, caller models.Identity, id uuid.UUID) (*models.Dispute, error)
	UpdateDisputeStatus(ctx context.Context, caller models.Identity, id uuid.UUID, upd models.DisputeUpdate) (*models.Dispute, error)
	DisputeStats(ctx context.Context, caller models.Identity) (*models.DisputeStats, error)

	GenerateLetter(ctx context.Context, caller models.Identity, in service.LetterInput) (*models.GeneratedLetter, error)
	DisputeLetters(ctx context.Context, caller models.Identity, disputeID uuid.UUID) ([]models.DisputeLetter, error)
}

// Handlers aggregates handler dependencies.
type Handlers struct {
	svc Service
}

func New(svc Service) *Handlers {
	return &Handlers{svc: svc}
}

// writeJSON writes value with the JSON content type.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict rejects unknown fields, trailing data and oversized bodies.
func decodeStrict(w http.ResponseWriter, r *http.Request, value any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(value); err != nil {
		return fmt.Errorf("decode: %v: %w", err, apierrors.ErrBadRequest)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode: trailing data: %w", apierrors.ErrBadRequest)
	}

	return nil
}

// decodeAndValidate decodes into a request struct and runs its Validate.
func decodeAndValidate[T interface{ Validate() error }](w http.ResponseWriter, r *http.Request, in T) error {
	if err := decodeStrict(w, r, in); err != nil {
		return err
	}
	return in.Validate()
}

// uuidParam parses a chi path parameter.
func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("path %s: %w", name, apierrors.ErrBadRequest)
	}
	return id, nil
}

// caller returns the authenticated identity. Routes behind Authenticate
// always have one; a missing identity is answered with 401.
func caller(w http.ResponseWriter, r *http.Request) (models.Identity, bool) {
	id, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		apierrors.WriteError(w, r, service.ErrInvalidToken)
	}
	return id, ok
}
