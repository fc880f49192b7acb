package handlers

import (
	"net/http"
	"time"

	apierrors "github.com/pribylovaa/credit-dispute/internal/http/errors"
	"github.com/pribylovaa/credit-dispute/internal/models"
	"github.com/pribylovaa/credit-dispute/internal/service"
)

type authResponse struct {
	AccessToken  string            `json:"access_token"`
	RefreshToken string            `json:"refresh_token"`
	ExpiresAt    time.Time         `json:"expires_at"`
	User         models.PublicUser `json:"user"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func sessionResponse(s *models.Session) authResponse {
	return authResponse{
		AccessToken:  s.Tokens.AccessToken,
		RefreshToken: s.Tokens.RefreshToken,
		ExpiresAt:    s.Tokens.AccessExpiresAt,
		User:         s.User,
	}
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var in registerRequest
	if err := decodeAndValidate(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	sess, err := h.svc.Register(r.Context(), service.RegisterInput{
		Email:     in.Email,
		Password:  in.Password,
		FirstName: in.FirstName,
		LastName:  in.LastName,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, sessionResponse(sess))
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var in loginRequest
	if err := decodeStrict(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}
	// Missing fields are reported like bad credentials.
	if err := in.Validate(); err != nil {
		apierrors.WriteError(w, r, service.ErrInvalidCredentials)
		return
	}

	sess, err := h.svc.Login(r.Context(), in.Email, in.Password)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, sessionResponse(sess))
}

func (h *Handlers) Refresh(w http.ResponseWriter, r *http.Request) {
	var in refreshRequest
	if err := decodeStrict(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}
	if err := in.Validate(); err != nil {
		apierrors.WriteError(w, r, service.ErrInvalidToken)
		return
	}

	sess, err := h.svc.Refresh(r.Context(), in.token())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, sessionResponse(sess))
}

func (h *Handlers) RegenerateToken(w http.ResponseWriter, r *http.Request) {
	id, ok := caller(w, r)
	if !ok {
		return
	}

	sess, err := h.svc.RegenerateToken(r.Context(), id.UserID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, sessionResponse(sess))
}

func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	id, ok := caller(w, r)
	if !ok {
		return
	}

	if err := h.svc.Logout(r.Context(), id.UserID); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Logged out successfully"})
}
