package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/credit-dispute/internal/http/errors"
	"github.com/pribylovaa/credit-dispute/internal/models"
)

func (h *Handlers) GenerateLetter(w http.ResponseWriter, r *http.Request) {
	id, ok := caller(w, r)
	if !ok {
		return
	}

	var in generateLetterRequest
	if err := decodeAndValidate(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	letter, err := h.svc.GenerateLetter(r.Context(), id, in.input())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, letter)
}

func (h *Handlers) DisputeLetters(w http.ResponseWriter, r *http.Request) {
	id, ok := caller(w, r)
	if !ok {
		return
	}

	disputeID, err := uuidParam(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	letters, err := h.svc.DisputeLetters(r.Context(), id, disputeID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if letters == nil {
		letters = []models.DisputeLetter{}
	}
	writeJSON(w, http.StatusOK, letters)
}
