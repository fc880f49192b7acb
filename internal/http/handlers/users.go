package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/credit-dispute/internal/http/errors"
)

func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	id, ok := caller(w, r)
	if !ok {
		return
	}

	u, err := h.svc.Me(r.Context(), id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, u)
}

func (h *Handlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	id, ok := caller(w, r)
	if !ok {
		return
	}

	users, err := h.svc.ListUsers(r.Context(), id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, users)
}
