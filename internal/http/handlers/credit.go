package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/credit-dispute/internal/http/errors"
)

func (h *Handlers) CreditProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := caller(w, r)
	if !ok {
		return
	}

	userID, err := uuidParam(r, "userID")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	p, err := h.svc.CreditProfile(r.Context(), id, userID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, p)
}

func (h *Handlers) CreditReportItems(w http.ResponseWriter, r *http.Request) {
	id, ok := caller(w, r)
	if !ok {
		return
	}

	userID, err := uuidParam(r, "userID")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	items, err := h.svc.CreditReportItems(r.Context(), id, userID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

func (h *Handlers) RefreshCreditProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := caller(w, r)
	if !ok {
		return
	}

	userID, err := uuidParam(r, "userID")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	p, err := h.svc.RefreshCreditProfile(r.Context(), id, userID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, p)
}
