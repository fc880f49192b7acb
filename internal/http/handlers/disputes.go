package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/credit-dispute/internal/http/errors"
	"github.com/pribylovaa/credit-dispute/internal/models"
)

func (h *Handlers) CreateDispute(w http.ResponseWriter, r *http.Request) {
	id, ok := caller(w, r)
	if !ok {
		return
	}

	var in createDisputeRequest
	if err := decodeAndValidate(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	d, err := h.svc.CreateDispute(r.Context(), id, in.CreditReportItemID, in.Reason)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, d)
}

func (h *Handlers) DisputeHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := caller(w, r)
	if !ok {
		return
	}

	status := models.DisputeStatus(r.URL.Query().Get("status"))

	list, err := h.svc.DisputeHistory(r.Context(), id, status)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if list == nil {
		list = []models.Dispute{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handlers) Dispute(w http.ResponseWriter, r *http.Request) {
	id, ok := caller(w, r)
	if !ok {
		return
	}

	disputeID, err := uuidParam(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	d, err := h.svc.Dispute(r.Context(), id, disputeID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, d)
}

func (h *Handlers) UpdateDisputeStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := caller(w, r)
	if !ok {
		return
	}

	disputeID, err := uuidParam(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in updateDisputeStatusRequest
	if err := decodeAndValidate(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	d, err := h.svc.UpdateDisputeStatus(r.Context(), id, disputeID, in.update())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, d)
}

func (h *Handlers) DisputeStats(w http.ResponseWriter, r *http.Request) {
	id, ok := caller(w, r)
	if !ok {
		return
	}

	stats, err := h.svc.DisputeStats(r.Context(), id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
