package httpapi

import (
	"net/http"

	"teampulse-backend/internal/domain"
	"teampulse-backend/internal/service"
)

type PresenceHandler struct {
	presenceSvc service.PresenceService
}

func NewPresenceHandler(presenceSvc service.PresenceService) *PresenceHandler {
	return &PresenceHandler{presenceSvc: presenceSvc}
}

func (h *PresenceHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	status, err := h.presenceSvc.GetStatus(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

type setStatusRequest struct {
	Status string `json:"status"`
}

func (h *PresenceHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	var req setStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	if err := h.presenceSvc.SetStatus(r.Context(), userID, domain.StatusTag(req.Status)); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

type setCustomSlotRequest struct {
	Slot  int32  `json:"slot"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

func (h *PresenceHandler) SetCustomSlot(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	var req setCustomSlotRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if req.Slot != 1 && req.Slot != 2 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "slot must be 1 or 2"})
		return
	}

	if err := h.presenceSvc.SetCustomSlot(r.Context(), userID, req.Slot, req.Label, req.Icon); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
