package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"teampulse-backend/internal/domain"
	"teampulse-backend/internal/service"
)

type NotificationHandler struct {
	noteSvc service.NotificationService
}

func NewNotificationHandler(noteSvc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{noteSvc: noteSvc}
}

type broadcastRequest struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type broadcastResponse struct {
	Count  int32 `json:"count"`
	Failed int   `json:"failed"`
}

func (h *NotificationHandler) Broadcast(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	var req broadcastRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	count, results, err := h.noteSvc.Broadcast(r.Context(), userID, req.Type, req.Message)
	if err != nil && !errors.Is(err, service.ErrPartialFailure) {
		writeError(w, err)
		return
	}

	resp := broadcastResponse{Count: count, Failed: len(results) - int(count)}
	if errors.Is(err, service.ErrPartialFailure) {
		// Some recipients got the request; report the mismatch, not a flat error.
		writeJSON(w, http.StatusMultiStatus, resp)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

type replyRequest struct {
	Outcome string `json:"outcome"`
}

func (h *NotificationHandler) Reply(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	noteID, err := strconv.ParseInt(mux.Vars(r)["noteID"], 10, 32)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid notification id"})
		return
	}

	var req replyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	outcome := domain.NotificationStatus(req.Outcome)
	if outcome != domain.NotificationStatusAccepted && outcome != domain.NotificationStatusDeclined {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "outcome must be ACCEPTED or DECLINED"})
		return
	}

	if err := h.noteSvc.Reply(r.Context(), userID, int32(noteID), outcome); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *NotificationHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	notes, err := h.noteSvc.ListPending(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	if notes == nil {
		notes = []domain.Notification{}
	}
	writeJSON(w, http.StatusOK, notes)
}

type historyResponse struct {
	Notifications []domain.Notification `json:"notifications"`
	Total         int32                 `json:"total"`
}

func (h *NotificationHandler) ListHistory(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	page := queryInt32(r, "page", 1)
	pageSize := queryInt32(r, "page_size", 20)

	notes, total, err := h.noteSvc.ListHistory(r.Context(), userID, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	if notes == nil {
		notes = []domain.Notification{}
	}
	writeJSON(w, http.StatusOK, historyResponse{Notifications: notes, Total: total})
}

func (h *NotificationHandler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	noteID, err := strconv.ParseInt(mux.Vars(r)["noteID"], 10, 32)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid notification id"})
		return
	}

	if err := h.noteSvc.MarkAsRead(r.Context(), userID, int32(noteID)); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func queryInt32(r *http.Request, key string, fallback int32) int32 {
	val := r.URL.Query().Get(key)
	if val == "" {
		return fallback
	}
	n, err := strconv.ParseInt(val, 10, 32)
	if err != nil || n < 1 {
		return fallback
	}
	return int32(n)
}
