package httpapi

import (
	"net/http"

	"teampulse-backend/internal/service"
)

type InviteHandler struct {
	inviteSvc service.InviteService
}

func NewInviteHandler(inviteSvc service.InviteService) *InviteHandler {
	return &InviteHandler{inviteSvc: inviteSvc}
}

type inviteCodeResponse struct {
	Code string `json:"code"`
}

func (h *InviteHandler) GenerateCode(w http.ResponseWriter, r *http.Request) {
	userID, orgID, ok := userAndOrg(w, r)
	if !ok {
		return
	}

	code, err := h.inviteSvc.GenerateCode(r.Context(), userID, orgID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, inviteCodeResponse{Code: code})
}

type inviteLinkResponse struct {
	Link string `json:"link"`
}

func (h *InviteHandler) GetInviteLink(w http.ResponseWriter, r *http.Request) {
	userID, orgID, ok := userAndOrg(w, r)
	if !ok {
		return
	}

	link, err := h.inviteSvc.GetOrCreateInviteLink(r.Context(), userID, orgID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, inviteLinkResponse{Link: link})
}

type emailInviteRequest struct {
	Email string `json:"email"`
}

func (h *InviteHandler) EmailInvite(w http.ResponseWriter, r *http.Request) {
	userID, orgID, ok := userAndOrg(w, r)
	if !ok {
		return
	}

	var req emailInviteRequest
	if err := decodeJSON(r, &req); err != nil || req.Email == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "email is required"})
		return
	}

	if err := h.inviteSvc.EmailInvite(r.Context(), userID, orgID, req.Email); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, nil)
}

type redeemRequest struct {
	Code string `json:"code"`
}

func (h *InviteHandler) Redeem(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	var req redeemRequest
	if err := decodeJSON(r, &req); err != nil || req.Code == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "code is required"})
		return
	}

	org, err := h.inviteSvc.Redeem(r.Context(), userID, req.Code)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, org)
}
