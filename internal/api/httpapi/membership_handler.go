package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"teampulse-backend/internal/domain"
	"teampulse-backend/internal/service"
)

type MembershipHandler struct {
	membershipSvc service.MembershipService
}

func NewMembershipHandler(membershipSvc service.MembershipService) *MembershipHandler {
	return &MembershipHandler{membershipSvc: membershipSvc}
}

type membershipView struct {
	Org    domain.Organization `json:"org"`
	Role   string              `json:"role"`
	Active bool                `json:"active"`
}

func (h *MembershipHandler) ListMemberships(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	orgs, memberships, err := h.membershipSvc.ListMemberships(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	views := make([]membershipView, 0, len(orgs))
	for i, org := range orgs {
		views = append(views, membershipView{
			Org:    org,
			Role:   string(memberships[i].Role),
			Active: memberships[i].IsActive,
		})
	}
	writeJSON(w, http.StatusOK, views)
}

type createOrgRequest struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
}

func (h *MembershipHandler) CreateOrganization(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	var req createOrgRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	kind := domain.OrgKind(req.Kind)
	if kind != domain.OrgKindPersonal && kind != domain.OrgKindBusiness {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "kind must be PERSONAL or BUSINESS"})
		return
	}
	if req.Name == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "name is required"})
		return
	}

	org, err := h.membershipSvc.CreateOrganization(r.Context(), userID, req.Name, kind)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, org)
}

func (h *MembershipHandler) SwitchActive(w http.ResponseWriter, r *http.Request) {
	userID, orgID, ok := userAndOrg(w, r)
	if !ok {
		return
	}

	if err := h.membershipSvc.SwitchActive(r.Context(), userID, orgID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *MembershipHandler) Leave(w http.ResponseWriter, r *http.Request) {
	userID, orgID, ok := userAndOrg(w, r)
	if !ok {
		return
	}

	if err := h.membershipSvc.Leave(r.Context(), userID, orgID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

type transferAdminRequest struct {
	NewAdminID int32 `json:"new_admin_id"`
}

func (h *MembershipHandler) TransferAdmin(w http.ResponseWriter, r *http.Request) {
	userID, orgID, ok := userAndOrg(w, r)
	if !ok {
		return
	}

	var req transferAdminRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	if err := h.membershipSvc.TransferAdmin(r.Context(), userID, orgID, req.NewAdminID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *MembershipHandler) Dissolve(w http.ResponseWriter, r *http.Request) {
	userID, orgID, ok := userAndOrg(w, r)
	if !ok {
		return
	}

	if err := h.membershipSvc.Dissolve(r.Context(), userID, orgID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

type resetHourRequest struct {
	Hour int32 `json:"hour"`
}

func (h *MembershipHandler) SetResetHour(w http.ResponseWriter, r *http.Request) {
	userID, orgID, ok := userAndOrg(w, r)
	if !ok {
		return
	}

	var req resetHourRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if req.Hour < 0 || req.Hour > 23 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "hour must be between 0 and 23"})
		return
	}

	if err := h.membershipSvc.SetResetHour(r.Context(), userID, orgID, req.Hour); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

type memberView struct {
	User   domain.User `json:"user"`
	Role   string      `json:"role"`
	Active bool        `json:"active"`
}

func (h *MembershipHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	_, orgID, ok := userAndOrg(w, r)
	if !ok {
		return
	}

	users, memberships, err := h.membershipSvc.ListMembers(r.Context(), orgID)
	if err != nil {
		writeError(w, err)
		return
	}

	views := make([]memberView, 0, len(users))
	for i, u := range users {
		views = append(views, memberView{
			User:   u,
			Role:   string(memberships[i].Role),
			Active: memberships[i].IsActive,
		})
	}
	writeJSON(w, http.StatusOK, views)
}

// userAndOrg pulls the authenticated user from the context and the {orgID}
// path variable. Writes the error response itself when either is missing.
func userAndOrg(w http.ResponseWriter, r *http.Request) (int32, int32, bool) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return 0, 0, false
	}

	orgID, err := strconv.ParseInt(mux.Vars(r)["orgID"], 10, 32)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid organization id"})
		return 0, 0, false
	}
	return userID, int32(orgID), true
}
