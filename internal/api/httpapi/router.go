package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth         *AuthHandler
	Membership   *MembershipHandler
	Invite       *InviteHandler
	Presence     *PresenceHandler
	Notification *NotificationHandler
	AuthMW       *AuthMiddleware
}

// NewRouter wires all routes. Signup, login and refresh are public; every
// other route sits behind the auth middleware.
func NewRouter(h *Handlers) *mux.Router {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()

	// Public
	api.HandleFunc("/auth/signup", h.Auth.Signup).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", h.Auth.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", h.Auth.Refresh).Methods(http.MethodPost)

	// Authenticated
	auth := api.NewRoute().Subrouter()
	auth.Use(h.AuthMW.Handler)

	auth.HandleFunc("/me", h.Auth.Me).Methods(http.MethodGet)
	auth.HandleFunc("/me", h.Auth.UpdateProfile).Methods(http.MethodPut)
	auth.HandleFunc("/me/password", h.Auth.ChangePassword).Methods(http.MethodPut)

	auth.HandleFunc("/orgs", h.Membership.ListMemberships).Methods(http.MethodGet)
	auth.HandleFunc("/orgs", h.Membership.CreateOrganization).Methods(http.MethodPost)
	auth.HandleFunc("/orgs/{orgID}", h.Membership.Dissolve).Methods(http.MethodDelete)
	auth.HandleFunc("/orgs/{orgID}/switch", h.Membership.SwitchActive).Methods(http.MethodPost)
	auth.HandleFunc("/orgs/{orgID}/membership", h.Membership.Leave).Methods(http.MethodDelete)
	auth.HandleFunc("/orgs/{orgID}/transfer-admin", h.Membership.TransferAdmin).Methods(http.MethodPost)
	auth.HandleFunc("/orgs/{orgID}/reset-hour", h.Membership.SetResetHour).Methods(http.MethodPut)
	auth.HandleFunc("/orgs/{orgID}/members", h.Membership.ListMembers).Methods(http.MethodGet)

	auth.HandleFunc("/orgs/{orgID}/invite-code", h.Invite.GenerateCode).Methods(http.MethodPost)
	auth.HandleFunc("/orgs/{orgID}/invite-link", h.Invite.GetInviteLink).Methods(http.MethodGet)
	auth.HandleFunc("/orgs/{orgID}/invite-email", h.Invite.EmailInvite).Methods(http.MethodPost)
	auth.HandleFunc("/invites/redeem", h.Invite.Redeem).Methods(http.MethodPost)

	auth.HandleFunc("/presence", h.Presence.GetStatus).Methods(http.MethodGet)
	auth.HandleFunc("/presence/status", h.Presence.SetStatus).Methods(http.MethodPut)
	auth.HandleFunc("/presence/custom-slot", h.Presence.SetCustomSlot).Methods(http.MethodPut)

	auth.HandleFunc("/notifications/broadcast", h.Notification.Broadcast).Methods(http.MethodPost)
	auth.HandleFunc("/notifications/pending", h.Notification.ListPending).Methods(http.MethodGet)
	auth.HandleFunc("/notifications", h.Notification.ListHistory).Methods(http.MethodGet)
	auth.HandleFunc("/notifications/{noteID}/reply", h.Notification.Reply).Methods(http.MethodPost)
	auth.HandleFunc("/notifications/{noteID}/read", h.Notification.MarkAsRead).Methods(http.MethodPost)

	return r
}
