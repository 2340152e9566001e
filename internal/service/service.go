package service

import (
	"context"
	"time"

	"teampulse-backend/internal/domain"
)

type AuthService interface {
	Signup(ctx context.Context, name, email, password string) (*domain.User, string, string, error) // user, access, refresh
	Login(ctx context.Context, email, password string) (string, string, error)
	RefreshToken(ctx context.Context, refresh string) (string, string, error)
	// ResolveUser validates an opaque session credential and returns the
	// authenticated user. Absent, malformed, or expired credentials resolve
	// to ErrUnauthenticated, never to a transport error.
	ResolveUser(ctx context.Context, credential string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID int32, name, avatarColor string) error
	ChangePassword(ctx context.Context, userID int32, current, newPassword string) error
}

type MembershipService interface {
	ListMemberships(ctx context.Context, userID int32) ([]domain.Organization, []domain.Membership, error)
	CreateOrganization(ctx context.Context, userID int32, name string, kind domain.OrgKind) (*domain.Organization, error)
	SwitchActive(ctx context.Context, userID, orgID int32) error
	Leave(ctx context.Context, userID, orgID int32) error
	TransferAdmin(ctx context.Context, callerID, orgID, newAdminID int32) error
	Dissolve(ctx context.Context, adminID, orgID int32) error
	SetResetHour(ctx context.Context, adminID, orgID int32, hour int32) error
	ListMembers(ctx context.Context, orgID int32) ([]domain.User, []domain.Membership, error)
}

// InviteService issues and redeems invite codes. Issuing operations take the
// caller so only an admin of the org can hand out its code; redemption is open
// to anyone holding a code.
type InviteService interface {
	GenerateCode(ctx context.Context, callerID, orgID int32) (string, error)
	Redeem(ctx context.Context, userID int32, code string) (*domain.Organization, error)
	GetOrCreateInviteLink(ctx context.Context, callerID, orgID int32) (string, error)
	EmailInvite(ctx context.Context, callerID, orgID int32, email string) error
}

type PresenceService interface {
	SetStatus(ctx context.Context, userID int32, status domain.StatusTag) error
	SetCustomSlot(ctx context.Context, userID int32, slot int32, label, icon string) error
	GetStatus(ctx context.Context, userID int32) (*domain.PresenceStatus, error)
	// AutoReset runs one org's daily sweep. Invoked by the scheduler, not a
	// user; now is passed in so the window guard is testable.
	AutoReset(ctx context.Context, orgID int32, hour int32, now time.Time) (int64, error)
}

// BroadcastResult reports the fan-out outcome for a single recipient.
type BroadcastResult struct {
	RecipientID int32
	Err         error
}

type NotificationService interface {
	// Broadcast fans one request out to every other active member of the
	// sender's active organization. Returns per-recipient results and the
	// count of successful inserts; a count below the recipient total is
	// reported as ErrPartialFailure, never dropped.
	Broadcast(ctx context.Context, senderID int32, notificationType, message string) (int32, []BroadcastResult, error)
	Reply(ctx context.Context, recipientID, notificationID int32, outcome domain.NotificationStatus) error
	ListPending(ctx context.Context, recipientID int32) ([]domain.Notification, error)
	ListHistory(ctx context.Context, recipientID int32, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, userID, notificationID int32) error
}

// QuotaCheck is the advisory answer to a limit check. It holds no lock,
// so concurrent joins can transiently exceed the limit by the race window.
type QuotaCheck struct {
	Allowed bool  `json:"allowed"`
	Count   int32 `json:"count"`
	Limit   int32 `json:"limit"`
}

type QuotaService interface {
	CheckMemberLimit(ctx context.Context, orgID int32) (*QuotaCheck, error)
	CheckOrgLimit(ctx context.Context, userID int32) (*QuotaCheck, error)
}

type EmailService interface {
	SendInviteLink(ctx context.Context, email, orgName, link string) error
}
