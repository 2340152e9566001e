package repository

import (
	"context"
	"errors"
	"time"

	"teampulse-backend/internal/domain"
)

// ErrDuplicate is returned by Create-style methods when the store rejects the
// row with a uniqueness violation. Services translate it into their own
// sentinel (AlreadyMember, invite-code collision).
var ErrDuplicate = errors.New("duplicate row")

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

type OrganizationRepository interface {
	Create(ctx context.Context, org *domain.Organization) error
	GetByID(ctx context.Context, id int32) (*domain.Organization, error)
	GetByInviteCode(ctx context.Context, code string) (*domain.Organization, error)
	SetInviteCode(ctx context.Context, orgID int32, code string) error
	SetResetHour(ctx context.Context, orgID int32, hour int32) error
	ListByResetHour(ctx context.Context, hour int32) ([]domain.Organization, error)
	Delete(ctx context.Context, orgID int32) error
}

type MembershipRepository interface {
	// CreateActive deactivates every membership of the user and inserts the
	// new one with is_active=true, in a single transaction.
	CreateActive(ctx context.Context, m *domain.Membership) error
	Get(ctx context.Context, userID, orgID int32) (*domain.Membership, error)
	ListByUser(ctx context.Context, userID int32) ([]domain.Membership, error)
	ListMembersByOrg(ctx context.Context, orgID int32) ([]domain.User, []domain.Membership, error)
	ListActiveUserIDs(ctx context.Context, orgID int32) ([]int32, error)
	// SwitchActive deactivates every membership of the user, then activates
	// the one for orgID. Returns sql.ErrNoRows if the user has no membership
	// in orgID.
	SwitchActive(ctx context.Context, userID, orgID int32) error
	UpdateRole(ctx context.Context, userID, orgID int32, role domain.MembershipRole) error
	Delete(ctx context.Context, userID, orgID int32) error
	CountMembers(ctx context.Context, orgID int32) (int32, error)
	CountOrgsForUser(ctx context.Context, userID int32) (int32, error)
	CountAdmins(ctx context.Context, orgID int32) (int32, error)
}

type PresenceRepository interface {
	Create(ctx context.Context, status *domain.PresenceStatus) error
	Get(ctx context.Context, userID int32) (*domain.PresenceStatus, error)
	SetStatus(ctx context.Context, userID int32, status domain.StatusTag, now time.Time) error
	SetCustomSlot(ctx context.Context, userID int32, slot int32, label, icon string, now time.Time) error
	// ResetToDefault reverts every member of the org whose status is not
	// already the default and whose last update predates windowStart.
	// Returns the number of rows reverted.
	ResetToDefault(ctx context.Context, orgID int32, windowStart, now time.Time) (int64, error)
	Delete(ctx context.Context, userID int32) error
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	GetByID(ctx context.Context, id int32) (*domain.Notification, error)
	// MarkReplied sets the reply outcome and read flag, guarded on the row
	// still being PENDING. Returns the number of rows updated.
	MarkReplied(ctx context.Context, id int32, status domain.NotificationStatus) (int64, error)
	MarkAsRead(ctx context.Context, id, userID int32) error
	ListPending(ctx context.Context, recipientID int32, now time.Time) ([]domain.Notification, error)
	List(ctx context.Context, recipientID int32, limit, offset int32) ([]domain.Notification, int32, error)
}
