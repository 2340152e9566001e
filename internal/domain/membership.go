package domain

import "time"

type MembershipRole string

const (
	MembershipRoleAdmin  MembershipRole = "ADMIN"
	MembershipRoleMember MembershipRole = "MEMBER"
)

// Membership is the (user, organization) relation. At most one membership per
// user carries IsActive=true; the store enforces this with a partial unique
// index so concurrent switches cannot leave two rows active.
type Membership struct {
	UserID   int32          `json:"user_id"`
	OrgID    int32          `json:"org_id"`
	Role     MembershipRole `json:"role"`
	IsActive bool           `json:"is_active"`
	JoinedOn time.Time      `json:"joined_on"`
}
