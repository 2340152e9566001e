package domain

import "time"

type OrgKind string

const (
	OrgKindPersonal OrgKind = "PERSONAL"
	OrgKindBusiness OrgKind = "BUSINESS"
)

type PlanTier string

const (
	PlanTierFree    PlanTier = "FREE"
	PlanTierPremium PlanTier = "PREMIUM"
)

type Organization struct {
	ID         int32     `json:"id"`
	Name       string    `json:"name"`
	Kind       OrgKind   `json:"kind"`
	PlanTier   PlanTier  `json:"plan_tier"`
	InviteCode *string   `json:"invite_code,omitempty"` // unique when present, lazily generated for business orgs
	ResetHour  int32     `json:"reset_hour"`            // 0-23, hour of the daily presence auto-reset
	CreatedOn  time.Time `json:"created_on"`
}
