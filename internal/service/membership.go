package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"teampulse-backend/internal/domain"
	"teampulse-backend/internal/logger"
	"teampulse-backend/internal/repository"
)

const createOrgRetries = 3

type membershipService struct {
	orgRepo        repository.OrganizationRepository
	membershipRepo repository.MembershipRepository
	presenceRepo   repository.PresenceRepository
	quota          QuotaService
}

func NewMembershipService(
	orgRepo repository.OrganizationRepository,
	membershipRepo repository.MembershipRepository,
	presenceRepo repository.PresenceRepository,
	quota QuotaService,
) MembershipService {
	return &membershipService{
		orgRepo:        orgRepo,
		membershipRepo: membershipRepo,
		presenceRepo:   presenceRepo,
		quota:          quota,
	}
}

// ListMemberships returns parallel slices: orgs[i] is the organization of
// memberships[i]. A membership whose org vanished mid-listing (a concurrent
// dissolve) is dropped as a pair; any other lookup failure is surfaced.
func (s *membershipService) ListMemberships(ctx context.Context, userID int32) ([]domain.Organization, []domain.Membership, error) {
	memberships, err := s.membershipRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	var orgs []domain.Organization
	var kept []domain.Membership
	for _, m := range memberships {
		org, err := s.orgRepo.GetByID(ctx, m.OrgID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				continue
			}
			return nil, nil, err
		}
		orgs = append(orgs, *org)
		kept = append(kept, m)
	}
	return orgs, kept, nil
}

// CreateOrganization creates the org and makes the caller its first admin,
// deactivating every other membership the caller holds. Personal orgs get an
// invite code immediately; business orgs generate theirs lazily on the first
// invite-link request.
func (s *membershipService) CreateOrganization(ctx context.Context, userID int32, name string, kind domain.OrgKind) (*domain.Organization, error) {
	check, err := s.quota.CheckOrgLimit(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !check.Allowed {
		return nil, ErrQuotaExceeded
	}

	org := &domain.Organization{
		Name:     name,
		Kind:     kind,
		PlanTier: domain.PlanTierFree,
	}

	if kind == domain.OrgKindPersonal {
		// The invite code carries a unique index, so a collision surfaces on
		// insert. Retry with a fresh code rather than pre-checking.
		var created bool
		for attempt := 0; attempt < createOrgRetries; attempt++ {
			code := NewPersonalCode()
			org.InviteCode = &code
			err = s.orgRepo.Create(ctx, org)
			if err == nil {
				created = true
				break
			}
			if !errors.Is(err, repository.ErrDuplicate) {
				return nil, err
			}
			logger.Warn("Invite code collision on org create, retrying", "attempt", attempt+1)
		}
		if !created {
			return nil, ErrCodeGenerationFailed
		}
	} else {
		if err := s.orgRepo.Create(ctx, org); err != nil {
			return nil, err
		}
	}

	membership := &domain.Membership{
		UserID: userID,
		OrgID:  org.ID,
		Role:   domain.MembershipRoleAdmin,
	}
	if err := s.membershipRepo.CreateActive(ctx, membership); err != nil {
		return nil, err
	}

	if err := ensurePresenceRow(ctx, s.presenceRepo, userID); err != nil {
		return nil, err
	}

	logger.Info("Organization created", "org_id", org.ID, "kind", org.Kind, "creator_id", userID)
	return org, nil
}

func (s *membershipService) SwitchActive(ctx context.Context, userID, orgID int32) error {
	err := s.membershipRepo.SwitchActive(ctx, userID, orgID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotAMember
	}
	return err
}

// Leave removes the caller's membership. A sole admin is rejected: the org
// must never lose its last admin while other members remain, and an orphaned
// one-person org is dissolved instead.
func (s *membershipService) Leave(ctx context.Context, userID, orgID int32) error {
	membership, err := s.membershipRepo.Get(ctx, userID, orgID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotAMember
		}
		return err
	}

	if membership.Role == domain.MembershipRoleAdmin {
		admins, err := s.membershipRepo.CountAdmins(ctx, orgID)
		if err != nil {
			return err
		}
		if admins <= 1 {
			return ErrSoleAdmin
		}
	}

	if err := s.membershipRepo.Delete(ctx, userID, orgID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotAMember
		}
		return err
	}

	return s.cleanupPresence(ctx, userID)
}

// TransferAdmin swaps roles in two steps: demote the caller, then promote the
// target. The two writes are not one transaction, so a failed promotion is
// compensated by re-promoting the caller; the org never ends up adminless.
func (s *membershipService) TransferAdmin(ctx context.Context, callerID, orgID, newAdminID int32) error {
	caller, err := s.membershipRepo.Get(ctx, callerID, orgID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotAdmin
		}
		return err
	}
	if caller.Role != domain.MembershipRoleAdmin {
		return ErrNotAdmin
	}

	if _, err := s.membershipRepo.Get(ctx, newAdminID, orgID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrTargetNotMember
		}
		return err
	}

	if err := s.membershipRepo.UpdateRole(ctx, callerID, orgID, domain.MembershipRoleMember); err != nil {
		return fmt.Errorf("demote caller: %w", err)
	}

	if err := s.membershipRepo.UpdateRole(ctx, newAdminID, orgID, domain.MembershipRoleAdmin); err != nil {
		// Compensating write: restore the caller's admin role.
		if rbErr := s.membershipRepo.UpdateRole(ctx, callerID, orgID, domain.MembershipRoleAdmin); rbErr != nil {
			logger.Error("Admin transfer rollback failed",
				"org_id", orgID, "caller_id", callerID, "error", rbErr)
			return fmt.Errorf("promote failed (%v) and rollback failed: %w", err, rbErr)
		}
		return fmt.Errorf("promote target: %w", err)
	}

	logger.Info("Admin role transferred", "org_id", orgID, "from", callerID, "to", newAdminID)
	return nil
}

// Dissolve deletes the organization; memberships and notifications go with it
// through the store's cascade.
func (s *membershipService) Dissolve(ctx context.Context, adminID, orgID int32) error {
	if err := s.requireAdmin(ctx, adminID, orgID); err != nil {
		return err
	}

	users, _, err := s.membershipRepo.ListMembersByOrg(ctx, orgID)
	if err != nil {
		return err
	}

	if err := s.orgRepo.Delete(ctx, orgID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	// Presence rows outlive memberships only while the user still belongs
	// somewhere. Cleanup failures are logged, not surfaced: the dissolve
	// itself has committed.
	for _, u := range users {
		if err := s.cleanupPresence(ctx, u.ID); err != nil {
			logger.Error("Presence cleanup after dissolve failed", "user_id", u.ID, "error", err)
		}
	}

	logger.Info("Organization dissolved", "org_id", orgID, "admin_id", adminID)
	return nil
}

func (s *membershipService) SetResetHour(ctx context.Context, adminID, orgID int32, hour int32) error {
	if hour < 0 || hour > 23 {
		return fmt.Errorf("reset hour out of range: %d", hour)
	}
	if err := s.requireAdmin(ctx, adminID, orgID); err != nil {
		return err
	}
	err := s.orgRepo.SetResetHour(ctx, orgID, hour)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (s *membershipService) ListMembers(ctx context.Context, orgID int32) ([]domain.User, []domain.Membership, error) {
	return s.membershipRepo.ListMembersByOrg(ctx, orgID)
}

func (s *membershipService) requireAdmin(ctx context.Context, userID, orgID int32) error {
	membership, err := s.membershipRepo.Get(ctx, userID, orgID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotAdmin
		}
		return err
	}
	if membership.Role != domain.MembershipRoleAdmin {
		return ErrNotAdmin
	}
	return nil
}

// cleanupPresence deletes the presence row once the user's last membership is
// gone. Status is per-user, so it stays as long as any membership remains.
func (s *membershipService) cleanupPresence(ctx context.Context, userID int32) error {
	count, err := s.membershipRepo.CountOrgsForUser(ctx, userID)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return s.presenceRepo.Delete(ctx, userID)
}

// ensurePresenceRow creates the user's presence row alongside their first
// membership. A concurrent creator winning the insert is fine.
func ensurePresenceRow(ctx context.Context, repo repository.PresenceRepository, userID int32) error {
	status := &domain.PresenceStatus{
		UserID: userID,
		Status: domain.StatusAvailable,
	}
	err := repo.Create(ctx, status)
	if errors.Is(err, repository.ErrDuplicate) {
		return nil
	}
	return err
}
