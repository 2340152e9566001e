package service

import (
	"context"
	"crypto/rand"
	"database/sql"
	"errors"
	"fmt"
	"math/big"

	"teampulse-backend/internal/domain"
	"teampulse-backend/internal/logger"
	"teampulse-backend/internal/repository"
)

const (
	// personalCodeAlphabet has 32 symbols with the visually ambiguous ones
	// (0/O, 1/I) removed, since personal codes are read aloud and retyped.
	personalCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	personalCodeLength   = 8

	businessTokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	businessTokenLength   = 16

	codeGenRetries = 3
)

// NewPersonalCode returns a fresh 8-character invite code for personal orgs.
func NewPersonalCode() string {
	return randomString(personalCodeAlphabet, personalCodeLength)
}

// NewBusinessToken returns a fresh 16-character invite token for business orgs.
func NewBusinessToken() string {
	return randomString(businessTokenAlphabet, businessTokenLength)
}

func randomString(alphabet string, length int) string {
	max := big.NewInt(int64(len(alphabet)))
	b := make([]byte, length)
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic(fmt.Sprintf("crypto/rand unavailable: %v", err))
		}
		b[i] = alphabet[n.Int64()]
	}
	return string(b)
}

type inviteService struct {
	orgRepo        repository.OrganizationRepository
	membershipRepo repository.MembershipRepository
	presenceRepo   repository.PresenceRepository
	quota          QuotaService
	email          EmailService
	baseURL        string
}

func NewInviteService(
	orgRepo repository.OrganizationRepository,
	membershipRepo repository.MembershipRepository,
	presenceRepo repository.PresenceRepository,
	quota QuotaService,
	email EmailService,
	baseURL string,
) InviteService {
	return &inviteService{
		orgRepo:        orgRepo,
		membershipRepo: membershipRepo,
		presenceRepo:   presenceRepo,
		quota:          quota,
		email:          email,
		baseURL:        baseURL,
	}
}

// GenerateCode returns the org's invite code, generating one if none exists.
// Only an admin of the org may issue its code. Uniqueness rides on the store's
// unique index: a collision on write is retried with a fresh code, bounded,
// then surfaced.
func (s *inviteService) GenerateCode(ctx context.Context, callerID, orgID int32) (string, error) {
	if err := s.requireAdmin(ctx, callerID, orgID); err != nil {
		return "", err
	}
	return s.generateCode(ctx, orgID)
}

func (s *inviteService) generateCode(ctx context.Context, orgID int32) (string, error) {
	org, err := s.orgRepo.GetByID(ctx, orgID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}
	if org.InviteCode != nil {
		return *org.InviteCode, nil
	}

	for attempt := 0; attempt < codeGenRetries; attempt++ {
		var code string
		if org.Kind == domain.OrgKindPersonal {
			code = NewPersonalCode()
		} else {
			code = NewBusinessToken()
		}

		err = s.orgRepo.SetInviteCode(ctx, orgID, code)
		if err == nil {
			return code, nil
		}
		if !errors.Is(err, repository.ErrDuplicate) {
			return "", err
		}
		logger.Warn("Invite code collision, retrying", "org_id", orgID, "attempt", attempt+1)
	}
	return "", ErrCodeGenerationFailed
}

// Redeem joins the caller to the org behind the code and makes it their
// active org. The AlreadyMember pre-check is advisory; the real safety net
// for a concurrent double-submit is the (user, org) uniqueness constraint,
// whose violation maps back to ErrAlreadyMember.
func (s *inviteService) Redeem(ctx context.Context, userID int32, code string) (*domain.Organization, error) {
	org, err := s.orgRepo.GetByInviteCode(ctx, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCode
		}
		return nil, err
	}

	if _, err := s.membershipRepo.Get(ctx, userID, org.ID); err == nil {
		return nil, ErrAlreadyMember
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	orgCheck, err := s.quota.CheckOrgLimit(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !orgCheck.Allowed {
		return nil, ErrQuotaExceeded
	}
	memberCheck, err := s.quota.CheckMemberLimit(ctx, org.ID)
	if err != nil {
		return nil, err
	}
	if !memberCheck.Allowed {
		return nil, ErrQuotaExceeded
	}

	membership := &domain.Membership{
		UserID: userID,
		OrgID:  org.ID,
		Role:   domain.MembershipRoleMember,
	}
	if err := s.membershipRepo.CreateActive(ctx, membership); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyMember
		}
		return nil, err
	}

	if err := ensurePresenceRow(ctx, s.presenceRepo, userID); err != nil {
		return nil, err
	}

	logger.Info("Invite redeemed", "org_id", org.ID, "user_id", userID)
	return org, nil
}

func (s *inviteService) GetOrCreateInviteLink(ctx context.Context, callerID, orgID int32) (string, error) {
	if err := s.requireAdmin(ctx, callerID, orgID); err != nil {
		return "", err
	}
	code, err := s.generateCode(ctx, orgID)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/invite/%s", s.baseURL, code), nil
}

func (s *inviteService) EmailInvite(ctx context.Context, callerID, orgID int32, email string) error {
	if err := s.requireAdmin(ctx, callerID, orgID); err != nil {
		return err
	}

	org, err := s.orgRepo.GetByID(ctx, orgID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	code, err := s.generateCode(ctx, orgID)
	if err != nil {
		return err
	}
	link := fmt.Sprintf("%s/invite/%s", s.baseURL, code)

	if err := s.email.SendInviteLink(ctx, email, org.Name, link); err != nil {
		return fmt.Errorf("failed to send invite email: %w", err)
	}
	return nil
}

// requireAdmin rejects callers who do not hold the admin role in the org.
// Non-members get the same answer as members without the role.
func (s *inviteService) requireAdmin(ctx context.Context, userID, orgID int32) error {
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
