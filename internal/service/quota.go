package service

import (
	"context"

	"teampulse-backend/internal/repository"
)

type quotaService struct {
	membershipRepo repository.MembershipRepository
	membersPerOrg  int32
	orgsPerUser    int32
}

func NewQuotaService(membershipRepo repository.MembershipRepository, membersPerOrg, orgsPerUser int32) QuotaService {
	return &quotaService{
		membershipRepo: membershipRepo,
		membersPerOrg:  membersPerOrg,
		orgsPerUser:    orgsPerUser,
	}
}

func (s *quotaService) CheckMemberLimit(ctx context.Context, orgID int32) (*QuotaCheck, error) {
	count, err := s.membershipRepo.CountMembers(ctx, orgID)
	if err != nil {
		return nil, err
	}
	return &QuotaCheck{
		Allowed: count < s.membersPerOrg,
		Count:   count,
		Limit:   s.membersPerOrg,
	}, nil
}

func (s *quotaService) CheckOrgLimit(ctx context.Context, userID int32) (*QuotaCheck, error) {
	count, err := s.membershipRepo.CountOrgsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &QuotaCheck{
		Allowed: count < s.orgsPerUser,
		Count:   count,
		Limit:   s.orgsPerUser,
	}, nil
}
