package service_test

import (
	"context"
	"time"

	"teampulse-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockOrganizationRepo
type MockOrganizationRepo struct {
	mock.Mock
}

func (m *MockOrganizationRepo) Create(ctx context.Context, org *domain.Organization) error {
	args := m.Called(ctx, org)
	return args.Error(0)
}
func (m *MockOrganizationRepo) GetByID(ctx context.Context, id int32) (*domain.Organization, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}
func (m *MockOrganizationRepo) GetByInviteCode(ctx context.Context, code string) (*domain.Organization, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}
func (m *MockOrganizationRepo) SetInviteCode(ctx context.Context, orgID int32, code string) error {
	args := m.Called(ctx, orgID, code)
	return args.Error(0)
}
func (m *MockOrganizationRepo) SetResetHour(ctx context.Context, orgID int32, hour int32) error {
	args := m.Called(ctx, orgID, hour)
	return args.Error(0)
}
func (m *MockOrganizationRepo) ListByResetHour(ctx context.Context, hour int32) ([]domain.Organization, error) {
	args := m.Called(ctx, hour)
	return args.Get(0).([]domain.Organization), args.Error(1)
}
func (m *MockOrganizationRepo) Delete(ctx context.Context, orgID int32) error {
	args := m.Called(ctx, orgID)
	return args.Error(0)
}

// MockMembershipRepo
type MockMembershipRepo struct {
	mock.Mock
}

func (m *MockMembershipRepo) CreateActive(ctx context.Context, membership *domain.Membership) error {
	args := m.Called(ctx, membership)
	return args.Error(0)
}
func (m *MockMembershipRepo) Get(ctx context.Context, userID, orgID int32) (*domain.Membership, error) {
	args := m.Called(ctx, userID, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Membership), args.Error(1)
}
func (m *MockMembershipRepo) ListByUser(ctx context.Context, userID int32) ([]domain.Membership, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Membership), args.Error(1)
}
func (m *MockMembershipRepo) ListMembersByOrg(ctx context.Context, orgID int32) ([]domain.User, []domain.Membership, error) {
	args := m.Called(ctx, orgID)
	return args.Get(0).([]domain.User), args.Get(1).([]domain.Membership), args.Error(2)
}
func (m *MockMembershipRepo) ListActiveUserIDs(ctx context.Context, orgID int32) ([]int32, error) {
	args := m.Called(ctx, orgID)
	return args.Get(0).([]int32), args.Error(1)
}
func (m *MockMembershipRepo) SwitchActive(ctx context.Context, userID, orgID int32) error {
	args := m.Called(ctx, userID, orgID)
	return args.Error(0)
}
func (m *MockMembershipRepo) UpdateRole(ctx context.Context, userID, orgID int32, role domain.MembershipRole) error {
	args := m.Called(ctx, userID, orgID, role)
	return args.Error(0)
}
func (m *MockMembershipRepo) Delete(ctx context.Context, userID, orgID int32) error {
	args := m.Called(ctx, userID, orgID)
	return args.Error(0)
}
func (m *MockMembershipRepo) CountMembers(ctx context.Context, orgID int32) (int32, error) {
	args := m.Called(ctx, orgID)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockMembershipRepo) CountOrgsForUser(ctx context.Context, userID int32) (int32, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockMembershipRepo) CountAdmins(ctx context.Context, orgID int32) (int32, error) {
	args := m.Called(ctx, orgID)
	return args.Get(0).(int32), args.Error(1)
}

// MockPresenceRepo
type MockPresenceRepo struct {
	mock.Mock
}

func (m *MockPresenceRepo) Create(ctx context.Context, status *domain.PresenceStatus) error {
	args := m.Called(ctx, status)
	return args.Error(0)
}
func (m *MockPresenceRepo) Get(ctx context.Context, userID int32) (*domain.PresenceStatus, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PresenceStatus), args.Error(1)
}
func (m *MockPresenceRepo) SetStatus(ctx context.Context, userID int32, status domain.StatusTag, now time.Time) error {
	args := m.Called(ctx, userID, status, now)
	return args.Error(0)
}
func (m *MockPresenceRepo) SetCustomSlot(ctx context.Context, userID int32, slot int32, label, icon string, now time.Time) error {
	args := m.Called(ctx, userID, slot, label, icon, now)
	return args.Error(0)
}
func (m *MockPresenceRepo) ResetToDefault(ctx context.Context, orgID int32, windowStart, now time.Time) (int64, error) {
	args := m.Called(ctx, orgID, windowStart, now)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockPresenceRepo) Delete(ctx context.Context, userID int32) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}
func (m *MockNotificationRepo) GetByID(ctx context.Context, id int32) (*domain.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}
func (m *MockNotificationRepo) MarkReplied(ctx context.Context, id int32, status domain.NotificationStatus) (int64, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id, userID int32) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}
func (m *MockNotificationRepo) ListPending(ctx context.Context, recipientID int32, now time.Time) ([]domain.Notification, error) {
	args := m.Called(ctx, recipientID, now)
	return args.Get(0).([]domain.Notification), args.Error(1)
}
func (m *MockNotificationRepo) List(ctx context.Context, recipientID int32, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, recipientID, limit, offset)
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}

// MockMembershipService
type MockMembershipService struct {
	mock.Mock
}

func (m *MockMembershipService) ListMemberships(ctx context.Context, userID int32) ([]domain.Organization, []domain.Membership, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Organization), args.Get(1).([]domain.Membership), args.Error(2)
}
func (m *MockMembershipService) CreateOrganization(ctx context.Context, userID int32, name string, kind domain.OrgKind) (*domain.Organization, error) {
	args := m.Called(ctx, userID, name, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}
func (m *MockMembershipService) SwitchActive(ctx context.Context, userID, orgID int32) error {
	args := m.Called(ctx, userID, orgID)
	return args.Error(0)
}
func (m *MockMembershipService) Leave(ctx context.Context, userID, orgID int32) error {
	args := m.Called(ctx, userID, orgID)
	return args.Error(0)
}
func (m *MockMembershipService) TransferAdmin(ctx context.Context, callerID, orgID, newAdminID int32) error {
	args := m.Called(ctx, callerID, orgID, newAdminID)
	return args.Error(0)
}
func (m *MockMembershipService) Dissolve(ctx context.Context, adminID, orgID int32) error {
	args := m.Called(ctx, adminID, orgID)
	return args.Error(0)
}
func (m *MockMembershipService) SetResetHour(ctx context.Context, adminID, orgID int32, hour int32) error {
	args := m.Called(ctx, adminID, orgID, hour)
	return args.Error(0)
}
func (m *MockMembershipService) ListMembers(ctx context.Context, orgID int32) ([]domain.User, []domain.Membership, error) {
	args := m.Called(ctx, orgID)
	return args.Get(0).([]domain.User), args.Get(1).([]domain.Membership), args.Error(2)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendInviteLink(ctx context.Context, email, orgName, link string) error {
	args := m.Called(ctx, email, orgName, link)
	return args.Error(0)
}
