package httpapi

import (
	"context"
	"time"

	"teampulse-backend/internal/domain"
	"teampulse-backend/internal/service"

	"github.com/stretchr/testify/mock"
)

// MockAuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Signup(ctx context.Context, name, email, password string) (*domain.User, string, string, error) {
	args := m.Called(ctx, name, email, password)
	if args.Get(0) == nil {
		return nil, "", "", args.Error(3)
	}
	return args.Get(0).(*domain.User), args.String(1), args.String(2), args.Error(3)
}
func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.String(1), args.Error(2)
}
func (m *MockAuthService) RefreshToken(ctx context.Context, refresh string) (string, string, error) {
	args := m.Called(ctx, refresh)
	return args.String(0), args.String(1), args.Error(2)
}
func (m *MockAuthService) ResolveUser(ctx context.Context, credential string) (*domain.User, error) {
	args := m.Called(ctx, credential)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockAuthService) UpdateProfile(ctx context.Context, userID int32, name, avatarColor string) error {
	args := m.Called(ctx, userID, name, avatarColor)
	return args.Error(0)
}
func (m *MockAuthService) ChangePassword(ctx context.Context, userID int32, current, newPassword string) error {
	args := m.Called(ctx, userID, current, newPassword)
	return args.Error(0)
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

// MockInviteService
type MockInviteService struct {
	mock.Mock
}

func (m *MockInviteService) GenerateCode(ctx context.Context, callerID, orgID int32) (string, error) {
	args := m.Called(ctx, callerID, orgID)
	return args.String(0), args.Error(1)
}
func (m *MockInviteService) Redeem(ctx context.Context, userID int32, code string) (*domain.Organization, error) {
	args := m.Called(ctx, userID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}
func (m *MockInviteService) GetOrCreateInviteLink(ctx context.Context, callerID, orgID int32) (string, error) {
	args := m.Called(ctx, callerID, orgID)
	return args.String(0), args.Error(1)
}
func (m *MockInviteService) EmailInvite(ctx context.Context, callerID, orgID int32, email string) error {
	args := m.Called(ctx, callerID, orgID, email)
	return args.Error(0)
}

// MockPresenceService
type MockPresenceService struct {
	mock.Mock
}

func (m *MockPresenceService) SetStatus(ctx context.Context, userID int32, status domain.StatusTag) error {
	args := m.Called(ctx, userID, status)
	return args.Error(0)
}
func (m *MockPresenceService) SetCustomSlot(ctx context.Context, userID int32, slot int32, label, icon string) error {
	args := m.Called(ctx, userID, slot, label, icon)
	return args.Error(0)
}
func (m *MockPresenceService) GetStatus(ctx context.Context, userID int32) (*domain.PresenceStatus, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PresenceStatus), args.Error(1)
}
func (m *MockPresenceService) AutoReset(ctx context.Context, orgID int32, hour int32, now time.Time) (int64, error) {
	args := m.Called(ctx, orgID, hour, now)
	return args.Get(0).(int64), args.Error(1)
}

// MockNotificationService
type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) Broadcast(ctx context.Context, senderID int32, notificationType, message string) (int32, []service.BroadcastResult, error) {
	args := m.Called(ctx, senderID, notificationType, message)
	return args.Get(0).(int32), args.Get(1).([]service.BroadcastResult), args.Error(2)
}
func (m *MockNotificationService) Reply(ctx context.Context, recipientID, notificationID int32, outcome domain.NotificationStatus) error {
	args := m.Called(ctx, recipientID, notificationID, outcome)
	return args.Error(0)
}
func (m *MockNotificationService) ListPending(ctx context.Context, recipientID int32) ([]domain.Notification, error) {
	args := m.Called(ctx, recipientID)
	return args.Get(0).([]domain.Notification), args.Error(1)
}
func (m *MockNotificationService) ListHistory(ctx context.Context, recipientID int32, page, pageSize int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, recipientID, page, pageSize)
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}
func (m *MockNotificationService) MarkAsRead(ctx context.Context, userID, notificationID int32) error {
	args := m.Called(ctx, userID, notificationID)
	return args.Error(0)
}
