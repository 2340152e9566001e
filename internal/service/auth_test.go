package service_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"teampulse-backend/internal/domain"
	"teampulse-backend/internal/security"
	"teampulse-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func newAuthFixture(t *testing.T) (*MockUserRepo, *MockMembershipService, security.TokenManager, service.AuthService) {
	t.Helper()
	userRepo := new(MockUserRepo)
	memberships := new(MockMembershipService)
	tokens := security.NewTokenManager("test-secret", 15*time.Minute, 24*time.Hour)
	return userRepo, memberships, tokens, service.NewAuthService(userRepo, tokens, memberships)
}

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()

	t.Run("CreatesUserAndStarterOrg", func(t *testing.T) {
		userRepo, memberships, tokens, svc := newAuthFixture(t)

		userRepo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Email == "ana@example.com" && u.Name == "Ana" && u.AvatarColor != ""
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.User).ID = 7
		}).Return(nil)
		memberships.On("CreateOrganization", ctx, int32(7), "Ana's Team", domain.OrgKindPersonal).
			Return(&domain.Organization{ID: 42, Kind: domain.OrgKindPersonal}, nil)

		user, access, refresh, err := svc.Signup(ctx, "Ana", "ana@example.com", "hunter22")
		assert.NoError(t, err)
		assert.Equal(t, int32(7), user.ID)

		// Password must be stored hashed, never verbatim.
		assert.NotEqual(t, "hunter22", user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter22")))

		claims, err := tokens.ValidateToken(access)
		assert.NoError(t, err)
		assert.Equal(t, security.TokenTypeAccess, claims.Type)
		assert.Equal(t, int32(7), claims.UserID)

		claims, err = tokens.ValidateToken(refresh)
		assert.NoError(t, err)
		assert.Equal(t, security.TokenTypeRefresh, claims.Type)

		// A fresh account must come with its personal org (which seeds the
		// presence row) rather than requiring a second call.
		memberships.AssertExpectations(t)
	})

	t.Run("StarterOrgFailureFailsSignup", func(t *testing.T) {
		userRepo, memberships, _, svc := newAuthFixture(t)

		userRepo.On("Create", ctx, mock.Anything).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.User).ID = 7
		}).Return(nil)
		memberships.On("CreateOrganization", ctx, int32(7), "Bo's Team", domain.OrgKindPersonal).
			Return(nil, service.ErrQuotaExceeded)

		_, _, _, err := svc.Signup(ctx, "Bo", "bo@example.com", "hunter22")
		assert.ErrorIs(t, err, service.ErrQuotaExceeded)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	stored := &domain.User{ID: 7, Email: "ana@example.com", PasswordHash: string(hash)}

	t.Run("Success", func(t *testing.T) {
		userRepo, _, tokens, svc := newAuthFixture(t)
		userRepo.On("GetByEmail", ctx, "ana@example.com").Return(stored, nil)

		access, _, err := svc.Login(ctx, "ana@example.com", "hunter22")
		assert.NoError(t, err)

		claims, err := tokens.ValidateToken(access)
		assert.NoError(t, err)
		assert.Equal(t, int32(7), claims.UserID)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		userRepo, _, _, svc := newAuthFixture(t)
		userRepo.On("GetByEmail", ctx, "ana@example.com").Return(stored, nil)

		_, _, err := svc.Login(ctx, "ana@example.com", "wrong")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		userRepo, _, _, svc := newAuthFixture(t)
		userRepo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, sql.ErrNoRows)

		_, _, err := svc.Login(ctx, "ghost@example.com", "hunter22")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}

func TestAuthService_ResolveUser(t *testing.T) {
	ctx := context.Background()
	stored := &domain.User{ID: 7, Email: "ana@example.com"}

	t.Run("ValidAccessToken", func(t *testing.T) {
		userRepo, _, tokens, svc := newAuthFixture(t)
		userRepo.On("GetByID", ctx, int32(7)).Return(stored, nil)

		access, err := tokens.GenerateAccessToken(7, "ana@example.com")
		assert.NoError(t, err)

		user, err := svc.ResolveUser(ctx, access)
		assert.NoError(t, err)
		assert.Equal(t, int32(7), user.ID)
	})

	t.Run("EmptyCredential", func(t *testing.T) {
		_, _, _, svc := newAuthFixture(t)
		_, err := svc.ResolveUser(ctx, "")
		assert.ErrorIs(t, err, service.ErrUnauthenticated)
	})

	t.Run("GarbageCredential", func(t *testing.T) {
		_, _, _, svc := newAuthFixture(t)
		_, err := svc.ResolveUser(ctx, "not.a.jwt")
		assert.ErrorIs(t, err, service.ErrUnauthenticated)
	})

	t.Run("RefreshTokenRejected", func(t *testing.T) {
		_, _, tokens, svc := newAuthFixture(t)
		refresh, err := tokens.GenerateRefreshToken(7, "ana@example.com")
		assert.NoError(t, err)

		_, err = svc.ResolveUser(ctx, refresh)
		assert.ErrorIs(t, err, service.ErrUnauthenticated)
	})

	t.Run("DeletedUser", func(t *testing.T) {
		userRepo, _, tokens, svc := newAuthFixture(t)
		userRepo.On("GetByID", ctx, int32(7)).Return(nil, sql.ErrNoRows)

		access, _ := tokens.GenerateAccessToken(7, "ana@example.com")
		_, err := svc.ResolveUser(ctx, access)
		assert.ErrorIs(t, err, service.ErrUnauthenticated)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctx := context.Background()
	stored := &domain.User{ID: 7, Email: "ana@example.com"}

	t.Run("RotatesPair", func(t *testing.T) {
		userRepo, _, tokens, svc := newAuthFixture(t)
		userRepo.On("GetByID", ctx, int32(7)).Return(stored, nil)

		refresh, err := tokens.GenerateRefreshToken(7, "ana@example.com")
		assert.NoError(t, err)

		access, newRefresh, err := svc.RefreshToken(ctx, refresh)
		assert.NoError(t, err)

		claims, err := tokens.ValidateToken(access)
		assert.NoError(t, err)
		assert.Equal(t, security.TokenTypeAccess, claims.Type)

		claims, err = tokens.ValidateToken(newRefresh)
		assert.NoError(t, err)
		assert.Equal(t, security.TokenTypeRefresh, claims.Type)
	})

	t.Run("AccessTokenRejected", func(t *testing.T) {
		_, _, tokens, svc := newAuthFixture(t)
		access, _ := tokens.GenerateAccessToken(7, "ana@example.com")

		_, _, err := svc.RefreshToken(ctx, access)
		assert.ErrorIs(t, err, service.ErrUnauthenticated)
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("RequiresCurrentPassword", func(t *testing.T) {
		userRepo, _, _, svc := newAuthFixture(t)
		hash, _ := bcrypt.GenerateFromPassword([]byte("oldpass"), bcrypt.MinCost)
		userRepo.On("GetByID", ctx, int32(7)).Return(&domain.User{ID: 7, PasswordHash: string(hash)}, nil)

		err := svc.ChangePassword(ctx, 7, "wrongpass", "newpass")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
		userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("RehashesOnSuccess", func(t *testing.T) {
		userRepo, _, _, svc := newAuthFixture(t)
		hash, _ := bcrypt.GenerateFromPassword([]byte("oldpass"), bcrypt.MinCost)
		user := &domain.User{ID: 7, PasswordHash: string(hash)}
		userRepo.On("GetByID", ctx, int32(7)).Return(user, nil)
		userRepo.On("Update", ctx, user).Return(nil)

		assert.NoError(t, svc.ChangePassword(ctx, 7, "oldpass", "newpass"))
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("newpass")))
	})
}
