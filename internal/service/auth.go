package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"hash/fnv"

	"teampulse-backend/internal/domain"
	"teampulse-backend/internal/logger"
	"teampulse-backend/internal/repository"
	"teampulse-backend/internal/security"

	"golang.org/x/crypto/bcrypt"
)

// avatarPalette is the set of colors assigned to new accounts. The pick is
// derived from the email so repeated signups in tests are stable.
var avatarPalette = []string{
	"#F44336", "#E91E63", "#9C27B0", "#3F51B5",
	"#2196F3", "#009688", "#4CAF50", "#FF9800",
}

type authService struct {
	userRepo    repository.UserRepository
	tokens      security.TokenManager
	memberships MembershipService
}

func NewAuthService(userRepo repository.UserRepository, tokens security.TokenManager, memberships MembershipService) AuthService {
	return &authService{
		userRepo:    userRepo,
		tokens:      tokens,
		memberships: memberships,
	}
}

// Signup creates the account plus its starter personal org; the org creation
// path also seeds the presence row, so a fresh account is immediately usable.
func (s *authService) Signup(ctx context.Context, name, email, password string) (*domain.User, string, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", "", err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		AvatarColor:  pickAvatarColor(email),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", "", err
	}

	if _, err := s.memberships.CreateOrganization(ctx, user.ID, defaultOrgName(name), domain.OrgKindPersonal); err != nil {
		return nil, "", "", fmt.Errorf("create starter org: %w", err)
	}

	access, refresh, err := s.issueTokens(user)
	if err != nil {
		return nil, "", "", err
	}
	return user, access, refresh, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", "", ErrInvalidCredentials
	}

	return s.issueTokens(user)
}

func (s *authService) RefreshToken(ctx context.Context, refresh string) (string, string, error) {
	claims, err := s.tokens.ValidateToken(refresh)
	if err != nil {
		return "", "", ErrUnauthenticated
	}
	if claims.Type != security.TokenTypeRefresh {
		return "", "", ErrUnauthenticated
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return "", "", ErrUnauthenticated
	}
	return s.issueTokens(user)
}

func (s *authService) ResolveUser(ctx context.Context, credential string) (*domain.User, error) {
	if credential == "" {
		return nil, ErrUnauthenticated
	}

	claims, err := s.tokens.ValidateToken(credential)
	if err != nil {
		return nil, ErrUnauthenticated
	}
	if claims.Type != security.TokenTypeAccess {
		return nil, ErrUnauthenticated
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}
	return user, nil
}

func (s *authService) UpdateProfile(ctx context.Context, userID int32, name, avatarColor string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	user.Name = name
	if avatarColor != "" {
		user.AvatarColor = avatarColor
	}
	return s.userRepo.Update(ctx, user)
}

// ChangePassword requires the current password so a hijacked session cannot
// silently rotate the credential.
func (s *authService) ChangePassword(ctx context.Context, userID int32, current, newPassword string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)

	logger.Info("Password changed", "user_id", userID)
	return s.userRepo.Update(ctx, user)
}

func (s *authService) issueTokens(user *domain.User) (string, string, error) {
	access, err := s.tokens.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return "", "", err
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func pickAvatarColor(email string) string {
	h := fnv.New32a()
	h.Write([]byte(email))
	return avatarPalette[h.Sum32()%uint32(len(avatarPalette))]
}

func defaultOrgName(userName string) string {
	if userName == "" {
		return "My Team"
	}
	return fmt.Sprintf("%s's Team", userName)
}
