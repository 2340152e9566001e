package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"teampulse-backend/internal/domain"
	"teampulse-backend/internal/logger"
	"teampulse-backend/internal/repository"
)

type presenceService struct {
	presenceRepo repository.PresenceRepository
}

func NewPresenceService(presenceRepo repository.PresenceRepository) PresenceService {
	return &presenceService{presenceRepo: presenceRepo}
}

func (s *presenceService) SetStatus(ctx context.Context, userID int32, status domain.StatusTag) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}
	err := s.presenceRepo.SetStatus(ctx, userID, status, time.Now())
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// SetCustomSlot overwrites the label and icon of one custom slot without
// changing the current status tag.
func (s *presenceService) SetCustomSlot(ctx context.Context, userID int32, slot int32, label, icon string) error {
	if slot != 1 && slot != 2 {
		return fmt.Errorf("custom slot must be 1 or 2, got %d", slot)
	}
	err := s.presenceRepo.SetCustomSlot(ctx, userID, slot, label, icon, time.Now())
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (s *presenceService) GetStatus(ctx context.Context, userID int32) (*domain.PresenceStatus, error) {
	status, err := s.presenceRepo.Get(ctx, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return status, err
}

// AutoReset reverts the org's members to the default status. The window
// starts at the org's configured hour; rows touched at or after that instant
// are left alone, which makes a second run inside the same window a no-op and
// keeps user updates made after the sweep from being clobbered.
func (s *presenceService) AutoReset(ctx context.Context, orgID int32, hour int32, now time.Time) (int64, error) {
	if hour < 0 || hour > 23 {
		return 0, fmt.Errorf("reset hour out of range: %d", hour)
	}

	windowStart := time.Date(now.Year(), now.Month(), now.Day(), int(hour), 0, 0, 0, time.UTC)
	if windowStart.After(now) {
		// Fired before the window opened (clock skew); previous day's window.
		windowStart = windowStart.AddDate(0, 0, -1)
	}

	count, err := s.presenceRepo.ResetToDefault(ctx, orgID, windowStart, now)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		logger.Info("Presence auto-reset applied", "org_id", orgID, "reverted", count)
	}
	return count, nil
}
