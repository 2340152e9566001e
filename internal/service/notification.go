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

// replyWindow is how long a broadcast stays actionable.
const replyWindow = 24 * time.Hour

type notificationService struct {
	noteRepo       repository.NotificationRepository
	membershipRepo repository.MembershipRepository
	userRepo       repository.UserRepository
}

func NewNotificationService(
	noteRepo repository.NotificationRepository,
	membershipRepo repository.MembershipRepository,
	userRepo repository.UserRepository,
) NotificationService {
	return &notificationService{
		noteRepo:       noteRepo,
		membershipRepo: membershipRepo,
		userRepo:       userRepo,
	}
}

// Broadcast inserts one notification per recipient. The fan-out is N
// independent writes, not a transaction: failed inserts are collected per
// recipient and reported as a partial failure alongside the success count.
func (s *notificationService) Broadcast(ctx context.Context, senderID int32, notificationType, message string) (int32, []BroadcastResult, error) {
	logger.EnterMethod("notificationService.Broadcast", "senderID", senderID, "type", notificationType)

	sender, err := s.userRepo.GetByID(ctx, senderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil, ErrNotFound
		}
		return 0, nil, err
	}

	memberships, err := s.membershipRepo.ListByUser(ctx, senderID)
	if err != nil {
		logger.ExitMethodWithError("notificationService.Broadcast", err, "senderID", senderID)
		return 0, nil, err
	}
	var orgID int32
	for _, m := range memberships {
		if m.IsActive {
			orgID = m.OrgID
			break
		}
	}
	if orgID == 0 {
		return 0, nil, ErrNotAMember
	}

	recipientIDs, err := s.membershipRepo.ListActiveUserIDs(ctx, orgID)
	if err != nil {
		return 0, nil, err
	}

	now := time.Now()
	expires := now.Add(replyWindow)

	var count int32
	var results []BroadcastResult
	for _, recipientID := range recipientIDs {
		if recipientID == senderID {
			continue
		}

		note := &domain.Notification{
			SenderID:     senderID,
			SenderName:   sender.Name,
			SenderAvatar: sender.AvatarColor,
			RecipientID:  recipientID,
			OrgID:        orgID,
			Type:         notificationType,
			Message:      message,
			Status:       domain.NotificationStatusPending,
			IsRead:       false,
			CreatedOn:    now,
			ExpiresOn:    expires,
		}

		insertErr := s.noteRepo.Create(ctx, note)
		if insertErr != nil {
			logger.Error("Broadcast insert failed", "org_id", orgID, "recipient_id", recipientID, "error", insertErr)
		} else {
			count++
		}
		results = append(results, BroadcastResult{RecipientID: recipientID, Err: insertErr})
	}

	if int(count) < len(results) {
		return count, results, fmt.Errorf("%w: %d of %d inserts succeeded", ErrPartialFailure, count, len(results))
	}

	logger.ExitMethod("notificationService.Broadcast", "orgID", orgID, "senderID", senderID, "recipients", count)
	return count, results, nil
}

func (s *notificationService) Reply(ctx context.Context, recipientID, notificationID int32, outcome domain.NotificationStatus) error {
	if outcome != domain.NotificationStatusAccepted && outcome != domain.NotificationStatusDeclined {
		return fmt.Errorf("invalid reply outcome: %s", outcome)
	}

	note, err := s.noteRepo.GetByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if note.RecipientID != recipientID {
		// Not the recipient's notification; indistinguishable from absent.
		return ErrNotFound
	}
	if note.Expired(time.Now()) {
		return ErrExpired
	}
	if note.Status != domain.NotificationStatusPending {
		return ErrAlreadyReplied
	}

	rows, err := s.noteRepo.MarkReplied(ctx, notificationID, outcome)
	if err != nil {
		return err
	}
	if rows == 0 {
		// Lost the race against another reply; the guard kept the first one.
		return ErrAlreadyReplied
	}
	return nil
}

func (s *notificationService) ListPending(ctx context.Context, recipientID int32) ([]domain.Notification, error) {
	return s.noteRepo.ListPending(ctx, recipientID, time.Now())
}

func (s *notificationService) ListHistory(ctx context.Context, recipientID int32, page, pageSize int32) ([]domain.Notification, int32, error) {
	offset := (page - 1) * pageSize
	return s.noteRepo.List(ctx, recipientID, pageSize, offset)
}

func (s *notificationService) MarkAsRead(ctx context.Context, userID, notificationID int32) error {
	err := s.noteRepo.MarkAsRead(ctx, notificationID, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
