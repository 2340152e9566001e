package postgres_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"teampulse-backend/internal/domain"
	"teampulse-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestNotificationRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewNotificationRepository(db)
	ctx := context.Background()

	now := time.Now()
	note := &domain.Notification{
		SenderID:     1,
		SenderName:   "Ana",
		SenderAvatar: "#4F46E5",
		RecipientID:  2,
		OrgID:        42,
		Type:         "lunch_invite",
		Message:      "Lunch at noon?",
		Status:       domain.NotificationStatusPending,
		CreatedOn:    now,
		ExpiresOn:    now.Add(24 * time.Hour),
	}

	mock.ExpectQuery("INSERT INTO notifications").
		WithArgs(note.SenderID, note.SenderName, note.SenderAvatar, note.RecipientID, note.OrgID,
			note.Type, note.Message, note.Status, note.IsRead, note.CreatedOn, note.ExpiresOn).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

	assert.NoError(t, repo.Create(ctx, note))
	assert.Equal(t, int32(5), note.ID)
}

func TestNotificationRepository_MarkReplied(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewNotificationRepository(db)
	ctx := context.Background()

	t.Run("PendingRowUpdated", func(t *testing.T) {
		mock.ExpectExec("UPDATE notifications SET status").
			WithArgs(domain.NotificationStatusAccepted, int32(5), domain.NotificationStatusPending).
			WillReturnResult(sqlmock.NewResult(0, 1))

		rows, err := repo.MarkReplied(ctx, 5, domain.NotificationStatusAccepted)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), rows)
	})

	t.Run("GuardSkipsNonPendingRow", func(t *testing.T) {
		mock.ExpectExec("UPDATE notifications SET status").
			WithArgs(domain.NotificationStatusDeclined, int32(5), domain.NotificationStatusPending).
			WillReturnResult(sqlmock.NewResult(0, 0))

		rows, err := repo.MarkReplied(ctx, 5, domain.NotificationStatusDeclined)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), rows)
	})
}

func TestNotificationRepository_MarkAsRead(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewNotificationRepository(db)
	ctx := context.Background()

	t.Run("OwnRowUpdated", func(t *testing.T) {
		mock.ExpectExec("UPDATE notifications SET is_read").
			WithArgs(int32(5), int32(2)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.MarkAsRead(ctx, 5, 2))
	})

	t.Run("NoMatchingRowIsNoRows", func(t *testing.T) {
		// Covers both an absent id and someone else's notification.
		mock.ExpectExec("UPDATE notifications SET is_read").
			WithArgs(int32(99), int32(2)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.MarkAsRead(ctx, 99, 2), sql.ErrNoRows)
	})
}

func TestNotificationRepository_ListPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewNotificationRepository(db)
	ctx := context.Background()
	now := time.Now()

	cols := []string{"id", "sender_id", "sender_name", "sender_avatar", "recipient_id", "org_id",
		"type", "message", "status", "is_read", "created_on", "expires_on"}
	rows := sqlmock.NewRows(cols).
		AddRow(5, 1, "Ana", "#4F46E5", 2, 42, "lunch_invite", "Lunch?", "PENDING", false, now.Add(-time.Hour), now.Add(23*time.Hour))

	mock.ExpectQuery("SELECT (.+) FROM notifications").
		WithArgs(int32(2), domain.NotificationStatusPending, now).
		WillReturnRows(rows)

	notes, err := repo.ListPending(ctx, 2, now)
	assert.NoError(t, err)
	assert.Len(t, notes, 1)
	assert.Equal(t, domain.NotificationStatusPending, notes[0].Status)
}

func TestNotificationRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewNotificationRepository(db)
	ctx := context.Background()
	now := time.Now()

	mock.ExpectQuery("SELECT count").
		WithArgs(int32(2)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(21))

	cols := []string{"id", "sender_id", "sender_name", "sender_avatar", "recipient_id", "org_id",
		"type", "message", "status", "is_read", "created_on", "expires_on"}
	rows := sqlmock.NewRows(cols).
		AddRow(5, 1, "Ana", "#4F46E5", 2, 42, "lunch_invite", "Lunch?", "ACCEPTED", true, now, now.Add(24*time.Hour))

	mock.ExpectQuery("SELECT (.+) FROM notifications").
		WithArgs(int32(2), int32(20), int32(0)).
		WillReturnRows(rows)

	notes, total, err := repo.List(ctx, 2, 20, 0)
	assert.NoError(t, err)
	assert.Equal(t, int32(21), total)
	assert.Len(t, notes, 1)
}
