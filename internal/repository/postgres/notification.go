package postgres

import (
	"context"
	"database/sql"
	"time"

	"teampulse-backend/internal/domain"
	"teampulse-backend/internal/logger"
	"teampulse-backend/internal/repository"
)

type notificationRepository struct {
	db *sql.DB
}

func NewNotificationRepository(db *sql.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

const notificationColumns = `id, sender_id, sender_name, sender_avatar, recipient_id, org_id, type, message, status, is_read, created_on, expires_on`

func scanNotification(row interface{ Scan(...any) error }, n *domain.Notification) error {
	return row.Scan(&n.ID, &n.SenderID, &n.SenderName, &n.SenderAvatar, &n.RecipientID, &n.OrgID,
		&n.Type, &n.Message, &n.Status, &n.IsRead, &n.CreatedOn, &n.ExpiresOn)
}

func (r *notificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	logger.DatabaseCall("INSERT", "notifications", "recipientID", n.RecipientID, "orgID", n.OrgID)
	query := `INSERT INTO notifications (sender_id, sender_name, sender_avatar, recipient_id, org_id, type, message, status, is_read, created_on, expires_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	return r.db.QueryRowContext(ctx, query, n.SenderID, n.SenderName, n.SenderAvatar, n.RecipientID, n.OrgID,
		n.Type, n.Message, n.Status, n.IsRead, n.CreatedOn, n.ExpiresOn).Scan(&n.ID)
}

func (r *notificationRepository) GetByID(ctx context.Context, id int32) (*domain.Notification, error) {
	n := &domain.Notification{}
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE id = $1`
	if err := scanNotification(r.db.QueryRowContext(ctx, query, id), n); err != nil {
		return nil, err
	}
	return n, nil
}

func (r *notificationRepository) MarkReplied(ctx context.Context, id int32, status domain.NotificationStatus) (int64, error) {
	query := `UPDATE notifications SET status = $1, is_read = TRUE WHERE id = $2 AND status = $3`
	result, err := r.db.ExecContext(ctx, query, status, id, domain.NotificationStatusPending)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *notificationRepository) MarkAsRead(ctx context.Context, id, userID int32) error {
	query := `UPDATE notifications SET is_read = TRUE WHERE id = $1 AND recipient_id = $2`
	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		// Absent id and wrong recipient are indistinguishable here.
		return sql.ErrNoRows
	}
	return nil
}

func (r *notificationRepository) ListPending(ctx context.Context, recipientID int32, now time.Time) ([]domain.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications
	          WHERE recipient_id = $1 AND status = $2 AND expires_on >= $3
	          ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, recipientID, domain.NotificationStatusPending, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []domain.Notification
	for rows.Next() {
		var n domain.Notification
		if err := scanNotification(rows, &n); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

func (r *notificationRepository) List(ctx context.Context, recipientID int32, limit, offset int32) ([]domain.Notification, int32, error) {
	var count int32
	countQuery := `SELECT count(*) FROM notifications WHERE recipient_id = $1`
	if err := r.db.QueryRowContext(ctx, countQuery, recipientID).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + notificationColumns + ` FROM notifications
	          WHERE recipient_id = $1 ORDER BY created_on DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, recipientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var notes []domain.Notification
	for rows.Next() {
		var n domain.Notification
		if err := scanNotification(rows, &n); err != nil {
			return nil, 0, err
		}
		notes = append(notes, n)
	}
	return notes, count, rows.Err()
}
