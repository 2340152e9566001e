package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"teampulse-backend/internal/domain"
	"teampulse-backend/internal/repository"
)

type presenceRepository struct {
	db *sql.DB
}

func NewPresenceRepository(db *sql.DB) repository.PresenceRepository {
	return &presenceRepository{db: db}
}

func (r *presenceRepository) Create(ctx context.Context, s *domain.PresenceStatus) error {
	query := `INSERT INTO presence_statuses (user_id, status, custom1_label, custom1_icon, custom2_label, custom2_icon, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	s.UpdatedOn = time.Now()
	_, err := r.db.ExecContext(ctx, query, s.UserID, s.Status, s.Custom1Label, s.Custom1Icon, s.Custom2Label, s.Custom2Icon, s.UpdatedOn)
	return mapUniqueViolation(err)
}

func (r *presenceRepository) Get(ctx context.Context, userID int32) (*domain.PresenceStatus, error) {
	s := &domain.PresenceStatus{}
	query := `SELECT user_id, status, custom1_label, custom1_icon, custom2_label, custom2_icon, updated_on
	          FROM presence_statuses WHERE user_id = $1`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&s.UserID, &s.Status, &s.Custom1Label, &s.Custom1Icon, &s.Custom2Label, &s.Custom2Icon, &s.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *presenceRepository) SetStatus(ctx context.Context, userID int32, status domain.StatusTag, now time.Time) error {
	query := `UPDATE presence_statuses SET status = $1, updated_on = $2 WHERE user_id = $3`
	result, err := r.db.ExecContext(ctx, query, status, now, userID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *presenceRepository) SetCustomSlot(ctx context.Context, userID int32, slot int32, label, icon string, now time.Time) error {
	if slot != 1 && slot != 2 {
		return fmt.Errorf("invalid custom slot: %d", slot)
	}
	query := fmt.Sprintf(`UPDATE presence_statuses SET custom%d_label = $1, custom%d_icon = $2, updated_on = $3 WHERE user_id = $4`, slot, slot)
	result, err := r.db.ExecContext(ctx, query, label, icon, now, userID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ResetToDefault skips rows touched after windowStart so a status set right
// after the sweep fired is not clobbered by a late or repeated run.
func (r *presenceRepository) ResetToDefault(ctx context.Context, orgID int32, windowStart, now time.Time) (int64, error) {
	query := `UPDATE presence_statuses SET status = $1, updated_on = $2
	          WHERE user_id IN (SELECT user_id FROM memberships WHERE org_id = $3)
	            AND status <> $1
	            AND updated_on < $4`
	result, err := r.db.ExecContext(ctx, query, domain.StatusAvailable, now, orgID, windowStart)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *presenceRepository) Delete(ctx context.Context, userID int32) error {
	query := `DELETE FROM presence_statuses WHERE user_id = $1`
	_, err := r.db.ExecContext(ctx, query, userID)
	return err
}
