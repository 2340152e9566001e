package postgres

import (
	"context"
	"database/sql"
	"time"

	"teampulse-backend/internal/domain"
	"teampulse-backend/internal/repository"
)

type organizationRepository struct {
	db *sql.DB
}

func NewOrganizationRepository(db *sql.DB) repository.OrganizationRepository {
	return &organizationRepository{db: db}
}

func (r *organizationRepository) Create(ctx context.Context, o *domain.Organization) error {
	query := `INSERT INTO orgs (name, kind, plan_tier, invite_code, reset_hour, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	o.CreatedOn = time.Now()
	err := r.db.QueryRowContext(ctx, query, o.Name, o.Kind, o.PlanTier, o.InviteCode, o.ResetHour, o.CreatedOn).Scan(&o.ID)
	return mapUniqueViolation(err)
}

func (r *organizationRepository) GetByID(ctx context.Context, id int32) (*domain.Organization, error) {
	o := &domain.Organization{}
	query := `SELECT id, name, kind, plan_tier, invite_code, reset_hour, created_on FROM orgs WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&o.ID, &o.Name, &o.Kind, &o.PlanTier, &o.InviteCode, &o.ResetHour, &o.CreatedOn)
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *organizationRepository) GetByInviteCode(ctx context.Context, code string) (*domain.Organization, error) {
	o := &domain.Organization{}
	query := `SELECT id, name, kind, plan_tier, invite_code, reset_hour, created_on FROM orgs WHERE invite_code = $1`
	err := r.db.QueryRowContext(ctx, query, code).Scan(&o.ID, &o.Name, &o.Kind, &o.PlanTier, &o.InviteCode, &o.ResetHour, &o.CreatedOn)
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *organizationRepository) SetInviteCode(ctx context.Context, orgID int32, code string) error {
	query := `UPDATE orgs SET invite_code = $1 WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, code, orgID)
	return mapUniqueViolation(err)
}

func (r *organizationRepository) SetResetHour(ctx context.Context, orgID int32, hour int32) error {
	query := `UPDATE orgs SET reset_hour = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, hour, orgID)
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

func (r *organizationRepository) ListByResetHour(ctx context.Context, hour int32) ([]domain.Organization, error) {
	query := `SELECT id, name, kind, plan_tier, invite_code, reset_hour, created_on FROM orgs WHERE reset_hour = $1`
	rows, err := r.db.QueryContext(ctx, query, hour)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orgs []domain.Organization
	for rows.Next() {
		var o domain.Organization
		if err := rows.Scan(&o.ID, &o.Name, &o.Kind, &o.PlanTier, &o.InviteCode, &o.ResetHour, &o.CreatedOn); err != nil {
			return nil, err
		}
		orgs = append(orgs, o)
	}
	return orgs, rows.Err()
}

// Delete removes the organization. Memberships and notifications scoped to it
// go with it through ON DELETE CASCADE.
func (r *organizationRepository) Delete(ctx context.Context, orgID int32) error {
	query := `DELETE FROM orgs WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, orgID)
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
