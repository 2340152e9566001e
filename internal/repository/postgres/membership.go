package postgres

import (
	"context"
	"database/sql"
	"time"

	"teampulse-backend/internal/domain"
	"teampulse-backend/internal/logger"
	"teampulse-backend/internal/repository"
)

type membershipRepository struct {
	db *sql.DB
}

func NewMembershipRepository(db *sql.DB) repository.MembershipRepository {
	return &membershipRepository{db: db}
}

func (r *membershipRepository) CreateActive(ctx context.Context, m *domain.Membership) error {
	logger.EnterMethod("membershipRepository.CreateActive", "userID", m.UserID, "orgID", m.OrgID, "role", m.Role)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `UPDATE memberships SET is_active = FALSE WHERE user_id = $1`, m.UserID); err != nil {
		logger.ExitMethodWithError("membershipRepository.CreateActive", err, "userID", m.UserID)
		return err
	}

	m.IsActive = true
	m.JoinedOn = time.Now()
	insert := `INSERT INTO memberships (user_id, org_id, role, is_active, joined_on) VALUES ($1, $2, $3, $4, $5)`
	if _, err := tx.ExecContext(ctx, insert, m.UserID, m.OrgID, m.Role, m.IsActive, m.JoinedOn); err != nil {
		logger.ExitMethodWithError("membershipRepository.CreateActive", err, "userID", m.UserID, "orgID", m.OrgID)
		return mapUniqueViolation(err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	logger.ExitMethod("membershipRepository.CreateActive", "userID", m.UserID, "orgID", m.OrgID)
	return nil
}

func (r *membershipRepository) Get(ctx context.Context, userID, orgID int32) (*domain.Membership, error) {
	m := &domain.Membership{}
	query := `SELECT user_id, org_id, role, is_active, joined_on FROM memberships WHERE user_id = $1 AND org_id = $2`
	err := r.db.QueryRowContext(ctx, query, userID, orgID).Scan(&m.UserID, &m.OrgID, &m.Role, &m.IsActive, &m.JoinedOn)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *membershipRepository) ListByUser(ctx context.Context, userID int32) ([]domain.Membership, error) {
	query := `SELECT user_id, org_id, role, is_active, joined_on FROM memberships WHERE user_id = $1 ORDER BY joined_on`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var memberships []domain.Membership
	for rows.Next() {
		var m domain.Membership
		if err := rows.Scan(&m.UserID, &m.OrgID, &m.Role, &m.IsActive, &m.JoinedOn); err != nil {
			return nil, err
		}
		memberships = append(memberships, m)
	}
	return memberships, rows.Err()
}

func (r *membershipRepository) ListMembersByOrg(ctx context.Context, orgID int32) ([]domain.User, []domain.Membership, error) {
	query := `SELECT u.id, u.email, u.name, u.avatar_color, u.created_on,
	                 m.user_id, m.org_id, m.role, m.is_active, m.joined_on
	          FROM memberships m JOIN users u ON m.user_id = u.id
	          WHERE m.org_id = $1 ORDER BY m.joined_on`
	rows, err := r.db.QueryContext(ctx, query, orgID)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var users []domain.User
	var memberships []domain.Membership
	for rows.Next() {
		var u domain.User
		var m domain.Membership
		if err := rows.Scan(&u.ID, &u.Email, &u.Name, &u.AvatarColor, &u.CreatedOn,
			&m.UserID, &m.OrgID, &m.Role, &m.IsActive, &m.JoinedOn); err != nil {
			return nil, nil, err
		}
		users = append(users, u)
		memberships = append(memberships, m)
	}
	return users, memberships, rows.Err()
}

func (r *membershipRepository) ListActiveUserIDs(ctx context.Context, orgID int32) ([]int32, error) {
	query := `SELECT user_id FROM memberships WHERE org_id = $1 AND is_active = TRUE`
	rows, err := r.db.QueryContext(ctx, query, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int32
	for rows.Next() {
		var id int32
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *membershipRepository) SwitchActive(ctx context.Context, userID, orgID int32) error {
	logger.EnterMethod("membershipRepository.SwitchActive", "userID", userID, "orgID", orgID)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `UPDATE memberships SET is_active = FALSE WHERE user_id = $1`, userID); err != nil {
		logger.ExitMethodWithError("membershipRepository.SwitchActive", err, "userID", userID)
		return err
	}

	result, err := tx.ExecContext(ctx, `UPDATE memberships SET is_active = TRUE WHERE user_id = $1 AND org_id = $2`, userID, orgID)
	if err != nil {
		logger.ExitMethodWithError("membershipRepository.SwitchActive", err, "userID", userID, "orgID", orgID)
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		// No membership to activate; the rollback undoes the deactivation.
		return sql.ErrNoRows
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	logger.ExitMethod("membershipRepository.SwitchActive", "userID", userID, "orgID", orgID)
	return nil
}

func (r *membershipRepository) UpdateRole(ctx context.Context, userID, orgID int32, role domain.MembershipRole) error {
	query := `UPDATE memberships SET role = $1 WHERE user_id = $2 AND org_id = $3`
	result, err := r.db.ExecContext(ctx, query, role, userID, orgID)
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

func (r *membershipRepository) Delete(ctx context.Context, userID, orgID int32) error {
	query := `DELETE FROM memberships WHERE user_id = $1 AND org_id = $2`
	result, err := r.db.ExecContext(ctx, query, userID, orgID)
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

func (r *membershipRepository) CountMembers(ctx context.Context, orgID int32) (int32, error) {
	var count int32
	query := `SELECT count(*) FROM memberships WHERE org_id = $1`
	err := r.db.QueryRowContext(ctx, query, orgID).Scan(&count)
	return count, err
}

func (r *membershipRepository) CountOrgsForUser(ctx context.Context, userID int32) (int32, error) {
	var count int32
	query := `SELECT count(DISTINCT org_id) FROM memberships WHERE user_id = $1`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&count)
	return count, err
}

func (r *membershipRepository) CountAdmins(ctx context.Context, orgID int32) (int32, error) {
	var count int32
	query := `SELECT count(*) FROM memberships WHERE org_id = $1 AND role = $2`
	err := r.db.QueryRowContext(ctx, query, orgID, domain.MembershipRoleAdmin).Scan(&count)
	return count, err
}
