package postgres

import (
	"context"
	"database/sql"
	"time"

	"teampulse-backend/internal/domain"
	"teampulse-backend/internal/logger"
	"teampulse-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (email, password_hash, name, avatar_color, created_on)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	u.CreatedOn = time.Now()
	err := r.db.QueryRowContext(ctx, query, u.Email, u.PasswordHash, u.Name, u.AvatarColor, u.CreatedOn).Scan(&u.ID)
	return mapUniqueViolation(err)
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, email, password_hash, name, avatar_color, created_on FROM users WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.AvatarColor, &u.CreatedOn)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	logger.DatabaseCall("SELECT", "users", "by", "email")
	u := &domain.User{}
	query := `SELECT id, email, password_hash, name, avatar_color, created_on FROM users WHERE email = $1`
	err := r.db.QueryRowContext(ctx, query, email).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.AvatarColor, &u.CreatedOn)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	query := `UPDATE users SET name = $1, avatar_color = $2, password_hash = $3 WHERE id = $4`
	_, err := r.db.ExecContext(ctx, query, u.Name, u.AvatarColor, u.PasswordHash, u.ID)
	return err
}
