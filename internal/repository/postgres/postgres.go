package postgres

import (
	"database/sql"
	"errors"

	"teampulse-backend/internal/repository"

	"github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.OrganizationRepository
	repository.MembershipRepository
	repository.PresenceRepository
	repository.NotificationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		UserRepository:         NewUserRepository(db),
		OrganizationRepository: NewOrganizationRepository(db),
		MembershipRepository:   NewMembershipRepository(db),
		PresenceRepository:     NewPresenceRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}

// uniqueViolation is the class 23 code Postgres raises when an insert breaks a
// unique index. Repositories translate it so services never see pq internals.
const uniqueViolation = pq.ErrorCode("23505")

func mapUniqueViolation(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return repository.ErrDuplicate
	}
	return err
}
