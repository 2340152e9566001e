package service

import "errors"

// Domain failure taxonomy. Every sentinel is returned to the calling boundary
// for translation into a user-facing response; none is swallowed in the core.
var (
	ErrUnauthenticated      = errors.New("no valid principal")
	ErrNotFound             = errors.New("not found")
	ErrNotAMember           = errors.New("user is not a member of the organization")
	ErrAlreadyMember        = errors.New("user is already a member of the organization")
	ErrNotAdmin             = errors.New("caller is not an admin of the organization")
	ErrSoleAdmin            = errors.New("caller is the organization's only admin")
	ErrTargetNotMember      = errors.New("target user has no membership in the organization")
	ErrInvalidCode          = errors.New("invite code is not recognized")
	ErrCodeGenerationFailed = errors.New("could not generate a unique invite code")
	ErrQuotaExceeded        = errors.New("quota exceeded")
	ErrExpired              = errors.New("notification has expired")
	ErrAlreadyReplied       = errors.New("notification has already been replied to")
	ErrPartialFailure       = errors.New("broadcast partially failed")
	ErrInvalidStatus        = errors.New("unknown status tag")
	ErrInvalidCredentials   = errors.New("invalid email or password")
)
