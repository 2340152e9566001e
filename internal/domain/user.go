package domain

import "time"

type User struct {
	ID           int32     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	AvatarColor  string    `json:"avatar_color"`
	CreatedOn    time.Time `json:"created_on"`
}
