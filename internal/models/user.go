package models

import (
	"time"

	"github.com/google/uuid"
)

// Role — access level carried in the access token.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User — stored identity record. PasswordHash never leaves the service layer.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string `json:"-"`
	FirstName    string
	LastName     string
	Role         Role
	CreatedAt    time.Time
}

// PublicUser — the only projection of User that is returned to clients.
type PublicUser struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Public strips the password hash.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
