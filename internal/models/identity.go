package models

import "github.com/google/uuid"

// Identity — authenticated caller as asserted by a verified access token.
type Identity struct {
	UserID uuid.UUID
	Email  string
	Role   Role
}

// IsAdmin reports whether the caller holds the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// CanAccess implements the "owner or admin" rule.
func (i Identity) CanAccess(ownerID uuid.UUID) bool {
	return i.IsAdmin() || (ownerID != uuid.Nil && i.UserID == ownerID)
}
