package entity

import "github.com/google/uuid"

// Identity is the verified caller of an operation.
type Identity struct {
	UserID    uuid.UUID
	Role      Role
	CompanyID *uuid.UUID
}

// IsAdmin reports whether the caller holds the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// Tenant returns the caller's company and whether one is bound.
func (i Identity) Tenant() (uuid.UUID, bool) {
	if i.CompanyID == nil {
		return uuid.Nil, false
	}

	return *i.CompanyID, true
}
