// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can call the API, either an admin or a member of one company.
type User struct {
	ID           uuid.UUID  `json:"id"`                   // The Global Unique Identifier (GUID) for the user.
	Name         string     `json:"name"`                 // Display name.
	Email        string     `json:"email"`                // Unique login identifier, stored lower-cased.
	Role         Role       `json:"role"`                 // Immutable after creation.
	CompanyID    *uuid.UUID `json:"company_id,omitempty"` // Tenant of a company user; nil for admins.
	IsActive     bool       `json:"is_active"`            // Inactive users cannot log in.
	PasswordHash string     `json:"-"`                    // bcrypt hash, never serialized.
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Identity returns the caller identity carried in access tokens for this user.
func (u *User) Identity() Identity {
	return Identity{
		UserID:    u.ID,
		Role:      u.Role,
		CompanyID: u.CompanyID,
	}
}
