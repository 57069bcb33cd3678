// Package access enforces role requirements and tenant binding for every catalog, prediction and
// training operation.
package access

import (
	"fmt"

	"salesinsight/internal/domain/entity"
	domainerrors "salesinsight/internal/domain/errors"

	"github.com/google/uuid"
)

// Policy is the role an operation requires.
type Policy int

const (
	// AnyAuthenticated admits every verified caller.
	AnyAuthenticated Policy = iota
	// CompanyOnly admits company users and binds the target company to the caller's tenant.
	CompanyOnly
	// AdminOnly admits admins and ignores tenant binding.
	AdminOnly
)

func (p Policy) String() string {
	switch p {
	case AnyAuthenticated:
		return "any-authenticated"
	case CompanyOnly:
		return "company-only"
	case AdminOnly:
		return "admin-only"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// Authorize checks caller against policy. For CompanyOnly, companyID must equal the caller's company.
func Authorize(caller *entity.Identity, policy Policy, companyID uuid.UUID) error {
	if caller == nil || caller.UserID == uuid.Nil || !caller.Role.IsValid() {
		return domainerrors.ErrUnauthenticated
	}

	switch policy {
	case AnyAuthenticated:
		return nil
	case AdminOnly:
		if !caller.IsAdmin() {
			return domainerrors.Authorization("admin role required")
		}

		return nil
	case CompanyOnly:
		if caller.Role != entity.RoleCompany {
			return domainerrors.Authorization("company role required")
		}

		return RequireTenant(caller, companyID)
	default:
		return domainerrors.Authorization("unknown access policy")
	}
}

// RequireTenant fails unless the caller is bound to companyID, whatever its role.
func RequireTenant(caller *entity.Identity, companyID uuid.UUID) error {
	tenant, ok := caller.Tenant()
	if !ok || tenant != companyID {
		return domainerrors.Authorization(fmt.Sprintf("company %s is outside the caller's tenant", companyID))
	}

	return nil
}

// RequireAuthenticated is Authorize with AnyAuthenticated.
func RequireAuthenticated(caller *entity.Identity) error {
	return Authorize(caller, AnyAuthenticated, uuid.Nil)
}

// RequireAdmin is Authorize with AdminOnly.
func RequireAdmin(caller *entity.Identity) error {
	return Authorize(caller, AdminOnly, uuid.Nil)
}

// RequireCompany is Authorize with CompanyOnly for companyID.
func RequireCompany(caller *entity.Identity, companyID uuid.UUID) error {
	return Authorize(caller, CompanyOnly, companyID)
}
