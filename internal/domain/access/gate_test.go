package access

import (
	"testing"

	"salesinsight/internal/domain/entity"
	domainerrors "salesinsight/internal/domain/errors"

	"github.com/google/uuid"
	"salesinsight/internal/errors"
	"github.com/stretchr/testify/assert"
)

func companyCaller(companyID uuid.UUID) *entity.Identity {
	return &entity.Identity{UserID: uuid.New(), Role: entity.RoleCompany, CompanyID: &companyID}
}

func adminCaller() *entity.Identity {
	return &entity.Identity{UserID: uuid.New(), Role: entity.RoleAdmin}
}

func errorCode(err error) string {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.ErrorCode()
	}

	return ""
}

func TestAuthorize_Matrix(t *testing.T) {
	companyA := uuid.New()
	companyB := uuid.New()

	tests := []struct {
		name     string
		caller   *entity.Identity
		policy   Policy
		target   uuid.UUID
		wantCode string
	}{
		{name: "anonymous", caller: nil, policy: AnyAuthenticated, wantCode: "UNAUTHENTICATED"},
		{name: "company any", caller: companyCaller(companyA), policy: AnyAuthenticated},
		{name: "admin any", caller: adminCaller(), policy: AnyAuthenticated},
		{name: "company own tenant", caller: companyCaller(companyA), policy: CompanyOnly, target: companyA},
		{name: "company other tenant", caller: companyCaller(companyA), policy: CompanyOnly, target: companyB, wantCode: "AUTHORIZATION_FAILED"},
		{name: "admin on company op", caller: adminCaller(), policy: CompanyOnly, target: companyA, wantCode: "AUTHORIZATION_FAILED"},
		{name: "admin on admin op", caller: adminCaller(), policy: AdminOnly},
		{name: "company on admin op", caller: companyCaller(companyA), policy: AdminOnly, wantCode: "AUTHORIZATION_FAILED"},
		{name: "unknown role", caller: &entity.Identity{UserID: uuid.New(), Role: "auditor"}, policy: AnyAuthenticated, wantCode: "UNAUTHENTICATED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.caller, tt.policy, tt.target)
			if tt.wantCode == "" {
				assert.NoError(t, err)

				return
			}
			assert.Equal(t, tt.wantCode, errorCode(err))
		})
	}
}

func TestRequireTenant_CompanyWithoutTenant(t *testing.T) {
	caller := &entity.Identity{UserID: uuid.New(), Role: entity.RoleCompany}

	err := RequireTenant(caller, uuid.New())
	assert.Equal(t, "AUTHORIZATION_FAILED", errorCode(err))
}

func TestPolicyString(t *testing.T) {
	assert.Equal(t, "company-only", CompanyOnly.String())
	assert.Equal(t, "admin-only", AdminOnly.String())
	assert.Equal(t, "any-authenticated", AnyAuthenticated.String())
}
