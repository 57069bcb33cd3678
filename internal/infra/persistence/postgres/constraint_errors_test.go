package postgres

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolations(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		unique     bool
		foreignKey bool
		notNull    bool
		check      bool
	}{
		{
			name:   "translated duplicate key",
			err:    errors.Wrap(gorm.ErrDuplicatedKey, "insert"),
			unique: true,
		},
		{
			name:   "raw unique violation",
			err:    errors.New(`ERROR: duplicate key value violates unique constraint "idx_users_email" (SQLSTATE 23505)`),
			unique: true,
		},
		{
			name:       "raw foreign key violation",
			err:        errors.New(`ERROR: insert or update on table "users" violates foreign key constraint (SQLSTATE 23503)`),
			foreignKey: true,
		},
		{
			name:    "not null violation",
			err:     errors.New(`ERROR: null value in column "name" violates not-null constraint (SQLSTATE 23502)`),
			notNull: true,
		},
		{
			name:  "check violation",
			err:   errors.New(`ERROR: new row violates check constraint "chk_offers_range" (SQLSTATE 23514)`),
			check: true,
		},
		{
			name: "unrelated error",
			err:  errors.New("connection reset by peer"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.unique, isUniqueConstraintViolation(tt.err))
			assert.Equal(t, tt.foreignKey, isForeignKeyConstraintViolation(tt.err))
			assert.Equal(t, tt.notNull, isNotNullConstraintViolation(tt.err))
			assert.Equal(t, tt.check, isCheckConstraintViolation(tt.err))
		})
	}
}
