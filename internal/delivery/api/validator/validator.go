// Package validator adapts go-playground/validator to Echo.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	domainerrors "salesinsight/internal/domain/errors"
	"salesinsight/internal/errors"

	"github.com/go-playground/validator/v10"
)

// Validator implements echo.Validator. Failures become VALIDATION_FAILED errors naming the JSON fields.
type Validator struct {
	validate *validator.Validate
}

// New returns a validator that reports fields by their json tag.
func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &Validator{validate: validate}
}

// Validate checks the struct tags of i.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	fieldErrs, ok := errors.AsType[validator.ValidationErrors](err)
	if !ok {
		return domainerrors.Validation(err.Error())
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		messages = append(messages, describe(fieldErr))
	}

	return domainerrors.Validation(strings.Join(messages, "; "))
}

func describe(fieldErr validator.FieldError) string {
	field := fieldErr.Field()

	switch fieldErr.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fieldErr.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fieldErr.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fieldErr.Param())
	case "datetime":
		return fmt.Sprintf("%s must match the layout %s", field, fieldErr.Param())
	default:
		return fmt.Sprintf("%s failed the %s rule", field, fieldErr.Tag())
	}
}
