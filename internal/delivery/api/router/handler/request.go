// Package handler contains the Echo handlers of the public API.
package handler

import (
	"io"
	"strconv"
	"strings"
	"time"

	deliverycontext "salesinsight/internal/delivery/context"
	"salesinsight/internal/domain/entity"
	domainerrors "salesinsight/internal/domain/errors"
	"salesinsight/internal/errors"
	"salesinsight/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const uploadField = "file"

// SetActiveRequest toggles users and offers.
type SetActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}

// UpdateProductRequest is the body of PUT /products/:productId. Omitted fields keep their value.
type UpdateProductRequest struct {
	Price              *decimal.Decimal `json:"price"`
	DiscountPrice      *decimal.Decimal `json:"discount_price"`
	ClearDiscountPrice bool             `json:"clear_discount_price"`
	BatteryLife        *float64         `json:"battery_life"`
	Features           map[string]bool  `json:"features"`
}

// NotesRequest carries the optional notes of a manual retrain.
type NotesRequest struct {
	Notes string `json:"notes" validate:"max=2000"`
}

// bindAndValidate decodes the body into req and applies its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.Validation("request body is not valid JSON")
	}

	return c.Validate(req)
}

func caller(c echo.Context) *entity.Identity {
	return deliverycontext.GetIdentity(c)
}

func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.Validation(name + " must be a UUID")
	}

	return id, nil
}

// intQuery reads an optional integer query parameter. Absent parameters yield 0.
func intQuery(c echo.Context, name string) (int, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domainerrors.Validation(name + " must be an integer")
	}

	return value, nil
}

// durationQuery accepts a Go duration ("1500ms", "30s") or a bare number of seconds.
func durationQuery(c echo.Context, name string) (time.Duration, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return 0, nil
	}

	if seconds, err := strconv.ParseFloat(raw, 64); err == nil {
		if seconds <= 0 {
			return 0, domainerrors.Validation(name + " must be positive")
		}

		return time.Duration(seconds * float64(time.Second)), nil
	}

	duration, err := time.ParseDuration(raw)
	if err != nil || duration <= 0 {
		return 0, domainerrors.Validation(name + " must be a positive duration such as 30s")
	}

	return duration, nil
}

// readUpload loads the multipart file field and the optional notes field.
func readUpload(c echo.Context) (*usecase.UploadInput, error) {
	header, err := c.FormFile(uploadField)
	if err != nil {
		return nil, domainerrors.Validation("multipart field \"file\" is required")
	}

	file, err := header.Open()
	if err != nil {
		return nil, errors.Wrap(err, "open uploaded file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.Wrap(err, "read uploaded file")
	}

	return &usecase.UploadInput{
		Filename: header.Filename,
		Data:     data,
		Notes:    strings.TrimSpace(c.FormValue("notes")),
	}, nil
}
