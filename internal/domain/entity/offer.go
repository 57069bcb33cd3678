package entity

import (
	"time"

	"github.com/google/uuid"
)

// Offer is a promotional campaign applying to every company.
// IDs are UUIDv7, so ordering by ID is ordering by creation.
type Offer struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	StartDate   time.Time `json:"start_date"` // Inclusive, date only.
	EndDate     time.Time `json:"end_date"`   // Inclusive, date only.
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"` // Soft-disable independent of the date range.
	CreatedAt   time.Time `json:"created_at"`
}

// CoversDate reports whether the date lies in [StartDate, EndDate], compared by calendar day.
func (o *Offer) CoversDate(date time.Time) bool {
	day := TruncateToDate(date)

	return !day.Before(TruncateToDate(o.StartDate)) && !day.After(TruncateToDate(o.EndDate))
}

// IsCurrentlyActive reports whether the offer is enabled and covers the given date.
func (o *Offer) IsCurrentlyActive(date time.Time) bool {
	return o.IsActive && o.CoversDate(date)
}

// TruncateToDate drops the time of day, keeping the calendar date in UTC.
func TruncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
