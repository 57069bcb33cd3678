package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidMonth is returned when a value is neither YYYY-MM nor YYYY-MM-DD.
var ErrInvalidMonth = errors.New("month must be YYYY-MM or YYYY-MM-DD")

// Month is a calendar month, the granularity of sales records and predictions.
type Month struct {
	Year  int
	Month time.Month
}

// ParseMonth accepts "YYYY-MM" or a full "YYYY-MM-DD" date, truncating the latter to its month.
func ParseMonth(value string) (Month, error) {
	value = strings.TrimSpace(value)

	layout := "2006-01"
	if len(value) == len("2006-01-02") {
		layout = "2006-01-02"
	}

	t, err := time.Parse(layout, value)
	if err != nil {
		return Month{}, ErrInvalidMonth
	}

	return MonthOf(t), nil
}

// MonthOf returns the month containing t.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// String renders the canonical YYYY-MM form.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// IsZero reports whether the month is unset.
func (m Month) IsZero() bool {
	return m.Year == 0 && m.Month == 0
}

// AddMonths returns the month n months after m; n may be negative.
func (m Month) AddMonths(n int) Month {
	return MonthOf(m.Start().AddDate(0, n, 0))
}

// Start is the first instant of the month in UTC.
func (m Month) Start() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End is the last calendar day of the month in UTC.
func (m Month) End() time.Time {
	return m.Start().AddDate(0, 1, -1)
}

// Before reports whether m is strictly earlier than other.
func (m Month) Before(other Month) bool {
	if m.Year != other.Year {
		return m.Year < other.Year
	}

	return m.Month < other.Month
}

// MarshalText implements encoding.TextMarshaler.
func (m Month) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Month) UnmarshalText(text []byte) error {
	parsed, err := ParseMonth(string(text))
	if err != nil {
		return err
	}
	*m = parsed

	return nil
}
