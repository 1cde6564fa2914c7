package utils

import (
	"errors"
	"time"

	"github.com/labourhub/labour-backend-go/internal/pkg/validator"
)

var ErrInvalidMonth = errors.New("month must be in YYYY-MM format")

const monthLayout = "2006-01"

// Period is a calendar month window [Start, End), both at UTC midnight.
type Period struct {
	Month string
	Start time.Time
	End   time.Time
}

// ParseMonth builds the window for a YYYY-MM key.
func ParseMonth(month string) (Period, error) {
	start, ok := validator.IsValidMonth(month)
	if !ok {
		return Period{}, ErrInvalidMonth
	}
	start = time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	return Period{
		Month: month,
		Start: start,
		End:   start.AddDate(0, 1, 0),
	}, nil
}

// MonthOf returns the window containing t.
func MonthOf(t time.Time) Period {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return Period{
		Month: start.Format(monthLayout),
		Start: start,
		End:   start.AddDate(0, 1, 0),
	}
}

func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && t.Before(p.End)
}
