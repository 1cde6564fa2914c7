package labour

import "errors"

var (
	ErrLabourNotFound    = errors.New("labour not found")
	ErrInvalidLabourID   = errors.New("invalid labour id")
	ErrNegativeDailyRate = errors.New("daily rate cannot be negative")
)
