package salary

import "errors"

var (
	ErrSalaryNotFound  = errors.New("salary record not found")
	ErrInvalidStatus   = errors.New("status must be one of: pending, paid")
	ErrInvalidMonth    = errors.New("month must be in YYYY-MM format")
	ErrInvalidLabourID = errors.New("labour_id must be a valid UUID")
)
