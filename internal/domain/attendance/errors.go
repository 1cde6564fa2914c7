package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrInvalidStatus      = errors.New("status must be one of: present, absent, half-day, overtime")
	ErrInvalidHours       = errors.New("hours must be between 0 and 24")
)
