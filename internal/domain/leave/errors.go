package leave

import "errors"

var (
	ErrLeaveNotFound    = errors.New("leave request not found")
	ErrInvalidStatus    = errors.New("status must be one of: approved, rejected, pending")
	ErrInvalidDateRange = errors.New("end_date must be on or after start_date")
)
