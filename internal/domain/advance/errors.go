package advance

import "errors"

var (
	ErrAdvanceNotFound = errors.New("advance not found")
	ErrInvalidStatus   = errors.New("status must be one of: pending, paid")
)
