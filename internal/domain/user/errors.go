package user

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrUsernameExists      = errors.New("username already taken")
	ErrUserEmailExists     = errors.New("email already registered")
	ErrAdminAccessRequired = errors.New("admin access required")
)
