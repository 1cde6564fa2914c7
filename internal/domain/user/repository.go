package user

import (
	"context"
)

type UpdateUserRequest struct {
	ID           string
	Name         *string
	Email        *string
	PasswordHash *string
}

type UserRepository interface {
	Create(ctx context.Context, newUser User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	Update(ctx context.Context, req UpdateUserRequest) (User, error)
}
