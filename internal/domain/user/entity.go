package user

import "time"

type Role string

const (
	RoleAdmin Role = "admin" // Business owner, full access to their own records
	RoleUser  Role = "user"
)

// User is an owning account. Every labour, attendance, advance, deduction,
// leave and salary row belongs to exactly one user.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Name         *string
	Email        *string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleUser
}
