package user

import "time"

type User struct {
	ID        string
	Username  string
	Password  string // bcrypt hash
	FullName  string
	Role      Role
	Email     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Role string

const (
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)
