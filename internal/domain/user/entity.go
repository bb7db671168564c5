package user

import "time"

type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleHR       Role = "HR"
	RoleManager  Role = "Manager"
	RoleEmployee Role = "Employee"
)

var RoleValues = []string{
	string(RoleAdmin),
	string(RoleHR),
	string(RoleManager),
	string(RoleEmployee),
}

type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	Role         Role
	ShiftID      *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Identity is the authenticated caller extracted from the access token at the
// HTTP boundary and passed explicitly into services.
type Identity struct {
	ID   string
	Role Role
}
