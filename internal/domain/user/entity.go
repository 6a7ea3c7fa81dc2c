package user

import "time"

type Role string

const (
	RoleOwner    Role = "owner"    // Full access, company settings
	RoleManager  Role = "manager"  // Can approve attendance and run reports
	RoleEmployee Role = "employee" // Regular employee
)

var RoleValues = []string{
	string(RoleOwner),
	string(RoleManager),
	string(RoleEmployee),
}

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO / Join
	EmployeeID *string
}

// IsManager checks if user is manager or owner
func (u *User) IsManager() bool {
	return u.Role == RoleManager || u.Role == RoleOwner
}

// CanApprove checks if user can approve attendance records
func (u *User) CanApprove() bool {
	return u.IsManager()
}
