package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Full access, can manage shifts and settings
	RoleHR       Role = "hr"       // Approves HR-tier leave, manages employees
	RoleManager  Role = "manager"  // Approves manager-tier leave and overtime
	RoleEmployee Role = "employee" // Regular employee
)

// ValidRoles lists every role accepted at registration.
var ValidRoles = []Role{RoleAdmin, RoleHR, RoleManager, RoleEmployee}

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

// IsAdmin checks if user has full administrative access
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsHR checks if user is HR or admin
func (u *User) IsHR() bool {
	return u.Role == RoleHR || u.Role == RoleAdmin
}

// IsManager checks if user is manager, HR or admin
func (u *User) IsManager() bool {
	return u.Role == RoleManager || u.IsHR()
}

// CanApprove checks if user can resolve pending requests
func (u *User) CanApprove() bool {
	return u.IsManager()
}

func IsValidRole(r Role) bool {
	for _, v := range ValidRoles {
		if r == v {
			return true
		}
	}
	return false
}
