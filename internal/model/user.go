package model

import "time"

// Role is one of the three fixed account roles.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleFaculty Role = "faculty"
	RoleStudent Role = "student"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleFaculty, RoleStudent:
		return true
	}
	return false
}

// User represents a login account. Accounts are created by the bootstrap only.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:50;not null" validate:"required,max=50"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"`
	Role         Role      `json:"role" gorm:"type:varchar(20);not null;check:chk_users_role,role IN ('admin','faculty','student')" validate:"required,oneof=admin faculty student"`
	CreatedAt    time.Time `json:"created_at"`
}
