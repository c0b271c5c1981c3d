package model

import "time"

// Role gates which routes a console user can reach. The fleet coordinator
// itself is role-unaware; enforcement happens at the API boundary.
type Role string

const (
	RoleManager    Role = "Manager"
	RoleDispatcher Role = "Dispatcher"
	RoleSafety     Role = "Safety"
	RoleAnalyst    Role = "Analyst"
)

// ValidRole reports whether r is one of the known console roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleManager, RoleDispatcher, RoleSafety, RoleAnalyst:
		return true
	}
	return false
}

// User is a console account.
type User struct {
	ID           int64     `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Name         string    `gorm:"size:128;not null" json:"name"`
	Role         Role      `gorm:"size:32;not null;default:Manager" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
