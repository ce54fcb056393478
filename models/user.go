package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role represents a user's global system role
type Role string

const (
	RoleAdmin          Role = "admin"
	RoleProjectManager Role = "project_manager"
	RoleExecutor       Role = "executor"
	RoleObserver       Role = "observer"
)

// ValidRole reports whether s names a known system role.
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleAdmin, RoleProjectManager, RoleExecutor, RoleObserver:
		return true
	}
	return false
}

// User represents a user in the system
type User struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	PasswordHash string    `json:"-" gorm:"not null;size:255"`
	Name         string    `json:"name" gorm:"not null;size:255"`
	Role         Role      `json:"role" gorm:"type:varchar(50);default:'executor'"`
	Department   *string   `json:"department" gorm:"size:255;default:null"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
