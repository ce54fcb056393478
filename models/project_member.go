package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectRole is a role held within one specific project, distinct from the
// member's global system role.
type ProjectRole string

const (
	ProjectRoleManager  ProjectRole = "project_manager"
	ProjectRoleExecutor ProjectRole = "executor"
	ProjectRoleObserver ProjectRole = "observer"
)

// ValidProjectRole reports whether s names a known project-scoped role.
func ValidProjectRole(s string) bool {
	switch ProjectRole(s) {
	case ProjectRoleManager, ProjectRoleExecutor, ProjectRoleObserver:
		return true
	}
	return false
}

// Label returns the human-readable name used in invite notifications.
func (r ProjectRole) Label() string {
	switch r {
	case ProjectRoleManager:
		return "Руководитель проекта"
	case ProjectRoleExecutor:
		return "Исполнитель"
	case ProjectRoleObserver:
		return "Наблюдатель"
	}
	return string(r)
}

// ProjectMember joins a user to a project with a project-scoped role.
// One row per (project, user) pair.
type ProjectMember struct {
	ID        string      `json:"id" gorm:"primaryKey;type:uuid"`
	ProjectID string      `json:"projectId" gorm:"type:uuid;not null;uniqueIndex:idx_project_user"`
	UserID    string      `json:"userId" gorm:"type:uuid;not null;uniqueIndex:idx_project_user"`
	Role      ProjectRole `json:"role" gorm:"type:varchar(50);not null;default:'executor'"`
	AddedAt   time.Time   `json:"addedAt" gorm:"autoCreateTime"`

	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (m *ProjectMember) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
