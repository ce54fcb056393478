package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Audit action vocabulary. The column is an open-ended string; these
// constants cover every mutation the services perform.
const (
	AuditUserCreated       = "user_created"
	AuditUserRoleChanged   = "user_role_changed"
	AuditUserDeactivated   = "user_deactivated"
	AuditProjectCreated    = "project_created"
	AuditProjectUpdated    = "project_updated"
	AuditProjectDeleted    = "project_deleted"
	AuditMemberAdded       = "member_added"
	AuditMemberRemoved     = "member_removed"
	AuditTaskCreated       = "task_created"
	AuditTaskUpdated       = "task_updated"
	AuditTaskStatusChanged = "task_status_changed"
	AuditCommentCreated    = "comment_created"
	AuditCommentDeleted    = "comment_deleted"
	AuditFileUploaded      = "file_uploaded"
	AuditFileDeleted       = "file_deleted"
	AuditNotificationSent  = "notification_sent"
)

// AuditLog is an immutable record of a single mutation. Rows are only ever
// inserted; the application never updates or deletes them.
type AuditLog struct {
	ID         string    `json:"id" gorm:"primaryKey;type:uuid"`
	Action     string    `json:"action" gorm:"not null;size:100;index"`
	EntityType string    `json:"entityType" gorm:"not null;size:50"`
	EntityID   string    `json:"entityId" gorm:"type:uuid;not null"`
	UserID     string    `json:"userId" gorm:"type:uuid;not null;index"`
	ProjectID  *string   `json:"projectId" gorm:"type:uuid;index;default:null"`
	Details    JSONMap   `json:"details" gorm:"type:jsonb"`
	CreatedAt  time.Time `json:"createdAt"`

	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (a *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
