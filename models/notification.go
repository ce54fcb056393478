package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationType identifies what kind of event produced a notification
type NotificationType string

const (
	NotificationTaskAssigned     NotificationType = "task_assigned"
	NotificationCommentAdded     NotificationType = "comment_added"
	NotificationProjectInvite    NotificationType = "project_invite"
	NotificationDeadlineReminder NotificationType = "deadline_reminder"
)

// Notification is an in-app message for a single recipient. TriggeredBy is
// nil for system-generated notifications (deadline reminders).
type Notification struct {
	ID          string           `json:"id" gorm:"primaryKey;type:uuid"`
	UserID      string           `json:"userId" gorm:"type:uuid;not null;index"`
	TriggeredBy *string          `json:"triggeredBy" gorm:"type:uuid;default:null"`
	Type        NotificationType `json:"type" gorm:"type:varchar(50);not null"`
	Title       string           `json:"title" gorm:"not null;size:255"`
	Message     string           `json:"message" gorm:"not null"`
	EntityType  string           `json:"entityType" gorm:"size:50"`
	EntityID    string           `json:"entityId" gorm:"type:uuid"`
	ProjectID   *string          `json:"projectId" gorm:"type:uuid;index;default:null"`
	Read        bool             `json:"read" gorm:"not null;default:false"`
	CreatedAt   time.Time        `json:"createdAt"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}
