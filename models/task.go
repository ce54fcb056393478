package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskStatus represents the lifecycle state of a task. Any status may move
// to any other status; transitions are gated by permission only.
type TaskStatus string

const (
	TaskStatusOpen       TaskStatus = "open"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusCancelled  TaskStatus = "cancelled"
)

// ValidTaskStatus reports whether s names a known task status.
func ValidTaskStatus(s string) bool {
	switch TaskStatus(s) {
	case TaskStatusOpen, TaskStatusInProgress, TaskStatusCompleted, TaskStatusCancelled:
		return true
	}
	return false
}

// TaskPriority represents task urgency
type TaskPriority string

const (
	TaskPriorityLow      TaskPriority = "low"
	TaskPriorityMedium   TaskPriority = "medium"
	TaskPriorityHigh     TaskPriority = "high"
	TaskPriorityCritical TaskPriority = "critical"
)

// ValidTaskPriority reports whether s names a known priority.
func ValidTaskPriority(s string) bool {
	switch TaskPriority(s) {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh, TaskPriorityCritical:
		return true
	}
	return false
}

// Task represents a unit of work inside a project. A task may reference a
// parent task, which enables subtasking of arbitrary depth.
type Task struct {
	ID           string       `json:"id" gorm:"primaryKey;type:uuid"`
	Title        string       `json:"title" gorm:"not null;size:255"`
	Description  string       `json:"description"`
	ProjectID    string       `json:"projectId" gorm:"type:uuid;not null;index"`
	ParentTaskID *string      `json:"parentTaskId" gorm:"type:uuid;index;default:null"`
	AssigneeID   *string      `json:"assigneeId" gorm:"type:uuid;index;default:null"`
	CreatorID    string       `json:"creatorId" gorm:"type:uuid;not null"`
	Status       TaskStatus   `json:"status" gorm:"type:varchar(50);not null;default:'open'"`
	Priority     TaskPriority `json:"priority" gorm:"type:varchar(20);not null;default:'medium'"`
	Complexity   int          `json:"complexity" gorm:"default:1"`
	DueDate      *time.Time   `json:"dueDate" gorm:"default:null"`
	Tags         []string     `json:"tags" gorm:"serializer:json"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`

	// Relations
	Project    Project   `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	ParentTask *Task     `json:"parentTask,omitempty" gorm:"foreignKey:ParentTaskID;constraint:OnDelete:CASCADE"`
	Assignee   *User     `json:"assignee,omitempty" gorm:"foreignKey:AssigneeID;constraint:OnDelete:SET NULL"`
	Creator    User      `json:"creator,omitempty" gorm:"foreignKey:CreatorID;constraint:OnDelete:CASCADE"`
	Subtasks   []Task    `json:"subtasks,omitempty" gorm:"foreignKey:ParentTaskID"`
	Comments   []Comment `json:"comments,omitempty" gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
	Files      []File    `json:"files,omitempty" gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
