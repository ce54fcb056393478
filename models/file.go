package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// File is an uploaded attachment. The stored filename is a generated UUID;
// OriginalName keeps what the user uploaded. A file may be attached to a
// project, a task, or both.
type File struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid"`
	Filename     string    `json:"filename" gorm:"not null;size:255"`
	OriginalName string    `json:"originalName" gorm:"not null;size:255"`
	FilePath     string    `json:"filePath" gorm:"not null;size:500"`
	FileSize     int64     `json:"fileSize" gorm:"not null"`
	MimeType     string    `json:"mimeType" gorm:"not null;size:100"`
	Description  *string   `json:"description" gorm:"default:null"`
	ProjectID    *string   `json:"projectId" gorm:"type:uuid;index;default:null"`
	TaskID       *string   `json:"taskId" gorm:"type:uuid;index;default:null"`
	UploadedBy   string    `json:"uploadedBy" gorm:"type:uuid;not null"`
	UploadedAt   time.Time `json:"uploadedAt" gorm:"autoCreateTime"`

	Uploader User `json:"uploader,omitempty" gorm:"foreignKey:UploadedBy;constraint:OnDelete:CASCADE"`
}

func (f *File) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
