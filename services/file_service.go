package services

import (
	"mime/multipart"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/taskdesk/config"
	"github.com/taskdesk/lib/storage"
	"github.com/taskdesk/logging"
	"github.com/taskdesk/models"
	"github.com/taskdesk/permissions"
	"github.com/taskdesk/repositories"
	"gorm.io/gorm"
)

// allowedMimeTypes is the upload whitelist
var allowedMimeTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
	"application/pdf": true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"application/vnd.ms-excel": true,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
	"text/plain": true,
	"text/csv":   true,
}

// FileService handles attachment uploads, downloads and deletion
type FileService struct {
	fileRepo    *repositories.FileRepository
	projectRepo *repositories.ProjectRepository
	taskRepo    *repositories.TaskRepository
	memberRepo  *repositories.MemberRepository
}

// NewFileService creates a new file service instance
func NewFileService() *FileService {
	return &FileService{
		fileRepo:    repositories.NewFileRepository(),
		projectRepo: repositories.NewProjectRepository(),
		taskRepo:    repositories.NewTaskRepository(),
		memberRepo:  repositories.NewMemberRepository(),
	}
}

// Upload validates and stores an attachment: disk write first, then the
// database row and audit entry in one transaction. On a transaction failure
// the freshly written disk file is removed best-effort.
func (s *FileService) Upload(actor models.Actor, header *multipart.FileHeader, projectID, taskID *string, description *string) (models.File, error) {
	if header == nil || header.Size == 0 {
		return models.File{}, invalid("no file provided")
	}
	if header.Size > config.MaxUploadSize() {
		return models.File{}, invalid("file exceeds the %d byte limit", config.MaxUploadSize())
	}

	mimeType := header.Header.Get("Content-Type")
	if !allowedMimeTypes[mimeType] {
		return models.File{}, invalid("unsupported file type %q", mimeType)
	}

	if projectID != nil {
		if _, err := s.projectRepo.FindByID(*projectID); err != nil {
			return models.File{}, notFound("project %s", *projectID)
		}
	}
	var task models.Task
	if taskID != nil {
		var err error
		task, err = s.taskRepo.FindByID(*taskID)
		if err != nil {
			return models.File{}, notFound("task %s", *taskID)
		}
		// A task attachment is always scoped to the task's project
		if projectID == nil {
			projectID = &task.ProjectID
		}
	}

	src, err := header.Open()
	if err != nil {
		return models.File{}, err
	}
	defer src.Close()

	storedName := uuid.NewString() + filepath.Ext(header.Filename)
	path, err := storage.Save(config.UploadDir(), storedName, src)
	if err != nil {
		return models.File{}, err
	}

	file := models.File{
		Filename:     storedName,
		OriginalName: header.Filename,
		FilePath:     path,
		FileSize:     header.Size,
		MimeType:     mimeType,
		Description:  description,
		ProjectID:    projectID,
		TaskID:       taskID,
		UploadedBy:   actor.ID,
	}

	err = s.fileRepo.DB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&file).Error; err != nil {
			return err
		}
		details := models.JSONMap{
			"filename": file.OriginalName,
			"fileSize": file.FileSize,
		}
		if taskID != nil {
			details["taskId"] = *taskID
		}
		return tx.Create(&models.AuditLog{
			Action:     models.AuditFileUploaded,
			EntityType: "file",
			EntityID:   file.ID,
			UserID:     actor.ID,
			ProjectID:  projectID,
			Details:    details,
		}).Error
	})
	if err != nil {
		if rmErr := storage.Remove(path); rmErr != nil {
			logging.Logger.Warnf("Failed to remove orphaned upload %s: %v", path, rmErr)
		}
		return models.File{}, err
	}

	return file, nil
}

// GetForDownload returns a file row after checking the requester may read
// it: admins always, otherwise the file's project must record a membership.
func (s *FileService) GetForDownload(actor models.Actor, fileID string) (models.File, error) {
	file, err := s.fileRepo.FindByID(fileID)
	if err != nil {
		return models.File{}, notFound("file %s", fileID)
	}

	if actor.Role != models.RoleAdmin && file.ProjectID != nil {
		isMember, err := s.memberRepo.IsMember(*file.ProjectID, actor.ID)
		if err != nil {
			return models.File{}, err
		}
		if !permissions.CanAccessProjectFiles(actor, isMember) {
			return models.File{}, forbidden("not a member of this project")
		}
	}

	return file, nil
}

// Delete removes an attachment. The disk removal is best-effort; the
// database row is authoritative and goes away regardless, together with the
// audit entry.
func (s *FileService) Delete(actor models.Actor, fileID string) error {
	file, err := s.fileRepo.FindByID(fileID)
	if err != nil {
		return notFound("file %s", fileID)
	}

	var memberRole models.ProjectRole
	if file.ProjectID != nil {
		memberRole, err = s.memberRepo.RoleInProject(*file.ProjectID, actor.ID)
		if err != nil {
			return err
		}
	}

	if !permissions.CanDeleteFile(actor, file, memberRole) {
		return forbidden("insufficient rights to delete this file")
	}

	if err := storage.Remove(file.FilePath); err != nil {
		logging.Logger.Warnf("Failed to delete physical file %s: %v", file.FilePath, err)
	}

	return s.fileRepo.DB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.File{}, "id = ?", fileID).Error; err != nil {
			return err
		}
		return tx.Create(&models.AuditLog{
			Action:     models.AuditFileDeleted,
			EntityType: "file",
			EntityID:   fileID,
			UserID:     actor.ID,
			ProjectID:  file.ProjectID,
			Details: models.JSONMap{
				"filename": file.OriginalName,
				"fileSize": file.FileSize,
			},
		}).Error
	})
}
