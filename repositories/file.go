package repositories

import (
	"github.com/taskdesk/database"
	"github.com/taskdesk/models"
	"gorm.io/gorm"
)

// FileRepository handles database operations for uploaded files
type FileRepository struct{}

// NewFileRepository creates a new file repository instance
func NewFileRepository() *FileRepository {
	return &FileRepository{}
}

// FindByID retrieves a file row by its ID
func (r *FileRepository) FindByID(id string) (models.File, error) {
	var file models.File
	result := database.DB.First(&file, "id = ?", id)
	return file, result.Error
}

// FindByTaskID retrieves all files attached to a task
func (r *FileRepository) FindByTaskID(taskID string) ([]models.File, error) {
	var files []models.File
	result := database.DB.Where("task_id = ?", taskID).Order("uploaded_at desc").Find(&files)
	return files, result.Error
}

// FindByProjectID retrieves all files attached to a project
func (r *FileRepository) FindByProjectID(projectID string) ([]models.File, error) {
	var files []models.File
	result := database.DB.Where("project_id = ?", projectID).Order("uploaded_at desc").Find(&files)
	return files, result.Error
}

// DB returns the database instance
func (r *FileRepository) DB() *gorm.DB {
	return database.DB
}
