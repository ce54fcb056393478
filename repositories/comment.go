package repositories

import (
	"github.com/taskdesk/database"
	"github.com/taskdesk/models"
	"gorm.io/gorm"
)

// CommentRepository handles database operations for comments
type CommentRepository struct{}

// NewCommentRepository creates a new comment repository instance
func NewCommentRepository() *CommentRepository {
	return &CommentRepository{}
}

// FindByID retrieves a comment by its ID
func (r *CommentRepository) FindByID(id string) (models.Comment, error) {
	var comment models.Comment
	result := database.DB.First(&comment, "id = ?", id)
	return comment, result.Error
}

// FindByTaskID retrieves all comments on a task, oldest first
func (r *CommentRepository) FindByTaskID(taskID string) ([]models.Comment, error) {
	var comments []models.Comment
	result := database.DB.Preload("Author").
		Where("task_id = ?", taskID).Order("created_at asc").Find(&comments)
	return comments, result.Error
}

// DB returns the database instance
func (r *CommentRepository) DB() *gorm.DB {
	return database.DB
}
