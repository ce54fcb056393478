package repositories

import (
	"time"

	"github.com/taskdesk/database"
	"github.com/taskdesk/dto"
	"github.com/taskdesk/models"
	"gorm.io/gorm"
)

// TaskRepository handles database operations for tasks
type TaskRepository struct{}

// NewTaskRepository creates a new task repository instance
func NewTaskRepository() *TaskRepository {
	return &TaskRepository{}
}

// FindByID retrieves a task by its ID
func (r *TaskRepository) FindByID(id string) (models.Task, error) {
	var task models.Task
	result := database.DB.First(&task, "id = ?", id)
	return task, result.Error
}

// WithRelations loads a task with project, assignee, creator, subtasks and comments
func (r *TaskRepository) WithRelations(id string) (models.Task, error) {
	var task models.Task
	result := database.DB.
		Preload("Project").
		Preload("Assignee").
		Preload("Creator").
		Preload("Subtasks").
		Preload("Comments.Author").
		Preload("Files").
		First(&task, "id = ?", id)
	return task, result.Error
}

// FindByProjectID retrieves tasks of a project with optional filtering
func (r *TaskRepository) FindByProjectID(projectID string, filter dto.TaskFilter) ([]models.Task, error) {
	var tasks []models.Task

	db := database.DB.Where("project_id = ?", projectID)

	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.AssigneeID != "" {
		db = db.Where("assignee_id = ?", filter.AssigneeID)
	}
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		db = db.Where("(title ILIKE ? OR description ILIKE ?)", searchPattern, searchPattern)
	}

	orderString := filter.SortBy + " " + filter.SortOrder
	result := db.Preload("Assignee").Order(orderString).Find(&tasks)
	return tasks, result.Error
}

// FindDueBetween retrieves assigned, still-open tasks whose due date falls
// inside [from, to]. Used by the deadline reminder sweep.
func (r *TaskRepository) FindDueBetween(from, to time.Time) ([]models.Task, error) {
	var tasks []models.Task
	result := database.DB.
		Where("assignee_id IS NOT NULL").
		Where("due_date IS NOT NULL").
		Where("status = ?", models.TaskStatusOpen).
		Where("due_date >= ? AND due_date <= ?", from, to).
		Find(&tasks)
	return tasks, result.Error
}

// FindAllForReport loads tasks with project, assignee and creator preloaded.
// A non-nil projectID narrows the report to one project.
func (r *TaskRepository) FindAllForReport(projectID *string) ([]models.Task, error) {
	var tasks []models.Task
	db := database.DB.
		Preload("Project").
		Preload("Assignee").
		Preload("Creator")
	if projectID != nil {
		db = db.Where("project_id = ?", *projectID)
	}
	result := db.Order("created_at DESC").Find(&tasks)
	return tasks, result.Error
}

// DB returns the database instance
func (r *TaskRepository) DB() *gorm.DB {
	return database.DB
}
