package repositories

import (
	"github.com/taskdesk/database"
	"github.com/taskdesk/models"
	"gorm.io/gorm"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct{}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{}
}

// FindByID retrieves a project by its ID
func (r *ProjectRepository) FindByID(id string) (models.Project, error) {
	var project models.Project
	result := database.DB.First(&project, "id = ?", id)
	return project, result.Error
}

// WithMembers loads a project together with its member rows and their users
func (r *ProjectRepository) WithMembers(id string) (models.Project, error) {
	var project models.Project
	result := database.DB.Preload("Members.User").First(&project, "id = ?", id)
	return project, result.Error
}

// GetOwnerID returns the user ID who owns the project
func (r *ProjectRepository) GetOwnerID(id string) (string, error) {
	var ownerID string
	err := database.DB.Model(&models.Project{}).
		Select("owner_id").Where("id = ?", id).First(&ownerID).Error
	return ownerID, err
}

// DB returns the database instance
func (r *ProjectRepository) DB() *gorm.DB {
	return database.DB
}

// FindWithPagination retrieves projects with pagination, filtering and sorting
func (r *ProjectRepository) FindWithPagination(filter ProjectQuery) ([]models.Project, int64, error) {
	var projects []models.Project
	var totalCount int64

	db := database.DB.Model(&models.Project{})

	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		db = db.Where("(title ILIKE ? OR description ILIKE ?)", searchPattern, searchPattern)
	}

	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.PageSize

	orderString := filter.SortBy + " " + filter.SortOrder
	if err := db.Preload("Owner").Order(orderString).
		Limit(filter.PageSize).Offset(offset).Find(&projects).Error; err != nil {
		return nil, 0, err
	}

	return projects, totalCount, nil
}

// FindAllForReport loads every project with the owner, member rows and
// tasks preloaded for report aggregation
func (r *ProjectRepository) FindAllForReport() ([]models.Project, error) {
	var projects []models.Project
	result := database.DB.
		Preload("Owner").
		Preload("Members").
		Preload("Tasks").
		Order("created_at DESC").
		Find(&projects)
	return projects, result.Error
}

// ProjectQuery carries validated list parameters into the repository
type ProjectQuery struct {
	Search    string
	SortBy    string
	SortOrder string
	Page      int
	PageSize  int
}
