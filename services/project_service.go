package services

import (
	"github.com/taskdesk/dto"
	"github.com/taskdesk/models"
	"github.com/taskdesk/permissions"
	"github.com/taskdesk/repositories"
	"gorm.io/gorm"
)

// ProjectService handles business logic for projects
type ProjectService struct {
	projectRepo *repositories.ProjectRepository
	memberRepo  *repositories.MemberRepository
}

// NewProjectService creates a new project service instance
func NewProjectService() *ProjectService {
	return &ProjectService{
		projectRepo: repositories.NewProjectRepository(),
		memberRepo:  repositories.NewMemberRepository(),
	}
}

// ListProjects retrieves projects with pagination, filtering and sorting
func (s *ProjectService) ListProjects(filter dto.ProjectFilter) (dto.ProjectListResponse, error) {
	var response dto.ProjectListResponse

	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 10
	}
	if filter.SortOrder != "asc" && filter.SortOrder != "desc" {
		filter.SortOrder = "desc"
	}

	// Valid sort columns (whitelist approach for security)
	validSortColumns := map[string]bool{
		"created_at": true,
		"updated_at": true,
		"title":      true,
	}
	if !validSortColumns[filter.SortBy] {
		filter.SortBy = "created_at"
	}

	projects, totalCount, err := s.projectRepo.FindWithPagination(repositories.ProjectQuery{
		Search:    filter.Search,
		SortBy:    filter.SortBy,
		SortOrder: filter.SortOrder,
		Page:      filter.Page,
		PageSize:  filter.PageSize,
	})
	if err != nil {
		return response, err
	}

	totalPages := int(totalCount) / filter.PageSize
	if int(totalCount)%filter.PageSize > 0 {
		totalPages++
	}

	response = dto.ProjectListResponse{
		Projects:   projects,
		TotalCount: totalCount,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages,
	}
	return response, nil
}

// GetProjectDetail retrieves a project by ID with its members
func (s *ProjectService) GetProjectDetail(projectID string) (models.Project, error) {
	project, err := s.projectRepo.WithMembers(projectID)
	if err != nil {
		return models.Project{}, notFound("project %s", projectID)
	}
	return project, nil
}

// CreateProject creates a project owned by the actor. The owner membership
// row and the audit entry are written in the same transaction as the project.
func (s *ProjectService) CreateProject(actor models.Actor, req dto.CreateProjectRequest) (models.Project, error) {
	if !permissions.CanCreateProject(actor) {
		return models.Project{}, forbidden("insufficient rights to create projects")
	}

	project := models.Project{
		Title:       req.Title,
		Description: req.Description,
		OwnerID:     actor.ID,
	}

	err := s.projectRepo.DB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&project).Error; err != nil {
			return err
		}

		// The owner joins their own project as project_manager
		member := models.ProjectMember{
			ProjectID: project.ID,
			UserID:    actor.ID,
			Role:      models.ProjectRoleManager,
		}
		if err := tx.Create(&member).Error; err != nil {
			return err
		}

		return tx.Create(&models.AuditLog{
			Action:     models.AuditProjectCreated,
			EntityType: "project",
			EntityID:   project.ID,
			UserID:     actor.ID,
			ProjectID:  &project.ID,
			Details:    models.JSONMap{"title": project.Title},
		}).Error
	})
	if err != nil {
		return models.Project{}, err
	}

	return project, nil
}

// UpdateProject updates a project's title and description
func (s *ProjectService) UpdateProject(actor models.Actor, projectID string, req dto.UpdateProjectRequest) (models.Project, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		return models.Project{}, notFound("project %s", projectID)
	}

	if !permissions.CanEditProject(actor, project) {
		return models.Project{}, forbidden("insufficient rights to edit this project")
	}

	oldTitle := project.Title
	project.Title = req.Title
	project.Description = req.Description

	err = s.projectRepo.DB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&project).Error; err != nil {
			return err
		}
		return tx.Create(&models.AuditLog{
			Action:     models.AuditProjectUpdated,
			EntityType: "project",
			EntityID:   project.ID,
			UserID:     actor.ID,
			ProjectID:  &project.ID,
			Details: models.JSONMap{
				"oldTitle": oldTitle,
				"newTitle": project.Title,
			},
		}).Error
	})
	if err != nil {
		return models.Project{}, err
	}

	return project, nil
}

// DeleteProject deletes a project and everything scoped to it: members,
// tasks with their comments and file rows, notifications, and the project's
// audit history. The deletion audit entry survives with a nil project
// reference since its project no longer exists.
func (s *ProjectService) DeleteProject(actor models.Actor, projectID string) error {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		return notFound("project %s", projectID)
	}

	if !permissions.CanEditProject(actor, project) {
		return forbidden("insufficient rights to delete this project")
	}

	return s.projectRepo.DB().Transaction(func(tx *gorm.DB) error {
		var taskIDs []string
		if err := tx.Model(&models.Task{}).Where("project_id = ?", projectID).
			Pluck("id", &taskIDs).Error; err != nil {
			return err
		}

		if len(taskIDs) > 0 {
			if err := tx.Where("task_id IN ?", taskIDs).Delete(&models.Comment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("task_id IN ?", taskIDs).Delete(&models.File{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("project_id = ?", projectID).Delete(&models.File{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", projectID).Delete(&models.Task{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", projectID).Delete(&models.ProjectMember{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", projectID).Delete(&models.Notification{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", projectID).Delete(&models.AuditLog{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Project{}, "id = ?", projectID).Error; err != nil {
			return err
		}

		return tx.Create(&models.AuditLog{
			Action:     models.AuditProjectDeleted,
			EntityType: "project",
			EntityID:   projectID,
			UserID:     actor.ID,
			Details:    models.JSONMap{"title": project.Title},
		}).Error
	})
}
