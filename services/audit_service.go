package services

import (
	"github.com/taskdesk/models"
	"github.com/taskdesk/permissions"
	"github.com/taskdesk/repositories"
)

// AuditService exposes the audit history for display and reporting. Writes
// happen inside the mutating services' transactions, never here.
type AuditService struct {
	auditRepo   *repositories.AuditRepository
	projectRepo *repositories.ProjectRepository
}

// NewAuditService creates a new audit service instance
func NewAuditService() *AuditService {
	return &AuditService{
		auditRepo:   repositories.NewAuditRepository(),
		projectRepo: repositories.NewProjectRepository(),
	}
}

// ProjectHistory returns a project's audit entries, newest first. Visible to
// admins and the project owner.
func (s *AuditService) ProjectHistory(actor models.Actor, projectID string, limit int) ([]models.AuditLog, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		return nil, notFound("project %s", projectID)
	}

	if !permissions.CanViewAuditLogs(actor, project.OwnerID) {
		return nil, forbidden("insufficient rights to view this project's history")
	}

	return s.auditRepo.FindByProjectID(projectID, limit)
}
