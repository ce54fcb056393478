package services

import (
	"github.com/taskdesk/dto"
	"github.com/taskdesk/logging"
	"github.com/taskdesk/models"
	"github.com/taskdesk/permissions"
	"github.com/taskdesk/repositories"
	"gorm.io/gorm"
)

// MemberService handles project membership management
type MemberService struct {
	projectRepo         *repositories.ProjectRepository
	memberRepo          *repositories.MemberRepository
	userRepo            *repositories.UserRepository
	notificationService *NotificationService
}

// NewMemberService creates a new member service instance
func NewMemberService() *MemberService {
	return &MemberService{
		projectRepo:         repositories.NewProjectRepository(),
		memberRepo:          repositories.NewMemberRepository(),
		userRepo:            repositories.NewUserRepository(),
		notificationService: NewNotificationService(),
	}
}

// ListMembers returns a project's memberships. Visible to admins, global
// project managers, and anyone recorded as a member.
func (s *MemberService) ListMembers(actor models.Actor, projectID string) ([]models.ProjectMember, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		return nil, notFound("project %s", projectID)
	}

	if actor.Role != models.RoleAdmin && actor.Role != models.RoleProjectManager && project.OwnerID != actor.ID {
		isMember, err := s.memberRepo.IsMember(projectID, actor.ID)
		if err != nil {
			return nil, err
		}
		if !isMember {
			return nil, forbidden("not a member of this project")
		}
	}

	return s.memberRepo.FindByProjectID(projectID)
}

// AddMember invites a user into a project. One membership per (project,
// user) pair; the invite notification goes out after the commit.
func (s *MemberService) AddMember(actor models.Actor, projectID string, req dto.AddMemberRequest) (models.ProjectMember, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		return models.ProjectMember{}, notFound("project %s", projectID)
	}

	if !permissions.CanEditProject(actor, project) {
		return models.ProjectMember{}, forbidden("insufficient rights to add members")
	}

	invited, err := s.userRepo.FindByID(req.UserID)
	if err != nil {
		return models.ProjectMember{}, notFound("user %s", req.UserID)
	}

	alreadyMember, err := s.memberRepo.IsMember(projectID, req.UserID)
	if err != nil {
		return models.ProjectMember{}, err
	}
	if alreadyMember {
		return models.ProjectMember{}, invalid("user is already a member of this project")
	}

	member := models.ProjectMember{
		ProjectID: projectID,
		UserID:    req.UserID,
		Role:      models.ProjectRole(req.Role),
	}

	err = s.memberRepo.DB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&member).Error; err != nil {
			return err
		}
		return tx.Create(&models.AuditLog{
			Action:     models.AuditMemberAdded,
			EntityType: "project",
			EntityID:   projectID,
			UserID:     actor.ID,
			ProjectID:  &projectID,
			Details: models.JSONMap{
				"addedUserId": req.UserID,
				"role":        req.Role,
			},
		}).Error
	})
	if err != nil {
		return models.ProjectMember{}, err
	}

	if err := s.notificationService.SendProjectInvite(actor, project, invited, member.Role); err != nil {
		logging.Logger.Warnf("Failed to send project invite notification: %v", err)
	}

	return member, nil
}

// RemoveMember removes a user's membership from a project
func (s *MemberService) RemoveMember(actor models.Actor, projectID, userID string) error {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		return notFound("project %s", projectID)
	}

	if !permissions.CanEditProject(actor, project) {
		return forbidden("insufficient rights to remove members")
	}

	isMember, err := s.memberRepo.IsMember(projectID, userID)
	if err != nil {
		return err
	}
	if !isMember {
		return notFound("membership of user %s in project %s", userID, projectID)
	}

	return s.memberRepo.DB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ? AND user_id = ?", projectID, userID).
			Delete(&models.ProjectMember{}).Error; err != nil {
			return err
		}
		return tx.Create(&models.AuditLog{
			Action:     models.AuditMemberRemoved,
			EntityType: "project",
			EntityID:   projectID,
			UserID:     actor.ID,
			ProjectID:  &projectID,
			Details:    models.JSONMap{"removedUserId": userID},
		}).Error
	})
}
