package services

import (
	"github.com/taskdesk/dto"
	"github.com/taskdesk/logging"
	"github.com/taskdesk/models"
	"github.com/taskdesk/permissions"
	"github.com/taskdesk/repositories"
	"gorm.io/gorm"
)

// CommentService handles business logic for task comments
type CommentService struct {
	commentRepo         *repositories.CommentRepository
	taskRepo            *repositories.TaskRepository
	projectRepo         *repositories.ProjectRepository
	notificationService *NotificationService
}

// NewCommentService creates a new comment service instance
func NewCommentService() *CommentService {
	return &CommentService{
		commentRepo:         repositories.NewCommentRepository(),
		taskRepo:            repositories.NewTaskRepository(),
		projectRepo:         repositories.NewProjectRepository(),
		notificationService: NewNotificationService(),
	}
}

// ListComments returns all comments on a task, oldest first
func (s *CommentService) ListComments(taskID string) ([]models.Comment, error) {
	if _, err := s.taskRepo.FindByID(taskID); err != nil {
		return nil, notFound("task %s", taskID)
	}
	return s.commentRepo.FindByTaskID(taskID)
}

// CreateComment appends a comment to a task and notifies the task's
// assignee and creator (excluding the author) after the commit.
func (s *CommentService) CreateComment(actor models.Actor, taskID string, req dto.CreateCommentRequest) (models.Comment, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		return models.Comment{}, notFound("task %s", taskID)
	}

	comment := models.Comment{
		Content:  req.Content,
		TaskID:   taskID,
		AuthorID: actor.ID,
	}

	err = s.commentRepo.DB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&comment).Error; err != nil {
			return err
		}
		return tx.Create(&models.AuditLog{
			Action:     models.AuditCommentCreated,
			EntityType: "comment",
			EntityID:   comment.ID,
			UserID:     actor.ID,
			ProjectID:  &task.ProjectID,
			Details:    models.JSONMap{"taskId": taskID},
		}).Error
	})
	if err != nil {
		return models.Comment{}, err
	}

	if err := s.notificationService.SendCommentAdded(actor, task, comment.Content); err != nil {
		logging.Logger.Warnf("Failed to send comment notification: %v", err)
	}

	return comment, nil
}

// DeleteComment removes a comment. Allowed for the author, the project
// owner, and admins.
func (s *CommentService) DeleteComment(actor models.Actor, commentID string) error {
	comment, err := s.commentRepo.FindByID(commentID)
	if err != nil {
		return notFound("comment %s", commentID)
	}

	task, err := s.taskRepo.FindByID(comment.TaskID)
	if err != nil {
		return notFound("task %s", comment.TaskID)
	}

	ownerID, err := s.projectRepo.GetOwnerID(task.ProjectID)
	if err != nil {
		return err
	}

	if !permissions.CanDeleteComment(actor, comment.AuthorID, ownerID) {
		return forbidden("insufficient rights to delete this comment")
	}

	return s.commentRepo.DB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Comment{}, "id = ?", commentID).Error; err != nil {
			return err
		}
		return tx.Create(&models.AuditLog{
			Action:     models.AuditCommentDeleted,
			EntityType: "comment",
			EntityID:   commentID,
			UserID:     actor.ID,
			ProjectID:  &task.ProjectID,
			Details:    models.JSONMap{"taskId": comment.TaskID},
		}).Error
	})
}
