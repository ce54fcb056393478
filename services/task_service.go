package services

import (
	"time"

	"github.com/taskdesk/dto"
	"github.com/taskdesk/logging"
	"github.com/taskdesk/models"
	"github.com/taskdesk/permissions"
	"github.com/taskdesk/repositories"
	"gorm.io/gorm"
)

// TaskService handles business logic for tasks
type TaskService struct {
	taskRepo            *repositories.TaskRepository
	projectRepo         *repositories.ProjectRepository
	memberRepo          *repositories.MemberRepository
	notificationService *NotificationService
}

// NewTaskService creates a new task service instance
func NewTaskService() *TaskService {
	return &TaskService{
		taskRepo:            repositories.NewTaskRepository(),
		projectRepo:         repositories.NewProjectRepository(),
		memberRepo:          repositories.NewMemberRepository(),
		notificationService: NewNotificationService(),
	}
}

// CreateTask creates a task in a project. When the task arrives with an
// assignee, the assignment notification goes out after the commit.
func (s *TaskService) CreateTask(actor models.Actor, req dto.CreateTaskRequest) (models.Task, error) {
	project, err := s.projectRepo.FindByID(req.ProjectID)
	if err != nil {
		return models.Task{}, notFound("project %s", req.ProjectID)
	}

	if !permissions.CanCreateTask(actor, project.OwnerID) {
		return models.Task{}, forbidden("insufficient rights to create tasks in this project")
	}

	if req.ParentTaskID != nil {
		parent, err := s.taskRepo.FindByID(*req.ParentTaskID)
		if err != nil {
			return models.Task{}, notFound("parent task %s", *req.ParentTaskID)
		}
		if parent.ProjectID != req.ProjectID {
			return models.Task{}, invalid("parent task belongs to a different project")
		}
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return models.Task{}, err
	}

	task := models.Task{
		Title:        req.Title,
		Description:  req.Description,
		ProjectID:    req.ProjectID,
		ParentTaskID: req.ParentTaskID,
		AssigneeID:   req.AssigneeID,
		CreatorID:    actor.ID,
		Status:       models.TaskStatusOpen,
		Priority:     models.TaskPriorityMedium,
		Complexity:   1,
		DueDate:      dueDate,
		Tags:         req.Tags,
	}
	if req.Priority != "" {
		task.Priority = models.TaskPriority(req.Priority)
	}
	if req.Complexity != 0 {
		task.Complexity = req.Complexity
	}

	err = s.taskRepo.DB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&task).Error; err != nil {
			return err
		}
		details := models.JSONMap{"title": task.Title}
		if task.AssigneeID != nil {
			details["assigneeId"] = *task.AssigneeID
		}
		return tx.Create(&models.AuditLog{
			Action:     models.AuditTaskCreated,
			EntityType: "task",
			EntityID:   task.ID,
			UserID:     actor.ID,
			ProjectID:  &task.ProjectID,
			Details:    details,
		}).Error
	})
	if err != nil {
		return models.Task{}, err
	}

	if task.AssigneeID != nil {
		if err := s.notificationService.SendTaskAssignment(actor, task); err != nil {
			logging.Logger.Warnf("Failed to send task assignment notification: %v", err)
		}
	}

	return task, nil
}

// GetTask retrieves a task with its relations. View rights are broader than
// edit rights: any project membership or a global admin/project_manager role
// grants read access.
func (s *TaskService) GetTask(actor models.Actor, taskID string) (models.Task, error) {
	task, err := s.taskRepo.WithRelations(taskID)
	if err != nil {
		return models.Task{}, notFound("task %s", taskID)
	}

	if err := s.checkViewAccess(actor, task); err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// ListProjectTasks retrieves tasks of a project with filtering and sorting
func (s *TaskService) ListProjectTasks(actor models.Actor, projectID string, filter dto.TaskFilter) ([]models.Task, error) {
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

	if filter.SortOrder != "asc" && filter.SortOrder != "desc" {
		filter.SortOrder = "desc"
	}
	validSortColumns := map[string]bool{
		"created_at": true,
		"updated_at": true,
		"due_date":   true,
		"priority":   true,
		"title":      true,
	}
	if !validSortColumns[filter.SortBy] {
		filter.SortBy = "created_at"
	}

	return s.taskRepo.FindByProjectID(projectID, filter)
}

// UpdateTask changes task fields other than status. Reassignment triggers an
// assignment notification for the new assignee.
func (s *TaskService) UpdateTask(actor models.Actor, taskID string, req dto.UpdateTaskRequest) (models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		return models.Task{}, notFound("task %s", taskID)
	}

	ownerID, err := s.projectRepo.GetOwnerID(task.ProjectID)
	if err != nil {
		return models.Task{}, err
	}

	if !permissions.CanEditTask(actor, task, ownerID) {
		return models.Task{}, forbidden("insufficient rights to edit this task")
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return models.Task{}, err
	}

	newAssignee := req.AssigneeID != nil &&
		(task.AssigneeID == nil || *task.AssigneeID != *req.AssigneeID)

	task.Title = req.Title
	task.Description = req.Description
	task.AssigneeID = req.AssigneeID
	task.DueDate = dueDate
	task.Tags = req.Tags
	if req.Priority != "" {
		task.Priority = models.TaskPriority(req.Priority)
	}
	if req.Complexity != 0 {
		task.Complexity = req.Complexity
	}

	err = s.taskRepo.DB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&task).Error; err != nil {
			return err
		}
		details := models.JSONMap{"title": task.Title}
		if task.AssigneeID != nil {
			details["assigneeId"] = *task.AssigneeID
		}
		return tx.Create(&models.AuditLog{
			Action:     models.AuditTaskUpdated,
			EntityType: "task",
			EntityID:   task.ID,
			UserID:     actor.ID,
			ProjectID:  &task.ProjectID,
			Details:    details,
		}).Error
	})
	if err != nil {
		return models.Task{}, err
	}

	if newAssignee {
		if err := s.notificationService.SendTaskAssignment(actor, task); err != nil {
			logging.Logger.Warnf("Failed to send task assignment notification: %v", err)
		}
	}

	return task, nil
}

// UpdateTaskStatus moves a task to a new status. No transition is
// structurally forbidden; the only gate is the permission check. The audit
// row records both the old and the new status.
func (s *TaskService) UpdateTaskStatus(actor models.Actor, taskID, newStatus string) (models.Task, error) {
	if !models.ValidTaskStatus(newStatus) {
		return models.Task{}, invalid("unknown status %q", newStatus)
	}

	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		return models.Task{}, notFound("task %s", taskID)
	}

	ownerID, err := s.projectRepo.GetOwnerID(task.ProjectID)
	if err != nil {
		return models.Task{}, err
	}

	if !permissions.CanChangeTaskStatus(actor, task, ownerID) {
		return models.Task{}, forbidden("insufficient rights to change this task's status")
	}

	oldStatus := task.Status
	task.Status = models.TaskStatus(newStatus)

	err = s.taskRepo.DB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Task{}).Where("id = ?", taskID).
			Update("status", newStatus).Error; err != nil {
			return err
		}
		return tx.Create(&models.AuditLog{
			Action:     models.AuditTaskStatusChanged,
			EntityType: "task",
			EntityID:   task.ID,
			UserID:     actor.ID,
			ProjectID:  &task.ProjectID,
			Details: models.JSONMap{
				"oldStatus": string(oldStatus),
				"newStatus": newStatus,
			},
		}).Error
	})
	if err != nil {
		return models.Task{}, err
	}

	return task, nil
}

func (s *TaskService) checkViewAccess(actor models.Actor, task models.Task) error {
	if actor.Role == models.RoleAdmin || actor.Role == models.RoleProjectManager {
		return nil
	}
	if task.CreatorID == actor.ID {
		return nil
	}
	if task.AssigneeID != nil && *task.AssigneeID == actor.ID {
		return nil
	}
	ownerID, err := s.projectRepo.GetOwnerID(task.ProjectID)
	if err != nil {
		return err
	}
	if ownerID == actor.ID {
		return nil
	}
	isMember, err := s.memberRepo.IsMember(task.ProjectID, actor.ID)
	if err != nil {
		return err
	}
	if !isMember {
		return forbidden("not a member of this project")
	}
	return nil
}

// parseDueDate accepts RFC 3339 timestamps or bare dates
func parseDueDate(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, *raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", *raw)
	if err != nil {
		return nil, invalid("due date %q is not a valid date", *raw)
	}
	return &t, nil
}
