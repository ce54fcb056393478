package services

import (
	"fmt"

	"github.com/taskdesk/logging"
	"github.com/taskdesk/models"
	"github.com/taskdesk/repositories"
)

const commentPreviewLimit = 100

// NotificationService resolves recipients for domain events and produces one
// in-app notification (plus a best-effort email) per recipient. Every
// dispatch also appends a notification_sent audit row; failures there are
// logged and swallowed, never propagated to the triggering mutation.
type NotificationService struct {
	userRepo         *repositories.UserRepository
	taskRepo         *repositories.TaskRepository
	projectRepo      *repositories.ProjectRepository
	notificationRepo *repositories.NotificationRepository
	auditRepo        *repositories.AuditRepository
	emailService     *EmailService
}

// NewNotificationService creates a new notification service instance
func NewNotificationService() *NotificationService {
	return &NotificationService{
		userRepo:         repositories.NewUserRepository(),
		taskRepo:         repositories.NewTaskRepository(),
		projectRepo:      repositories.NewProjectRepository(),
		notificationRepo: repositories.NewNotificationRepository(),
		auditRepo:        repositories.NewAuditRepository(),
		emailService:     NewEmailService(),
	}
}

// ListForUser returns a user's notifications, newest first
func (s *NotificationService) ListForUser(userID string, unreadOnly bool) ([]models.Notification, error) {
	return s.notificationRepo.FindByUserID(userID, unreadOnly)
}

// MarkRead flags a single notification as read
func (s *NotificationService) MarkRead(actor models.Actor, notificationID string) error {
	affected, err := s.notificationRepo.MarkRead(notificationID, actor.ID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return notFound("notification %s", notificationID)
	}
	return nil
}

// MarkAllRead flags every unread notification of the actor as read and
// returns how many were affected.
func (s *NotificationService) MarkAllRead(actor models.Actor) (int64, error) {
	return s.notificationRepo.MarkAllRead(actor.ID)
}

// SendTaskAssignment notifies the task's assignee that a task was assigned
// to them by the actor. Best-effort: callers log and swallow the error.
func (s *NotificationService) SendTaskAssignment(actor models.Actor, task models.Task) error {
	if task.AssigneeID == nil {
		return nil
	}
	assignee, err := s.userRepo.FindByID(*task.AssigneeID)
	if err != nil {
		return err
	}
	project, err := s.projectRepo.FindByID(task.ProjectID)
	if err != nil {
		return err
	}

	triggeredBy := actor.ID
	notification := models.Notification{
		UserID:      assignee.ID,
		TriggeredBy: &triggeredBy,
		Type:        models.NotificationTaskAssigned,
		Title:       fmt.Sprintf("Новая задача: %s", task.Title),
		Message:     fmt.Sprintf("%s назначил вам задачу «%s» в проекте «%s»", actor.Name, task.Title, project.Title),
		EntityType:  "task",
		EntityID:    task.ID,
		ProjectID:   &task.ProjectID,
	}
	if err := s.notificationRepo.Create(&notification); err != nil {
		return err
	}

	body := fmt.Sprintf(`
		<h2>Вам назначена новая задача</h2>
		<p>Здравствуйте, %s!</p>
		<p>Вам была назначена новая задача в проекте «%s»:</p>
		<div style="background: #f5f5f5; padding: 15px; border-radius: 5px; margin: 15px 0;">
			<h3>%s</h3>
			<p>%s</p>
		</div>
		<p>Перейдите в систему для просмотра деталей задачи.</p>`,
		assignee.Name, project.Title, task.Title, task.Description)
	if err := s.emailService.Send(assignee.Email, notification.Title, body); err != nil {
		logging.Logger.Warnf("Failed to email task assignment to %s: %v", assignee.Email, err)
	}

	s.auditSent(assignee.ID, "task", task.ID, &task.ProjectID, models.JSONMap{
		"type":       "task_assignment",
		"email":      assignee.Email,
		"recipients": 1,
	})
	return nil
}

// SendCommentAdded notifies the task assignee and creator about a new
// comment. The comment author is excluded and duplicates are collapsed.
func (s *NotificationService) SendCommentAdded(author models.Actor, task models.Task, content string) error {
	project, err := s.projectRepo.FindByID(task.ProjectID)
	if err != nil {
		return err
	}

	recipientIDs := commentRecipients(task, author.ID)
	preview := truncate(content, commentPreviewLimit)

	for _, recipientID := range recipientIDs {
		recipient, err := s.userRepo.FindByID(recipientID)
		if err != nil {
			logging.Logger.Warnf("Comment notification recipient %s not found: %v", recipientID, err)
			continue
		}

		triggeredBy := author.ID
		notification := models.Notification{
			UserID:      recipient.ID,
			TriggeredBy: &triggeredBy,
			Type:        models.NotificationCommentAdded,
			Title:       fmt.Sprintf("Новый комментарий: %s", task.Title),
			Message:     fmt.Sprintf("%s: %s", author.Name, preview),
			EntityType:  "task",
			EntityID:    task.ID,
			ProjectID:   &task.ProjectID,
		}
		if err := s.notificationRepo.Create(&notification); err != nil {
			return err
		}

		body := fmt.Sprintf(`
			<h2>Новый комментарий к задаче</h2>
			<p>Здравствуйте, %s!</p>
			<p>%s добавил комментарий к задаче «%s» в проекте «%s»:</p>
			<div style="background: #f5f5f5; padding: 15px; border-radius: 5px; margin: 15px 0;">
				<p><strong>%s:</strong></p>
				<p>%s</p>
			</div>
			<p>Перейдите в систему для просмотра полного обсуждения.</p>`,
			recipient.Name, author.Name, task.Title, project.Title, author.Name, preview)
		if err := s.emailService.Send(recipient.Email, notification.Title, body); err != nil {
			logging.Logger.Warnf("Failed to email comment notification to %s: %v", recipient.Email, err)
		}
	}

	s.auditSent(author.ID, "task", task.ID, &task.ProjectID, models.JSONMap{
		"type":       "comment_notification",
		"recipients": len(recipientIDs),
	})
	return nil
}

// SendProjectInvite notifies a user that they were added to a project
func (s *NotificationService) SendProjectInvite(actor models.Actor, project models.Project, invited models.User, role models.ProjectRole) error {
	triggeredBy := actor.ID
	notification := models.Notification{
		UserID:      invited.ID,
		TriggeredBy: &triggeredBy,
		Type:        models.NotificationProjectInvite,
		Title:       fmt.Sprintf("Приглашение в проект: %s", project.Title),
		Message:     fmt.Sprintf("%s пригласил вас в проект «%s» в роли «%s»", actor.Name, project.Title, role.Label()),
		EntityType:  "project",
		EntityID:    project.ID,
		ProjectID:   &project.ID,
	}
	if err := s.notificationRepo.Create(&notification); err != nil {
		return err
	}

	body := fmt.Sprintf(`
		<h2>Приглашение в проект</h2>
		<p>Здравствуйте, %s!</p>
		<p>Вас пригласили участвовать в проекте «%s» в роли «%s».</p>
		<p>Приглашение отправил: %s</p>
		<p>Войдите в систему для начала работы с проектом.</p>`,
		invited.Name, project.Title, role.Label(), actor.Name)
	if err := s.emailService.Send(invited.Email, notification.Title, body); err != nil {
		logging.Logger.Warnf("Failed to email project invite to %s: %v", invited.Email, err)
	}

	s.auditSent(invited.ID, "project", project.ID, &project.ID, models.JSONMap{
		"type":       "project_invite",
		"role":       string(role),
		"recipients": 1,
	})
	return nil
}

// SendDeadlineReminder notifies a task's assignee about an approaching due
// date. The system is the trigger actor, so TriggeredBy stays nil.
func (s *NotificationService) SendDeadlineReminder(task models.Task) error {
	if task.AssigneeID == nil || task.DueDate == nil {
		return nil
	}
	assignee, err := s.userRepo.FindByID(*task.AssigneeID)
	if err != nil {
		return err
	}
	project, err := s.projectRepo.FindByID(task.ProjectID)
	if err != nil {
		return err
	}

	notification := models.Notification{
		UserID:     assignee.ID,
		Type:       models.NotificationDeadlineReminder,
		Title:      fmt.Sprintf("Приближается срок: %s", task.Title),
		Message:    fmt.Sprintf("Срок выполнения задачи «%s» в проекте «%s» — %s", task.Title, project.Title, task.DueDate.Format("2006-01-02")),
		EntityType: "task",
		EntityID:   task.ID,
		ProjectID:  &task.ProjectID,
	}
	if err := s.notificationRepo.Create(&notification); err != nil {
		return err
	}

	body := fmt.Sprintf(`
		<h2>Приближается срок выполнения задачи</h2>
		<p>Здравствуйте, %s!</p>
		<p>Срок выполнения задачи «%s» в проекте «%s» истекает %s.</p>
		<p>Перейдите в систему для просмотра деталей задачи.</p>`,
		assignee.Name, task.Title, project.Title, task.DueDate.Format("2006-01-02"))
	if err := s.emailService.Send(assignee.Email, notification.Title, body); err != nil {
		logging.Logger.Warnf("Failed to email deadline reminder to %s: %v", assignee.Email, err)
	}

	s.auditSent(assignee.ID, "task", task.ID, &task.ProjectID, models.JSONMap{
		"type":       "deadline_reminder",
		"email":      assignee.Email,
		"recipients": 1,
	})
	return nil
}

// auditSent appends the notification_sent audit row. Its failure is logged
// and swallowed: the notification itself already happened.
func (s *NotificationService) auditSent(userID, entityType, entityID string, projectID *string, details models.JSONMap) {
	entry := models.AuditLog{
		Action:     models.AuditNotificationSent,
		EntityType: entityType,
		EntityID:   entityID,
		UserID:     userID,
		ProjectID:  projectID,
		Details:    details,
	}
	if err := s.auditRepo.Create(&entry); err != nil {
		logging.Logger.Warnf("Failed to record notification_sent audit entry: %v", err)
	}
}

// commentRecipients returns {assignee, creator} minus the comment author,
// deduplicated, preserving assignee-first order.
func commentRecipients(task models.Task, authorID string) []string {
	var recipients []string
	seen := map[string]bool{authorID: true}

	if task.AssigneeID != nil && !seen[*task.AssigneeID] {
		recipients = append(recipients, *task.AssigneeID)
		seen[*task.AssigneeID] = true
	}
	if !seen[task.CreatorID] {
		recipients = append(recipients, task.CreatorID)
	}
	return recipients
}

// truncate cuts s to limit runes, appending an ellipsis when shortened.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
