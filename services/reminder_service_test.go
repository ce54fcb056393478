package services

import (
	"testing"
	"time"

	"github.com/taskdesk/database"
	"github.com/taskdesk/models"
)

func seedReminderTask(t *testing.T, project models.Project, creator models.User, assigneeID *string, status models.TaskStatus, due *time.Time, title string) models.Task {
	t.Helper()
	task := models.Task{
		Title:      title,
		ProjectID:  project.ID,
		CreatorID:  creator.ID,
		AssigneeID: assigneeID,
		Status:     status,
		Priority:   models.TaskPriorityMedium,
		DueDate:    due,
	}
	if err := database.DB.Create(&task).Error; err != nil {
		t.Fatalf("seed task %s: %v", title, err)
	}
	return task
}

func TestSweepSelectsOnlyWindowedOpenAssignedTasks(t *testing.T) {
	setupTestDB(t)
	pm := createTestUser(t, "manager", models.RoleProjectManager)
	worker := createTestUser(t, "worker", models.RoleExecutor)
	project := createTestProject(t, pm, "Delivery")

	now := timeMustParse(t, "2026-09-01T12:00:00Z")
	inWindow := now.Add(30 * time.Hour)
	tooSoon := now.Add(10 * time.Hour)
	tooLate := now.Add(72 * time.Hour)

	seedReminderTask(t, project, pm, &worker.ID, models.TaskStatusOpen, &inWindow, "due soon")
	seedReminderTask(t, project, pm, &worker.ID, models.TaskStatusOpen, &tooSoon, "due too soon")
	seedReminderTask(t, project, pm, &worker.ID, models.TaskStatusOpen, &tooLate, "due too late")
	seedReminderTask(t, project, pm, &worker.ID, models.TaskStatusCompleted, &inWindow, "already done")
	seedReminderTask(t, project, pm, nil, models.TaskStatusOpen, &inWindow, "unassigned")
	seedReminderTask(t, project, pm, &worker.ID, models.TaskStatusOpen, nil, "no deadline")

	svc := NewReminderService()
	result, err := svc.Sweep(now)
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}

	if result.TasksProcessed != 1 {
		t.Errorf("tasks processed = %d, want 1", result.TasksProcessed)
	}
	if result.RemindersSent != 1 {
		t.Errorf("reminders sent = %d, want 1", result.RemindersSent)
	}
	if result.Errors != 0 {
		t.Errorf("errors = %d, want 0", result.Errors)
	}

	var notifications []models.Notification
	if err := database.DB.Where("type = ?", models.NotificationDeadlineReminder).
		Find(&notifications).Error; err != nil {
		t.Fatalf("query notifications: %v", err)
	}
	if len(notifications) != 1 {
		t.Fatalf("reminder notifications = %d, want 1", len(notifications))
	}
	if notifications[0].UserID != worker.ID {
		t.Errorf("recipient = %s, want %s", notifications[0].UserID, worker.ID)
	}
}

func TestSweepBoundaryInclusive(t *testing.T) {
	setupTestDB(t)
	pm := createTestUser(t, "manager", models.RoleProjectManager)
	worker := createTestUser(t, "worker", models.RoleExecutor)
	project := createTestProject(t, pm, "Delivery")

	now := timeMustParse(t, "2026-09-01T12:00:00Z")
	lowerEdge := now.Add(24 * time.Hour)
	upperEdge := now.Add(48 * time.Hour)
	seedReminderTask(t, project, pm, &worker.ID, models.TaskStatusOpen, &lowerEdge, "lower edge")
	seedReminderTask(t, project, pm, &worker.ID, models.TaskStatusOpen, &upperEdge, "upper edge")

	svc := NewReminderService()
	result, err := svc.Sweep(now)
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if result.RemindersSent != 2 {
		t.Errorf("reminders sent = %d, want 2 (both window edges included)", result.RemindersSent)
	}
}

func TestSweepEmptyWindow(t *testing.T) {
	setupTestDB(t)

	svc := NewReminderService()
	result, err := svc.Sweep(timeMustParse(t, "2026-09-01T12:00:00Z"))
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if result.TasksProcessed != 0 || result.RemindersSent != 0 || result.Errors != 0 {
		t.Errorf("result = %+v, want all zero", result)
	}
}
