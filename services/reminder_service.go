package services

import (
	"time"

	"github.com/taskdesk/dto"
	"github.com/taskdesk/logging"
	"github.com/taskdesk/repositories"
)

// Deadline reminders go out for tasks due between one and two days from now.
const (
	reminderWindowStart = 24 * time.Hour
	reminderWindowEnd   = 48 * time.Hour
)

// ReminderService runs the deadline reminder sweep. It is invoked by an
// external time-based trigger, not an in-process scheduler.
type ReminderService struct {
	taskRepo            *repositories.TaskRepository
	notificationService *NotificationService
}

// NewReminderService creates a new reminder service instance
func NewReminderService() *ReminderService {
	return &ReminderService{
		taskRepo:            repositories.NewTaskRepository(),
		notificationService: NewNotificationService(),
	}
}

// Sweep selects assigned, still-open tasks whose due date falls inside
// [now+24h, now+48h] and sends one reminder per task. Each task is processed
// in isolation; one failure does not block the rest.
func (s *ReminderService) Sweep(now time.Time) (dto.SweepResult, error) {
	from := now.Add(reminderWindowStart)
	to := now.Add(reminderWindowEnd)

	tasks, err := s.taskRepo.FindDueBetween(from, to)
	if err != nil {
		return dto.SweepResult{}, err
	}

	result := dto.SweepResult{TasksProcessed: len(tasks)}
	for _, task := range tasks {
		if err := s.notificationService.SendDeadlineReminder(task); err != nil {
			logging.Logger.Warnf("Deadline reminder for task %s failed: %v", task.ID, err)
			result.Errors++
			continue
		}
		result.RemindersSent++
	}

	logging.Logger.Infof("Deadline sweep: %d tasks, %d reminders sent, %d errors",
		result.TasksProcessed, result.RemindersSent, result.Errors)
	return result, nil
}
