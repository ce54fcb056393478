package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/taskdesk/database"
	"github.com/taskdesk/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points the global connection at a fresh in-memory database.
// Each test gets its own schema; the previous connection is restored on
// cleanup.
func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	previous := database.DB
	database.DB = db
	t.Cleanup(func() {
		database.DB = previous
	})
}

func createTestUser(t *testing.T, name string, role models.Role) models.User {
	t.Helper()
	user := models.User{
		Email:        name + "@example.com",
		PasswordHash: "x",
		Name:         name,
		Role:         role,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", name, err)
	}
	return user
}

func createTestProject(t *testing.T, owner models.User, title string) models.Project {
	t.Helper()
	project := models.Project{
		Title:   title,
		OwnerID: owner.ID,
	}
	if err := database.DB.Create(&project).Error; err != nil {
		t.Fatalf("failed to create project %s: %v", title, err)
	}
	member := models.ProjectMember{
		ProjectID: project.ID,
		UserID:    owner.ID,
		Role:      models.ProjectRoleManager,
	}
	if err := database.DB.Create(&member).Error; err != nil {
		t.Fatalf("failed to create owner membership: %v", err)
	}
	return project
}

func createTestTask(t *testing.T, project models.Project, creator models.User, title string) models.Task {
	t.Helper()
	task := models.Task{
		Title:     title,
		ProjectID: project.ID,
		CreatorID: creator.ID,
		Status:    models.TaskStatusOpen,
		Priority:  models.TaskPriorityMedium,
	}
	if err := database.DB.Create(&task).Error; err != nil {
		t.Fatalf("failed to create task %s: %v", title, err)
	}
	return task
}

func auditEntries(t *testing.T, action string) []models.AuditLog {
	t.Helper()
	var entries []models.AuditLog
	if err := database.DB.Where("action = ?", action).Find(&entries).Error; err != nil {
		t.Fatalf("failed to query audit entries: %v", err)
	}
	return entries
}

func timeMustParse(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("bad time literal %q: %v", value, err)
	}
	return parsed
}

func countRows(t *testing.T, model interface{}) int64 {
	t.Helper()
	var count int64
	if err := database.DB.Model(model).Count(&count).Error; err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	return count
}
