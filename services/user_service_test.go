package services

import (
	"errors"
	"testing"

	"github.com/taskdesk/database"
	"github.com/taskdesk/dto"
	"github.com/taskdesk/models"
)

func TestCreateUserRequiresAdmin(t *testing.T) {
	setupTestDB(t)
	pm := createTestUser(t, "manager", models.RoleProjectManager)

	svc := NewUserService()
	_, err := svc.CreateUser(models.ActorFromUser(pm), dto.CreateUserRequest{
		Name:     "New",
		Email:    "new@example.com",
		Password: "secret1",
		Role:     "executor",
	})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("error = %v, want ErrForbidden", err)
	}
}

func TestCreateUserWritesAuditAndRejectsDuplicateEmail(t *testing.T) {
	setupTestDB(t)
	admin := createTestUser(t, "admin", models.RoleAdmin)

	svc := NewUserService()
	user, err := svc.CreateUser(models.ActorFromUser(admin), dto.CreateUserRequest{
		Name:     "Worker",
		Email:    "worker@example.com",
		Password: "secret1",
		Role:     "executor",
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if user.PasswordHash == "secret1" {
		t.Errorf("password stored in plain text")
	}

	entries := auditEntries(t, models.AuditUserCreated)
	if len(entries) != 1 {
		t.Fatalf("user_created entries = %d, want 1", len(entries))
	}
	if entries[0].Details["email"] != "worker@example.com" {
		t.Errorf("audit details = %v", entries[0].Details)
	}

	_, err = svc.CreateUser(models.ActorFromUser(admin), dto.CreateUserRequest{
		Name:     "Duplicate",
		Email:    "worker@example.com",
		Password: "secret2",
		Role:     "executor",
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("duplicate email error = %v, want ErrValidation", err)
	}
}

func TestUpdateUserRoleSelfChangeRejectedEvenForAdmin(t *testing.T) {
	setupTestDB(t)
	admin := createTestUser(t, "admin", models.RoleAdmin)

	svc := NewUserService()
	err := svc.UpdateUserRole(models.ActorFromUser(admin), admin.ID, "executor")
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("error = %v, want ErrForbidden", err)
	}

	var reloaded models.User
	if err := database.DB.First(&reloaded, "id = ?", admin.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Role != models.RoleAdmin {
		t.Errorf("role = %s, want admin", reloaded.Role)
	}
}

func TestUpdateUserRoleRecordsTransition(t *testing.T) {
	setupTestDB(t)
	admin := createTestUser(t, "admin", models.RoleAdmin)
	worker := createTestUser(t, "worker", models.RoleExecutor)

	svc := NewUserService()
	if err := svc.UpdateUserRole(models.ActorFromUser(admin), worker.ID, "project_manager"); err != nil {
		t.Fatalf("UpdateUserRole: %v", err)
	}

	var reloaded models.User
	if err := database.DB.First(&reloaded, "id = ?", worker.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Role != models.RoleProjectManager {
		t.Errorf("role = %s, want project_manager", reloaded.Role)
	}

	entries := auditEntries(t, models.AuditUserRoleChanged)
	if len(entries) != 1 {
		t.Fatalf("role change entries = %d, want 1", len(entries))
	}
	if entries[0].Details["oldRole"] != "executor" || entries[0].Details["newRole"] != "project_manager" {
		t.Errorf("audit details = %v", entries[0].Details)
	}
}

func TestDeactivateUserSelfRejected(t *testing.T) {
	setupTestDB(t)
	admin := createTestUser(t, "admin", models.RoleAdmin)

	svc := NewUserService()
	if err := svc.DeactivateUser(models.ActorFromUser(admin), admin.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("error = %v, want ErrForbidden", err)
	}
}

func TestDeactivateUserKeepsAccountRow(t *testing.T) {
	setupTestDB(t)
	admin := createTestUser(t, "admin", models.RoleAdmin)
	worker := createTestUser(t, "worker", models.RoleExecutor)

	svc := NewUserService()
	if err := svc.DeactivateUser(models.ActorFromUser(admin), worker.ID); err != nil {
		t.Fatalf("DeactivateUser: %v", err)
	}

	if n := countRows(t, &models.User{}); n != 2 {
		t.Errorf("users = %d, want 2 (accounts are never deleted)", n)
	}
	entries := auditEntries(t, models.AuditUserDeactivated)
	if len(entries) != 1 || entries[0].EntityID != worker.ID {
		t.Fatalf("deactivation audit = %+v", entries)
	}
}

func TestListUsersAdminOnly(t *testing.T) {
	setupTestDB(t)
	admin := createTestUser(t, "admin", models.RoleAdmin)
	worker := createTestUser(t, "worker", models.RoleExecutor)

	svc := NewUserService()
	users, err := svc.ListUsers(models.ActorFromUser(admin))
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if len(users) != 2 {
		t.Errorf("users = %d, want 2", len(users))
	}

	if _, err := svc.ListUsers(models.ActorFromUser(worker)); !errors.Is(err, ErrForbidden) {
		t.Errorf("error = %v, want ErrForbidden", err)
	}
}
