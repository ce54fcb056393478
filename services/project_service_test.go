package services

import (
	"errors"
	"testing"

	"github.com/taskdesk/database"
	"github.com/taskdesk/dto"
	"github.com/taskdesk/models"
)

func TestCreateProjectWritesOwnerMembershipAndAudit(t *testing.T) {
	setupTestDB(t)
	admin := createTestUser(t, "admin", models.RoleAdmin)

	svc := NewProjectService()
	project, err := svc.CreateProject(models.ActorFromUser(admin), dto.CreateProjectRequest{
		Title:       "Website redesign",
		Description: "Q3 initiative",
	})
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}
	if project.OwnerID != admin.ID {
		t.Errorf("owner = %s, want %s", project.OwnerID, admin.ID)
	}

	var member models.ProjectMember
	if err := database.DB.First(&member, "project_id = ?", project.ID).Error; err != nil {
		t.Fatalf("owner membership row missing: %v", err)
	}
	if member.UserID != admin.ID || member.Role != models.ProjectRoleManager {
		t.Errorf("owner membership = (%s, %s), want (%s, project_manager)", member.UserID, member.Role, admin.ID)
	}

	entries := auditEntries(t, models.AuditProjectCreated)
	if len(entries) != 1 {
		t.Fatalf("audit entries = %d, want 1", len(entries))
	}
	if entries[0].EntityID != project.ID || entries[0].UserID != admin.ID {
		t.Errorf("audit entry references (%s, %s), want (%s, %s)",
			entries[0].EntityID, entries[0].UserID, project.ID, admin.ID)
	}
	if entries[0].Details["title"] != "Website redesign" {
		t.Errorf("audit details title = %v", entries[0].Details["title"])
	}
}

func TestCreateProjectDeniedLeavesNoRows(t *testing.T) {
	setupTestDB(t)
	executor := createTestUser(t, "worker", models.RoleExecutor)

	svc := NewProjectService()
	_, err := svc.CreateProject(models.ActorFromUser(executor), dto.CreateProjectRequest{Title: "Nope"})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("error = %v, want ErrForbidden", err)
	}

	if n := countRows(t, &models.Project{}); n != 0 {
		t.Errorf("projects = %d, want 0", n)
	}
	if n := countRows(t, &models.AuditLog{}); n != 0 {
		t.Errorf("audit rows = %d, want 0", n)
	}
}

func TestUpdateProjectRecordsTitleChange(t *testing.T) {
	setupTestDB(t)
	pm := createTestUser(t, "manager", models.RoleProjectManager)
	project := createTestProject(t, pm, "Old title")

	svc := NewProjectService()
	updated, err := svc.UpdateProject(models.ActorFromUser(pm), project.ID, dto.UpdateProjectRequest{
		Title: "New title",
	})
	if err != nil {
		t.Fatalf("UpdateProject: %v", err)
	}
	if updated.Title != "New title" {
		t.Errorf("title = %q", updated.Title)
	}

	entries := auditEntries(t, models.AuditProjectUpdated)
	if len(entries) != 1 {
		t.Fatalf("audit entries = %d, want 1", len(entries))
	}
	if entries[0].Details["oldTitle"] != "Old title" || entries[0].Details["newTitle"] != "New title" {
		t.Errorf("audit details = %v", entries[0].Details)
	}
}

func TestUpdateProjectForbiddenForNonOwner(t *testing.T) {
	setupTestDB(t)
	pm := createTestUser(t, "manager", models.RoleProjectManager)
	other := createTestUser(t, "other", models.RoleProjectManager)
	project := createTestProject(t, pm, "Locked")

	svc := NewProjectService()
	_, err := svc.UpdateProject(models.ActorFromUser(other), project.ID, dto.UpdateProjectRequest{Title: "Taken over"})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("error = %v, want ErrForbidden", err)
	}
}

func TestDeleteProjectRemovesScopedRowsAndKeepsDeletionEntry(t *testing.T) {
	setupTestDB(t)
	admin := createTestUser(t, "admin", models.RoleAdmin)
	project := createTestProject(t, admin, "Doomed")
	task := createTestTask(t, project, admin, "Orphan task")
	comment := models.Comment{Content: "note", TaskID: task.ID, AuthorID: admin.ID}
	if err := database.DB.Create(&comment).Error; err != nil {
		t.Fatalf("seed comment: %v", err)
	}

	svc := NewProjectService()
	if err := svc.DeleteProject(models.ActorFromUser(admin), project.ID); err != nil {
		t.Fatalf("DeleteProject: %v", err)
	}

	if n := countRows(t, &models.Project{}); n != 0 {
		t.Errorf("projects = %d, want 0", n)
	}
	if n := countRows(t, &models.Task{}); n != 0 {
		t.Errorf("tasks = %d, want 0", n)
	}
	if n := countRows(t, &models.Comment{}); n != 0 {
		t.Errorf("comments = %d, want 0", n)
	}
	if n := countRows(t, &models.ProjectMember{}); n != 0 {
		t.Errorf("memberships = %d, want 0", n)
	}

	entries := auditEntries(t, models.AuditProjectDeleted)
	if len(entries) != 1 {
		t.Fatalf("deletion audit entries = %d, want 1", len(entries))
	}
	if entries[0].ProjectID != nil {
		t.Errorf("deletion entry should not reference the removed project")
	}
}

func TestGetProjectDetailNotFound(t *testing.T) {
	setupTestDB(t)

	svc := NewProjectService()
	_, err := svc.GetProjectDetail("3f6f3a36-0000-0000-0000-000000000000")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}
