package services

import (
	"errors"
	"testing"

	"github.com/taskdesk/database"
	"github.com/taskdesk/models"
)

func seedFileRow(t *testing.T, project models.Project, uploader models.User, path string) models.File {
	t.Helper()
	file := models.File{
		Filename:     "stored-name.txt",
		OriginalName: "отчёт.txt",
		FilePath:     path,
		FileSize:     42,
		MimeType:     "text/plain",
		ProjectID:    &project.ID,
		UploadedBy:   uploader.ID,
	}
	if err := database.DB.Create(&file).Error; err != nil {
		t.Fatalf("seed file: %v", err)
	}
	return file
}

func TestDeleteFileSurvivesMissingDiskFile(t *testing.T) {
	setupTestDB(t)
	admin := createTestUser(t, "admin", models.RoleAdmin)
	project := createTestProject(t, admin, "Delivery")
	file := seedFileRow(t, project, admin, "uploads/does-not-exist.txt")

	svc := NewFileService()
	if err := svc.Delete(models.ActorFromUser(admin), file.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if n := countRows(t, &models.File{}); n != 0 {
		t.Errorf("file rows = %d, want 0", n)
	}
	entries := auditEntries(t, models.AuditFileDeleted)
	if len(entries) != 1 {
		t.Fatalf("file_deleted entries = %d, want 1", len(entries))
	}
	if entries[0].Details["filename"] != "отчёт.txt" {
		t.Errorf("audit filename = %v", entries[0].Details["filename"])
	}
}

func TestDeleteFileDeniedForUnrelatedMember(t *testing.T) {
	setupTestDB(t)
	pm := createTestUser(t, "manager", models.RoleProjectManager)
	uploader := createTestUser(t, "uploader", models.RoleExecutor)
	other := createTestUser(t, "other", models.RoleExecutor)
	project := createTestProject(t, pm, "Delivery")
	for _, u := range []models.User{uploader, other} {
		member := models.ProjectMember{ProjectID: project.ID, UserID: u.ID, Role: models.ProjectRoleExecutor}
		if err := database.DB.Create(&member).Error; err != nil {
			t.Fatalf("seed membership: %v", err)
		}
	}
	file := seedFileRow(t, project, uploader, "uploads/x.txt")

	svc := NewFileService()
	if err := svc.Delete(models.ActorFromUser(other), file.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("error = %v, want ErrForbidden", err)
	}
	if n := countRows(t, &models.File{}); n != 1 {
		t.Errorf("file rows = %d, want 1", n)
	}
}

func TestDeleteFileAllowedForUploaderAndProjectManager(t *testing.T) {
	setupTestDB(t)
	pm := createTestUser(t, "manager", models.RoleProjectManager)
	uploader := createTestUser(t, "uploader", models.RoleExecutor)
	project := createTestProject(t, pm, "Delivery")
	member := models.ProjectMember{ProjectID: project.ID, UserID: uploader.ID, Role: models.ProjectRoleExecutor}
	if err := database.DB.Create(&member).Error; err != nil {
		t.Fatalf("seed membership: %v", err)
	}

	svc := NewFileService()

	file := seedFileRow(t, project, uploader, "uploads/a.txt")
	if err := svc.Delete(models.ActorFromUser(uploader), file.ID); err != nil {
		t.Errorf("uploader delete: %v", err)
	}

	file = seedFileRow(t, project, uploader, "uploads/b.txt")
	if err := svc.Delete(models.ActorFromUser(pm), file.ID); err != nil {
		t.Errorf("project manager delete: %v", err)
	}
}

func TestGetForDownloadRequiresMembership(t *testing.T) {
	setupTestDB(t)
	pm := createTestUser(t, "manager", models.RoleProjectManager)
	outsider := createTestUser(t, "outsider", models.RoleExecutor)
	admin := createTestUser(t, "admin", models.RoleAdmin)
	project := createTestProject(t, pm, "Delivery")
	file := seedFileRow(t, project, pm, "uploads/a.txt")

	svc := NewFileService()
	if _, err := svc.GetForDownload(models.ActorFromUser(outsider), file.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("outsider error = %v, want ErrForbidden", err)
	}
	if _, err := svc.GetForDownload(models.ActorFromUser(pm), file.ID); err != nil {
		t.Errorf("member download: %v", err)
	}
	if _, err := svc.GetForDownload(models.ActorFromUser(admin), file.ID); err != nil {
		t.Errorf("admin download: %v", err)
	}
}
