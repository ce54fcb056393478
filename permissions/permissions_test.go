package permissions

import (
	"testing"

	"github.com/taskdesk/models"
)

func actor(id string, role models.Role) models.Actor {
	return models.Actor{ID: id, Role: role}
}

func TestCanCreateProject(t *testing.T) {
	tests := []struct {
		role models.Role
		want bool
	}{
		{models.RoleAdmin, true},
		{models.RoleProjectManager, true},
		{models.RoleExecutor, false},
		{models.RoleObserver, false},
	}
	for _, tt := range tests {
		if got := CanCreateProject(actor("u1", tt.role)); got != tt.want {
			t.Errorf("CanCreateProject(%s) = %v, want %v", tt.role, got, tt.want)
		}
	}
}

func TestCanEditProject(t *testing.T) {
	project := models.Project{ID: "p1", OwnerID: "owner"}

	if !CanEditProject(actor("admin", models.RoleAdmin), project) {
		t.Error("admin should edit any project")
	}
	if !CanEditProject(actor("owner", models.RoleExecutor), project) {
		t.Error("owner should edit their project regardless of system role")
	}
	if CanEditProject(actor("other", models.RoleProjectManager), project) {
		t.Error("non-owner project_manager should not edit someone else's project")
	}
}

func TestCanEditTask(t *testing.T) {
	assignee := "worker"
	task := models.Task{ID: "t1", AssigneeID: &assignee, CreatorID: "creator"}

	tests := []struct {
		name  string
		actor models.Actor
		want  bool
	}{
		{"admin", actor("admin", models.RoleAdmin), true},
		{"project owner", actor("owner", models.RoleExecutor), true},
		{"assignee", actor("worker", models.RoleExecutor), true},
		{"creator without other rights", actor("creator", models.RoleExecutor), false},
		{"unrelated observer", actor("nobody", models.RoleObserver), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanEditTask(tt.actor, task, "owner"); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanEditTaskUnassigned(t *testing.T) {
	task := models.Task{ID: "t1", CreatorID: "creator"}
	if CanEditTask(actor("worker", models.RoleExecutor), task, "owner") {
		t.Error("executor should not edit an unassigned task")
	}
}

func TestCanDeleteComment(t *testing.T) {
	if !CanDeleteComment(actor("author", models.RoleObserver), "author", "owner") {
		t.Error("author should delete own comment")
	}
	if !CanDeleteComment(actor("owner", models.RoleExecutor), "author", "owner") {
		t.Error("project owner should delete comments in their project")
	}
	if CanDeleteComment(actor("bystander", models.RoleExecutor), "author", "owner") {
		t.Error("unrelated user should not delete comments")
	}
}

func TestCanExportReports(t *testing.T) {
	if !CanExportReports(actor("u", models.RoleProjectManager)) {
		t.Error("project_manager should export reports")
	}
	if CanExportReports(actor("u", models.RoleExecutor)) {
		t.Error("executor should not export reports")
	}
}

func TestCanDeleteFile(t *testing.T) {
	file := models.File{ID: "f1", UploadedBy: "uploader"}

	if !CanDeleteFile(actor("uploader", models.RoleObserver), file, "") {
		t.Error("uploader should delete own file")
	}
	if !CanDeleteFile(actor("mgr", models.RoleExecutor), file, models.ProjectRoleManager) {
		t.Error("project-scoped manager should delete project files")
	}
	if CanDeleteFile(actor("member", models.RoleExecutor), file, models.ProjectRoleExecutor) {
		t.Error("plain member should not delete another user's file")
	}
}

func TestCanAccessProjectFiles(t *testing.T) {
	if !CanAccessProjectFiles(actor("a", models.RoleAdmin), false) {
		t.Error("admin should access files without membership")
	}
	if !CanAccessProjectFiles(actor("m", models.RoleObserver), true) {
		t.Error("any member should access project files")
	}
	if CanAccessProjectFiles(actor("x", models.RoleProjectManager), false) {
		t.Error("non-member without admin role should be denied")
	}
}
