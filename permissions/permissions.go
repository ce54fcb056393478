// Package permissions holds the stateless allow/deny predicates evaluated
// before every mutation. Each function takes the acting user plus the minimal
// context needed and returns a boolean; callers are responsible for turning a
// false result into an authorization failure.
package permissions

import "github.com/taskdesk/models"

// CanCreateProject reports whether the actor may create new projects.
func CanCreateProject(actor models.Actor) bool {
	return actor.Role == models.RoleAdmin || actor.Role == models.RoleProjectManager
}

// CanEditProject reports whether the actor may change or delete a project.
func CanEditProject(actor models.Actor, project models.Project) bool {
	return actor.Role == models.RoleAdmin || project.OwnerID == actor.ID
}

// CanCreateTask reports whether the actor may create tasks in a project.
func CanCreateTask(actor models.Actor, projectOwnerID string) bool {
	return actor.Role == models.RoleAdmin ||
		projectOwnerID == actor.ID ||
		actor.Role == models.RoleProjectManager
}

// CanEditTask reports whether the actor may change a task's fields.
func CanEditTask(actor models.Actor, task models.Task, projectOwnerID string) bool {
	if actor.Role == models.RoleAdmin || projectOwnerID == actor.ID {
		return true
	}
	return task.AssigneeID != nil && *task.AssigneeID == actor.ID
}

// CanChangeTaskStatus reports whether the actor may move a task between
// statuses. Same rule as editing: admin, project owner, or assignee.
func CanChangeTaskStatus(actor models.Actor, task models.Task, projectOwnerID string) bool {
	return CanEditTask(actor, task, projectOwnerID)
}

// CanDeleteComment reports whether the actor may delete a comment.
func CanDeleteComment(actor models.Actor, commentAuthorID, projectOwnerID string) bool {
	return actor.Role == models.RoleAdmin ||
		projectOwnerID == actor.ID ||
		commentAuthorID == actor.ID
}

// CanViewAuditLogs reports whether the actor may read a project's history.
func CanViewAuditLogs(actor models.Actor, projectOwnerID string) bool {
	return actor.Role == models.RoleAdmin || projectOwnerID == actor.ID
}

// CanManageUsers reports whether the actor may create users, change roles,
// or deactivate accounts.
func CanManageUsers(actor models.Actor) bool {
	return actor.Role == models.RoleAdmin
}

// CanExportReports reports whether the actor may export summary documents.
func CanExportReports(actor models.Actor) bool {
	return actor.Role == models.RoleAdmin || actor.Role == models.RoleProjectManager
}

// CanAccessProjectFiles reports whether the actor may download files scoped
// to a project. View rights are broader than edit rights: any recorded
// membership suffices.
func CanAccessProjectFiles(actor models.Actor, isMember bool) bool {
	return actor.Role == models.RoleAdmin || isMember
}

// CanDeleteFile reports whether the actor may delete an uploaded file.
// memberRole is the actor's project-scoped role, empty when not a member.
func CanDeleteFile(actor models.Actor, file models.File, memberRole models.ProjectRole) bool {
	if actor.Role == models.RoleAdmin || file.UploadedBy == actor.ID {
		return true
	}
	return memberRole == models.ProjectRoleManager
}
