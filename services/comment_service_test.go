package services

import (
	"errors"
	"testing"

	"github.com/taskdesk/dto"
	"github.com/taskdesk/models"
)

func TestCreateCommentWritesAuditAndNotifies(t *testing.T) {
	setupTestDB(t)
	pm := createTestUser(t, "manager", models.RoleProjectManager)
	commenter := createTestUser(t, "commenter", models.RoleExecutor)
	project := createTestProject(t, pm, "Delivery")
	task := createTestTask(t, project, pm, "Ship it")

	svc := NewCommentService()
	comment, err := svc.CreateComment(models.ActorFromUser(commenter), task.ID, dto.CreateCommentRequest{
		Content: "what is the ETA?",
	})
	if err != nil {
		t.Fatalf("CreateComment: %v", err)
	}
	if comment.AuthorID != commenter.ID {
		t.Errorf("author = %s, want %s", comment.AuthorID, commenter.ID)
	}

	entries := auditEntries(t, models.AuditCommentCreated)
	if len(entries) != 1 || entries[0].Details["taskId"] != task.ID {
		t.Fatalf("comment_created audit = %+v", entries)
	}

	// Task creator gets the comment notification
	notifications, err := NewNotificationService().ListForUser(pm.ID, false)
	if err != nil {
		t.Fatalf("ListForUser: %v", err)
	}
	if len(notifications) != 1 || notifications[0].Type != models.NotificationCommentAdded {
		t.Fatalf("creator notifications = %+v", notifications)
	}
}

func TestDeleteCommentPermissions(t *testing.T) {
	setupTestDB(t)
	pm := createTestUser(t, "manager", models.RoleProjectManager)
	author := createTestUser(t, "author", models.RoleExecutor)
	bystander := createTestUser(t, "bystander", models.RoleExecutor)
	project := createTestProject(t, pm, "Delivery")
	task := createTestTask(t, project, pm, "Ship it")

	svc := NewCommentService()
	comment, err := svc.CreateComment(models.ActorFromUser(author), task.ID, dto.CreateCommentRequest{
		Content: "first",
	})
	if err != nil {
		t.Fatalf("CreateComment: %v", err)
	}

	if err := svc.DeleteComment(models.ActorFromUser(bystander), comment.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("bystander error = %v, want ErrForbidden", err)
	}
	if err := svc.DeleteComment(models.ActorFromUser(author), comment.ID); err != nil {
		t.Errorf("author delete: %v", err)
	}

	// Project owner may delete someone else's comment
	comment, err = svc.CreateComment(models.ActorFromUser(author), task.ID, dto.CreateCommentRequest{
		Content: "second",
	})
	if err != nil {
		t.Fatalf("CreateComment: %v", err)
	}
	if err := svc.DeleteComment(models.ActorFromUser(pm), comment.ID); err != nil {
		t.Errorf("owner delete: %v", err)
	}

	entries := auditEntries(t, models.AuditCommentDeleted)
	if len(entries) != 2 {
		t.Errorf("comment_deleted entries = %d, want 2", len(entries))
	}
}

func TestListCommentsUnknownTask(t *testing.T) {
	setupTestDB(t)

	svc := NewCommentService()
	_, err := svc.ListComments("dddddddd-0000-0000-0000-000000000001")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}
