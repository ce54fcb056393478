package services

import (
	"errors"
	"testing"

	"github.com/taskdesk/database"
	"github.com/taskdesk/dto"
	"github.com/taskdesk/models"
)

func TestAddMemberCreatesRowAuditAndInvite(t *testing.T) {
	setupTestDB(t)
	pm := createTestUser(t, "manager", models.RoleProjectManager)
	invited := createTestUser(t, "invited", models.RoleExecutor)
	project := createTestProject(t, pm, "Delivery")

	svc := NewMemberService()
	member, err := svc.AddMember(models.ActorFromUser(pm), project.ID, dto.AddMemberRequest{
		UserID: invited.ID,
		Role:   "executor",
	})
	if err != nil {
		t.Fatalf("AddMember: %v", err)
	}
	if member.Role != models.ProjectRoleExecutor {
		t.Errorf("role = %s, want executor", member.Role)
	}

	entries := auditEntries(t, models.AuditMemberAdded)
	if len(entries) != 1 {
		t.Fatalf("member_added entries = %d, want 1", len(entries))
	}
	if entries[0].Details["addedUserId"] != invited.ID || entries[0].Details["role"] != "executor" {
		t.Errorf("audit details = %v", entries[0].Details)
	}

	var notification models.Notification
	if err := database.DB.First(&notification, "user_id = ?", invited.ID).Error; err != nil {
		t.Fatalf("invite notification missing: %v", err)
	}
	if notification.Type != models.NotificationProjectInvite {
		t.Errorf("type = %s, want project_invite", notification.Type)
	}
}

func TestAddMemberRejectsDuplicate(t *testing.T) {
	setupTestDB(t)
	pm := createTestUser(t, "manager", models.RoleProjectManager)
	invited := createTestUser(t, "invited", models.RoleExecutor)
	project := createTestProject(t, pm, "Delivery")

	svc := NewMemberService()
	if _, err := svc.AddMember(models.ActorFromUser(pm), project.ID, dto.AddMemberRequest{
		UserID: invited.ID, Role: "executor",
	}); err != nil {
		t.Fatalf("first AddMember: %v", err)
	}

	_, err := svc.AddMember(models.ActorFromUser(pm), project.ID, dto.AddMemberRequest{
		UserID: invited.ID, Role: "observer",
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("duplicate error = %v, want ErrValidation", err)
	}
}

func TestAddMemberOrderingNotFoundBeforeForbidden(t *testing.T) {
	setupTestDB(t)
	pm := createTestUser(t, "manager", models.RoleProjectManager)
	outsider := createTestUser(t, "outsider", models.RoleExecutor)
	project := createTestProject(t, pm, "Delivery")

	svc := NewMemberService()

	// Unknown project reports not found even for an actor without rights
	_, err := svc.AddMember(models.ActorFromUser(outsider),
		"cccccccc-0000-0000-0000-000000000001",
		dto.AddMemberRequest{UserID: pm.ID, Role: "executor"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown project error = %v, want ErrNotFound", err)
	}

	// Known project checks rights before looking at the invited user
	_, err = svc.AddMember(models.ActorFromUser(outsider), project.ID,
		dto.AddMemberRequest{UserID: "cccccccc-0000-0000-0000-000000000002", Role: "executor"})
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("no-rights error = %v, want ErrForbidden", err)
	}
}

func TestRemoveMemberDeletesRowAndAudits(t *testing.T) {
	setupTestDB(t)
	pm := createTestUser(t, "manager", models.RoleProjectManager)
	invited := createTestUser(t, "invited", models.RoleExecutor)
	project := createTestProject(t, pm, "Delivery")

	svc := NewMemberService()
	if _, err := svc.AddMember(models.ActorFromUser(pm), project.ID, dto.AddMemberRequest{
		UserID: invited.ID, Role: "executor",
	}); err != nil {
		t.Fatalf("AddMember: %v", err)
	}

	if err := svc.RemoveMember(models.ActorFromUser(pm), project.ID, invited.ID); err != nil {
		t.Fatalf("RemoveMember: %v", err)
	}

	isMember, err := NewMemberService().memberRepo.IsMember(project.ID, invited.ID)
	if err != nil {
		t.Fatalf("IsMember: %v", err)
	}
	if isMember {
		t.Errorf("membership should be gone")
	}

	entries := auditEntries(t, models.AuditMemberRemoved)
	if len(entries) != 1 || entries[0].Details["removedUserId"] != invited.ID {
		t.Fatalf("member_removed audit = %+v", entries)
	}
}

func TestListMembersVisibility(t *testing.T) {
	setupTestDB(t)
	pm := createTestUser(t, "manager", models.RoleProjectManager)
	member := createTestUser(t, "member", models.RoleExecutor)
	outsider := createTestUser(t, "outsider", models.RoleExecutor)
	project := createTestProject(t, pm, "Delivery")

	svc := NewMemberService()
	if _, err := svc.AddMember(models.ActorFromUser(pm), project.ID, dto.AddMemberRequest{
		UserID: member.ID, Role: "observer",
	}); err != nil {
		t.Fatalf("AddMember: %v", err)
	}

	if _, err := svc.ListMembers(models.ActorFromUser(member), project.ID); err != nil {
		t.Errorf("member should see the roster: %v", err)
	}
	if _, err := svc.ListMembers(models.ActorFromUser(outsider), project.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("outsider error = %v, want ErrForbidden", err)
	}
}
