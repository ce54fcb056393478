package dto

// AddMemberRequest invites a user into a project with a project-scoped role
type AddMemberRequest struct {
	UserID string `json:"userId" binding:"required,uuid"`
	Role   string `json:"role" binding:"required,oneof=project_manager executor observer"`
}
