package dto

// CreateUserRequest is the admin user-creation payload
type CreateUserRequest struct {
	Name       string  `json:"name" binding:"required,max=255"`
	Email      string  `json:"email" binding:"required,email,max=255"`
	Password   string  `json:"password" binding:"required,min=6"`
	Role       string  `json:"role" binding:"required,oneof=admin project_manager executor observer"`
	Department *string `json:"department"`
}

// UpdateUserRoleRequest changes a user's global role
type UpdateUserRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=admin project_manager executor observer"`
}
