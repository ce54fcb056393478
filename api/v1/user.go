package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskdesk/dto"
	"github.com/taskdesk/services"
)

var userService = services.NewUserService()

// ListUsers returns all user accounts. Admin only.
func ListUsers(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	users, err := userService.ListUsers(actor)
	if err != nil {
		fail(c, err, "Failed to list users")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   users,
	})
}

// CreateUser creates an account on behalf of a user. Admin only.
func CreateUser(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	user, err := userService.CreateUser(actor, req)
	if err != nil {
		fail(c, err, "Failed to create user")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "User created successfully",
		"data":    user,
	})
}

// UpdateUserRole changes a user's global role. Admin only; changing your own
// role is rejected.
func UpdateUserRole(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if err := userService.UpdateUserRole(actor, c.Param("id"), req.Role); err != nil {
		fail(c, err, "Failed to update user role")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User role updated successfully",
	})
}

// DeactivateUser records the deactivation of an account. Admin only.
func DeactivateUser(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	if err := userService.DeactivateUser(actor, c.Param("id")); err != nil {
		fail(c, err, "Failed to deactivate user")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User deactivated successfully",
	})
}
