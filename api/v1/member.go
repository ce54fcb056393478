package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskdesk/dto"
	"github.com/taskdesk/services"
)

var memberService = services.NewMemberService()

// ListMembers returns a project's memberships
func ListMembers(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	members, err := memberService.ListMembers(actor, c.Param("id"))
	if err != nil {
		fail(c, err, "Failed to list project members")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   members,
	})
}

// AddMember invites a user into a project
func AddMember(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var req dto.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	member, err := memberService.AddMember(actor, c.Param("id"), req)
	if err != nil {
		fail(c, err, "Failed to add project member")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Member added successfully",
		"data":    member,
	})
}

// RemoveMember removes a user's membership from a project
func RemoveMember(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	if err := memberService.RemoveMember(actor, c.Param("id"), c.Param("userId")); err != nil {
		fail(c, err, "Failed to remove project member")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Member removed successfully",
	})
}
