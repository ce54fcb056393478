package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskdesk/dto"
	"github.com/taskdesk/services"
)

var commentService = services.NewCommentService()

// ListComments returns a task's comments, oldest first
func ListComments(c *gin.Context) {
	if _, ok := mustActor(c); !ok {
		return
	}

	comments, err := commentService.ListComments(c.Param("id"))
	if err != nil {
		fail(c, err, "Failed to list comments")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   comments,
	})
}

// CreateComment appends a comment to a task
func CreateComment(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	comment, err := commentService.CreateComment(actor, c.Param("id"), req)
	if err != nil {
		fail(c, err, "Failed to create comment")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Comment created successfully",
		"data":    comment,
	})
}

// DeleteComment removes a comment
func DeleteComment(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	if err := commentService.DeleteComment(actor, c.Param("id")); err != nil {
		fail(c, err, "Failed to delete comment")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Comment deleted successfully",
	})
}
