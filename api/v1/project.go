package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/taskdesk/dto"
	"github.com/taskdesk/services"
)

var projectService = services.NewProjectService()

// ListProjects returns a paginated project listing
func ListProjects(c *gin.Context) {
	if _, ok := mustActor(c); !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	filter := dto.ProjectFilter{
		Search:    c.Query("search"),
		SortBy:    c.DefaultQuery("sortBy", "created_at"),
		SortOrder: c.DefaultQuery("sortOrder", "desc"),
		Page:      page,
		PageSize:  pageSize,
	}

	response, err := projectService.ListProjects(filter)
	if err != nil {
		fail(c, err, "Failed to list projects")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   response,
	})
}

// GetProject returns one project with its members
func GetProject(c *gin.Context) {
	if _, ok := mustActor(c); !ok {
		return
	}

	project, err := projectService.GetProjectDetail(c.Param("id"))
	if err != nil {
		fail(c, err, "Failed to retrieve project")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   project,
	})
}

// CreateProject creates a project owned by the requester
func CreateProject(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	project, err := projectService.CreateProject(actor, req)
	if err != nil {
		fail(c, err, "Failed to create project")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Project created successfully",
		"data":    project,
	})
}

// UpdateProject updates a project's title and description
func UpdateProject(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	project, err := projectService.UpdateProject(actor, c.Param("id"), req)
	if err != nil {
		fail(c, err, "Failed to update project")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Project updated successfully",
		"data":    project,
	})
}

// DeleteProject deletes a project and everything scoped to it
func DeleteProject(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	if err := projectService.DeleteProject(actor, c.Param("id")); err != nil {
		fail(c, err, "Failed to delete project")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Project deleted successfully",
	})
}
