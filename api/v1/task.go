package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskdesk/dto"
	"github.com/taskdesk/services"
)

var taskService = services.NewTaskService()

// ListProjectTasks returns a project's tasks with filtering and sorting
func ListProjectTasks(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	filter := dto.TaskFilter{
		Status:     c.Query("status"),
		AssigneeID: c.Query("assigneeId"),
		Search:     c.Query("search"),
		SortBy:     c.DefaultQuery("sortBy", "created_at"),
		SortOrder:  c.DefaultQuery("sortOrder", "desc"),
	}

	tasks, err := taskService.ListProjectTasks(actor, c.Param("id"), filter)
	if err != nil {
		fail(c, err, "Failed to list tasks")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   tasks,
	})
}

// GetTask returns one task with its relations
func GetTask(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	task, err := taskService.GetTask(actor, c.Param("id"))
	if err != nil {
		fail(c, err, "Failed to retrieve task")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   task,
	})
}

// CreateTask creates a task, optionally as a subtask of another task
func CreateTask(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	task, err := taskService.CreateTask(actor, req)
	if err != nil {
		fail(c, err, "Failed to create task")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Task created successfully",
		"data":    task,
	})
}

// UpdateTask changes task fields other than status
func UpdateTask(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	task, err := taskService.UpdateTask(actor, c.Param("id"), req)
	if err != nil {
		fail(c, err, "Failed to update task")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Task updated successfully",
		"data":    task,
	})
}

// UpdateTaskStatus moves a task to a new status
func UpdateTaskStatus(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var req dto.UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	task, err := taskService.UpdateTaskStatus(actor, c.Param("id"), req.Status)
	if err != nil {
		fail(c, err, "Failed to update task status")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Task status updated successfully",
		"data":    task,
	})
}
