package dto

// CreateTaskRequest is the task creation payload
type CreateTaskRequest struct {
	Title        string   `json:"title" binding:"required,max=255"`
	Description  string   `json:"description"`
	ProjectID    string   `json:"projectId" binding:"required,uuid"`
	ParentTaskID *string  `json:"parentTaskId" binding:"omitempty,uuid"`
	AssigneeID   *string  `json:"assigneeId" binding:"omitempty,uuid"`
	Priority     string   `json:"priority" binding:"omitempty,oneof=low medium high critical"`
	Complexity   int      `json:"complexity" binding:"omitempty,min=1,max=10"`
	DueDate      *string  `json:"dueDate"`
	Tags         []string `json:"tags"`
}

// UpdateTaskRequest changes task fields other than status
type UpdateTaskRequest struct {
	Title       string   `json:"title" binding:"required,max=255"`
	Description string   `json:"description"`
	AssigneeID  *string  `json:"assigneeId" binding:"omitempty,uuid"`
	Priority    string   `json:"priority" binding:"omitempty,oneof=low medium high critical"`
	Complexity  int      `json:"complexity" binding:"omitempty,min=1,max=10"`
	DueDate     *string  `json:"dueDate"`
	Tags        []string `json:"tags"`
}

// UpdateTaskStatusRequest moves a task to a new status
type UpdateTaskStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=open in_progress completed cancelled"`
}

// TaskFilter captures task list query parameters
type TaskFilter struct {
	Status     string
	AssigneeID string
	Search     string
	SortBy     string
	SortOrder  string
}
