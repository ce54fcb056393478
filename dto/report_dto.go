package dto

// ProjectReportRow is one aggregated line of the projects summary report
type ProjectReportRow struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Owner          string `json:"owner"`
	TotalTasks     int64  `json:"totalTasks"`
	CompletedTasks int64  `json:"completedTasks"`
	MembersCount   int64  `json:"membersCount"`
	CreatedAt      string `json:"createdAt"`
}

// TaskReportRow is one line of the tasks detail report
type TaskReportRow struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ProjectTitle string `json:"projectTitle"`
	Status       string `json:"status"`
	Priority     string `json:"priority"`
	Complexity   int    `json:"complexity"`
	Assignee     string `json:"assignee"`
	Creator      string `json:"creator"`
	DueDate      string `json:"dueDate"`
	CreatedAt    string `json:"createdAt"`
}

// SweepResult reports the outcome of one deadline reminder sweep
type SweepResult struct {
	TasksProcessed int `json:"tasksProcessed"`
	RemindersSent  int `json:"remindersSent"`
	Errors         int `json:"errors"`
}
