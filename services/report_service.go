package services

import (
	"fmt"
	"time"

	"github.com/taskdesk/dto"
	"github.com/taskdesk/lib/documents"
	"github.com/taskdesk/models"
	"github.com/taskdesk/permissions"
	"github.com/taskdesk/repositories"
)

// Export formats and report types
const (
	ReportFormatPDF   = "pdf"
	ReportFormatExcel = "excel"

	ReportTypeProjects = "projects"
	ReportTypeTasks    = "tasks"
)

// ExportResult carries a rendered report back to the handler
type ExportResult struct {
	Content     []byte
	ContentType string
	Filename    string
}

// ReportService builds exportable PDF and Excel reports
type ReportService struct {
	projectRepo *repositories.ProjectRepository
	taskRepo    *repositories.TaskRepository
}

// NewReportService creates a new report service instance
func NewReportService() *ReportService {
	return &ReportService{
		projectRepo: repositories.NewProjectRepository(),
		taskRepo:    repositories.NewTaskRepository(),
	}
}

// Export renders the requested report. Admins and project managers only.
// For tasks reports a non-nil projectID narrows the export to one project.
func (s *ReportService) Export(actor models.Actor, reportType, format string, projectID *string) (ExportResult, error) {
	if !permissions.CanExportReports(actor) {
		return ExportResult{}, forbidden("insufficient rights to export reports")
	}

	if format != ReportFormatPDF && format != ReportFormatExcel {
		return ExportResult{}, invalid("unknown export format %q", format)
	}

	var content []byte
	var err error
	switch reportType {
	case ReportTypeProjects:
		var rows []dto.ProjectReportRow
		rows, err = s.projectRows()
		if err != nil {
			return ExportResult{}, err
		}
		if format == ReportFormatPDF {
			content, err = documents.ProjectsPDF(rows)
		} else {
			content, err = documents.ProjectsExcel(rows)
		}
	case ReportTypeTasks:
		var rows []dto.TaskReportRow
		rows, err = s.taskRows(projectID)
		if err != nil {
			return ExportResult{}, err
		}
		if format == ReportFormatPDF {
			content, err = documents.TasksPDF(rows)
		} else {
			content, err = documents.TasksExcel(rows)
		}
	default:
		return ExportResult{}, invalid("unknown report type %q", reportType)
	}
	if err != nil {
		return ExportResult{}, err
	}

	ext := "pdf"
	contentType := "application/pdf"
	if format == ReportFormatExcel {
		ext = "xlsx"
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}

	return ExportResult{
		Content:     content,
		ContentType: contentType,
		Filename:    fmt.Sprintf("%s-report-%s.%s", reportType, time.Now().Format("2006-01-02"), ext),
	}, nil
}

func (s *ReportService) projectRows() ([]dto.ProjectReportRow, error) {
	projects, err := s.projectRepo.FindAllForReport()
	if err != nil {
		return nil, err
	}

	rows := make([]dto.ProjectReportRow, 0, len(projects))
	for _, project := range projects {
		var completed int64
		for _, task := range project.Tasks {
			if task.Status == models.TaskStatusCompleted {
				completed++
			}
		}
		rows = append(rows, dto.ProjectReportRow{
			ID:             project.ID,
			Title:          project.Title,
			Description:    project.Description,
			Owner:          project.Owner.Name,
			TotalTasks:     int64(len(project.Tasks)),
			CompletedTasks: completed,
			MembersCount:   int64(len(project.Members)),
			CreatedAt:      project.CreatedAt.Format("2006-01-02"),
		})
	}
	return rows, nil
}

func (s *ReportService) taskRows(projectID *string) ([]dto.TaskReportRow, error) {
	if projectID != nil {
		if _, err := s.projectRepo.FindByID(*projectID); err != nil {
			return nil, notFound("project %s", *projectID)
		}
	}

	tasks, err := s.taskRepo.FindAllForReport(projectID)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.TaskReportRow, 0, len(tasks))
	for _, task := range tasks {
		row := dto.TaskReportRow{
			ID:           task.ID,
			Title:        task.Title,
			Description:  task.Description,
			ProjectTitle: task.Project.Title,
			Status:       string(task.Status),
			Priority:     string(task.Priority),
			Complexity:   task.Complexity,
			Creator:      task.Creator.Name,
			CreatedAt:    task.CreatedAt.Format("2006-01-02"),
		}
		if task.Assignee != nil {
			row.Assignee = task.Assignee.Name
		}
		if task.DueDate != nil {
			row.DueDate = task.DueDate.Format("2006-01-02")
		}
		rows = append(rows, row)
	}
	return rows, nil
}
