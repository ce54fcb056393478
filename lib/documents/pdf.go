// Package documents renders report data into PDF and Excel byte streams.
package documents

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/taskdesk/dto"
)

// ProjectsPDF renders the projects summary report
func ProjectsPDF(rows []dto.ProjectReportRow) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "Projects Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 8, fmt.Sprintf("Generated: %s", time.Now().Format("2006-01-02")), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	headers := []string{"Project", "Owner", "Tasks", "Completed", "Members", "Created"}
	widths := []float64{90, 50, 25, 40, 25, 30}

	pdf.SetFont("Arial", "B", 10)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, row := range rows {
		completion := 0
		if row.TotalTasks > 0 {
			completion = int(float64(row.CompletedTasks) / float64(row.TotalTasks) * 100)
		}
		pdf.CellFormat(widths[0], 8, clip(row.Title, 50), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 8, clip(row.Owner, 28), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 8, fmt.Sprintf("%d", row.TotalTasks), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 8, fmt.Sprintf("%d (%d%%)", row.CompletedTasks, completion), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 8, fmt.Sprintf("%d", row.MembersCount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[5], 8, row.CreatedAt, "1", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// TasksPDF renders the tasks detail report
func TasksPDF(rows []dto.TaskReportRow) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "Tasks Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 8, fmt.Sprintf("Generated: %s", time.Now().Format("2006-01-02")), "", 1, "L", false, 0, "")

	completed := 0
	for _, row := range rows {
		if row.Status == "completed" {
			completed++
		}
	}
	rate := 0
	if len(rows) > 0 {
		rate = completed * 100 / len(rows)
	}
	pdf.CellFormat(0, 6, fmt.Sprintf("Total tasks: %d", len(rows)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Completed: %d (%d%%)", completed, rate), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	for i, row := range rows {
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 8, fmt.Sprintf("%d. %s", i+1, clip(row.Title, 80)), "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 9)
		pdf.CellFormat(0, 5, fmt.Sprintf("Project: %s", row.ProjectTitle), "", 1, "L", false, 0, "")
		pdf.CellFormat(0, 5, fmt.Sprintf("Status: %s | Priority: %s | Complexity: %d", row.Status, row.Priority, row.Complexity), "", 1, "L", false, 0, "")
		pdf.CellFormat(0, 5, fmt.Sprintf("Assignee: %s | Creator: %s", orDash(row.Assignee), row.Creator), "", 1, "L", false, 0, "")
		pdf.CellFormat(0, 5, fmt.Sprintf("Due: %s | Created: %s", orDash(row.DueDate), row.CreatedAt), "", 1, "L", false, 0, "")
		if row.Description != "" {
			pdf.CellFormat(0, 5, fmt.Sprintf("Description: %s", clip(row.Description, 100)), "", 1, "L", false, 0, "")
		}
		pdf.Ln(3)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func clip(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
