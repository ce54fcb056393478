package documents

import (
	"fmt"

	"github.com/taskdesk/dto"
	"github.com/xuri/excelize/v2"
)

// ProjectsExcel renders the projects summary report as an xlsx workbook
func ProjectsExcel(rows []dto.ProjectReportRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Projects"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Title", "Description", "Owner", "Total Tasks", "Completed Tasks", "Completion", "Members", "Created"}
	widths := []float64{30, 40, 20, 15, 15, 12, 12, 15}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheet, col, col, widths[i])
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E0E0E0"}},
	})
	if err != nil {
		return nil, err
	}
	f.SetRowStyle(sheet, 1, 1, headerStyle)

	for i, row := range rows {
		completion := 0
		if row.TotalTasks > 0 {
			completion = int(float64(row.CompletedTasks) / float64(row.TotalTasks) * 100)
		}
		values := []interface{}{
			row.Title, row.Description, row.Owner,
			row.TotalTasks, row.CompletedTasks,
			fmt.Sprintf("%d%%", completion),
			row.MembersCount, row.CreatedAt,
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// TasksExcel renders the tasks detail report as an xlsx workbook
func TasksExcel(rows []dto.TaskReportRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Tasks"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Title", "Project", "Status", "Priority", "Complexity", "Assignee", "Creator", "Due Date", "Created", "Description"}
	widths := []float64{30, 20, 15, 12, 12, 20, 20, 15, 15, 40}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheet, col, col, widths[i])
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E0E0E0"}},
	})
	if err != nil {
		return nil, err
	}
	f.SetRowStyle(sheet, 1, 1, headerStyle)

	for i, row := range rows {
		values := []interface{}{
			row.Title, row.ProjectTitle, row.Status, row.Priority, row.Complexity,
			orDash(row.Assignee), row.Creator, row.DueDate, row.CreatedAt, row.Description,
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
