package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskdesk/services"
	"github.com/taskdesk/utils"
)

var reportService = services.NewReportService()

// ExportReport renders a projects or tasks report as PDF or Excel.
// Query parameters: type=projects|tasks, format=pdf|excel, and an optional
// projectId that narrows a tasks report to one project.
func ExportReport(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	reportType := c.DefaultQuery("type", services.ReportTypeProjects)
	format := c.DefaultQuery("format", services.ReportFormatPDF)

	var projectID *string
	if v := c.Query("projectId"); v != "" {
		projectID = &v
	}

	result, err := reportService.Export(actor, reportType, format, projectID)
	if err != nil {
		fail(c, err, "Failed to export report")
		return
	}

	c.Header("Content-Disposition", utils.ContentDisposition(result.Filename))
	c.Data(http.StatusOK, result.ContentType, result.Content)
}
