package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/taskdesk/services"
)

var auditService = services.NewAuditService()

// GetProjectHistory returns a project's audit entries, newest first
func GetProjectHistory(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	entries, err := auditService.ProjectHistory(actor, c.Param("id"), limit)
	if err != nil {
		fail(c, err, "Failed to retrieve project history")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   entries,
	})
}
