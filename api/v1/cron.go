package v1

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/taskdesk/config"
	"github.com/taskdesk/services"
)

var reminderService = services.NewReminderService()

// RunDeadlineReminders triggers one deadline reminder sweep. The endpoint is
// meant for an external scheduler and is guarded by a shared secret instead
// of a user session.
func RunDeadlineReminders(c *gin.Context) {
	secret := config.GetEnv("CRON_SECRET", "")
	if secret == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "error",
			"message": "Cron endpoint is not configured",
		})
		return
	}

	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") || strings.TrimPrefix(authHeader, "Bearer ") != secret {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Invalid cron secret",
		})
		return
	}

	result, err := reminderService.Sweep(time.Now())
	if err != nil {
		fail(c, err, "Deadline reminder sweep failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   result,
	})
}

// DescribeDeadlineReminders documents the trigger endpoint for manual probes
func DescribeDeadlineReminders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "POST with the cron bearer secret to run the deadline reminder sweep",
	})
}
