package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskdesk/services"
)

var notificationService = services.NewNotificationService()

// ListNotifications returns the requester's notifications, newest first.
// Pass unread=true to restrict the listing to unread ones.
func ListNotifications(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	unreadOnly := c.Query("unread") == "true"
	notifications, err := notificationService.ListForUser(actor.ID, unreadOnly)
	if err != nil {
		fail(c, err, "Failed to list notifications")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   notifications,
	})
}

// MarkNotificationRead flags one of the requester's notifications as read
func MarkNotificationRead(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	if err := notificationService.MarkRead(actor, c.Param("id")); err != nil {
		fail(c, err, "Failed to mark notification as read")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Notification marked as read",
	})
}

// MarkAllNotificationsRead flags every unread notification of the requester
func MarkAllNotificationsRead(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	affected, err := notificationService.MarkAllRead(actor)
	if err != nil {
		fail(c, err, "Failed to mark notifications as read")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "All notifications marked as read",
		"count":   affected,
	})
}
