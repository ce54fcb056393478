package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskdesk/logging"
	"github.com/taskdesk/middleware"
	"github.com/taskdesk/models"
	"github.com/taskdesk/services"
)

// fail maps a service error onto an HTTP status. Anything outside the known
// sentinel errors is treated as a data-store failure.
func fail(c *gin.Context, err error, message string) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrForbidden):
		status = http.StatusForbidden
	}

	if status == http.StatusInternalServerError {
		logging.Logger.Errorf("%s: %v", message, err)
	}

	c.JSON(status, gin.H{
		"status":  "error",
		"message": message,
		"error":   err.Error(),
	})
}

// badRequest reports a request body or query binding failure
func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"status":  "error",
		"message": "Invalid request body",
		"error":   err.Error(),
	})
}

// mustActor returns the actor resolved by the auth middleware. When it is
// missing the response is already written and ok is false.
func mustActor(c *gin.Context) (models.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "User not authenticated",
		})
	}
	return actor, ok
}
