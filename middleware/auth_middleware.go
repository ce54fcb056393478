package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/taskdesk/models"
	"github.com/taskdesk/services"
)

// actorKey is the gin context key under which the resolved actor is stored
const actorKey = "actor"

// AuthMiddleware validates the request's JWT and resolves the authenticated
// user into a typed actor on the context. The token is read from the
// Authorization header or, as a fallback, the access_token cookie.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Authentication required",
			})
			c.Abort()
			return
		}

		claims, err := services.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		// Load the user row so role changes take effect without re-login
		user, err := services.GetUser(claims.UserID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Account not found",
			})
			c.Abort()
			return
		}

		c.Set(actorKey, models.ActorFromUser(*user))
		c.Next()
	}
}

// GetActor returns the actor resolved by AuthMiddleware. The boolean is
// false when the middleware did not run on this route.
func GetActor(c *gin.Context) (models.Actor, bool) {
	value, exists := c.Get(actorKey)
	if !exists {
		return models.Actor{}, false
	}
	actor, ok := value.(models.Actor)
	return actor, ok
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	cookie, err := c.Cookie("access_token")
	if err == nil {
		return cookie
	}
	return ""
}
