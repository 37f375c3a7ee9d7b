package utils

import (
	"cafeapi/auth"
	"net/http"

	"github.com/gin-gonic/gin"
)

const APIKeyParam = "api-key"

// RequireAPIKey rejects the request with 403 before the handler runs
// unless the api-key query parameter matches the shared secret.
func RequireAPIKey(key auth.APIKey) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !key.Verify(c.Query(APIKeyParam)) {
			ErrorJSON(c, http.StatusForbidden, "Failed", "You do not have permission. Make sure you have the correct API key")
			c.Abort()
			return
		}
		c.Next()
	}
}

// ErrorJSON writes {"error": {key: message}}.
func ErrorJSON(c *gin.Context, status int, key, message string) {
	c.JSON(status, gin.H{"error": gin.H{key: message}})
}

// SuccessJSON writes {"response": {"success": message}} with any extra
// fields merged into the inner object.
func SuccessJSON(c *gin.Context, message string, extra gin.H) {
	body := gin.H{"success": message}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(http.StatusOK, gin.H{"response": body})
}
