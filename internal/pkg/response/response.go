// Package response writes the JSON envelope every tixnaija handler speaks:
// {"success": true, "data": ...} on the happy path and {"success": false,
// "error": {"code", "message"}} otherwise. Codes are stable
// SCREAMING_SNAKE identifiers clients switch on; messages are for humans
// and may change.
package response

import "github.com/gin-gonic/gin"

func Success(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

func Error(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// ErrorWithDetails attaches a free-form details payload, typically the
// per-field map from a failed validation.
func ErrorWithDetails(c *gin.Context, statusCode int, code, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}
