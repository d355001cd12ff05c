package response

import (
	"net/http"

	"fitnflex/internal/pkg/apperr"

	"github.com/gin-gonic/gin"
)

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// CustomError writes the error envelope and stops the handler chain.
func CustomError(c *gin.Context, statusCode int, code string, message string) {
	Error(c, statusCode, code, message)
	c.Abort()
}

func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}

// FromError maps err to its apperr kind and writes the envelope.
// Internal errors surface the underlying error text in details.
func FromError(c *gin.Context, err error) {
	k := apperr.Classify(err)
	if apperr.IsInternal(err) {
		_ = c.Error(err)
		ErrorWithDetails(c, k.Status, k.Code, "Internal server error", err.Error())
		c.Abort()
		return
	}
	CustomError(c, k.Status, k.Code, err.Error())
}

// ValidationError reports field-level binding failures as a 400.
func ValidationError(c *gin.Context, details map[string]string) {
	ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", details)
	c.Abort()
}

// InvalidJSON reports an undecodable request body.
func InvalidJSON(c *gin.Context) {
	CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
}
