package response

import (
	"log"
	"net/http"

	"novelshorts/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// GetUserNo retrieves the authenticated user's numeric handle from the context
func GetUserNo(c *gin.Context) (uint, error) {
	v, exists := c.Get("user_no")
	if !exists {
		return 0, apperror.ErrUnauthorized
	}

	userNo, ok := v.(uint)
	if !ok || userNo == 0 {
		return 0, apperror.ErrUnauthorized
	}

	return userNo, nil
}

// ResponseError standardized error response
func ResponseError(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)

	// Log internal errors
	if code == http.StatusInternalServerError {
		log.Printf("[Internal Error]: %v", err)
		c.JSON(code, gin.H{"error": apperror.ErrInternal.Error()})
		return
	}

	c.JSON(code, gin.H{"error": err.Error()})
}
