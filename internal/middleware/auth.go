package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"novelshorts/internal/service"
	"novelshorts/pkg/apperror"
	"novelshorts/pkg/response"

	"github.com/gin-gonic/gin"
)

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// RequireAuth rejects requests without a valid bearer token and stores the
// resolved identity under "user_no" / "user_id".
func RequireAuth(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.ResponseError(c, apperror.ErrUnauthorized)
			c.Abort()
			return
		}

		identity, err := auth.Authenticate(token)
		if err != nil {
			response.ResponseError(c, err)
			c.Abort()
			return
		}

		c.Set("user_no", identity.UserNo)
		c.Set("user_id", identity.UserID)
		c.Next()
	}
}

// OptionalAuth resolves the identity when a valid token is present and passes
// the request through anonymously otherwise. A malformed token is ignored, not
// rejected; read endpoints never fail on auth.
func OptionalAuth(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token != "" {
			if identity, err := auth.Authenticate(token); err == nil {
				c.Set("user_no", identity.UserNo)
				c.Set("user_id", identity.UserID)
			}
		}
		c.Next()
	}
}

// AdminGate guards ingestion routes with the static admin code from config.
// An empty configured code disables the whole admin surface.
func AdminGate(adminCode string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if adminCode == "" {
			c.JSON(http.StatusForbidden, gin.H{"error": "admin access disabled"})
			c.Abort()
			return
		}

		provided := c.GetHeader("X-Admin-Code")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(adminCode)) != 1 {
			response.ResponseError(c, apperror.ErrForbidden)
			c.Abort()
			return
		}
		c.Next()
	}
}
