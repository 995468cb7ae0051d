package handler

import (
	"fmt"
	"strconv"

	"novelshorts/internal/dto"
	"novelshorts/pkg/apperror"

	"github.com/gin-gonic/gin"
)

func parseUintParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || v == 0 {
		return 0, fmt.Errorf("%w: invalid %s", apperror.ErrBadRequest, name)
	}
	return uint(v), nil
}

// viewerIdentity returns the identity placed by OptionalAuth, or nil for an
// anonymous request.
func viewerIdentity(c *gin.Context) *dto.Identity {
	v, exists := c.Get("user_no")
	if !exists {
		return nil
	}
	userNo, ok := v.(uint)
	if !ok || userNo == 0 {
		return nil
	}
	userID, _ := c.Get("user_id")
	id, _ := userID.(string)
	return &dto.Identity{UserID: id, UserNo: userNo}
}

func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
