package handler

import (
	"net/http"

	"novelshorts/internal/dto"
	"novelshorts/internal/service"
	"novelshorts/pkg/response"
	"novelshorts/pkg/validator"

	"github.com/gin-gonic/gin"
)

type ActivityHandler struct {
	activityService service.ActivityService
}

func NewActivityHandler(activityService service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

func (h *ActivityHandler) LogActivity(c *gin.Context) {
	userNo, err := response.GetUserNo(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var input dto.ActivityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	if err := h.activityService.LogActivity(c.Request.Context(), userNo, input); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "activity recorded"})
}
