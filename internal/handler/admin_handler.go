package handler

import (
	"net/http"

	"novelshorts/internal/dto"
	"novelshorts/internal/service"
	"novelshorts/pkg/response"
	"novelshorts/pkg/validator"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminService service.AdminService
}

func NewAdminHandler(adminService service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

func (h *AdminHandler) CreateNovel(c *gin.Context) {
	var input dto.CreateNovelInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	resp, err := h.adminService.CreateNovel(c.Request.Context(), input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *AdminHandler) CreateShorts(c *gin.Context) {
	var input dto.CreateShortsInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	// Both files are optional; text-only shorts are valid.
	image, _ := c.FormFile("image")
	music, _ := c.FormFile("music")

	resp, err := h.adminService.CreateShorts(c.Request.Context(), input, image, music)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *AdminHandler) ExportNovelsCSV(c *gin.Context) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="novels.csv"`)

	if err := h.adminService.ExportNovelsCSV(c.Request.Context(), c.Writer); err != nil {
		response.ResponseError(c, err)
		return
	}
}
