package handler

import (
	"net/http"

	"novelshorts/internal/service"
	"novelshorts/pkg/response"

	"github.com/gin-gonic/gin"
)

type ShortsHandler struct {
	catalogService     service.CatalogService
	interactionService service.InteractionService
	searchService      service.SearchService
}

func NewShortsHandler(
	catalogService service.CatalogService,
	interactionService service.InteractionService,
	searchService service.SearchService,
) *ShortsHandler {
	return &ShortsHandler{
		catalogService:     catalogService,
		interactionService: interactionService,
		searchService:      searchService,
	}
}

func (h *ShortsHandler) ListShorts(c *gin.Context) {
	limit := queryInt(c, "limit", 0)
	offset := queryInt(c, "offset", 0)

	views, err := h.catalogService.ListShorts(c.Request.Context(), limit, offset, viewerIdentity(c))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"shorts": views})
}

func (h *ShortsHandler) GetShorts(c *gin.Context) {
	shortsNo, err := parseUintParam(c, "shorts_no")
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	view, err := h.catalogService.GetShorts(c.Request.Context(), shortsNo, viewerIdentity(c))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *ShortsHandler) GetNovelDetail(c *gin.Context) {
	novelNo, err := parseUintParam(c, "novel_no")
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	detail, err := h.catalogService.GetNovelDetail(c.Request.Context(), novelNo)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

func (h *ShortsHandler) SearchShorts(c *gin.Context) {
	query := c.Query("q")
	limit := queryInt(c, "limit", 0)

	views, err := h.searchService.SearchShorts(c.Request.Context(), query, limit)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"shorts": views})
}

func (h *ShortsHandler) LikeShorts(c *gin.Context) {
	userNo, err := response.GetUserNo(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	shortsNo, err := parseUintParam(c, "shorts_no")
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	resp, err := h.interactionService.LikeShorts(c.Request.Context(), userNo, shortsNo)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ShortsHandler) UnlikeShorts(c *gin.Context) {
	userNo, err := response.GetUserNo(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	shortsNo, err := parseUintParam(c, "shorts_no")
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	resp, err := h.interactionService.UnlikeShorts(c.Request.Context(), userNo, shortsNo)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ShortsHandler) SaveShorts(c *gin.Context) {
	userNo, err := response.GetUserNo(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	shortsNo, err := parseUintParam(c, "shorts_no")
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	resp, err := h.interactionService.SaveShorts(c.Request.Context(), userNo, shortsNo)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ShortsHandler) UnsaveShorts(c *gin.Context) {
	userNo, err := response.GetUserNo(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	shortsNo, err := parseUintParam(c, "shorts_no")
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	resp, err := h.interactionService.UnsaveShorts(c.Request.Context(), userNo, shortsNo)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
