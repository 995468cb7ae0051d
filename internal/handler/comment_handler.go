package handler

import (
	"net/http"

	"novelshorts/internal/dto"
	"novelshorts/internal/service"
	"novelshorts/pkg/response"
	"novelshorts/pkg/validator"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService     service.CommentService
	interactionService service.InteractionService
}

func NewCommentHandler(commentService service.CommentService, interactionService service.InteractionService) *CommentHandler {
	return &CommentHandler{
		commentService:     commentService,
		interactionService: interactionService,
	}
}

func (h *CommentHandler) ListComments(c *gin.Context) {
	shortsNo, err := parseUintParam(c, "shorts_no")
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	views, err := h.commentService.ListComments(c.Request.Context(), shortsNo)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": views})
}

func (h *CommentHandler) CreateComment(c *gin.Context) {
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

	var input dto.CreateCommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	view, err := h.commentService.CreateComment(c.Request.Context(), userNo, shortsNo, input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, view)
}

func (h *CommentHandler) UpdateComment(c *gin.Context) {
	userNo, err := response.GetUserNo(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	commentNo, err := parseUintParam(c, "comment_no")
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var input dto.UpdateCommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	if err := h.commentService.UpdateComment(c.Request.Context(), userNo, commentNo, input); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "comment updated"})
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	userNo, err := response.GetUserNo(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	commentNo, err := parseUintParam(c, "comment_no")
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	if err := h.commentService.DeleteComment(c.Request.Context(), userNo, commentNo); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "comment deleted"})
}

func (h *CommentHandler) LikeComment(c *gin.Context) {
	userNo, err := response.GetUserNo(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	commentNo, err := parseUintParam(c, "comment_no")
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	resp, err := h.interactionService.LikeComment(c.Request.Context(), userNo, commentNo)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *CommentHandler) UnlikeComment(c *gin.Context) {
	userNo, err := response.GetUserNo(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	commentNo, err := parseUintParam(c, "comment_no")
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	resp, err := h.interactionService.UnlikeComment(c.Request.Context(), userNo, commentNo)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
