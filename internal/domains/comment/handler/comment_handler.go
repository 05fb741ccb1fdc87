package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	articlemodel "board-backend/internal/domains/article/model"
	authormodel "board-backend/internal/domains/author/model"
	"board-backend/internal/domains/comment/model"
	"board-backend/internal/domains/comment/service"
	"board-backend/internal/shared/middleware"
	"board-backend/internal/shared/response"
)

type CommentHandler struct {
	service service.Service
}

func NewCommentHandler(service service.Service) *CommentHandler {
	return &CommentHandler{service: service}
}

// ListByArticle handles GET /api/v1/articles/:id/comments
func (h *CommentHandler) ListByArticle(c *gin.Context) {
	articleID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid article id")
		return
	}

	comments, err := h.service.SearchCommentsByArticle(c.Request.Context(), articleID)
	if err != nil {
		response.InternalServerError(c, "failed to list comments")
		return
	}

	response.Success(c, http.StatusOK, comments)
}

// Create handles POST /api/v1/articles/:id/comments
func (h *CommentHandler) Create(c *gin.Context) {
	actor := c.GetString(middleware.ActorKey)

	articleID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid article id")
		return
	}

	var req model.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	id, err := h.service.CreateComment(c.Request.Context(), actor, articleID, &req)
	if err != nil {
		switch {
		case errors.Is(err, articlemodel.ErrArticleNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, authormodel.ErrAuthorNotFound):
			response.Unauthorized(c, "unknown acting identity")
		default:
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid comment data", err.Error())
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"id": id})
}

// Delete handles DELETE /api/v1/comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid comment id")
		return
	}

	if err := h.service.DeleteComment(c.Request.Context(), id); err != nil {
		response.InternalServerError(c, "failed to delete comment")
		return
	}

	response.Success(c, http.StatusOK, nil)
}
