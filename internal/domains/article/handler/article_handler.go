package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"board-backend/internal/domains/article/model"
	"board-backend/internal/domains/article/service"
	authormodel "board-backend/internal/domains/author/model"
	"board-backend/internal/shared/middleware"
	"board-backend/internal/shared/pagination"
	"board-backend/internal/shared/response"
)

// MaxPageSize is the transport-level clamp; the pagination engine
// itself imposes no upper bound.
const MaxPageSize = 100

type ArticleHandler struct {
	service service.Service
}

func NewArticleHandler(service service.Service) *ArticleHandler {
	return &ArticleHandler{service: service}
}

func pageRequestFromQuery(c *gin.Context) (pagination.PageRequest, error) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, err := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(pagination.DefaultSize)))
	if err != nil {
		size = pagination.DefaultSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}

	return pagination.NewPageRequest(page, size, c.Query("sort"))
}

// Search handles GET /api/v1/articles
func (h *ArticleHandler) Search(c *gin.Context) {
	pageReq, err := pageRequestFromQuery(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	searchType := model.SearchType(c.Query("search_type"))
	keyword := c.Query("keyword")

	page, err := h.service.SearchArticles(c.Request.Context(), searchType, keyword, pageReq)
	if err != nil {
		if errors.Is(err, model.ErrInvalidSearchType) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalServerError(c, "failed to search articles")
		return
	}

	response.Success(c, http.StatusOK, page)
}

// Get handles GET /api/v1/articles/:id
func (h *ArticleHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid article id")
		return
	}

	detail, err := h.service.GetArticleWithComments(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrArticleNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalServerError(c, "failed to get article")
		return
	}

	response.Success(c, http.StatusOK, detail)
}

// Create handles POST /api/v1/articles
func (h *ArticleHandler) Create(c *gin.Context) {
	actor := c.GetString(middleware.ActorKey)

	var req model.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	id, err := h.service.CreateArticle(c.Request.Context(), actor, &req)
	if err != nil {
		switch {
		case errors.Is(err, authormodel.ErrAuthorNotFound):
			response.Unauthorized(c, "unknown acting identity")
		default:
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid article data", err.Error())
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"id": id})
}

// Update handles PATCH /api/v1/articles/:id
func (h *ArticleHandler) Update(c *gin.Context) {
	actor := c.GetString(middleware.ActorKey)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid article id")
		return
	}

	var req model.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	// A missing article is a silent no-op here; only validation and
	// storage failures surface.
	if err := h.service.UpdateArticle(c.Request.Context(), actor, id, &req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid article data", err.Error())
		return
	}

	response.Success(c, http.StatusOK, nil)
}

// Delete handles DELETE /api/v1/articles/:id
func (h *ArticleHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid article id")
		return
	}

	if err := h.service.DeleteArticle(c.Request.Context(), id); err != nil {
		response.InternalServerError(c, "failed to delete article")
		return
	}

	response.Success(c, http.StatusOK, nil)
}
