package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"board-backend/internal/domains/author/model"
	"board-backend/internal/domains/author/service"
	"board-backend/internal/shared/middleware"
	"board-backend/internal/shared/response"
)

type AuthorHandler struct {
	service service.Service
}

func NewAuthorHandler(service service.Service) *AuthorHandler {
	return &AuthorHandler{service: service}
}

// Register handles POST /api/v1/auth/register
func (h *AuthorHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	author, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrDuplicateLoginID):
			response.Conflict(c, err.Error())
		default:
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid registration data", err.Error())
		}
		return
	}

	response.Success(c, http.StatusCreated, author.ToResponse())
}

// Login handles POST /api/v1/auth/login
func (h *AuthorHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	result, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			response.Unauthorized(c, err.Error())
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, result)
}

// GetProfile handles GET /api/v1/authors/me
func (h *AuthorHandler) GetProfile(c *gin.Context) {
	actor := c.GetString(middleware.ActorKey)

	author, err := h.service.GetProfile(c.Request.Context(), actor)
	if err != nil {
		if errors.Is(err, model.ErrAuthorNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalServerError(c, "failed to load profile")
		return
	}

	response.Success(c, http.StatusOK, author.ToResponse())
}

// UpdateProfile handles PATCH /api/v1/authors/me
func (h *AuthorHandler) UpdateProfile(c *gin.Context) {
	actor := c.GetString(middleware.ActorKey)

	var req model.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	author, err := h.service.UpdateProfile(c.Request.Context(), actor, &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrAuthorNotFound):
			response.NotFound(c, err.Error())
		default:
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid profile data", err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, author.ToResponse())
}
