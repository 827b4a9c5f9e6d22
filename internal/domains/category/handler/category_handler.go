package handler

import (
	"errors"
	"net/http"

	"bookstore-catalog/internal/domains/category/model"
	"bookstore-catalog/internal/domains/category/service"
	"bookstore-catalog/internal/shared/binding"
	"bookstore-catalog/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	service service.Service
}

func NewHandler(service service.Service) *Handler {
	return &Handler{service: service}
}

// Create - POST /api/v1/categories
func (h *Handler) Create(c *gin.Context) {
	var req model.CategoryRequest
	if !binding.StrictJSON(c, &req) {
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Validation failed", err.Error())
		return
	}

	category, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, model.ErrDuplicateName) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalServerError(c, "failed to create category")
		return
	}

	response.Success(c, http.StatusOK, category)
}

// List - GET /api/v1/categories
func (h *Handler) List(c *gin.Context) {
	categories, err := h.service.List(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "failed to list categories")
		return
	}

	response.Success(c, http.StatusOK, categories)
}

// GetByID - GET /api/v1/categories/:id
// The id is guaranteed well-formed by the uuid-param middleware.
func (h *Handler) GetByID(c *gin.Context) {
	id := uuid.MustParse(c.Param("id"))

	category, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrCategoryNotFound) {
			response.NotFound(c, "Category not found.")
			return
		}
		response.InternalServerError(c, "failed to get category")
		return
	}

	response.Success(c, http.StatusOK, category)
}

// Rename - PUT /api/v1/categories/:id
func (h *Handler) Rename(c *gin.Context) {
	id := uuid.MustParse(c.Param("id"))

	var req model.CategoryRequest
	if !binding.StrictJSON(c, &req) {
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Validation failed", err.Error())
		return
	}

	category, err := h.service.Rename(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, model.ErrCategoryNotFound) {
			response.NotFound(c, "Category not found.")
			return
		}
		response.InternalServerError(c, "failed to rename category")
		return
	}

	response.Success(c, http.StatusOK, category)
}
