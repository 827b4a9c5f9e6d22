package handler

import (
	"errors"
	"net/http"
	"time"

	"bookstore-catalog/internal/domains/book/model"
	"bookstore-catalog/internal/domains/book/service"
	"bookstore-catalog/internal/shared/binding"
	"bookstore-catalog/internal/shared/response"
	"bookstore-catalog/pkg/cache"
	"bookstore-catalog/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const bookDetailTTL = 10 * time.Minute

type Handler struct {
	service service.Service
	cache   cache.Cache
}

func NewHandler(service service.Service, cache cache.Cache) *Handler {
	return &Handler{
		service: service,
		cache:   cache,
	}
}

func bookDetailCacheKey(id string) string {
	return "book:detail:" + id
}

// List - GET /api/v1/books
// No pagination, filtering or sorting parameters; always title ascending,
// reviews populated with their users.
func (h *Handler) List(c *gin.Context) {
	books, err := h.service.List(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "failed to list books")
		return
	}

	response.Success(c, http.StatusOK, books)
}

// GetByID - GET /api/v1/books/:id
// The uuid-param middleware has already rejected malformed ids, so a miss
// here can only mean the record is absent.
func (h *Handler) GetByID(c *gin.Context) {
	id := c.Param("id")

	cacheKey := bookDetailCacheKey(id)
	var cached model.Book
	found, err := h.cache.Get(c.Request.Context(), cacheKey, &cached)
	if found {
		response.Success(c, http.StatusOK, &cached)
		return
	}
	if err != nil {
		// Cache trouble is not a reason to fail the read.
		logger.Error("book detail cache read failed", err)
	}

	book, err := h.service.GetByID(c.Request.Context(), uuid.MustParse(id))
	if err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.cache.Set(c.Request.Context(), cacheKey, book, bookDetailTTL); err != nil {
		logger.Error("book detail cache write failed", err)
	}

	response.Success(c, http.StatusOK, book)
}

// Create - POST /api/v1/books
// Auth has already run. Responds 200 with the stored document, not 201:
// original behavior, preserved on purpose.
func (h *Handler) Create(c *gin.Context) {
	req, ok := h.bindAndValidate(c)
	if !ok {
		return
	}

	book, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, book)
}

// Update - PUT /api/v1/books/:id
// Wholesale replace; the request must carry the full field set.
func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")

	req, ok := h.bindAndValidate(c)
	if !ok {
		return
	}

	book, err := h.service.Replace(c.Request.Context(), uuid.MustParse(id), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.invalidate(c, id)
	response.Success(c, http.StatusOK, book)
}

// Delete - DELETE /api/v1/books/:id
// Hard delete; responds with the removed snapshot as confirmation.
func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")

	book, err := h.service.Delete(c.Request.Context(), uuid.MustParse(id))
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.invalidate(c, id)
	response.Success(c, http.StatusOK, book)
}

func (h *Handler) bindAndValidate(c *gin.Context) (model.BookRequest, bool) {
	// Strict decode: keys outside the declared payload shape (publishDate,
	// freeShipping, anything else) fail with 400 instead of being dropped.
	var req model.BookRequest
	if !binding.StrictJSON(c, &req) {
		return req, false
	}

	// Input-shape validation runs before any category lookup.
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Validation failed", err.Error())
		return req, false
	}

	return req, true
}

func (h *Handler) respondError(c *gin.Context, err error) {
	var storageErr *model.StorageValidationError

	switch {
	case errors.Is(err, model.ErrBookNotFound):
		response.NotFound(c, "Book not found.")
	case errors.Is(err, model.ErrInvalidCategory):
		response.BadRequest(c, "Invalid category.")
	case errors.As(err, &storageErr):
		response.ErrorWithDetails(c, http.StatusBadRequest, "STORAGE_VALIDATION", "Document violates storage constraints", storageErr.Violations)
	default:
		response.InternalServerError(c, "internal server error")
	}
}

func (h *Handler) invalidate(c *gin.Context, id string) {
	if err := h.cache.Delete(c.Request.Context(), bookDetailCacheKey(id)); err != nil {
		logger.Error("book detail cache invalidation failed", err)
	}
}
