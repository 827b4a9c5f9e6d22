package middleware

import (
	"bookstore-catalog/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UUIDParam rejects structurally malformed id path parameters with a client
// error before any lookup runs. A missing record is a different failure (404)
// and is left to the handler.
func UUIDParam(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := uuid.Parse(c.Param(param)); err != nil {
			response.BadRequest(c, "Invalid ID.")
			c.Abort()
			return
		}
		c.Next()
	}
}
