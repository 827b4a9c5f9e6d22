package binding

import (
	"encoding/json"
	"net/http"
	"strings"

	"bookstore-catalog/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// StrictJSON decodes the request body into dest and rejects payloads carrying
// keys outside dest's declared shape. An unknown key fails validation the same
// way an out-of-range field does; anything else is a malformed body. Writes
// the error response itself and reports whether decoding succeeded.
func StrictJSON(c *gin.Context, dest interface{}) bool {
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dest); err != nil {
		if strings.HasPrefix(err.Error(), "json: unknown field") {
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Validation failed", err.Error())
		} else {
			response.BadRequest(c, "invalid request body")
		}
		return false
	}

	return true
}
