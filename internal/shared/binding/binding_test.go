package binding

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testPayload struct {
	Name string `json:"name"`
}

func jsonContext(body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	return c, w
}

func TestStrictJSON_ValidBody(t *testing.T) {
	c, _ := jsonContext(`{"name":"ok"}`)

	var p testPayload
	require.True(t, StrictJSON(c, &p))
	assert.Equal(t, "ok", p.Name)
}

func TestStrictJSON_UnknownKey(t *testing.T) {
	c, w := jsonContext(`{"name":"ok","extra":1}`)

	var p testPayload
	require.False(t, StrictJSON(c, &p))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_FAILED")
	assert.Contains(t, w.Body.String(), "unknown field")
}

func TestStrictJSON_MalformedBody(t *testing.T) {
	c, w := jsonContext(`{`)

	var p testPayload
	require.False(t, StrictJSON(c, &p))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "BAD_REQUEST")
}
