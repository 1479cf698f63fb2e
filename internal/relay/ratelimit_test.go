package relay

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiterBurst(t *testing.T) {
	rl := NewRateLimiter(1, 2)

	assert.True(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"), "third request inside the window must be throttled")

	// separate clients get separate buckets
	assert.True(t, rl.Allow("10.0.0.2"))
}

func TestGateRejectionShape(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/video-proxy", NewRateLimiter(1, 1).Gate(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/video-proxy", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/video-proxy", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(second.Body.Bytes(), &body))
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "too many requests", body["message"])
}
