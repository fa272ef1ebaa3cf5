package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"backend/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newMaintenanceRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(MaintenanceMiddleware())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.POST("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestMaintenanceOffAllowsWrites(t *testing.T) {
	config.GetConfig().MaintenanceMode = false
	r := newMaintenanceRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMaintenanceOnBlocksWritesKeepsReads(t *testing.T) {
	cfg := config.GetConfig()
	cfg.MaintenanceMode = true
	t.Cleanup(func() { cfg.MaintenanceMode = false })

	r := newMaintenanceRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/ping", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
