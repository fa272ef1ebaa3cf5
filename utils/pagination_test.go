package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func contextWithQuery(query string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	return c
}

func TestGetPage(t *testing.T) {
	assert.Equal(t, 1, GetPage(contextWithQuery("")))
	assert.Equal(t, 3, GetPage(contextWithQuery("page=3")))
	assert.Equal(t, 1, GetPage(contextWithQuery("page=0")))
	assert.Equal(t, 1, GetPage(contextWithQuery("page=-2")))
	assert.Equal(t, 1, GetPage(contextWithQuery("page=abc")))
}

func TestGetPageSize(t *testing.T) {
	assert.Equal(t, 20, GetPageSize(contextWithQuery("")))
	assert.Equal(t, 50, GetPageSize(contextWithQuery("page_size=50")))
	assert.Equal(t, 100, GetPageSize(contextWithQuery("page_size=500")))
	assert.Equal(t, 20, GetPageSize(contextWithQuery("page_size=0")))
}
