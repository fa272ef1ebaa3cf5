package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"backend/config"
	"backend/models"
	"backend/services/activity"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newAuthController(t *testing.T) (*AuthController, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.MigrateAll(db))

	return NewAuthController(db, activity.NewActivityService(db)), db
}

func userInfoContext(claims jwt.MapClaims) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/user/info", nil)
	c.Set("claims", claims)
	return c, w
}

func TestGetUserInfo(t *testing.T) {
	ac, db := newAuthController(t)

	user := models.User{Username: "alice", Password: "s3cret", Role: models.RoleAdmin}
	require.NoError(t, user.HashPassword())
	require.NoError(t, db.Create(&user).Error)

	c, w := userInfoContext(jwt.MapClaims{
		"user_id": float64(user.ID),
		"role":    models.RoleAdmin,
	})
	ac.GetUserInfo(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice")
}

func TestGetUserInfoMalformedClaims(t *testing.T) {
	ac, _ := newAuthController(t)

	// A validly signed token without a numeric user_id claim must get a 401,
	// never a panic.
	c, w := userInfoContext(jwt.MapClaims{"role": models.RoleAdmin})
	ac.GetUserInfo(c)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	c, w = userInfoContext(jwt.MapClaims{"user_id": "7", "role": models.RoleAdmin})
	ac.GetUserInfo(c)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
