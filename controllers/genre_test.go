package controllers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"backend/config"
	"backend/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newGenreTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.MigrateAll(db))

	// The entity controllers use the package-level handle.
	models.SetDB(db)
	t.Cleanup(func() { models.SetDB(nil) })

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.DELETE("/admin/genres/:id", DeleteGenre)

	return r, db
}

func TestDeleteGenreClearsJoinRows(t *testing.T) {
	r, db := newGenreTestRouter(t)

	genre := models.Genre{Title: "Drama"}
	require.NoError(t, db.Create(&genre).Error)
	ageLimit := models.AgeLimit{Title: "16+", MinAge: 16}
	require.NoError(t, db.Create(&ageLimit).Error)
	platform := models.Platform{Title: "Netflix"}
	require.NoError(t, db.Create(&platform).Error)

	movie := models.Movie{
		Name:        "Parasite",
		ReleaseYear: "2019",
		Genres:      []models.Genre{genre},
		AgeLimitID:  ageLimit.ID,
		PlatformID:  platform.ID,
	}
	require.NoError(t, db.Create(&movie).Error)

	series := models.Series{
		Name:        "Dark",
		ReleaseYear: "2017",
		Status:      models.SeriesStatusFinished,
		Genres:      []models.Genre{genre},
		AgeLimitID:  ageLimit.ID,
		PlatformID:  platform.ID,
	}
	require.NoError(t, db.Create(&series).Error)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/admin/genres/%d", genre.ID), nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var joinRows int64
	require.NoError(t, db.Table("movie_genres").Count(&joinRows).Error)
	assert.Zero(t, joinRows)
	require.NoError(t, db.Table("series_genres").Count(&joinRows).Error)
	assert.Zero(t, joinRows)

	// The titles themselves survive the genre's removal.
	var movies, allSeries int64
	require.NoError(t, db.Model(&models.Movie{}).Count(&movies).Error)
	assert.Equal(t, int64(1), movies)
	require.NoError(t, db.Model(&models.Series{}).Count(&allSeries).Error)
	assert.Equal(t, int64(1), allSeries)

	err := db.First(&models.Genre{}, genre.ID).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
