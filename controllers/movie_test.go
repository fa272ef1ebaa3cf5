package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"backend/config"
	"backend/models"
	"backend/services/activity"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMovieTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.MigrateAll(db))

	mc := NewMovieController(db, activity.NewActivityService(db))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/movies-list/", mc.ListMovies)

	return r, db
}

func TestListMoviesEmpty(t *testing.T) {
	r, _ := newMovieTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/movies-list/", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	// The public listing body is the bare array, no envelope around it.
	var body []models.MovieResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Empty(t, body)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestListMoviesExpandsRelations(t *testing.T) {
	r, db := newMovieTestRouter(t)

	drama := models.Genre{Title: "Drama"}
	thriller := models.Genre{Title: "Black Comedy"}
	require.NoError(t, db.Create(&drama).Error)
	require.NoError(t, db.Create(&thriller).Error)

	director := models.Director{FullName: "Bong Joon-ho"}
	require.NoError(t, db.Create(&director).Error)

	actor := models.Actor{FullName: "Song Kang-ho"}
	require.NoError(t, db.Create(&actor).Error)

	country := models.Country{Name: "South Korea"}
	require.NoError(t, db.Create(&country).Error)

	ageLimit := models.AgeLimit{Title: "16+", MinAge: 16}
	require.NoError(t, db.Create(&ageLimit).Error)

	platform := models.Platform{Title: "Netflix"}
	require.NoError(t, db.Create(&platform).Error)

	movie := models.Movie{
		Name:        "Parasite",
		ReleaseYear: "2019",
		Genres:      []models.Genre{drama, thriller},
		Directors:   []models.Director{director},
		Actors:      []models.Actor{actor},
		Countries:   []models.Country{country},
		AgeLimitID:  ageLimit.ID,
		PlatformID:  platform.ID,
		Summary:     "A poor family schemes its way into a rich household.",
	}
	require.NoError(t, db.Create(&movie).Error)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/movies-list/", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body []models.MovieResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 1)

	got := body[0]
	assert.Equal(t, "Parasite", got.Name)
	assert.Equal(t, "parasite", got.Slug)
	assert.Equal(t, "2019", got.ReleaseYear)
	assert.ElementsMatch(t, []string{"drama", "black-comedy"}, got.Genres)
	assert.Equal(t, []string{"bong-joon-ho"}, got.Directors)
	assert.Equal(t, []string{"song-kang-ho"}, got.Actors)
	assert.Equal(t, []string{"south-korea"}, got.Countries)
	assert.Equal(t, "16+", got.AgeLimit.Title)
	assert.Equal(t, 16, got.AgeLimit.MinAge)
	assert.Equal(t, "Netflix", got.Platform.Title)
}

func TestResolveTitleRelationsAcceptsDuplicateIDs(t *testing.T) {
	_, db := newMovieTestRouter(t)

	genre := models.Genre{Title: "Drama"}
	require.NoError(t, db.Create(&genre).Error)
	actor := models.Actor{FullName: "Song Kang-ho"}
	require.NoError(t, db.Create(&actor).Error)
	country := models.Country{Name: "South Korea"}
	require.NoError(t, db.Create(&country).Error)
	ageLimit := models.AgeLimit{Title: "16+", MinAge: 16}
	require.NoError(t, db.Create(&ageLimit).Error)
	platform := models.Platform{Title: "Netflix"}
	require.NoError(t, db.Create(&platform).Error)

	rel, err := resolveTitleRelations(db,
		[]uint{genre.ID, genre.ID},
		nil,
		[]uint{actor.ID, actor.ID, actor.ID},
		[]uint{country.ID},
		ageLimit.ID, platform.ID)
	require.NoError(t, err)
	assert.Len(t, rel.Genres, 1)
	assert.Len(t, rel.Actors, 1)

	_, err = resolveTitleRelations(db,
		[]uint{genre.ID, 9999},
		nil, nil,
		[]uint{country.ID},
		ageLimit.ID, platform.ID)
	assert.Error(t, err)
}
