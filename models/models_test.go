package models_test

import (
	"testing"

	"backend/config"
	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.MigrateAll(db))

	return db
}

func seedLookups(t *testing.T, db *gorm.DB) (ageLimitID, platformID uint) {
	t.Helper()

	ageLimit := models.AgeLimit{Title: "16+", MinAge: 16}
	require.NoError(t, db.Create(&ageLimit).Error)

	platform := models.Platform{Title: "Netflix"}
	require.NoError(t, db.Create(&platform).Error)

	return ageLimit.ID, platform.ID
}

func TestGenreSlugNormalization(t *testing.T) {
	db := newTestDB(t)

	genre := models.Genre{Title: "  Science Fiction  "}
	require.NoError(t, db.Create(&genre).Error)
	assert.Equal(t, "science-fiction", genre.Slug)

	accented := models.Genre{Title: "Comédie Dramatique"}
	require.NoError(t, db.Create(&accented).Error)
	assert.Equal(t, "comedie-dramatique", accented.Slug)
}

func TestGenreSlugStableOnResave(t *testing.T) {
	db := newTestDB(t)

	genre := models.Genre{Title: "Film Noir"}
	require.NoError(t, db.Create(&genre).Error)
	first := genre.Slug

	require.NoError(t, db.Save(&genre).Error)
	assert.Equal(t, first, genre.Slug)
}

func TestGenreSlugFollowsRename(t *testing.T) {
	db := newTestDB(t)

	genre := models.Genre{Title: "Thriller"}
	require.NoError(t, db.Create(&genre).Error)

	genre.Title = "Psychological Thriller"
	require.NoError(t, db.Save(&genre).Error)
	assert.Equal(t, "psychological-thriller", genre.Slug)
}

func TestGenreSlugUniqueness(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.Create(&models.Genre{Title: "Horror"}).Error)

	// Different raw titles that normalize to the same slug collide.
	err := db.Create(&models.Genre{Title: "  HORROR  "}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestDirectorSlugFromFullName(t *testing.T) {
	db := newTestDB(t)

	director := models.Director{FullName: "Bong Joon-ho"}
	require.NoError(t, db.Create(&director).Error)
	assert.Equal(t, "bong-joon-ho", director.Slug)
}

func TestMovieReleaseYearValidation(t *testing.T) {
	db := newTestDB(t)
	ageLimitID, platformID := seedLookups(t, db)

	base := func() models.Movie {
		return models.Movie{
			Name:        "Parasite",
			ReleaseYear: "2019",
			AgeLimitID:  ageLimitID,
			PlatformID:  platformID,
		}
	}

	movie := base()
	require.NoError(t, db.Create(&movie).Error)
	assert.Equal(t, "parasite", movie.Slug)

	for _, year := range []string{"", "19", "20199", "19x9", "２０１９"} {
		bad := base()
		bad.Name = "Parasite " + year
		bad.ReleaseYear = year
		err := db.Create(&bad).Error
		assert.ErrorIs(t, err, models.ErrInvalidReleaseYear, "year %q", year)
	}
}

func TestSeriesStatusValidation(t *testing.T) {
	db := newTestDB(t)
	ageLimitID, platformID := seedLookups(t, db)

	base := func(name, status string) models.Series {
		return models.Series{
			Name:        name,
			ReleaseYear: "2020",
			Status:      status,
			AgeLimitID:  ageLimitID,
			PlatformID:  platformID,
		}
	}

	for i, status := range []string{
		models.SeriesStatusAiring,
		models.SeriesStatusFinished,
		models.SeriesStatusCancelled,
	} {
		s := base("Dark "+status, status)
		require.NoError(t, db.Create(&s).Error, "status %d", i)
	}

	bad := base("Broken", "paused")
	err := db.Create(&bad).Error
	assert.ErrorIs(t, err, models.ErrInvalidSeriesStatus)
}

func TestCommentRatingValidation(t *testing.T) {
	db := newTestDB(t)

	for _, rating := range []int{0, 1, 3, 5} {
		c := models.Comment{Name: "alice", Text: "good one", RatingNumber: rating}
		require.NoError(t, db.Create(&c).Error, "rating %d", rating)
	}

	for _, rating := range []int{-1, 6, 100} {
		c := models.Comment{Name: "alice", Text: "bad one", RatingNumber: rating}
		err := db.Create(&c).Error
		assert.ErrorIs(t, err, models.ErrInvalidRating, "rating %d", rating)
	}
}

func TestCommentCreateFlags(t *testing.T) {
	db := newTestDB(t)

	root := models.Comment{Name: "alice", Text: "first"}
	require.NoError(t, db.Create(&root).Error)
	assert.False(t, root.IsReply)
	assert.False(t, root.IsEdited)
	assert.False(t, root.EditedDate.IsZero())

	reply := models.Comment{Name: "bob", Text: "reply", ParentID: &root.ID}
	require.NoError(t, db.Create(&reply).Error)
	assert.True(t, reply.IsReply)
}

func TestUserPasswordHashing(t *testing.T) {
	user := models.User{Username: "alice", Password: "s3cret", Role: models.RoleRegular}
	require.NoError(t, user.HashPassword())
	assert.NotEqual(t, "s3cret", user.Password)

	assert.NoError(t, user.ComparePassword("s3cret"))
	assert.Error(t, user.ComparePassword("wrong"))
}
