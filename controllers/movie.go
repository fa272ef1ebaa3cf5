package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"backend/models"
	"backend/services/activity"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// MovieController handles the public listing and the admin CRUD for movies.
type MovieController struct {
	DB              *gorm.DB
	activityService *activity.ActivityService
}

func NewMovieController(db *gorm.DB, activityService *activity.ActivityService) *MovieController {
	return &MovieController{
		DB:              db,
		activityService: activityService,
	}
}

// titleRelations holds the resolved reference entities for a movie or series.
type titleRelations struct {
	Genres    []models.Genre
	Directors []models.Director
	Actors    []models.Actor
	Countries []models.Country
	AgeLimit  models.AgeLimit
	Platform  models.Platform
}

// uniqueIDs drops repeated ids, keeping first-seen order. Requests may list
// the same id twice; that must not read as a missing row.
func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// resolveTitleRelations loads every referenced reference entity and fails when
// any id points to a missing row. directorIDs may be empty (series allow it);
// the caller enforces its own minimums through request binding.
func resolveTitleRelations(db *gorm.DB, genreIDs, directorIDs, actorIDs, countryIDs []uint, ageLimitID, platformID uint) (*titleRelations, error) {
	rel := &titleRelations{}

	genreIDs = uniqueIDs(genreIDs)
	directorIDs = uniqueIDs(directorIDs)
	actorIDs = uniqueIDs(actorIDs)
	countryIDs = uniqueIDs(countryIDs)

	if len(genreIDs) > 0 {
		if err := db.Find(&rel.Genres, genreIDs).Error; err != nil {
			return nil, err
		}
		if len(rel.Genres) != len(genreIDs) {
			return nil, fmt.Errorf("one or more genres do not exist")
		}
	}
	if len(directorIDs) > 0 {
		if err := db.Find(&rel.Directors, directorIDs).Error; err != nil {
			return nil, err
		}
		if len(rel.Directors) != len(directorIDs) {
			return nil, fmt.Errorf("one or more directors do not exist")
		}
	}
	if len(actorIDs) > 0 {
		if err := db.Find(&rel.Actors, actorIDs).Error; err != nil {
			return nil, err
		}
		if len(rel.Actors) != len(actorIDs) {
			return nil, fmt.Errorf("one or more actors do not exist")
		}
	}
	if len(countryIDs) > 0 {
		if err := db.Find(&rel.Countries, countryIDs).Error; err != nil {
			return nil, err
		}
		if len(rel.Countries) != len(countryIDs) {
			return nil, fmt.Errorf("one or more countries do not exist")
		}
	}
	if err := db.First(&rel.AgeLimit, ageLimitID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("age limit %d does not exist", ageLimitID)
		}
		return nil, err
	}
	if err := db.First(&rel.Platform, platformID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("platform %d does not exist", platformID)
		}
		return nil, err
	}

	return rel, nil
}

// preloadMovie applies the eager loads the listing projection needs.
func preloadMovie(db *gorm.DB) *gorm.DB {
	return db.Preload("Genres").
		Preload("Directors").
		Preload("Actors").
		Preload("Countries").
		Preload("AgeLimit").
		Preload("Platform")
}

// ListMovies godoc
// @Summary List every movie
// @Description Public listing of the whole movie table, relations expanded to their slugs plus the nested age limit and platform. No parameters, no pagination. The body is the bare array, not the envelope.
// @Tags Movies
// @Produce json
// @Success 200 {array} models.MovieResponse
// @Failure 500 {object} Response
// @Router /movies-list/ [get]
func (mc *MovieController) ListMovies(c *gin.Context) {
	var movies []models.Movie
	if err := preloadMovie(mc.DB).Find(&movies).Error; err != nil {
		utils.LogError("failed to list movies", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to list movies", "error": err.Error()})
		return
	}

	response := make([]models.MovieResponse, len(movies))
	for i, m := range movies {
		response[i] = models.NewMovieResponse(m)
	}

	c.JSON(http.StatusOK, response)
}

// GetAllMovies godoc
// @Summary List movies (admin)
// @Tags Movies
// @Produce json
// @Security Bearer
// @Success 200 {object} Response{data=[]models.MovieResponse}
// @Failure 500 {object} Response
// @Router /admin/movies [get]
func (mc *MovieController) GetAllMovies(c *gin.Context) {
	var movies []models.Movie
	if err := preloadMovie(mc.DB).Find(&movies).Error; err != nil {
		utils.LogError("failed to list movies", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to list movies", "error": err.Error()})
		return
	}

	response := make([]models.MovieResponse, len(movies))
	for i, m := range movies {
		response[i] = models.NewMovieResponse(m)
	}

	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "message": "movies listed", "data": response})
}

// @Summary Get a movie
// @Tags Movies
// @Produce json
// @Param id path int true "Movie ID"
// @Security Bearer
// @Success 200 {object} Response{data=models.MovieResponse}
// @Failure 404 {object} Response
// @Router /admin/movies/{id} [get]
func (mc *MovieController) GetMovieByID(c *gin.Context) {
	id := c.Param("id")
	var movie models.Movie
	if err := preloadMovie(mc.DB).First(&movie, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"code": http.StatusNotFound, "message": fmt.Sprintf("movie %s does not exist", id)})
		} else {
			utils.LogError(fmt.Sprintf("failed to load movie %s", id), err)
			c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to load movie", "error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "message": "movie loaded", "data": models.NewMovieResponse(movie)})
}

// @Summary Create a movie
// @Description Creates a movie; the slug is derived from the name and every relation id must reference an existing row
// @Tags Movies
// @Accept json
// @Produce json
// @Param movie body models.MovieRequest true "Movie"
// @Security Bearer
// @Success 201 {object} Response{data=models.MovieResponse}
// @Failure 400 {object} Response
// @Failure 409 {object} Response
// @Router /admin/movies [post]
func (mc *MovieController) CreateMovie(c *gin.Context) {
	var req models.MovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": http.StatusBadRequest, "message": "invalid request body", "error": err.Error()})
		return
	}

	rel, err := resolveTitleRelations(mc.DB, req.GenreIDs, req.DirectorIDs, req.ActorIDs, req.CountryIDs, req.AgeLimitID, req.PlatformID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": http.StatusBadRequest, "message": "invalid relations", "error": err.Error()})
		return
	}

	movie := models.Movie{
		Name:        req.Name,
		Genres:      rel.Genres,
		Directors:   rel.Directors,
		Actors:      rel.Actors,
		ReleaseYear: req.ReleaseYear,
		Countries:   rel.Countries,
		AgeLimitID:  req.AgeLimitID,
		PlatformID:  req.PlatformID,
		Summary:     req.Summary,
	}

	if err := mc.DB.Create(&movie).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"code": http.StatusConflict, "message": fmt.Sprintf("a movie with slug %q already exists", movie.Slug)})
			return
		}
		if errors.Is(err, models.ErrInvalidReleaseYear) {
			c.JSON(http.StatusBadRequest, gin.H{"code": http.StatusBadRequest, "message": err.Error()})
			return
		}
		utils.LogError("failed to create movie", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to create movie", "error": err.Error()})
		return
	}

	mc.activityService.RecordActivity(models.ActivityCatalog, fmt.Sprintf("movie %q created", movie.Name))

	movie.AgeLimit = rel.AgeLimit
	movie.Platform = rel.Platform
	c.JSON(http.StatusCreated, gin.H{"code": http.StatusCreated, "message": "movie created", "data": models.NewMovieResponse(movie)})
}

// @Summary Update a movie
// @Description Updates a movie and replaces its relation sets; renaming recomputes the slug
// @Tags Movies
// @Accept json
// @Produce json
// @Param id path int true "Movie ID"
// @Param movie body models.MovieRequest true "Movie"
// @Security Bearer
// @Success 200 {object} Response{data=models.MovieResponse}
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Failure 409 {object} Response
// @Router /admin/movies/{id} [put]
func (mc *MovieController) UpdateMovie(c *gin.Context) {
	id := c.Param("id")
	var movie models.Movie
	if err := mc.DB.First(&movie, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"code": http.StatusNotFound, "message": fmt.Sprintf("movie %s does not exist", id)})
		} else {
			utils.LogError(fmt.Sprintf("failed to load movie %s", id), err)
			c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to update movie", "error": err.Error()})
		}
		return
	}

	var req models.MovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": http.StatusBadRequest, "message": "invalid request body", "error": err.Error()})
		return
	}

	rel, err := resolveTitleRelations(mc.DB, req.GenreIDs, req.DirectorIDs, req.ActorIDs, req.CountryIDs, req.AgeLimitID, req.PlatformID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": http.StatusBadRequest, "message": "invalid relations", "error": err.Error()})
		return
	}

	movie.Name = req.Name
	movie.ReleaseYear = req.ReleaseYear
	movie.AgeLimitID = req.AgeLimitID
	movie.PlatformID = req.PlatformID
	movie.Summary = req.Summary

	err = mc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&movie).Error; err != nil {
			return err
		}
		if err := tx.Model(&movie).Association("Genres").Replace(rel.Genres); err != nil {
			return err
		}
		if err := tx.Model(&movie).Association("Directors").Replace(rel.Directors); err != nil {
			return err
		}
		if err := tx.Model(&movie).Association("Actors").Replace(rel.Actors); err != nil {
			return err
		}
		return tx.Model(&movie).Association("Countries").Replace(rel.Countries)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"code": http.StatusConflict, "message": fmt.Sprintf("a movie with slug %q already exists", movie.Slug)})
			return
		}
		if errors.Is(err, models.ErrInvalidReleaseYear) {
			c.JSON(http.StatusBadRequest, gin.H{"code": http.StatusBadRequest, "message": err.Error()})
			return
		}
		utils.LogError(fmt.Sprintf("failed to update movie %s", id), err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to update movie", "error": err.Error()})
		return
	}

	mc.activityService.RecordActivity(models.ActivityCatalog, fmt.Sprintf("movie %q updated", movie.Name))

	var updated models.Movie
	if err := preloadMovie(mc.DB).First(&updated, movie.ID).Error; err != nil {
		utils.LogError(fmt.Sprintf("failed to reload movie %s", id), err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to reload movie", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "message": "movie updated", "data": models.NewMovieResponse(updated)})
}

// @Summary Delete a movie
// @Description Removes the movie and its relation rows; shared reference entities are untouched
// @Tags Movies
// @Produce json
// @Param id path int true "Movie ID"
// @Security Bearer
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /admin/movies/{id} [delete]
func (mc *MovieController) DeleteMovie(c *gin.Context) {
	id := c.Param("id")
	var movie models.Movie
	if err := mc.DB.First(&movie, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"code": http.StatusNotFound, "message": fmt.Sprintf("movie %s does not exist", id)})
		} else {
			utils.LogError(fmt.Sprintf("failed to load movie %s", id), err)
			c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to delete movie", "error": err.Error()})
		}
		return
	}

	// Clearing the associations drops the join rows only; the referenced
	// genres, people and countries stay in place.
	err := mc.DB.Transaction(func(tx *gorm.DB) error {
		for _, assoc := range []string{"Genres", "Directors", "Actors", "Countries"} {
			if err := tx.Model(&movie).Association(assoc).Clear(); err != nil {
				return err
			}
		}
		return tx.Unscoped().Delete(&movie).Error
	})
	if err != nil {
		utils.LogError(fmt.Sprintf("failed to delete movie %s", id), err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to delete movie", "error": err.Error()})
		return
	}

	mc.activityService.RecordActivity(models.ActivityCatalog, fmt.Sprintf("movie %q deleted", movie.Name))

	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "message": "movie deleted"})
}
