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

// SeriesController handles the admin CRUD for series. Series have no public
// listing; only movies are exposed on the read API.
type SeriesController struct {
	DB              *gorm.DB
	activityService *activity.ActivityService
}

func NewSeriesController(db *gorm.DB, activityService *activity.ActivityService) *SeriesController {
	return &SeriesController{
		DB:              db,
		activityService: activityService,
	}
}

func preloadSeries(db *gorm.DB) *gorm.DB {
	return db.Preload("Genres").
		Preload("Directors").
		Preload("Actors").
		Preload("Countries").
		Preload("AgeLimit").
		Preload("Platform")
}

// @Summary List every series
// @Tags Series
// @Produce json
// @Security Bearer
// @Success 200 {object} Response{data=[]models.Series}
// @Failure 500 {object} Response
// @Router /admin/series [get]
func (sc *SeriesController) GetAllSeries(c *gin.Context) {
	var series []models.Series
	if err := preloadSeries(sc.DB).Find(&series).Error; err != nil {
		utils.LogError("failed to list series", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to list series", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "message": "series listed", "data": series})
}

// @Summary Get a series
// @Tags Series
// @Produce json
// @Param id path int true "Series ID"
// @Security Bearer
// @Success 200 {object} Response{data=models.Series}
// @Failure 404 {object} Response
// @Router /admin/series/{id} [get]
func (sc *SeriesController) GetSeriesByID(c *gin.Context) {
	id := c.Param("id")
	var series models.Series
	if err := preloadSeries(sc.DB).First(&series, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"code": http.StatusNotFound, "message": fmt.Sprintf("series %s does not exist", id)})
		} else {
			utils.LogError(fmt.Sprintf("failed to load series %s", id), err)
			c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to load series", "error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "message": "series loaded", "data": series})
}

// @Summary Create a series
// @Description Creates a series; directors may be empty, status must be airing, finished or cancelled
// @Tags Series
// @Accept json
// @Produce json
// @Param series body models.SeriesRequest true "Series"
// @Security Bearer
// @Success 201 {object} Response{data=models.Series}
// @Failure 400 {object} Response
// @Failure 409 {object} Response
// @Router /admin/series [post]
func (sc *SeriesController) CreateSeries(c *gin.Context) {
	var req models.SeriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": http.StatusBadRequest, "message": "invalid request body", "error": err.Error()})
		return
	}

	rel, err := resolveTitleRelations(sc.DB, req.GenreIDs, req.DirectorIDs, req.ActorIDs, req.CountryIDs, req.AgeLimitID, req.PlatformID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": http.StatusBadRequest, "message": "invalid relations", "error": err.Error()})
		return
	}

	series := models.Series{
		Name:        req.Name,
		Genres:      rel.Genres,
		Status:      req.Status,
		Directors:   rel.Directors,
		Actors:      rel.Actors,
		ReleaseYear: req.ReleaseYear,
		Countries:   rel.Countries,
		AgeLimitID:  req.AgeLimitID,
		PlatformID:  req.PlatformID,
		Channel:     req.Channel,
		Summary:     req.Summary,
	}

	if err := sc.DB.Create(&series).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"code": http.StatusConflict, "message": fmt.Sprintf("a series with slug %q already exists", series.Slug)})
			return
		}
		if errors.Is(err, models.ErrInvalidReleaseYear) || errors.Is(err, models.ErrInvalidSeriesStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"code": http.StatusBadRequest, "message": err.Error()})
			return
		}
		utils.LogError("failed to create series", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to create series", "error": err.Error()})
		return
	}

	sc.activityService.RecordActivity(models.ActivityCatalog, fmt.Sprintf("series %q created", series.Name))

	series.AgeLimit = rel.AgeLimit
	series.Platform = rel.Platform
	c.JSON(http.StatusCreated, gin.H{"code": http.StatusCreated, "message": "series created", "data": series})
}

// @Summary Update a series
// @Tags Series
// @Accept json
// @Produce json
// @Param id path int true "Series ID"
// @Param series body models.SeriesRequest true "Series"
// @Security Bearer
// @Success 200 {object} Response{data=models.Series}
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Failure 409 {object} Response
// @Router /admin/series/{id} [put]
func (sc *SeriesController) UpdateSeries(c *gin.Context) {
	id := c.Param("id")
	var series models.Series
	if err := sc.DB.First(&series, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"code": http.StatusNotFound, "message": fmt.Sprintf("series %s does not exist", id)})
		} else {
			utils.LogError(fmt.Sprintf("failed to load series %s", id), err)
			c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to update series", "error": err.Error()})
		}
		return
	}

	var req models.SeriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": http.StatusBadRequest, "message": "invalid request body", "error": err.Error()})
		return
	}

	rel, err := resolveTitleRelations(sc.DB, req.GenreIDs, req.DirectorIDs, req.ActorIDs, req.CountryIDs, req.AgeLimitID, req.PlatformID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": http.StatusBadRequest, "message": "invalid relations", "error": err.Error()})
		return
	}

	series.Name = req.Name
	series.Status = req.Status
	series.ReleaseYear = req.ReleaseYear
	series.AgeLimitID = req.AgeLimitID
	series.PlatformID = req.PlatformID
	series.Channel = req.Channel
	series.Summary = req.Summary

	err = sc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&series).Error; err != nil {
			return err
		}
		if err := tx.Model(&series).Association("Genres").Replace(rel.Genres); err != nil {
			return err
		}
		if err := tx.Model(&series).Association("Directors").Replace(rel.Directors); err != nil {
			return err
		}
		if err := tx.Model(&series).Association("Actors").Replace(rel.Actors); err != nil {
			return err
		}
		return tx.Model(&series).Association("Countries").Replace(rel.Countries)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"code": http.StatusConflict, "message": fmt.Sprintf("a series with slug %q already exists", series.Slug)})
			return
		}
		if errors.Is(err, models.ErrInvalidReleaseYear) || errors.Is(err, models.ErrInvalidSeriesStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"code": http.StatusBadRequest, "message": err.Error()})
			return
		}
		utils.LogError(fmt.Sprintf("failed to update series %s", id), err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to update series", "error": err.Error()})
		return
	}

	sc.activityService.RecordActivity(models.ActivityCatalog, fmt.Sprintf("series %q updated", series.Name))

	var updated models.Series
	if err := preloadSeries(sc.DB).First(&updated, series.ID).Error; err != nil {
		utils.LogError(fmt.Sprintf("failed to reload series %s", id), err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to reload series", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "message": "series updated", "data": updated})
}

// @Summary Delete a series
// @Tags Series
// @Produce json
// @Param id path int true "Series ID"
// @Security Bearer
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /admin/series/{id} [delete]
func (sc *SeriesController) DeleteSeries(c *gin.Context) {
	id := c.Param("id")
	var series models.Series
	if err := sc.DB.First(&series, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"code": http.StatusNotFound, "message": fmt.Sprintf("series %s does not exist", id)})
		} else {
			utils.LogError(fmt.Sprintf("failed to load series %s", id), err)
			c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to delete series", "error": err.Error()})
		}
		return
	}

	err := sc.DB.Transaction(func(tx *gorm.DB) error {
		for _, assoc := range []string{"Genres", "Directors", "Actors", "Countries"} {
			if err := tx.Model(&series).Association(assoc).Clear(); err != nil {
				return err
			}
		}
		return tx.Unscoped().Delete(&series).Error
	})
	if err != nil {
		utils.LogError(fmt.Sprintf("failed to delete series %s", id), err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to delete series", "error": err.Error()})
		return
	}

	sc.activityService.RecordActivity(models.ActivityCatalog, fmt.Sprintf("series %q deleted", series.Name))

	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "message": "series deleted"})
}
