package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"backend/models"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Response is the generic envelope used by every handler.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// @Summary List genres
// @Description Returns every genre in the catalog
// @Tags Genres
// @Produce json
// @Security Bearer
// @Success 200 {object} Response{data=[]models.Genre}
// @Failure 500 {object} Response
// @Router /admin/genres [get]
func GetAllGenres(c *gin.Context) {
	var genres []models.Genre
	if err := models.DB.Find(&genres).Error; err != nil {
		utils.LogError("failed to list genres", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to list genres", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "message": "genres listed", "data": genres})
}

// @Summary Get a genre
// @Tags Genres
// @Produce json
// @Param id path int true "Genre ID"
// @Security Bearer
// @Success 200 {object} Response{data=models.Genre}
// @Failure 404 {object} Response
// @Router /admin/genres/{id} [get]
func GetGenreByID(c *gin.Context) {
	id := c.Param("id")
	var genre models.Genre
	if err := models.DB.First(&genre, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"code": http.StatusNotFound, "message": fmt.Sprintf("genre %s does not exist", id)})
		} else {
			utils.LogError(fmt.Sprintf("failed to load genre %s", id), err)
			c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to load genre", "error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "message": "genre loaded", "data": genre})
}

// @Summary Create a genre
// @Description Creates a genre; its slug is derived from the title
// @Tags Genres
// @Accept json
// @Produce json
// @Param genre body models.GenreRequest true "Genre"
// @Security Bearer
// @Success 201 {object} Response{data=models.Genre}
// @Failure 400 {object} Response
// @Failure 409 {object} Response
// @Router /admin/genres [post]
func CreateGenre(c *gin.Context) {
	var req models.GenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": http.StatusBadRequest, "message": "invalid request body", "error": err.Error()})
		return
	}

	genre := models.Genre{Title: req.Title}
	if err := models.DB.Create(&genre).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"code": http.StatusConflict, "message": fmt.Sprintf("a genre with slug %q already exists", genre.Slug)})
			return
		}
		utils.LogError("failed to create genre", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to create genre", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"code": http.StatusCreated, "message": "genre created", "data": genre})
}

// @Summary Update a genre
// @Description Renaming a genre recomputes its slug
// @Tags Genres
// @Accept json
// @Produce json
// @Param id path int true "Genre ID"
// @Param genre body models.GenreRequest true "Genre"
// @Security Bearer
// @Success 200 {object} Response{data=models.Genre}
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Failure 409 {object} Response
// @Router /admin/genres/{id} [put]
func UpdateGenre(c *gin.Context) {
	id := c.Param("id")
	var genre models.Genre
	if err := models.DB.First(&genre, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"code": http.StatusNotFound, "message": fmt.Sprintf("genre %s does not exist", id)})
		} else {
			utils.LogError(fmt.Sprintf("failed to load genre %s", id), err)
			c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to update genre", "error": err.Error()})
		}
		return
	}

	var req models.GenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": http.StatusBadRequest, "message": "invalid request body", "error": err.Error()})
		return
	}

	genre.Title = req.Title
	if err := models.DB.Save(&genre).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"code": http.StatusConflict, "message": fmt.Sprintf("a genre with slug %q already exists", genre.Slug)})
			return
		}
		utils.LogError(fmt.Sprintf("failed to update genre %s", id), err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to update genre", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "message": "genre updated", "data": genre})
}

// @Summary Delete a genre
// @Tags Genres
// @Produce json
// @Param id path int true "Genre ID"
// @Security Bearer
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /admin/genres/{id} [delete]
func DeleteGenre(c *gin.Context) {
	id := c.Param("id")
	var genre models.Genre
	if err := models.DB.First(&genre, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"code": http.StatusNotFound, "message": fmt.Sprintf("genre %s does not exist", id)})
		} else {
			utils.LogError(fmt.Sprintf("failed to load genre %s", id), err)
			c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to delete genre", "error": err.Error()})
		}
		return
	}

	// The join rows go with the genre; the movies and series themselves stay.
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM movie_genres WHERE genre_id = ?", genre.ID).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM series_genres WHERE genre_id = ?", genre.ID).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&genre).Error
	})
	if err != nil {
		utils.LogError(fmt.Sprintf("failed to delete genre %s", id), err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to delete genre", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "message": "genre deleted"})
}
