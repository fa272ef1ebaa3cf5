package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"backend/models"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// savePortrait stores an uploaded portrait under uploads/images/<kind> and
// returns the public path. Used by both the director and actor handlers.
func savePortrait(c *gin.Context, kind string) (string, error) {
	file, err := c.FormFile("portrait")
	if err != nil {
		return "", err
	}

	ext := filepath.Ext(file.Filename)
	fileName := fmt.Sprintf("portrait_%d%s", time.Now().UnixNano(), ext)
	dir := filepath.Join("uploads", "images", kind)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	filePath := filepath.Join(dir, fileName)
	if err := c.SaveUploadedFile(file, filePath); err != nil {
		return "", err
	}
	return "/" + filePath, nil
}

// @Summary List directors
// @Tags Directors
// @Produce json
// @Security Bearer
// @Success 200 {object} Response{data=[]models.Director}
// @Failure 500 {object} Response
// @Router /admin/directors [get]
func GetAllDirectors(c *gin.Context) {
	var directors []models.Director
	if err := models.DB.Find(&directors).Error; err != nil {
		utils.LogError("failed to list directors", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to list directors", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "message": "directors listed", "data": directors})
}

// @Summary Get a director
// @Tags Directors
// @Produce json
// @Param id path int true "Director ID"
// @Security Bearer
// @Success 200 {object} Response{data=models.Director}
// @Failure 404 {object} Response
// @Router /admin/directors/{id} [get]
func GetDirectorByID(c *gin.Context) {
	id := c.Param("id")
	var director models.Director
	if err := models.DB.First(&director, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"code": http.StatusNotFound, "message": fmt.Sprintf("director %s does not exist", id)})
		} else {
			utils.LogError(fmt.Sprintf("failed to load director %s", id), err)
			c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to load director", "error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "message": "director loaded", "data": director})
}

// @Summary Create a director
// @Description Creates a director; the slug is derived from the full name
// @Tags Directors
// @Accept json
// @Produce json
// @Param director body models.DirectorRequest true "Director"
// @Security Bearer
// @Success 201 {object} Response{data=models.Director}
// @Failure 400 {object} Response
// @Failure 409 {object} Response
// @Router /admin/directors [post]
func CreateDirector(c *gin.Context) {
	var req models.DirectorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": http.StatusBadRequest, "message": "invalid request body", "error": err.Error()})
		return
	}

	director := models.Director{
		FullName:    req.FullName,
		Prizes:      req.Prizes,
		Age:         req.Age,
		BornPlace:   req.BornPlace,
		Nationality: req.Nationality,
		Bio:         req.Bio,
	}
	if err := models.DB.Create(&director).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"code": http.StatusConflict, "message": fmt.Sprintf("a director with slug %q already exists", director.Slug)})
			return
		}
		utils.LogError("failed to create director", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to create director", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"code": http.StatusCreated, "message": "director created", "data": director})
}

// @Summary Update a director
// @Tags Directors
// @Accept json
// @Produce json
// @Param id path int true "Director ID"
// @Param director body models.DirectorRequest true "Director"
// @Security Bearer
// @Success 200 {object} Response{data=models.Director}
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Failure 409 {object} Response
// @Router /admin/directors/{id} [put]
func UpdateDirector(c *gin.Context) {
	id := c.Param("id")
	var director models.Director
	if err := models.DB.First(&director, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"code": http.StatusNotFound, "message": fmt.Sprintf("director %s does not exist", id)})
		} else {
			utils.LogError(fmt.Sprintf("failed to load director %s", id), err)
			c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to update director", "error": err.Error()})
		}
		return
	}

	var req models.DirectorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": http.StatusBadRequest, "message": "invalid request body", "error": err.Error()})
		return
	}

	director.FullName = req.FullName
	director.Prizes = req.Prizes
	director.Age = req.Age
	director.BornPlace = req.BornPlace
	director.Nationality = req.Nationality
	director.Bio = req.Bio

	if err := models.DB.Save(&director).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"code": http.StatusConflict, "message": fmt.Sprintf("a director with slug %q already exists", director.Slug)})
			return
		}
		utils.LogError(fmt.Sprintf("failed to update director %s", id), err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to update director", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "message": "director updated", "data": director})
}

// @Summary Delete a director
// @Tags Directors
// @Produce json
// @Param id path int true "Director ID"
// @Security Bearer
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /admin/directors/{id} [delete]
func DeleteDirector(c *gin.Context) {
	id := c.Param("id")
	var director models.Director
	if err := models.DB.First(&director, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"code": http.StatusNotFound, "message": fmt.Sprintf("director %s does not exist", id)})
		} else {
			utils.LogError(fmt.Sprintf("failed to load director %s", id), err)
			c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to delete director", "error": err.Error()})
		}
		return
	}

	err := models.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM movie_directors WHERE director_id = ?", director.ID).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM series_directors WHERE director_id = ?", director.ID).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&director).Error
	})
	if err != nil {
		utils.LogError(fmt.Sprintf("failed to delete director %s", id), err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to delete director", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "message": "director deleted"})
}

// @Summary Upload a director portrait
// @Description Stores the portrait under uploads/images/directors and saves its path
// @Tags Directors
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Director ID"
// @Param portrait formData file true "Portrait image"
// @Security Bearer
// @Success 200 {object} Response{data=models.Director}
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /admin/directors/{id}/portrait [post]
func UploadDirectorPortrait(c *gin.Context) {
	id := c.Param("id")
	var director models.Director
	if err := models.DB.First(&director, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"code": http.StatusNotFound, "message": fmt.Sprintf("director %s does not exist", id)})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to load director", "error": err.Error()})
		}
		return
	}

	path, err := savePortrait(c, "directors")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": http.StatusBadRequest, "message": "failed to store portrait", "error": err.Error()})
		return
	}

	director.Picture = path
	if err := models.DB.Save(&director).Error; err != nil {
		utils.LogError(fmt.Sprintf("failed to save portrait for director %s", id), err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to save portrait", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "message": "portrait uploaded", "data": director})
}
