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

// @Summary List countries
// @Tags Countries
// @Produce json
// @Security Bearer
// @Success 200 {object} Response{data=[]models.Country}
// @Failure 500 {object} Response
// @Router /admin/countries [get]
func GetAllCountries(c *gin.Context) {
	var countries []models.Country
	if err := models.DB.Find(&countries).Error; err != nil {
		utils.LogError("failed to list countries", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to list countries", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "message": "countries listed", "data": countries})
}

// @Summary Get a country
// @Tags Countries
// @Produce json
// @Param id path int true "Country ID"
// @Security Bearer
// @Success 200 {object} Response{data=models.Country}
// @Failure 404 {object} Response
// @Router /admin/countries/{id} [get]
func GetCountryByID(c *gin.Context) {
	id := c.Param("id")
	var country models.Country
	if err := models.DB.First(&country, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"code": http.StatusNotFound, "message": fmt.Sprintf("country %s does not exist", id)})
		} else {
			utils.LogError(fmt.Sprintf("failed to load country %s", id), err)
			c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to load country", "error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "message": "country loaded", "data": country})
}

// @Summary Create a country
// @Tags Countries
// @Accept json
// @Produce json
// @Param country body models.CountryRequest true "Country"
// @Security Bearer
// @Success 201 {object} Response{data=models.Country}
// @Failure 400 {object} Response
// @Failure 409 {object} Response
// @Router /admin/countries [post]
func CreateCountry(c *gin.Context) {
	var req models.CountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": http.StatusBadRequest, "message": "invalid request body", "error": err.Error()})
		return
	}

	country := models.Country{Name: req.Name}
	if err := models.DB.Create(&country).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"code": http.StatusConflict, "message": fmt.Sprintf("a country with slug %q already exists", country.Slug)})
			return
		}
		utils.LogError("failed to create country", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to create country", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"code": http.StatusCreated, "message": "country created", "data": country})
}

// @Summary Update a country
// @Tags Countries
// @Accept json
// @Produce json
// @Param id path int true "Country ID"
// @Param country body models.CountryRequest true "Country"
// @Security Bearer
// @Success 200 {object} Response{data=models.Country}
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Failure 409 {object} Response
// @Router /admin/countries/{id} [put]
func UpdateCountry(c *gin.Context) {
	id := c.Param("id")
	var country models.Country
	if err := models.DB.First(&country, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"code": http.StatusNotFound, "message": fmt.Sprintf("country %s does not exist", id)})
		} else {
			utils.LogError(fmt.Sprintf("failed to load country %s", id), err)
			c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to update country", "error": err.Error()})
		}
		return
	}

	var req models.CountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": http.StatusBadRequest, "message": "invalid request body", "error": err.Error()})
		return
	}

	country.Name = req.Name
	if err := models.DB.Save(&country).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"code": http.StatusConflict, "message": fmt.Sprintf("a country with slug %q already exists", country.Slug)})
			return
		}
		utils.LogError(fmt.Sprintf("failed to update country %s", id), err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to update country", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "message": "country updated", "data": country})
}

// @Summary Delete a country
// @Tags Countries
// @Produce json
// @Param id path int true "Country ID"
// @Security Bearer
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /admin/countries/{id} [delete]
func DeleteCountry(c *gin.Context) {
	id := c.Param("id")
	var country models.Country
	if err := models.DB.First(&country, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"code": http.StatusNotFound, "message": fmt.Sprintf("country %s does not exist", id)})
		} else {
			utils.LogError(fmt.Sprintf("failed to load country %s", id), err)
			c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to delete country", "error": err.Error()})
		}
		return
	}

	err := models.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM movie_countries WHERE country_id = ?", country.ID).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM series_countries WHERE country_id = ?", country.ID).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&country).Error
	})
	if err != nil {
		utils.LogError(fmt.Sprintf("failed to delete country %s", id), err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to delete country", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "message": "country deleted"})
}
