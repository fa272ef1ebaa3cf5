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

// @Summary List age limits
// @Tags AgeLimits
// @Produce json
// @Security Bearer
// @Success 200 {object} Response{data=[]models.AgeLimit}
// @Failure 500 {object} Response
// @Router /admin/age_limits [get]
func GetAllAgeLimits(c *gin.Context) {
	var limits []models.AgeLimit
	if err := models.DB.Find(&limits).Error; err != nil {
		utils.LogError("failed to list age limits", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to list age limits", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "message": "age limits listed", "data": limits})
}

// @Summary Get an age limit
// @Tags AgeLimits
// @Produce json
// @Param id path int true "Age limit ID"
// @Security Bearer
// @Success 200 {object} Response{data=models.AgeLimit}
// @Failure 404 {object} Response
// @Router /admin/age_limits/{id} [get]
func GetAgeLimitByID(c *gin.Context) {
	id := c.Param("id")
	var limit models.AgeLimit
	if err := models.DB.First(&limit, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"code": http.StatusNotFound, "message": fmt.Sprintf("age limit %s does not exist", id)})
		} else {
			utils.LogError(fmt.Sprintf("failed to load age limit %s", id), err)
			c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to load age limit", "error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "message": "age limit loaded", "data": limit})
}

// @Summary Create an age limit
// @Tags AgeLimits
// @Accept json
// @Produce json
// @Param age_limit body models.AgeLimitRequest true "Age limit"
// @Security Bearer
// @Success 201 {object} Response{data=models.AgeLimit}
// @Failure 400 {object} Response
// @Router /admin/age_limits [post]
func CreateAgeLimit(c *gin.Context) {
	var req models.AgeLimitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": http.StatusBadRequest, "message": "invalid request body", "error": err.Error()})
		return
	}

	limit := models.AgeLimit{Title: req.Title, MinAge: req.MinAge}
	if err := models.DB.Create(&limit).Error; err != nil {
		utils.LogError("failed to create age limit", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to create age limit", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"code": http.StatusCreated, "message": "age limit created", "data": limit})
}

// @Summary Update an age limit
// @Tags AgeLimits
// @Accept json
// @Produce json
// @Param id path int true "Age limit ID"
// @Param age_limit body models.AgeLimitRequest true "Age limit"
// @Security Bearer
// @Success 200 {object} Response{data=models.AgeLimit}
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /admin/age_limits/{id} [put]
func UpdateAgeLimit(c *gin.Context) {
	id := c.Param("id")
	var limit models.AgeLimit
	if err := models.DB.First(&limit, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"code": http.StatusNotFound, "message": fmt.Sprintf("age limit %s does not exist", id)})
		} else {
			utils.LogError(fmt.Sprintf("failed to load age limit %s", id), err)
			c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to update age limit", "error": err.Error()})
		}
		return
	}

	var req models.AgeLimitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": http.StatusBadRequest, "message": "invalid request body", "error": err.Error()})
		return
	}

	limit.Title = req.Title
	limit.MinAge = req.MinAge
	if err := models.DB.Save(&limit).Error; err != nil {
		utils.LogError(fmt.Sprintf("failed to update age limit %s", id), err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to update age limit", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "message": "age limit updated", "data": limit})
}

// @Summary Delete an age limit
// @Tags AgeLimits
// @Produce json
// @Param id path int true "Age limit ID"
// @Security Bearer
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /admin/age_limits/{id} [delete]
func DeleteAgeLimit(c *gin.Context) {
	id := c.Param("id")
	var limit models.AgeLimit
	if err := models.DB.First(&limit, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"code": http.StatusNotFound, "message": fmt.Sprintf("age limit %s does not exist", id)})
		} else {
			utils.LogError(fmt.Sprintf("failed to load age limit %s", id), err)
			c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to delete age limit", "error": err.Error()})
		}
		return
	}

	if err := models.DB.Unscoped().Delete(&limit).Error; err != nil {
		utils.LogError(fmt.Sprintf("failed to delete age limit %s", id), err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to delete age limit", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "message": "age limit deleted"})
}
