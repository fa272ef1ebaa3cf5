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

// @Summary List platforms
// @Tags Platforms
// @Produce json
// @Security Bearer
// @Success 200 {object} Response{data=[]models.Platform}
// @Failure 500 {object} Response
// @Router /admin/platforms [get]
func GetAllPlatforms(c *gin.Context) {
	var platforms []models.Platform
	if err := models.DB.Find(&platforms).Error; err != nil {
		utils.LogError("failed to list platforms", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to list platforms", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "message": "platforms listed", "data": platforms})
}

// @Summary Get a platform
// @Tags Platforms
// @Produce json
// @Param id path int true "Platform ID"
// @Security Bearer
// @Success 200 {object} Response{data=models.Platform}
// @Failure 404 {object} Response
// @Router /admin/platforms/{id} [get]
func GetPlatformByID(c *gin.Context) {
	id := c.Param("id")
	var platform models.Platform
	if err := models.DB.First(&platform, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"code": http.StatusNotFound, "message": fmt.Sprintf("platform %s does not exist", id)})
		} else {
			utils.LogError(fmt.Sprintf("failed to load platform %s", id), err)
			c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to load platform", "error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "message": "platform loaded", "data": platform})
}

// @Summary Create a platform
// @Tags Platforms
// @Accept json
// @Produce json
// @Param platform body models.PlatformRequest true "Platform"
// @Security Bearer
// @Success 201 {object} Response{data=models.Platform}
// @Failure 400 {object} Response
// @Failure 409 {object} Response
// @Router /admin/platforms [post]
func CreatePlatform(c *gin.Context) {
	var req models.PlatformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": http.StatusBadRequest, "message": "invalid request body", "error": err.Error()})
		return
	}

	platform := models.Platform{Title: req.Title}
	if err := models.DB.Create(&platform).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"code": http.StatusConflict, "message": fmt.Sprintf("a platform with slug %q already exists", platform.Slug)})
			return
		}
		utils.LogError("failed to create platform", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to create platform", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"code": http.StatusCreated, "message": "platform created", "data": platform})
}

// @Summary Update a platform
// @Tags Platforms
// @Accept json
// @Produce json
// @Param id path int true "Platform ID"
// @Param platform body models.PlatformRequest true "Platform"
// @Security Bearer
// @Success 200 {object} Response{data=models.Platform}
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Failure 409 {object} Response
// @Router /admin/platforms/{id} [put]
func UpdatePlatform(c *gin.Context) {
	id := c.Param("id")
	var platform models.Platform
	if err := models.DB.First(&platform, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"code": http.StatusNotFound, "message": fmt.Sprintf("platform %s does not exist", id)})
		} else {
			utils.LogError(fmt.Sprintf("failed to load platform %s", id), err)
			c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to update platform", "error": err.Error()})
		}
		return
	}

	var req models.PlatformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": http.StatusBadRequest, "message": "invalid request body", "error": err.Error()})
		return
	}

	platform.Title = req.Title
	if err := models.DB.Save(&platform).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"code": http.StatusConflict, "message": fmt.Sprintf("a platform with slug %q already exists", platform.Slug)})
			return
		}
		utils.LogError(fmt.Sprintf("failed to update platform %s", id), err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to update platform", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "message": "platform updated", "data": platform})
}

// @Summary Delete a platform
// @Tags Platforms
// @Produce json
// @Param id path int true "Platform ID"
// @Security Bearer
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /admin/platforms/{id} [delete]
func DeletePlatform(c *gin.Context) {
	id := c.Param("id")
	var platform models.Platform
	if err := models.DB.First(&platform, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"code": http.StatusNotFound, "message": fmt.Sprintf("platform %s does not exist", id)})
		} else {
			utils.LogError(fmt.Sprintf("failed to load platform %s", id), err)
			c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to delete platform", "error": err.Error()})
		}
		return
	}

	if err := models.DB.Unscoped().Delete(&platform).Error; err != nil {
		utils.LogError(fmt.Sprintf("failed to delete platform %s", id), err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to delete platform", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "message": "platform deleted"})
}
