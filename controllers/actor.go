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

// @Summary List actors
// @Tags Actors
// @Produce json
// @Security Bearer
// @Success 200 {object} Response{data=[]models.Actor}
// @Failure 500 {object} Response
// @Router /admin/actors [get]
func GetAllActors(c *gin.Context) {
	var actors []models.Actor
	if err := models.DB.Find(&actors).Error; err != nil {
		utils.LogError("failed to list actors", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to list actors", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "message": "actors listed", "data": actors})
}

// @Summary Get an actor
// @Tags Actors
// @Produce json
// @Param id path int true "Actor ID"
// @Security Bearer
// @Success 200 {object} Response{data=models.Actor}
// @Failure 404 {object} Response
// @Router /admin/actors/{id} [get]
func GetActorByID(c *gin.Context) {
	id := c.Param("id")
	var actor models.Actor
	if err := models.DB.First(&actor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"code": http.StatusNotFound, "message": fmt.Sprintf("actor %s does not exist", id)})
		} else {
			utils.LogError(fmt.Sprintf("failed to load actor %s", id), err)
			c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to load actor", "error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "message": "actor loaded", "data": actor})
}

// @Summary Create an actor
// @Tags Actors
// @Accept json
// @Produce json
// @Param actor body models.ActorRequest true "Actor"
// @Security Bearer
// @Success 201 {object} Response{data=models.Actor}
// @Failure 400 {object} Response
// @Failure 409 {object} Response
// @Router /admin/actors [post]
func CreateActor(c *gin.Context) {
	var req models.ActorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": http.StatusBadRequest, "message": "invalid request body", "error": err.Error()})
		return
	}

	actor := models.Actor{
		FullName:    req.FullName,
		Prizes:      req.Prizes,
		Age:         req.Age,
		BornPlace:   req.BornPlace,
		Nationality: req.Nationality,
		Bio:         req.Bio,
	}
	if err := models.DB.Create(&actor).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"code": http.StatusConflict, "message": fmt.Sprintf("an actor with slug %q already exists", actor.Slug)})
			return
		}
		utils.LogError("failed to create actor", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to create actor", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"code": http.StatusCreated, "message": "actor created", "data": actor})
}

// @Summary Update an actor
// @Tags Actors
// @Accept json
// @Produce json
// @Param id path int true "Actor ID"
// @Param actor body models.ActorRequest true "Actor"
// @Security Bearer
// @Success 200 {object} Response{data=models.Actor}
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Failure 409 {object} Response
// @Router /admin/actors/{id} [put]
func UpdateActor(c *gin.Context) {
	id := c.Param("id")
	var actor models.Actor
	if err := models.DB.First(&actor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"code": http.StatusNotFound, "message": fmt.Sprintf("actor %s does not exist", id)})
		} else {
			utils.LogError(fmt.Sprintf("failed to load actor %s", id), err)
			c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to update actor", "error": err.Error()})
		}
		return
	}

	var req models.ActorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": http.StatusBadRequest, "message": "invalid request body", "error": err.Error()})
		return
	}

	actor.FullName = req.FullName
	actor.Prizes = req.Prizes
	actor.Age = req.Age
	actor.BornPlace = req.BornPlace
	actor.Nationality = req.Nationality
	actor.Bio = req.Bio

	if err := models.DB.Save(&actor).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"code": http.StatusConflict, "message": fmt.Sprintf("an actor with slug %q already exists", actor.Slug)})
			return
		}
		utils.LogError(fmt.Sprintf("failed to update actor %s", id), err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to update actor", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "message": "actor updated", "data": actor})
}

// @Summary Delete an actor
// @Tags Actors
// @Produce json
// @Param id path int true "Actor ID"
// @Security Bearer
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /admin/actors/{id} [delete]
func DeleteActor(c *gin.Context) {
	id := c.Param("id")
	var actor models.Actor
	if err := models.DB.First(&actor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"code": http.StatusNotFound, "message": fmt.Sprintf("actor %s does not exist", id)})
		} else {
			utils.LogError(fmt.Sprintf("failed to load actor %s", id), err)
			c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to delete actor", "error": err.Error()})
		}
		return
	}

	err := models.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM movie_actors WHERE actor_id = ?", actor.ID).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM series_actors WHERE actor_id = ?", actor.ID).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&actor).Error
	})
	if err != nil {
		utils.LogError(fmt.Sprintf("failed to delete actor %s", id), err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to delete actor", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "message": "actor deleted"})
}

// @Summary Upload an actor portrait
// @Tags Actors
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Actor ID"
// @Param portrait formData file true "Portrait image"
// @Security Bearer
// @Success 200 {object} Response{data=models.Actor}
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /admin/actors/{id}/portrait [post]
func UploadActorPortrait(c *gin.Context) {
	id := c.Param("id")
	var actor models.Actor
	if err := models.DB.First(&actor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"code": http.StatusNotFound, "message": fmt.Sprintf("actor %s does not exist", id)})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to load actor", "error": err.Error()})
		}
		return
	}

	path, err := savePortrait(c, "actors")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": http.StatusBadRequest, "message": "failed to store portrait", "error": err.Error()})
		return
	}

	actor.Picture = path
	if err := models.DB.Save(&actor).Error; err != nil {
		utils.LogError(fmt.Sprintf("failed to save portrait for actor %s", id), err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to save portrait", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "message": "portrait uploaded", "data": actor})
}
