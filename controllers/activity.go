package controllers

import (
	"net/http"
	"strconv"

	"backend/services/activity"

	"github.com/gin-gonic/gin"
)

type ActivityController struct {
	activityService *activity.ActivityService
}

func NewActivityController(activityService *activity.ActivityService) *ActivityController {
	return &ActivityController{
		activityService: activityService,
	}
}

// GetRecentActivities godoc
// @Summary      Recent admin activity
// @Description  Newest audit trail entries for the administrative surface
// @Tags         System
// @Produce      json
// @Param        limit  query    int     false  "Number of entries (default 20)"  minimum(1) maximum(100)
// @Security     Bearer
// @Success      200    {object} Response{data=[]models.Activity}
// @Failure      500    {object} Response
// @Router       /admin/activities [get]
func (ac *ActivityController) GetRecentActivities(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", "20")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	activities, err := ac.activityService.GetRecentActivities(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, Response{Code: http.StatusInternalServerError, Error: "failed to load activities"})
		return
	}

	c.JSON(http.StatusOK, Response{Code: http.StatusOK, Data: activities})
}
