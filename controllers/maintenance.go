package controllers

import (
	"fmt"
	"net/http"

	"backend/config"
	"backend/models"
	"backend/services/activity"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// MaintenanceController toggles the read-only maintenance switch.
type MaintenanceController struct {
	activityService *activity.ActivityService
}

func NewMaintenanceController(activityService *activity.ActivityService) *MaintenanceController {
	return &MaintenanceController{activityService: activityService}
}

// GetMaintenanceStatus godoc
// @Summary      Maintenance mode status
// @Tags         Maintenance
// @Produce      json
// @Success      200 {object} map[string]bool
// @Router       /maintenance/status [get]
func (mc *MaintenanceController) GetMaintenanceStatus(c *gin.Context) {
	cfg := config.GetConfig()
	c.JSON(http.StatusOK, gin.H{
		"maintenance_mode": cfg.MaintenanceMode,
	})
}

// ToggleMaintenance godoc
// @Summary      Toggle maintenance mode
// @Description  Enables or disables maintenance mode (admin only)
// @Tags         Maintenance
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        request body object true "Request body" SchemaExample({"enabled": true})
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} map[string]string
// @Failure      403 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /admin/maintenance/toggle [post]
func (mc *MaintenanceController) ToggleMaintenance(c *gin.Context) {
	claims, exists := c.Get("claims")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "not authenticated",
		})
		return
	}

	userClaims, ok := claims.(jwt.MapClaims)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "invalid token claims",
		})
		return
	}

	userRole, ok := userClaims["role"].(string)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "invalid role claim",
		})
		return
	}

	if userRole != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "only administrators can toggle maintenance mode",
		})
		return
	}

	var req struct {
		Enabled bool `json:"enabled"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("invalid request body: %v", err),
		})
		return
	}

	if err := config.SetMaintenanceMode(req.Enabled); err != nil {
		utils.LogError("failed to persist maintenance mode", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": fmt.Sprintf("failed to set maintenance mode: %v", err),
		})
		return
	}

	mc.activityService.RecordActivity(models.ActivitySystem,
		fmt.Sprintf("maintenance mode set to %t", req.Enabled))

	c.JSON(http.StatusOK, gin.H{
		"message":          "maintenance mode updated",
		"maintenance_mode": req.Enabled,
	})
}
