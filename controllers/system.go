package controllers

import (
	"net/http"
	"time"

	"backend/models"

	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/net"
)

// CatalogStats counts every entity the catalog stores.
type CatalogStats struct {
	TotalMovies    int64 `json:"total_movies"`
	TotalSeries    int64 `json:"total_series"`
	TotalGenres    int64 `json:"total_genres"`
	TotalDirectors int64 `json:"total_directors"`
	TotalActors    int64 `json:"total_actors"`
	TotalComments  int64 `json:"total_comments"`
	TotalUsers     int64 `json:"total_users"`
}

type SystemStatus struct {
	CPUUsage      float64        `json:"cpuUsage"`
	MemoryTotal   uint64         `json:"memoryTotal"`
	MemoryUsed    uint64         `json:"memoryUsed"`
	MemoryUsage   float64        `json:"memoryUsage"`
	DiskTotal     uint64         `json:"diskTotal"`
	DiskUsed      uint64         `json:"diskUsed"`
	DiskUsage     float64        `json:"diskUsage"`
	NetworkStatus NetworkMetrics `json:"networkStatus"`
	Uptime        float64        `json:"uptime"`
}

type NetworkMetrics struct {
	RxBytes     uint64 `json:"rxBytes"`
	TxBytes     uint64 `json:"txBytes"`
	Connections int    `json:"connections"`
}

// GetCatalogStats godoc
// @Summary      Catalog statistics
// @Tags         System
// @Produce      json
// @Security     Bearer
// @Success      200 {object} Response{data=CatalogStats}
// @Router       /admin/stats [get]
func GetCatalogStats(c *gin.Context) {
	var stats CatalogStats

	models.DB.Model(&models.Movie{}).Count(&stats.TotalMovies)
	models.DB.Model(&models.Series{}).Count(&stats.TotalSeries)
	models.DB.Model(&models.Genre{}).Count(&stats.TotalGenres)
	models.DB.Model(&models.Director{}).Count(&stats.TotalDirectors)
	models.DB.Model(&models.Actor{}).Count(&stats.TotalActors)
	models.DB.Model(&models.Comment{}).Count(&stats.TotalComments)
	models.DB.Model(&models.User{}).Count(&stats.TotalUsers)

	c.JSON(http.StatusOK, Response{
		Code:    http.StatusOK,
		Message: "catalog statistics",
		Data:    stats,
	})
}

// GetSystemStatus godoc
// @Summary      Host status
// @Description  CPU, memory, disk, network and uptime of the host
// @Tags         System
// @Produce      json
// @Security     Bearer
// @Success      200 {object} Response{data=SystemStatus}
// @Router       /admin/system/status [get]
func GetSystemStatus(c *gin.Context) {
	status := SystemStatus{}

	if uptime, err := host.Uptime(); err == nil {
		status.Uptime = float64(uptime)
	}

	cpuPercent, err := cpu.Percent(time.Second, false)
	if err == nil && len(cpuPercent) > 0 {
		status.CPUUsage = cpuPercent[0]
	}

	if memInfo, err := mem.VirtualMemory(); err == nil {
		status.MemoryTotal = memInfo.Total
		status.MemoryUsed = memInfo.Used
		status.MemoryUsage = memInfo.UsedPercent
	}

	if diskInfo, err := disk.Usage("/"); err == nil {
		status.DiskTotal = diskInfo.Total
		status.DiskUsed = diskInfo.Used
		status.DiskUsage = diskInfo.UsedPercent
	}

	networkMetrics := NetworkMetrics{}
	if netStats, err := net.IOCounters(false); err == nil && len(netStats) > 0 {
		networkMetrics.RxBytes = netStats[0].BytesRecv
		networkMetrics.TxBytes = netStats[0].BytesSent
	}

	if connections, err := net.Connections("all"); err == nil {
		networkMetrics.Connections = len(connections)
	}

	status.NetworkStatus = networkMetrics

	c.JSON(http.StatusOK, Response{
		Code:    http.StatusOK,
		Message: "system status",
		Data:    status,
	})
}
