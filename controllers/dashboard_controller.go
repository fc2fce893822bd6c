package controllers

import (
	"net/http"

	"github.com/msherazsadiq/Healthify/services"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Dashboard *services.DashboardService
}

func NewDashboardController(dashboard *services.DashboardService) *DashboardController {
	return &DashboardController{Dashboard: dashboard}
}

func (dc *DashboardController) GetDashboard(c *gin.Context) {
	userID := c.GetUint("userID")

	snapshot, err := dc.Dashboard.Snapshot(userID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, snapshot)
}
