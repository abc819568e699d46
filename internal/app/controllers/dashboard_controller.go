package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hostelhive/hostelhive/internal/app/models/dto"
	"github.com/hostelhive/hostelhive/internal/app/services"
)

// DashboardController serves the dashboard summary
type DashboardController struct {
	dashboardService *services.DashboardService
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService *services.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// GetMetrics retrieves the dashboard summary
// @Summary Get dashboard metrics
// @Description Retrieves student, room, occupancy rate and fee counters plus the most recent check-ins
// @Tags dashboard
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.DashboardMetrics} "Metrics retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /dashboard [get]
func (c *DashboardController) GetMetrics(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.dashboardService.Metrics(),
		Timestamp: time.Now(),
	})
}
