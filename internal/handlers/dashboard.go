package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/saladbowl/saladbowl-backend/internal/services"
)

type DashboardHandler struct {
	dashboardService services.DashboardService
}

func NewDashboardHandler(dashboardService services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (dh *DashboardHandler) Teacher(c *gin.Context) {
	RespondOK(c, dh.dashboardService.TeacherStats())
}

func (dh *DashboardHandler) Admin(c *gin.Context) {
	RespondOK(c, dh.dashboardService.AdminOverview(c.Request.Context()))
}
