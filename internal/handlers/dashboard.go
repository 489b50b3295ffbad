package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/studytrack/studytrack/internal/middleware"
	"github.com/studytrack/studytrack/internal/services"
	"github.com/studytrack/studytrack/pkg/response"
	"gorm.io/gorm"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
}

func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: services.NewDashboardService(db),
	}
}

// GetStats returns the authenticated student's progress overview
// GET /api/dashboard/stats
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboardService.GetStats(middleware.GetStudentID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, stats)
}
