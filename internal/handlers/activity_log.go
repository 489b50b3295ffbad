package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/studytrack/studytrack/internal/services"
	"github.com/studytrack/studytrack/pkg/response"
	"gorm.io/gorm"
)

type ActivityLogHandler struct {
	logService *services.ActivityLogService
}

func NewActivityLogHandler(db *gorm.DB) *ActivityLogHandler {
	return &ActivityLogHandler{
		logService: services.NewActivityLogService(db),
	}
}

// List returns paginated activity log entries
// GET /api/activity-logs
func (h *ActivityLogHandler) List(c *gin.Context) {
	var req services.ActivityLogListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.logService.List(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, resp)
}
