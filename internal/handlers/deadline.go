package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/studytrack/studytrack/internal/services"
	"github.com/studytrack/studytrack/pkg/response"
	"gorm.io/gorm"
)

type DeadlineHandler struct {
	deadlineService *services.DeadlineService
}

func NewDeadlineHandler(db *gorm.DB) *DeadlineHandler {
	return &DeadlineHandler{
		deadlineService: services.NewDeadlineService(db),
	}
}

// List returns all deadlines, soonest first
// GET /api/deadlines
func (h *DeadlineHandler) List(c *gin.Context) {
	deadlines, err := h.deadlineService.List()
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, deadlines)
}

// ListUpcoming returns deadlines due within the next week
// GET /api/deadlines/upcoming
func (h *DeadlineHandler) ListUpcoming(c *gin.Context) {
	deadlines, err := h.deadlineService.ListUpcoming()
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, deadlines)
}

// GetByID returns a deadline by ID
// GET /api/deadlines/:id
func (h *DeadlineHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "deadline")
	if !ok {
		return
	}

	deadline, err := h.deadlineService.GetByID(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, deadline)
}

// Create creates a new deadline
// POST /api/deadlines
func (h *DeadlineHandler) Create(c *gin.Context) {
	var req services.DeadlineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	deadline, err := h.deadlineService.Create(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, deadline)
}

// Update updates a deadline
// PUT /api/deadlines/:id
func (h *DeadlineHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "deadline")
	if !ok {
		return
	}

	var req services.DeadlineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.deadlineService.Update(id, &req); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Delete removes a deadline
// DELETE /api/deadlines/:id
func (h *DeadlineHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "deadline")
	if !ok {
		return
	}

	if err := h.deadlineService.Delete(id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
