package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/studytrack/studytrack/internal/services"
	"github.com/studytrack/studytrack/pkg/response"
	"gorm.io/gorm"
)

type ResultHandler struct {
	resultService *services.ResultService
}

func NewResultHandler(db *gorm.DB) *ResultHandler {
	return &ResultHandler{
		resultService: services.NewResultService(db),
	}
}

// List returns all results
// GET /api/results
func (h *ResultHandler) List(c *gin.Context) {
	results, err := h.resultService.List()
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, results)
}

// GetByID returns a result by ID
// GET /api/results/:id
func (h *ResultHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "result")
	if !ok {
		return
	}

	result, err := h.resultService.GetByID(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Create records a result for a task and student
// POST /api/results
func (h *ResultHandler) Create(c *gin.Context) {
	var req services.CreateResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.resultService.Create(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// Update updates a result
// PUT /api/results/:id
func (h *ResultHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "result")
	if !ok {
		return
	}

	var req services.UpdateResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.resultService.Update(id, &req); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Delete removes a result
// DELETE /api/results/:id
func (h *ResultHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "result")
	if !ok {
		return
	}

	if err := h.resultService.Delete(id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Toggle flips the assignee's result for a task
// POST /api/results/toggle/:taskId
func (h *ResultHandler) Toggle(c *gin.Context) {
	taskID, ok := parseIDParam(c, "taskId", "task")
	if !ok {
		return
	}

	result, err := h.resultService.Toggle(taskID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetStatus reports whether the assignee's result for a task is completed
// GET /api/results/status/:taskId
func (h *ResultHandler) GetStatus(c *gin.Context) {
	taskID, ok := parseIDParam(c, "taskId", "task")
	if !ok {
		return
	}

	done, err := h.resultService.GetStatus(taskID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"isCompleted": done})
}

// ListByStudent returns a student's results
// GET /api/results/student/:id
func (h *ResultHandler) ListByStudent(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "student")
	if !ok {
		return
	}

	results, err := h.resultService.ListByStudent(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, results)
}

// ListByTask returns a task's results
// GET /api/results/task/:id
func (h *ResultHandler) ListByTask(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "task")
	if !ok {
		return
	}

	results, err := h.resultService.ListByTask(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, results)
}
