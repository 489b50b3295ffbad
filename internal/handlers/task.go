package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/studytrack/studytrack/internal/services"
	"github.com/studytrack/studytrack/pkg/response"
	"gorm.io/gorm"
)

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(db *gorm.DB) *TaskHandler {
	return &TaskHandler{
		taskService: services.NewTaskService(db),
	}
}

// List returns all tasks
// GET /api/tasks
func (h *TaskHandler) List(c *gin.Context) {
	tasks, err := h.taskService.List()
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, tasks)
}

// GetByID returns a task with its subject, assignee and prerequisites
// GET /api/tasks/:id
func (h *TaskHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "task")
	if !ok {
		return
	}

	task, err := h.taskService.GetByID(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, task)
}

// Create creates a new task
// POST /api/tasks
func (h *TaskHandler) Create(c *gin.Context) {
	var req services.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	task, err := h.taskService.Create(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, task)
}

// Update updates a task's editable fields. The body id must match the path.
// PUT /api/tasks/:id
func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "task")
	if !ok {
		return
	}

	var req services.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if req.ID != 0 && req.ID != id {
		response.BadRequest(c, "task id in body does not match the path")
		return
	}

	if err := h.taskService.Update(id, &req); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Delete removes a task with its results and prerequisite links
// DELETE /api/tasks/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "task")
	if !ok {
		return
	}

	if err := h.taskService.Delete(id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Toggle flips the task's completion flag
// POST /api/tasks/:id/toggle
func (h *TaskHandler) Toggle(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "task")
	if !ok {
		return
	}

	task, err := h.taskService.Toggle(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, task)
}

// GetStatus reports the task's completion flag
// GET /api/tasks/:id/status
func (h *TaskHandler) GetStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "task")
	if !ok {
		return
	}

	done, err := h.taskService.GetStatus(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"isCompleted": done})
}

// Assign sets the task's assignee
// POST /api/tasks/:id/assign/:studentId
func (h *TaskHandler) Assign(c *gin.Context) {
	taskID, ok := parseIDParam(c, "id", "task")
	if !ok {
		return
	}
	studentID, ok := parseIDParam(c, "studentId", "student")
	if !ok {
		return
	}

	if err := h.taskService.Assign(taskID, studentID); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// ListByStudent returns a student's assigned tasks
// GET /api/tasks/student/:id
func (h *TaskHandler) ListByStudent(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "student")
	if !ok {
		return
	}

	tasks, err := h.taskService.ListByStudent(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, tasks)
}

// ListByTeam returns a team's tagged tasks
// GET /api/tasks/team/:id
func (h *TaskHandler) ListByTeam(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "team")
	if !ok {
		return
	}

	tasks, err := h.taskService.ListByTeam(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, tasks)
}
