package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/studytrack/studytrack/internal/services"
	"github.com/studytrack/studytrack/pkg/response"
	"gorm.io/gorm"
)

type SubjectHandler struct {
	subjectService *services.SubjectService
}

func NewSubjectHandler(db *gorm.DB) *SubjectHandler {
	return &SubjectHandler{
		subjectService: services.NewSubjectService(db),
	}
}

// List returns all subjects
// GET /api/subjects
func (h *SubjectHandler) List(c *gin.Context) {
	subjects, err := h.subjectService.List()
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, subjects)
}

// GetByID returns a subject by ID
// GET /api/subjects/:id
func (h *SubjectHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "subject")
	if !ok {
		return
	}

	subject, err := h.subjectService.GetByID(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, subject)
}

// Create creates a new subject
// POST /api/subjects
func (h *SubjectHandler) Create(c *gin.Context) {
	var req services.SubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	subject, err := h.subjectService.Create(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, subject)
}

// Update updates a subject
// PUT /api/subjects/:id
func (h *SubjectHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "subject")
	if !ok {
		return
	}

	var req services.SubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.subjectService.Update(id, &req); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Delete removes a subject, detaching its tasks
// DELETE /api/subjects/:id
func (h *SubjectHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "subject")
	if !ok {
		return
	}

	if err := h.subjectService.Delete(id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
