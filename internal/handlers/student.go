package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/studytrack/studytrack/internal/services"
	"github.com/studytrack/studytrack/pkg/response"
	"gorm.io/gorm"
)

type StudentHandler struct {
	studentService *services.StudentService
}

func NewStudentHandler(db *gorm.DB) *StudentHandler {
	return &StudentHandler{
		studentService: services.NewStudentService(db),
	}
}

// List returns all students
// GET /api/students
func (h *StudentHandler) List(c *gin.Context) {
	students, err := h.studentService.List()
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, students)
}

// GetByID returns a student by ID
// GET /api/students/:id
func (h *StudentHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid student id")
		return
	}

	student, err := h.studentService.GetByID(uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, student)
}
