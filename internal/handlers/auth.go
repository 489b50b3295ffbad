package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/studytrack/studytrack/internal/config"
	"github.com/studytrack/studytrack/internal/middleware"
	"github.com/studytrack/studytrack/internal/services"
	"github.com/studytrack/studytrack/pkg/response"
	"gorm.io/gorm"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: services.NewAuthService(db, &cfg.JWT),
	}
}

// Register creates a student account and signs it in
// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.authService.Register(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	// Registering signs the student in, so it answers like a login.
	response.Success(c, resp)
}

// Login authenticates a student
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, resp)
}

// Profile returns the authenticated student's profile
// GET /api/auth/profile
func (h *AuthHandler) Profile(c *gin.Context) {
	profile, err := h.authService.GetProfile(middleware.GetStudentID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, profile)
}
