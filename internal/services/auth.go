package services

import (
	"errors"

	"github.com/studytrack/studytrack/internal/config"
	"github.com/studytrack/studytrack/internal/models"
	"github.com/studytrack/studytrack/internal/utils"
	"github.com/studytrack/studytrack/pkg/response"
	"gorm.io/gorm"
)

type AuthService struct {
	db        *gorm.DB
	jwtConfig *config.JWTConfig
}

func NewAuthService(db *gorm.DB, jwtCfg *config.JWTConfig) *AuthService {
	return &AuthService{db: db, jwtConfig: jwtCfg}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email,max=100"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"omitempty,oneof=TeamLead Developer Designer Tester Analyst"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// StudentProfile is the public view of a student returned by auth endpoints.
type StudentProfile struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Role     string  `json:"role"`
	TeamID   *uint   `json:"teamId"`
	TeamName *string `json:"teamName,omitempty"`
}

type AuthResponse struct {
	Token   string          `json:"token"`
	Student *StudentProfile `json:"student"`
}

// Register creates a new student account and signs them in.
func (s *AuthService) Register(req *RegisterRequest) (*AuthResponse, error) {
	var count int64
	if err := s.db.Model(&models.Student{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, response.NewConflict("a student with this email already exists")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = models.RoleDeveloper
	}

	student := models.Student{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.db.Create(&student).Error; err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(student.ID, student.Name, student.Email, student.Role, s.jwtConfig.ExpireHour)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{Token: token, Student: s.profileOf(&student)}, nil
}

// Login authenticates by email and password. The error is the same whether
// the email is unknown or the password is wrong, so accounts cannot be
// enumerated through this endpoint.
func (s *AuthService) Login(req *LoginRequest) (*AuthResponse, error) {
	var student models.Student
	err := s.db.Preload("Team").Where("email = ?", req.Email).First(&student).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewUnauthorized("invalid email or password")
		}
		return nil, err
	}

	if !utils.CheckPassword(req.Password, student.PasswordHash) {
		return nil, response.NewUnauthorized("invalid email or password")
	}

	token, err := utils.GenerateToken(student.ID, student.Name, student.Email, student.Role, s.jwtConfig.ExpireHour)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{Token: token, Student: s.profileOf(&student)}, nil
}

// GetProfile returns the profile for the authenticated student.
func (s *AuthService) GetProfile(studentID uint) (*StudentProfile, error) {
	var student models.Student
	err := s.db.Preload("Team").First(&student, studentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("student not found")
		}
		return nil, err
	}
	return s.profileOf(&student), nil
}

func (s *AuthService) profileOf(student *models.Student) *StudentProfile {
	profile := &StudentProfile{
		ID:     student.ID,
		Name:   student.Name,
		Email:  student.Email,
		Role:   student.Role,
		TeamID: student.TeamID,
	}
	if student.Team != nil {
		profile.TeamName = &student.Team.Name
	}
	return profile
}
