package services

import (
	"errors"

	"github.com/studytrack/studytrack/internal/models"
	"github.com/studytrack/studytrack/pkg/response"
	"gorm.io/gorm"
)

// StudentService exposes public student profiles; account mutation goes
// through the auth and team services.
type StudentService struct {
	db *gorm.DB
}

func NewStudentService(db *gorm.DB) *StudentService {
	return &StudentService{db: db}
}

func (s *StudentService) List() ([]models.Student, error) {
	var students []models.Student
	if err := s.db.Order("name").Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}

func (s *StudentService) GetByID(id uint) (*models.Student, error) {
	var student models.Student
	if err := s.db.First(&student, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("student not found")
		}
		return nil, err
	}
	return &student, nil
}
