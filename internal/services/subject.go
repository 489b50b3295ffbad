package services

import (
	"errors"

	"github.com/studytrack/studytrack/internal/models"
	"github.com/studytrack/studytrack/pkg/response"
	"gorm.io/gorm"
)

type SubjectService struct {
	db *gorm.DB
}

func NewSubjectService(db *gorm.DB) *SubjectService {
	return &SubjectService{db: db}
}

type SubjectRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=500"`
}

func (s *SubjectService) List() ([]models.Subject, error) {
	var subjects []models.Subject
	if err := s.db.Order("name").Find(&subjects).Error; err != nil {
		return nil, err
	}
	return subjects, nil
}

func (s *SubjectService) GetByID(id uint) (*models.Subject, error) {
	var subject models.Subject
	if err := s.db.First(&subject, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("subject not found")
		}
		return nil, err
	}
	return &subject, nil
}

func (s *SubjectService) Create(req *SubjectRequest) (*models.Subject, error) {
	subject := models.Subject{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.db.Create(&subject).Error; err != nil {
		return nil, err
	}
	return &subject, nil
}

func (s *SubjectService) Update(id uint, req *SubjectRequest) error {
	var subject models.Subject
	if err := s.db.First(&subject, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFound("subject not found")
		}
		return err
	}

	subject.Name = req.Name
	subject.Description = req.Description
	return s.db.Save(&subject).Error
}

// Delete removes a subject and detaches its tasks (subjectId becomes null)
// rather than cascading into them.
func (s *SubjectService) Delete(id uint) error {
	var subject models.Subject
	if err := s.db.First(&subject, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFound("subject not found")
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Task{}).Where("subject_id = ?", id).Update("subject_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&subject).Error
	})
}
