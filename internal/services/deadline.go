package services

import (
	"errors"
	"time"

	"github.com/studytrack/studytrack/internal/models"
	"github.com/studytrack/studytrack/pkg/response"
	"gorm.io/gorm"
)

// upcomingWindow is how far ahead the upcoming-deadlines view looks.
const upcomingWindow = 7 * 24 * time.Hour

type DeadlineService struct {
	db *gorm.DB
}

func NewDeadlineService(db *gorm.DB) *DeadlineService {
	return &DeadlineService{db: db}
}

type DeadlineRequest struct {
	Title        string     `json:"title" binding:"required,max=200"`
	DueDate      time.Time  `json:"dueDate" binding:"required"`
	ReminderDate *time.Time `json:"reminderDate"`
	TaskID       *uint      `json:"taskId"`
	SubjectID    *uint      `json:"subjectId"`
	CreatedByID  *uint      `json:"createdById"`
}

func (s *DeadlineService) List() ([]models.Deadline, error) {
	var deadlines []models.Deadline
	err := s.db.
		Preload("Task").
		Preload("Subject").
		Order("due_date").
		Find(&deadlines).Error
	return deadlines, err
}

func (s *DeadlineService) GetByID(id uint) (*models.Deadline, error) {
	var deadline models.Deadline
	err := s.db.
		Preload("Task").
		Preload("Subject").
		First(&deadline, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("deadline not found")
		}
		return nil, err
	}
	return &deadline, nil
}

func (s *DeadlineService) Create(req *DeadlineRequest) (*models.Deadline, error) {
	deadline := models.Deadline{
		Title:        req.Title,
		DueDate:      req.DueDate,
		ReminderDate: req.ReminderDate,
		TaskID:       req.TaskID,
		SubjectID:    req.SubjectID,
		CreatedByID:  req.CreatedByID,
	}
	if err := s.db.Create(&deadline).Error; err != nil {
		return nil, err
	}
	return &deadline, nil
}

func (s *DeadlineService) Update(id uint, req *DeadlineRequest) error {
	var deadline models.Deadline
	if err := s.db.First(&deadline, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFound("deadline not found")
		}
		return err
	}

	deadline.Title = req.Title
	deadline.DueDate = req.DueDate
	deadline.TaskID = req.TaskID
	deadline.SubjectID = req.SubjectID
	if req.ReminderDate == nil || deadline.ReminderDate == nil ||
		!req.ReminderDate.Equal(*deadline.ReminderDate) {
		// Moving the reminder re-arms it.
		deadline.ReminderDate = req.ReminderDate
		deadline.Reminded = false
	}
	return s.db.Save(&deadline).Error
}

func (s *DeadlineService) Delete(id uint) error {
	res := s.db.Delete(&models.Deadline{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return response.NewNotFound("deadline not found")
	}
	return nil
}

// ListUpcoming returns deadlines due within the next seven days, soonest
// first. Past-due deadlines are excluded.
func (s *DeadlineService) ListUpcoming() ([]models.Deadline, error) {
	now := time.Now()
	var deadlines []models.Deadline
	err := s.db.
		Where("due_date >= ? AND due_date <= ?", now, now.Add(upcomingWindow)).
		Preload("Task").
		Preload("Subject").
		Order("due_date").
		Find(&deadlines).Error
	return deadlines, err
}
