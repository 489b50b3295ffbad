package services

import (
	"errors"
	"time"

	"github.com/studytrack/studytrack/internal/models"
	"github.com/studytrack/studytrack/pkg/response"
	"gorm.io/gorm"
)

type ResultService struct {
	db *gorm.DB
}

func NewResultService(db *gorm.DB) *ResultService {
	return &ResultService{db: db}
}

type CreateResultRequest struct {
	TaskID      uint   `json:"taskId" binding:"required"`
	StudentID   uint   `json:"studentId" binding:"required"`
	IsCompleted bool   `json:"isCompleted"`
	Grade       *int   `json:"grade"`
	Comment     string `json:"comment"`
}

type UpdateResultRequest struct {
	IsCompleted bool   `json:"isCompleted"`
	Grade       *int   `json:"grade"`
	Comment     string `json:"comment"`
}

func (s *ResultService) List() ([]models.Result, error) {
	var results []models.Result
	err := s.db.Order("created_at").Find(&results).Error
	return results, err
}

func (s *ResultService) GetByID(id uint) (*models.Result, error) {
	var result models.Result
	if err := s.db.First(&result, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("result not found")
		}
		return nil, err
	}
	return &result, nil
}

// Create records a result for a (task, student) pair. At most one result per
// pair may exist; a second create is a conflict and leaves the first intact.
func (s *ResultService) Create(req *CreateResultRequest) (*models.Result, error) {
	var count int64
	if err := s.db.Model(&models.Task{}).Where("id = ?", req.TaskID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, response.NewBadRequest("unknown task")
	}
	if err := s.db.Model(&models.Student{}).Where("id = ?", req.StudentID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, response.NewBadRequest("unknown student")
	}

	if err := s.db.Model(&models.Result{}).
		Where("task_id = ? AND student_id = ?", req.TaskID, req.StudentID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, response.NewConflict("result already exists for this task and student")
	}

	result := models.Result{
		TaskID:      req.TaskID,
		StudentID:   req.StudentID,
		IsCompleted: req.IsCompleted,
		Grade:       req.Grade,
		Comment:     req.Comment,
	}
	if result.IsCompleted {
		now := time.Now()
		result.CompletedAt = &now
	}
	if err := s.db.Create(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *ResultService) Update(id uint, req *UpdateResultRequest) error {
	var result models.Result
	if err := s.db.First(&result, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFound("result not found")
		}
		return err
	}

	result.Grade = req.Grade
	result.Comment = req.Comment
	if req.IsCompleted != result.IsCompleted {
		result.IsCompleted = req.IsCompleted
		if result.IsCompleted {
			now := time.Now()
			result.CompletedAt = &now
		} else {
			result.CompletedAt = nil
		}
	}
	return s.db.Save(&result).Error
}

func (s *ResultService) Delete(id uint) error {
	res := s.db.Delete(&models.Result{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return response.NewNotFound("result not found")
	}
	return nil
}

// Toggle flips the completion flag of the assignee's result for a task,
// creating the result row on first use. Tasks without an assignee cannot be
// toggled, and a result cannot be completed while the task still has
// incomplete prerequisites.
func (s *ResultService) Toggle(taskID uint) (*models.Result, error) {
	var task models.Task
	if err := s.db.Preload("Prerequisites").First(&task, taskID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("task not found")
		}
		return nil, err
	}
	if task.AssignedStudentID == nil {
		return nil, response.NewBadRequest("task has no assigned student")
	}

	var result models.Result
	err := s.db.Where("task_id = ? AND student_id = ?", taskID, *task.AssignedStudentID).
		First(&result).Error
	missing := errors.Is(err, gorm.ErrRecordNotFound)
	if err != nil && !missing {
		return nil, err
	}

	// The flip marks the work item complete unless a row already records it
	// as complete, so the same prerequisite gate as the task toggle applies.
	if missing || !result.IsCompleted {
		for _, prereq := range task.Prerequisites {
			if !prereq.IsCompleted {
				return nil, response.NewBadRequest("task has incomplete prerequisites")
			}
		}
	}

	if missing {
		result = models.Result{TaskID: taskID, StudentID: *task.AssignedStudentID}
		if err := s.db.Create(&result).Error; err != nil {
			return nil, err
		}
	}

	result.IsCompleted = !result.IsCompleted
	if result.IsCompleted {
		now := time.Now()
		result.CompletedAt = &now
	} else {
		result.CompletedAt = nil
	}
	if err := s.db.Save(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

// GetStatus reports whether the assignee's result for a task is completed.
// A missing result row reads as not completed.
func (s *ResultService) GetStatus(taskID uint) (bool, error) {
	var task models.Task
	if err := s.db.First(&task, taskID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, response.NewNotFound("task not found")
		}
		return false, err
	}
	if task.AssignedStudentID == nil {
		return false, nil
	}

	var result models.Result
	err := s.db.Where("task_id = ? AND student_id = ?", taskID, *task.AssignedStudentID).
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return result.IsCompleted, nil
}

func (s *ResultService) ListByStudent(studentID uint) ([]models.Result, error) {
	var results []models.Result
	err := s.db.Where("student_id = ?", studentID).Find(&results).Error
	return results, err
}

func (s *ResultService) ListByTask(taskID uint) ([]models.Result, error) {
	var results []models.Result
	err := s.db.Where("task_id = ?", taskID).Find(&results).Error
	return results, err
}
