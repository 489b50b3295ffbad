package services

import (
	"errors"
	"time"

	"github.com/studytrack/studytrack/internal/models"
	"github.com/studytrack/studytrack/pkg/response"
	"gorm.io/gorm"
)

type TaskService struct {
	db *gorm.DB
}

func NewTaskService(db *gorm.DB) *TaskService {
	return &TaskService{db: db}
}

type CreateTaskRequest struct {
	Title             string     `json:"title" binding:"required,max=200"`
	Description       string     `json:"description"`
	Deadline          *time.Time `json:"deadline"`
	SubjectID         *uint      `json:"subjectId"`
	AssignedStudentID *uint      `json:"assignedStudentId"`
	TeamID            *uint      `json:"teamId"`
	PrerequisiteIDs   []uint     `json:"prerequisiteIds"`
}

type UpdateTaskRequest struct {
	ID                uint       `json:"id"`
	Title             string     `json:"title" binding:"required,max=200"`
	Description       string     `json:"description"`
	Deadline          *time.Time `json:"deadline"`
	SubjectID         *uint      `json:"subjectId"`
	AssignedStudentID *uint      `json:"assignedStudentId"`
	PrerequisiteIDs   []uint     `json:"prerequisiteIds"`
}

func (s *TaskService) List() ([]models.Task, error) {
	var tasks []models.Task
	err := s.db.
		Preload("Subject").
		Preload("AssignedStudent").
		Order("created_at").
		Find(&tasks).Error
	return tasks, err
}

func (s *TaskService) GetByID(id uint) (*models.Task, error) {
	var task models.Task
	err := s.db.
		Preload("Subject").
		Preload("AssignedStudent").
		Preload("Prerequisites").
		First(&task, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("task not found")
		}
		return nil, err
	}
	return &task, nil
}

func (s *TaskService) Create(req *CreateTaskRequest) (*models.Task, error) {
	task := models.Task{
		Title:             req.Title,
		Description:       req.Description,
		Deadline:          req.Deadline,
		SubjectID:         req.SubjectID,
		AssignedStudentID: req.AssignedStudentID,
		TeamID:            req.TeamID,
		IsCompleted:       false,
	}
	if err := s.db.Create(&task).Error; err != nil {
		return nil, err
	}

	if len(req.PrerequisiteIDs) > 0 {
		if err := s.setPrerequisites(&task, req.PrerequisiteIDs); err != nil {
			return nil, err
		}
	}

	return s.GetByID(task.ID)
}

// Update changes the mutable fields only; completion state is owned by
// Toggle, and createdAt never changes.
func (s *TaskService) Update(id uint, req *UpdateTaskRequest) error {
	var task models.Task
	if err := s.db.First(&task, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFound("task not found")
		}
		return err
	}

	task.Title = req.Title
	task.Description = req.Description
	task.Deadline = req.Deadline
	task.SubjectID = req.SubjectID
	task.AssignedStudentID = req.AssignedStudentID
	if err := s.db.Save(&task).Error; err != nil {
		return err
	}

	if req.PrerequisiteIDs != nil {
		return s.setPrerequisites(&task, req.PrerequisiteIDs)
	}
	return nil
}

// Delete removes a task together with its results and its prerequisite links
// in both directions.
func (s *TaskService) Delete(id uint) error {
	var task models.Task
	if err := s.db.First(&task, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFound("task not found")
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", id).Delete(&models.Result{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM task_prerequisites WHERE task_id = ? OR prerequisite_id = ?", id, id).Error; err != nil {
			return err
		}
		return tx.Delete(&task).Error
	})
}

// Assign sets the task's assignee.
func (s *TaskService) Assign(taskID, studentID uint) error {
	var task models.Task
	if err := s.db.First(&task, taskID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFound("task not found")
		}
		return err
	}

	var count int64
	if err := s.db.Model(&models.Student{}).Where("id = ?", studentID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return response.NewNotFound("student not found")
	}

	return s.db.Model(&task).Update("assigned_student_id", studentID).Error
}

// Toggle flips the completion flag. A task whose prerequisites are not all
// completed cannot be marked complete; un-completing is always allowed.
func (s *TaskService) Toggle(id uint) (*models.Task, error) {
	var task models.Task
	if err := s.db.Preload("Prerequisites").First(&task, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("task not found")
		}
		return nil, err
	}

	if !task.IsCompleted {
		for _, prereq := range task.Prerequisites {
			if !prereq.IsCompleted {
				return nil, response.NewBadRequest("task has incomplete prerequisites")
			}
		}
	}

	task.IsCompleted = !task.IsCompleted
	if task.IsCompleted {
		now := time.Now()
		task.CompletedAt = &now
	} else {
		task.CompletedAt = nil
	}

	err := s.db.Model(&task).Select("is_completed", "completed_at").Updates(map[string]interface{}{
		"is_completed": task.IsCompleted,
		"completed_at": task.CompletedAt,
	}).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// GetStatus returns the completion flag for a task.
func (s *TaskService) GetStatus(id uint) (bool, error) {
	var task models.Task
	if err := s.db.Select("id", "is_completed").First(&task, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, response.NewNotFound("task not found")
		}
		return false, err
	}
	return task.IsCompleted, nil
}

func (s *TaskService) ListByStudent(studentID uint) ([]models.Task, error) {
	var tasks []models.Task
	err := s.db.Where("assigned_student_id = ?", studentID).
		Preload("Subject").
		Find(&tasks).Error
	return tasks, err
}

func (s *TaskService) ListByTeam(teamID uint) ([]models.Task, error) {
	var tasks []models.Task
	err := s.db.Where("team_id = ?", teamID).
		Preload("Subject").
		Preload("AssignedStudent").
		Find(&tasks).Error
	return tasks, err
}

// setPrerequisites replaces the prerequisite links. Unknown ids and
// self-references are rejected.
func (s *TaskService) setPrerequisites(task *models.Task, ids []uint) error {
	prereqs := make([]*models.Task, 0, len(ids))
	for _, pid := range ids {
		if pid == task.ID {
			return response.NewBadRequest("a task cannot be its own prerequisite")
		}
		var prereq models.Task
		if err := s.db.First(&prereq, pid).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.NewBadRequest("unknown prerequisite task")
			}
			return err
		}
		prereqs = append(prereqs, &prereq)
	}

	return s.db.Model(task).Association("Prerequisites").Replace(prereqs)
}
