package services

import (
	"time"

	"github.com/studytrack/studytrack/internal/models"
	"gorm.io/gorm"
)

type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

type DashboardStats struct {
	TotalTasks        int64   `json:"totalTasks"`
	CompletedTasks    int64   `json:"completedTasks"`
	PendingTasks      int64   `json:"pendingTasks"`
	OverdueTasks      int64   `json:"overdueTasks"`
	CompletionRate    float64 `json:"completionRate"`
	UpcomingDeadlines int64   `json:"upcomingDeadlines"`
	AverageGrade      float64 `json:"averageGrade"`
}

type SubjectProgress struct {
	SubjectID      uint   `json:"subjectId"`
	SubjectName    string `json:"subjectName"`
	TaskCount      int64  `json:"taskCount"`
	CompletedCount int64  `json:"completedCount"`
}

type DashboardResponse struct {
	Stats           DashboardStats    `json:"stats"`
	SubjectProgress []SubjectProgress `json:"subjectProgress"`
}

// GetStats computes the stats for one student's assigned tasks.
func (s *DashboardService) GetStats(studentID uint) (*DashboardResponse, error) {
	var stats DashboardStats
	now := time.Now()

	assigned := s.db.Model(&models.Task{}).Where("assigned_student_id = ?", studentID)
	if err := assigned.Count(&stats.TotalTasks).Error; err != nil {
		return nil, err
	}

	s.db.Model(&models.Task{}).
		Where("assigned_student_id = ? AND is_completed = ?", studentID, true).
		Count(&stats.CompletedTasks)

	stats.PendingTasks = stats.TotalTasks - stats.CompletedTasks

	s.db.Model(&models.Task{}).
		Where("assigned_student_id = ? AND is_completed = ? AND deadline IS NOT NULL AND deadline < ?",
			studentID, false, now).
		Count(&stats.OverdueTasks)

	if stats.TotalTasks > 0 {
		stats.CompletionRate = float64(stats.CompletedTasks) / float64(stats.TotalTasks)
	}

	s.db.Model(&models.Deadline{}).
		Where("due_date >= ? AND due_date <= ?", now, now.Add(upcomingWindow)).
		Count(&stats.UpcomingDeadlines)

	s.db.Model(&models.Result{}).
		Where("student_id = ? AND grade IS NOT NULL", studentID).
		Select("COALESCE(AVG(grade), 0)").
		Scan(&stats.AverageGrade)

	var progress []SubjectProgress
	s.db.Model(&models.Task{}).
		Select("subject_id, COUNT(*) as task_count, SUM(CASE WHEN is_completed THEN 1 ELSE 0 END) as completed_count").
		Where("assigned_student_id = ? AND subject_id IS NOT NULL", studentID).
		Group("subject_id").
		Scan(&progress)

	for i := range progress {
		var subject models.Subject
		if err := s.db.First(&subject, progress[i].SubjectID).Error; err == nil {
			progress[i].SubjectName = subject.Name
		}
	}

	return &DashboardResponse{
		Stats:           stats,
		SubjectProgress: progress,
	}, nil
}
