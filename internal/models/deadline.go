package models

import "time"

// Deadline is an informational due date, loosely associated with a task,
// subject or creating student. Reminded flips once the reminder has been
// dispatched so the scheduler does not fire twice.
type Deadline struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Title        string     `gorm:"size:200;not null" json:"title"`
	DueDate      time.Time  `gorm:"index;not null" json:"dueDate"`
	ReminderDate *time.Time `gorm:"index" json:"reminderDate"`
	Reminded     bool       `gorm:"default:false" json:"reminded"`
	TaskID       *uint      `json:"taskId"`
	Task         *Task      `gorm:"foreignKey:TaskID" json:"task,omitempty"`
	SubjectID    *uint      `json:"subjectId"`
	Subject      *Subject   `gorm:"foreignKey:SubjectID" json:"subject,omitempty"`
	CreatedByID  *uint      `json:"createdById"`
	CreatedBy    *Student   `gorm:"foreignKey:CreatedByID" json:"createdBy,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

func (Deadline) TableName() string { return "deadlines" }
