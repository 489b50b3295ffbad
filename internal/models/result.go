package models

import "time"

// Result is a per-(task, student) completion record with an optional grade.
// One row per pair, enforced by the result service rather than a unique index.
type Result struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	TaskID      uint       `gorm:"index;not null" json:"taskId"`
	Task        *Task      `gorm:"foreignKey:TaskID" json:"task,omitempty"`
	StudentID   uint       `gorm:"index;not null" json:"studentId"`
	Student     *Student   `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	IsCompleted bool       `gorm:"default:false" json:"isCompleted"`
	CompletedAt *time.Time `json:"completedAt"`
	Grade       *int       `json:"grade"`
	Comment     string     `gorm:"size:500" json:"comment"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (Result) TableName() string { return "results" }
