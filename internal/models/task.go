package models

import (
	"time"

	"gorm.io/gorm"
)

// Task is a unit of work, optionally tied to a subject, an assignee and a
// team. Prerequisites form a many-to-many self reference; a task cannot be
// completed while a prerequisite is still open.
type Task struct {
	ID                uint           `gorm:"primaryKey" json:"id"`
	Title             string         `gorm:"size:200;not null" json:"title"`
	Description       string         `gorm:"type:text" json:"description"`
	Deadline          *time.Time     `json:"deadline"`
	IsCompleted       bool           `gorm:"default:false" json:"isCompleted"`
	CompletedAt       *time.Time     `json:"completedAt"`
	SubjectID         *uint          `gorm:"index" json:"subjectId"`
	Subject           *Subject       `gorm:"foreignKey:SubjectID" json:"subject,omitempty"`
	AssignedStudentID *uint          `gorm:"index" json:"assignedStudentId"`
	AssignedStudent   *Student       `gorm:"foreignKey:AssignedStudentID" json:"assignedStudent,omitempty"`
	TeamID            *uint          `gorm:"index" json:"teamId"`
	Prerequisites     []*Task        `gorm:"many2many:task_prerequisites;joinForeignKey:TaskID;joinReferences:PrerequisiteID" json:"prerequisites,omitempty"`
	CreatedAt         time.Time      `gorm:"index" json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Task) TableName() string { return "tasks" }
