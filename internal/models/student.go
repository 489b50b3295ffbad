package models

import (
	"time"

	"gorm.io/gorm"
)

// Student roles, mirroring the team composition the client renders.
const (
	RoleTeamLead  = "TeamLead"
	RoleDeveloper = "Developer"
	RoleDesigner  = "Designer"
	RoleTester    = "Tester"
	RoleAnalyst   = "Analyst"
)

// Student represents a registered user. A student belongs to at most one team;
// TeamID changes only through the explicit join/leave flows.
type Student struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Name         string         `gorm:"size:100;not null" json:"name"`
	Email        string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	PasswordHash string         `gorm:"size:255;not null" json:"-"`
	Role         string         `gorm:"size:20;default:Developer" json:"role"`
	TeamID       *uint          `gorm:"index" json:"teamId"`
	Team         *Team          `gorm:"foreignKey:TeamID" json:"-"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Student) TableName() string { return "students" }
