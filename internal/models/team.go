package models

import (
	"time"

	"gorm.io/gorm"
)

// Team groups students. The invite code is generated at creation time and is
// immutable afterwards; members are students whose TeamID points here.
type Team struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"size:100;not null" json:"name"`
	Description string         `gorm:"size:500" json:"description"`
	InviteCode  string         `gorm:"uniqueIndex;size:10;not null" json:"inviteCode"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Team) TableName() string { return "teams" }
