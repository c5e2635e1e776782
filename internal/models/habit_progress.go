package models

import (
	"time"
)

type ProgressStatus string

const (
	StatusLocked    ProgressStatus = "locked"
	StatusUnlocked  ProgressStatus = "unlocked"
	StatusCompleted ProgressStatus = "completed"
)

// HabitProgress tracks one user's state against one catalog node.
// At most one row exists per (user, node) pair; a missing row means locked.
type HabitProgress struct {
	ID            uint64         `gorm:"primarykey" json:"id"`
	UserID        uint64         `gorm:"not null;uniqueIndex:idx_progress_user_habit" json:"user_id"`
	HabitID       uint64         `gorm:"not null;uniqueIndex:idx_progress_user_habit" json:"habit_id"`
	Status        ProgressStatus `gorm:"type:varchar(20);not null;default:'locked'" json:"status"`
	Completions   int            `gorm:"not null;default:0" json:"completions"`
	LastCompleted *time.Time     `json:"last_completed"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`

	// Relations
	HabitNode HabitNode `gorm:"foreignKey:HabitID" json:"-"`
}
