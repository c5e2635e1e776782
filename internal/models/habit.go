package models

import (
	"time"
)

// Habit is a legacy free-form habit owned by a single user, predating the
// structured catalog. Still served by the listing endpoint.
type Habit struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	UserID      uint64    `gorm:"not null;index" json:"user_id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Frequency   string    `gorm:"type:varchar(50)" json:"frequency"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
