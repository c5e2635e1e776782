package dto

import (
	"time"

	"github.com/habitquest/habit-tree-api/internal/models"
)

// HabitViewDTO is one habit-tree node merged with the caller's progress.
type HabitViewDTO struct {
	ID            uint64                `json:"id"`
	Title         string                `json:"title"`
	Tier          int                   `json:"tier"`
	Order         int                   `json:"order"`
	XPValue       int                   `json:"xpValue"`
	Status        models.ProgressStatus `json:"status"`
	Completions   int                   `json:"completions"`
	LastCompleted *time.Time            `json:"lastCompleted"`
}

// ToHabitViewDTO converts a catalog node to its default view: locked with no
// completions until a progress row says otherwise.
func ToHabitViewDTO(node models.HabitNode) HabitViewDTO {
	return HabitViewDTO{
		ID:            node.ID,
		Title:         node.Title,
		Tier:          node.Tier,
		Order:         node.Order,
		XPValue:       node.XPValue,
		Status:        models.StatusLocked,
		Completions:   0,
		LastCompleted: nil,
	}
}
