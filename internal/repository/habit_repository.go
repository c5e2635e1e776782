package repository

import (
	"github.com/habitquest/habit-tree-api/internal/models"
	"gorm.io/gorm"
)

// GormHabitRepository is a GORM implementation of HabitRepository
type GormHabitRepository struct {
	db *gorm.DB
}

// NewHabitRepository creates a new HabitRepository
func NewHabitRepository(db *gorm.DB) HabitRepository {
	return &GormHabitRepository{db: db}
}

// ListNodes returns the full catalog ordered by (tier, order) ascending.
// The ordering defines the tree's progression sequence and must be stable.
func (r *GormHabitRepository) ListNodes() ([]models.HabitNode, error) {
	var nodes []models.HabitNode
	if err := r.db.Order("tier ASC, `order` ASC").Find(&nodes).Error; err != nil {
		return nil, err
	}
	return nodes, nil
}

// ListProgressByUserID returns all progress rows owned by a user
func (r *GormHabitRepository) ListProgressByUserID(userID uint64) ([]models.HabitProgress, error) {
	var progress []models.HabitProgress
	if err := r.db.Where("user_id = ?", userID).Find(&progress).Error; err != nil {
		return nil, err
	}
	return progress, nil
}

// ListHabitsByUserID returns all legacy habit rows owned by a user
func (r *GormHabitRepository) ListHabitsByUserID(userID uint64) ([]models.Habit, error) {
	var habits []models.Habit
	if err := r.db.Where("user_id = ?", userID).Find(&habits).Error; err != nil {
		return nil, err
	}
	return habits, nil
}
