package repository

import (
	"github.com/habitquest/habit-tree-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)
}

// HabitRepository defines the interface for habit data access
type HabitRepository interface {
	// ListNodes returns the full catalog ordered by (tier, order) ascending
	ListNodes() ([]models.HabitNode, error)

	// ListProgressByUserID returns all progress rows owned by a user
	ListProgressByUserID(userID uint64) ([]models.HabitProgress, error)

	// ListHabitsByUserID returns all legacy habit rows owned by a user
	ListHabitsByUserID(userID uint64) ([]models.Habit, error)
}
