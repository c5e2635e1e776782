package services

import (
	"fmt"

	"github.com/habitquest/habit-tree-api/internal/dto"
	"github.com/habitquest/habit-tree-api/internal/models"
	"github.com/habitquest/habit-tree-api/internal/repository"
)

// HabitService assembles the habit tree and serves legacy habit rows.
type HabitService struct {
	habitRepo repository.HabitRepository
}

// NewHabitService creates a new HabitService.
func NewHabitService(habitRepo repository.HabitRepository) *HabitService {
	return &HabitService{
		habitRepo: habitRepo,
	}
}

// GetTree merges the catalog with the user's progress rows. Every catalog
// node appears exactly once, in (tier, order) order; nodes without a
// progress row report locked/0/null.
func (s *HabitService) GetTree(userID uint64) ([]dto.HabitViewDTO, error) {
	nodes, err := s.habitRepo.ListNodes()
	if err != nil {
		return nil, fmt.Errorf("failed to load habit catalog: %w", err)
	}

	progress, err := s.habitRepo.ListProgressByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load habit progress: %w", err)
	}

	progressByHabitID := make(map[uint64]models.HabitProgress, len(progress))
	for _, p := range progress {
		progressByHabitID[p.HabitID] = p
	}

	tree := make([]dto.HabitViewDTO, len(nodes))
	for i, node := range nodes {
		view := dto.ToHabitViewDTO(node)
		if p, ok := progressByHabitID[node.ID]; ok {
			view.Status = p.Status
			view.Completions = p.Completions
			view.LastCompleted = p.LastCompleted
		}
		tree[i] = view
	}

	return tree, nil
}

// ListHabits returns the user's own legacy habit rows, ownership filter only.
func (s *HabitService) ListHabits(userID uint64) ([]models.Habit, error) {
	habits, err := s.habitRepo.ListHabitsByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list habits: %w", err)
	}
	return habits, nil
}
