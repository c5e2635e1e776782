package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/habitquest/habit-tree-api/internal/models"
)

// defaultCatalog is the fitness habit tree served to every user.
var defaultCatalog = []models.HabitNode{
	{Category: "Fitness", Title: "Walk 10 min", Tier: 1, Order: 1, XPValue: 5},
	{Category: "Fitness", Title: "15 Pushups", Tier: 1, Order: 2, XPValue: 10},
	{Category: "Fitness", Title: "Walk + Pushups Combo", Tier: 2, Order: 1, XPValue: 15},
	{Category: "Fitness", Title: "3-Day Streak", Tier: 2, Order: 2, XPValue: 20},
	{Category: "Fitness", Title: "5 Workouts in 7 Days", Tier: 3, Order: 1, XPValue: 30},
}

// SeedHabitNodes inserts the catalog, skipping titles that already exist.
// Safe to run on every boot.
func SeedHabitNodes(db *gorm.DB) error {
	for _, node := range defaultCatalog {
		err := db.
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "title"}},
				DoNothing: true,
			}).
			Create(&node).Error
		if err != nil {
			return fmt.Errorf("failed to seed habit node %q: %w", node.Title, err)
		}
	}

	log.Println("Habit catalog seeded")
	return nil
}
