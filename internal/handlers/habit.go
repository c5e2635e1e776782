package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/habitquest/habit-tree-api/internal/errors"
	"github.com/habitquest/habit-tree-api/internal/middleware"
	"github.com/habitquest/habit-tree-api/internal/services"
)

// HabitHandler serves the habit tree and the legacy habit listing.
type HabitHandler struct {
	habitService *services.HabitService
}

// NewHabitHandler creates a new HabitHandler.
func NewHabitHandler(habitService *services.HabitService) *HabitHandler {
	return &HabitHandler{
		habitService: habitService,
	}
}

// ListHabits returns the caller's own free-form habit rows.
func (h *HabitHandler) ListHabits(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	habits, err := h.habitService.ListHabits(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch habits")
		return
	}

	c.JSON(http.StatusOK, habits)
}

// GetTree returns the habit catalog merged with the caller's progress,
// ordered by tier then order.
func (h *HabitHandler) GetTree(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	tree, err := h.habitService.GetTree(userID)
	if err != nil {
		apierrors.InternalError(c, "Could not load habit tree")
		return
	}

	c.JSON(http.StatusOK, tree)
}
