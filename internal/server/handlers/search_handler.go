package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/fittrack/internal/domain/models"
	"github.com/mamadbah2/fittrack/internal/service/search"
)

// SearchHandler serves the food and exercise lookups.
type SearchHandler struct {
	foods     search.FoodSearcher
	exercises search.ExerciseSearcher
	logger    *zap.Logger
}

// NewSearchHandler constructs the search HTTP adapter.
func NewSearchHandler(foods search.FoodSearcher, exercises search.ExerciseSearcher, logger *zap.Logger) *SearchHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SearchHandler{foods: foods, exercises: exercises, logger: logger}
}

// SearchFoods handles GET /api/food/search.
func (h *SearchHandler) SearchFoods(c *gin.Context) {
	var query models.FoodSearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindingError(c, h.logger, err)
		return
	}

	items, err := h.foods.SearchFoods(c.Request.Context(), query.Q)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, models.FoodSearchResponse{Items: items})
}

// SearchExercises handles GET /api/exercises/search.
func (h *SearchHandler) SearchExercises(c *gin.Context) {
	var query models.ExerciseSearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindingError(c, h.logger, err)
		return
	}

	items, err := h.exercises.SearchExercises(c.Request.Context(), query.Q)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, models.ExerciseSearchResponse{Items: items})
}
