package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/fittrack/internal/domain/models"
	"github.com/mamadbah2/fittrack/internal/service/diary"
)

// DiaryHandler exposes the food diary.
type DiaryHandler struct {
	svc    diary.Diary
	logger *zap.Logger
}

// NewDiaryHandler constructs the diary HTTP adapter.
func NewDiaryHandler(svc diary.Diary, logger *zap.Logger) *DiaryHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DiaryHandler{svc: svc, logger: logger}
}

// AddFood handles POST /api/diary/food.
func (h *DiaryHandler) AddFood(c *gin.Context) {
	var req models.DiaryFoodCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, h.logger, err)
		return
	}

	created, err := h.svc.AddFood(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, created)
}

// Summary handles GET /api/diary/summary.
func (h *DiaryHandler) Summary(c *gin.Context) {
	var query models.DaySummaryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindingError(c, h.logger, err)
		return
	}

	summary, err := h.svc.DaySummary(c.Request.Context(), query.Day)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
