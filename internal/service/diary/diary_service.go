package diary

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/fittrack/internal/domain/models"
	"github.com/mamadbah2/fittrack/internal/repository"
)

// Diary describes the diary operations the HTTP layer can perform.
type Diary interface {
	AddFood(ctx context.Context, req models.DiaryFoodCreate) (models.DiaryFoodCreated, error)
	DaySummary(ctx context.Context, day string) (models.DaySummary, error)
}

// Service stores food entries and aggregates them per day.
type Service struct {
	repo   repository.DiaryRepository
	logger *zap.Logger
	now    func() time.Time
}

// NewService wires a diary service. A nil repository makes every call fail with
// repository.ErrStoreNotConfigured.
func NewService(repo repository.DiaryRepository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// Today returns the server's local calendar date.
func (s *Service) Today() string {
	return s.now().Format(models.DayLayout)
}

// AddFood persists one entry and returns the recomputed summary of its day.
func (s *Service) AddFood(ctx context.Context, req models.DiaryFoodCreate) (models.DiaryFoodCreated, error) {
	if s.repo == nil {
		return models.DiaryFoodCreated{}, repository.ErrStoreNotConfigured
	}

	day := req.ConsumedAt
	if day == "" {
		day = s.Today()
	}

	entry := models.FoodEntry{
		ProteinG:            req.ProteinG,
		CarbohydratesTotalG: req.CarbohydratesTotalG,
		FatTotalG:           req.FatTotalG,
		Day:                 day,
	}
	if req.FoodName != nil {
		entry.FoodName = *req.FoodName
	}
	if req.Calories != nil {
		entry.Calories = *req.Calories
	}

	id, err := s.repo.InsertFoodEntry(ctx, entry)
	if err != nil {
		return models.DiaryFoodCreated{}, fmt.Errorf("add food entry: %w", err)
	}

	s.logger.Info("food entry added",
		zap.String("id", id),
		zap.String("day", day),
		zap.String("food_name", entry.FoodName))

	summary, err := s.DaySummary(ctx, day)
	if err != nil {
		return models.DiaryFoodCreated{}, err
	}

	return models.DiaryFoodCreated{InsertedID: id, Summary: summary}, nil
}

// DaySummary loads the entries of day (today when empty) and totals them.
func (s *Service) DaySummary(ctx context.Context, day string) (models.DaySummary, error) {
	if s.repo == nil {
		return models.DaySummary{}, repository.ErrStoreNotConfigured
	}

	if day == "" {
		day = s.Today()
	}

	entries, err := s.repo.FindFoodEntriesByDay(ctx, day)
	if err != nil {
		return models.DaySummary{}, fmt.Errorf("load day %s: %w", day, err)
	}

	return Summarize(day, entries), nil
}

// Summarize sums the macro fields of entries, rounding each total to one decimal.
func Summarize(day string, entries []models.FoodEntry) models.DaySummary {
	var totals models.MacroTotals
	for _, e := range entries {
		totals.Calories += e.Calories
		totals.ProteinG += e.ProteinG
		totals.CarbohydratesTotalG += e.CarbohydratesTotalG
		totals.FatTotalG += e.FatTotalG
	}

	totals.Calories = roundOneDecimal(totals.Calories)
	totals.ProteinG = roundOneDecimal(totals.ProteinG)
	totals.CarbohydratesTotalG = roundOneDecimal(totals.CarbohydratesTotalG)
	totals.FatTotalG = roundOneDecimal(totals.FatTotalG)

	if entries == nil {
		entries = []models.FoodEntry{}
	}

	return models.DaySummary{Day: day, Totals: totals, Entries: entries}
}

// roundOneDecimal rounds the exact binary value of v, ties to even.
func roundOneDecimal(v float64) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 1, 64), 64)
	if err != nil {
		return v
	}
	return rounded
}
