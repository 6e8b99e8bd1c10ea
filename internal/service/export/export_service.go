package export

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/fittrack/internal/domain/models"
	"github.com/mamadbah2/fittrack/internal/repository/sheets"
)

const (
	// SummaryRange receives one row per exported day.
	SummaryRange = "Summaries!A:F"
	dayColumn    = "Summaries!A:A"
)

// SummaryProvider computes the totals of one day.
type SummaryProvider interface {
	DaySummary(ctx context.Context, day string) (models.DaySummary, error)
}

// Service appends daily totals to a spreadsheet.
type Service struct {
	sheets    sheets.Repository
	summaries SummaryProvider
	location  *time.Location
	logger    *zap.Logger
}

// NewService builds an exporter. A nil location means UTC.
func NewService(sheetsRepo sheets.Repository, summaries SummaryProvider, location *time.Location, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if location == nil {
		location = time.UTC
	}
	return &Service{
		sheets:    sheetsRepo,
		summaries: summaries,
		location:  location,
		logger:    logger,
	}
}

// ExportPreviousDay exports the calendar day before now in the configured location.
func (s *Service) ExportPreviousDay(ctx context.Context, now time.Time) (bool, error) {
	day := now.In(s.location).AddDate(0, 0, -1).Format(models.DayLayout)
	return s.ExportDay(ctx, day)
}

// ExportDay appends the summary of day unless the sheet already lists it.
// It reports whether a row was written.
func (s *Service) ExportDay(ctx context.Context, day string) (bool, error) {
	existing, err := s.sheets.ReadRange(ctx, dayColumn)
	if err != nil {
		return false, fmt.Errorf("read exported days: %w", err)
	}

	for _, row := range existing {
		if len(row) > 0 && fmt.Sprint(row[0]) == day {
			s.logger.Info("day already exported", zap.String("day", day))
			return false, nil
		}
	}

	summary, err := s.summaries.DaySummary(ctx, day)
	if err != nil {
		return false, fmt.Errorf("summarize %s: %w", day, err)
	}

	row := toExportRow(summary)
	if err := s.sheets.AppendRow(ctx, SummaryRange, row.Values()); err != nil {
		return false, fmt.Errorf("export %s: %w", day, err)
	}

	s.logger.Info("day exported",
		zap.String("day", day),
		zap.Float64("calories", row.Totals.Calories),
		zap.Int("entries", row.EntryCount))
	return true, nil
}

func toExportRow(summary models.DaySummary) models.ExportRow {
	return models.ExportRow{
		Day:        summary.Day,
		Totals:     summary.Totals,
		EntryCount: len(summary.Entries),
	}
}
