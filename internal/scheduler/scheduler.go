package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const exportTimeout = 2 * time.Minute

// DailyExporter exports the day preceding now.
type DailyExporter interface {
	ExportPreviousDay(ctx context.Context, now time.Time) (bool, error)
}

// Scheduler manages scheduled tasks.
type Scheduler struct {
	cron     *cron.Cron
	exporter DailyExporter
	schedule string
	logger   *zap.Logger
	now      func() time.Time
}

// NewScheduler creates a scheduler evaluating schedule (standard five-field cron) in location.
func NewScheduler(schedule string, location *time.Location, exporter DailyExporter, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if location == nil {
		location = time.UTC
	}

	return &Scheduler{
		cron:     cron.New(cron.WithLocation(location)),
		exporter: exporter,
		schedule: schedule,
		logger:   logger,
		now:      time.Now,
	}
}

// Start registers the export job and starts the cron loop.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.runExport); err != nil {
		return fmt.Errorf("schedule summary export %q: %w", s.schedule, err)
	}

	s.logger.Info("starting scheduler", zap.String("schedule", s.schedule))
	s.cron.Start()
	return nil
}

// Stop stops the scheduler and waits for a running export to finish.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	<-s.cron.Stop().Done()
}

func (s *Scheduler) runExport() {
	ctx, cancel := context.WithTimeout(context.Background(), exportTimeout)
	defer cancel()

	written, err := s.exporter.ExportPreviousDay(ctx, s.now())
	if err != nil {
		s.logger.Error("summary export failed", zap.Error(err))
		return
	}
	if written {
		s.logger.Info("summary export completed")
	}
}
