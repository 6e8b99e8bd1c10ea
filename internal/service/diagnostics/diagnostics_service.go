package diagnostics

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/fittrack/internal/apperror"
	"github.com/mamadbah2/fittrack/internal/domain/models"
	"github.com/mamadbah2/fittrack/internal/repository"
)

const (
	collectionLimit = 10
	errorLimit      = 50
	probeTimeout    = 5 * time.Second
)

// Reporter produces the diagnostics object.
type Reporter interface {
	Report(ctx context.Context) models.Diagnostics
}

// Service probes the configured store.
type Service struct {
	repo           repository.DiaryRepository
	databaseURLSet bool
	logger         *zap.Logger
}

// NewService builds a diagnostics service. repo may be nil.
func NewService(repo repository.DiaryRepository, databaseURLSet bool, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, databaseURLSet: databaseURLSet, logger: logger}
}

// Report never fails; store problems are described in the returned fields.
func (s *Service) Report(ctx context.Context) models.Diagnostics {
	diag := models.Diagnostics{
		Backend:          "Running",
		Database:         "Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	if s.repo == nil {
		diag.Database = "Available but not initialized"
		return diag
	}

	urlStatus := "Not Set"
	if s.databaseURLSet {
		urlStatus = "Set"
	}
	name := s.repo.Name()

	diag.Database = "Available"
	diag.DatabaseURL = &urlStatus
	diag.DatabaseName = &name
	diag.ConnectionStatus = "Connected"

	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	collections, err := s.repo.ListCollectionNames(probeCtx, collectionLimit)
	if err != nil {
		s.logger.Warn("store probe failed", zap.Error(err))
		diag.Database = "Connected but Error: " + apperror.Truncate(err.Error(), errorLimit)
		return diag
	}

	if collections != nil {
		diag.Collections = collections
	}
	diag.Database = "Connected & Working"
	return diag
}
