package search

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/mamadbah2/fittrack/internal/apperror"
	"github.com/mamadbah2/fittrack/internal/domain/models"
	"github.com/mamadbah2/fittrack/pkg/clients/exercisedb"
)

// ExerciseSearcher describes the exercise lookup used by the HTTP layer.
type ExerciseSearcher interface {
	SearchExercises(ctx context.Context, query string) ([]models.ExerciseItem, error)
}

// ExerciseService searches ExerciseDB when a client is configured and falls back
// to the local sample list otherwise.
type ExerciseService struct {
	client exercisedb.Client
	logger *zap.Logger
}

// NewExerciseService wires an exercise search service. A nil client selects the
// sample list.
func NewExerciseService(client exercisedb.Client, logger *zap.Logger) *ExerciseService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExerciseService{client: client, logger: logger}
}

// SearchExercises returns provider results for a non-empty query. Otherwise it
// serves the sample list: whole for an empty query, filtered by name (possibly to
// nothing) for a non-empty one.
func (s *ExerciseService) SearchExercises(ctx context.Context, query string) ([]models.ExerciseItem, error) {
	if s.client != nil && query != "" {
		exercises, err := s.client.SearchByName(ctx, query)
		if err == nil {
			return mapExercises(exercises), nil
		}

		var upstream *exercisedb.UpstreamError
		if errors.As(err, &upstream) {
			s.logger.Warn("exercisedb rejected exercise search",
				zap.Int("status", upstream.StatusCode),
				zap.String("query", query))
			return nil, apperror.NewGatewayError("ExerciseDB", upstream.Message, upstreamDetailLimit)
		}

		s.logger.Warn("exercisedb unreachable, serving sample exercises", zap.String("query", query), zap.Error(err))
	}

	sample := sampleExercises()
	if query == "" {
		return sample, nil
	}

	needle := strings.ToLower(query)
	filtered := make([]models.ExerciseItem, 0, len(sample))
	for _, item := range sample {
		if item.Name != nil && strings.Contains(strings.ToLower(*item.Name), needle) {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}

func mapExercises(exercises []exercisedb.Exercise) []models.ExerciseItem {
	items := make([]models.ExerciseItem, 0, len(exercises))
	for _, e := range exercises {
		items = append(items, models.ExerciseItem{
			Name:      e.Name,
			Target:    e.Target,
			Equipment: e.Equipment,
			BodyPart:  e.BodyPart,
			GifURL:    e.GifURL,
		})
	}
	return items
}
