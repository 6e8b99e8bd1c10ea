package search

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/mamadbah2/fittrack/internal/apperror"
	"github.com/mamadbah2/fittrack/internal/domain/models"
	"github.com/mamadbah2/fittrack/pkg/clients/nutritionix"
)

const upstreamDetailLimit = 120

// FoodSearcher describes the food lookup used by the HTTP layer.
type FoodSearcher interface {
	SearchFoods(ctx context.Context, query string) ([]models.FoodItem, error)
}

// FoodService searches Nutritionix when a client is configured and falls back to
// the local sample list otherwise.
type FoodService struct {
	client nutritionix.Client
	logger *zap.Logger
}

// NewFoodService wires a food search service. A nil client selects the sample list.
func NewFoodService(client nutritionix.Client, logger *zap.Logger) *FoodService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FoodService{client: client, logger: logger}
}

// SearchFoods returns provider results, or sample foods whose name contains the
// query. When no sample matches, the full sample list is returned.
func (s *FoodService) SearchFoods(ctx context.Context, query string) ([]models.FoodItem, error) {
	if s.client != nil {
		foods, err := s.client.NaturalNutrients(ctx, query)
		if err == nil {
			return mapNutritionixFoods(foods), nil
		}

		var upstream *nutritionix.UpstreamError
		if errors.As(err, &upstream) {
			s.logger.Warn("nutritionix rejected food search",
				zap.Int("status", upstream.StatusCode),
				zap.String("query", query))
			return nil, apperror.NewGatewayError("Nutritionix", upstream.Message, upstreamDetailLimit)
		}

		s.logger.Warn("nutritionix unreachable, serving sample foods", zap.String("query", query), zap.Error(err))
	}

	return filterSampleFoods(query), nil
}

func filterSampleFoods(query string) []models.FoodItem {
	sample := sampleFoods()
	needle := strings.ToLower(query)

	filtered := make([]models.FoodItem, 0, len(sample))
	for _, item := range sample {
		if strings.Contains(strings.ToLower(item.FoodName), needle) {
			filtered = append(filtered, item)
		}
	}

	if len(filtered) == 0 {
		return sample
	}
	return filtered
}

func mapNutritionixFoods(foods []nutritionix.Food) []models.FoodItem {
	items := make([]models.FoodItem, 0, len(foods))
	for _, f := range foods {
		item := models.FoodItem{
			Calories:            valueOrZero(f.Calories),
			ProteinG:            valueOrZero(f.Protein),
			CarbohydratesTotalG: valueOrZero(f.TotalCarbohydrate),
			FatTotalG:           valueOrZero(f.TotalFat),
			ServingQty:          f.ServingQty,
			ServingUnit:         f.ServingUnit,
		}
		if f.FoodName != nil {
			item.FoodName = *f.FoodName
		}
		items = append(items, item)
	}
	return items
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
