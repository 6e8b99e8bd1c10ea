package nutritionix

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/mamadbah2/fittrack/internal/config"
)

const naturalNutrientsPath = "/v2/natural/nutrients"

// Client exposes the Nutritionix operations used by the application.
type Client interface {
	NaturalNutrients(ctx context.Context, query string) ([]Food, error)
}

// APIClient is a resty-backed implementation of Client.
type APIClient struct {
	httpClient *resty.Client
}

// NewClient builds a Nutritionix client from configuration.
func NewClient(cfg config.NutritionixConfig) *APIClient {
	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetHeader("x-app-id", cfg.AppID).
		SetHeader("x-app-key", cfg.APIKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(cfg.Timeout)

	return &APIClient{httpClient: restyClient}
}

// Food mirrors one element of the natural nutrients response. Any field may be
// absent or null.
type Food struct {
	FoodName          *string  `json:"food_name"`
	Calories          *float64 `json:"nf_calories"`
	Protein           *float64 `json:"nf_protein"`
	TotalCarbohydrate *float64 `json:"nf_total_carbohydrate"`
	TotalFat          *float64 `json:"nf_total_fat"`
	ServingQty        *float64 `json:"serving_qty"`
	ServingUnit       *string  `json:"serving_unit"`
}

type naturalNutrientsResponse struct {
	Foods []Food `json:"foods"`
}

// UpstreamError is returned when Nutritionix answered with a non-200 status.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("nutritionix api error: code=%d, message=%s", e.StatusCode, e.Message)
}

// NaturalNutrients runs a natural language nutrition lookup. Non-200 answers are
// returned as *UpstreamError; transport and decode failures are returned wrapped.
func (c *APIClient) NaturalNutrients(ctx context.Context, query string) ([]Food, error) {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(map[string]string{"query": query}).
		Post(naturalNutrientsPath)
	if err != nil {
		return nil, fmt.Errorf("call nutritionix natural nutrients: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, &UpstreamError{StatusCode: resp.StatusCode(), Message: resp.String()}
	}

	var payload naturalNutrientsResponse
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, fmt.Errorf("decode nutritionix natural nutrients: %w", err)
	}

	return payload.Foods, nil
}
