package fittrack

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mamadbah2/fittrack/internal/domain/models"
)

// Client talks to a running FitTrack backend.
type Client struct {
	httpClient *resty.Client
}

// NewClient builds a client for the API rooted at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetHeader("Accept", "application/json").
		SetTimeout(timeout)

	return &Client{httpClient: restyClient}
}

// APIError is a non-2xx answer from the backend. Detail holds the raw "detail"
// value, which is either a string or a list of field errors.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("fittrack api error: code=%d, detail=%s", e.StatusCode, e.Detail)
}

type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

// SearchFoods calls GET /api/food/search.
func (c *Client) SearchFoods(ctx context.Context, query string) ([]models.FoodItem, error) {
	var out models.FoodSearchResponse
	req := c.httpClient.R().SetContext(ctx).SetQueryParam("q", query)
	if err := c.do(req, http.MethodGet, "/api/food/search", &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// SearchExercises calls GET /api/exercises/search. An empty query is omitted.
func (c *Client) SearchExercises(ctx context.Context, query string) ([]models.ExerciseItem, error) {
	var out models.ExerciseSearchResponse
	req := c.httpClient.R().SetContext(ctx)
	if query != "" {
		req.SetQueryParam("q", query)
	}
	if err := c.do(req, http.MethodGet, "/api/exercises/search", &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// AddFood calls POST /api/diary/food.
func (c *Client) AddFood(ctx context.Context, food models.DiaryFoodCreate) (models.DiaryFoodCreated, error) {
	var out models.DiaryFoodCreated
	req := c.httpClient.R().SetContext(ctx).SetHeader("Content-Type", "application/json").SetBody(food)
	if err := c.do(req, http.MethodPost, "/api/diary/food", &out); err != nil {
		return models.DiaryFoodCreated{}, err
	}
	return out, nil
}

// DaySummary calls GET /api/diary/summary. An empty day lets the server pick today.
func (c *Client) DaySummary(ctx context.Context, day string) (models.DaySummary, error) {
	var out models.DaySummary
	req := c.httpClient.R().SetContext(ctx)
	if day != "" {
		req.SetQueryParam("day", day)
	}
	if err := c.do(req, http.MethodGet, "/api/diary/summary", &out); err != nil {
		return models.DaySummary{}, err
	}
	return out, nil
}

func (c *Client) do(req *resty.Request, method, path string, out any) error {
	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("call %s %s: %w", method, path, err)
	}

	if resp.IsError() {
		detail := resp.String()
		var body errorBody
		if json.Unmarshal(resp.Body(), &body) == nil && len(body.Detail) > 0 {
			detail = decodeDetail(body.Detail)
		}
		return &APIError{StatusCode: resp.StatusCode(), Detail: detail}
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

func decodeDetail(raw json.RawMessage) string {
	var s string
	if json.Unmarshal(raw, &s) == nil {
		return s
	}
	return string(raw)
}
