package exercisedb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/mamadbah2/fittrack/internal/config"
)

// Client exposes the ExerciseDB operations used by the application.
type Client interface {
	SearchByName(ctx context.Context, name string) ([]Exercise, error)
}

// APIClient is a resty-backed implementation of Client.
type APIClient struct {
	httpClient *resty.Client
}

// NewClient builds an ExerciseDB client authenticated through RapidAPI.
func NewClient(cfg config.ExerciseDBConfig) *APIClient {
	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetHeader("X-RapidAPI-Key", cfg.APIKey).
		SetHeader("X-RapidAPI-Host", cfg.Host).
		SetTimeout(cfg.Timeout)

	return &APIClient{httpClient: restyClient}
}

// Exercise mirrors one element of the ExerciseDB name search response. Any field
// may be absent or null.
type Exercise struct {
	Name      *string `json:"name"`
	Target    *string `json:"target"`
	Equipment *string `json:"equipment"`
	BodyPart  *string `json:"bodyPart"`
	GifURL    *string `json:"gifUrl"`
}

// UpstreamError is returned when ExerciseDB answered with a non-200 status.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("exercisedb api error: code=%d, message=%s", e.StatusCode, e.Message)
}

// SearchByName looks up exercises whose name contains the given text.
func (c *APIClient) SearchByName(ctx context.Context, name string) ([]Exercise, error) {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetPathParam("name", name).
		Get("/exercises/name/{name}")
	if err != nil {
		return nil, fmt.Errorf("call exercisedb name search: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, &UpstreamError{StatusCode: resp.StatusCode(), Message: resp.String()}
	}

	var exercises []Exercise
	if err := json.Unmarshal(resp.Body(), &exercises); err != nil {
		return nil, fmt.Errorf("decode exercisedb name search: %w", err)
	}

	return exercises, nil
}
