package exercisedb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/fittrack/internal/config"
)

func newTestClient(url string, timeout time.Duration) *APIClient {
	return NewClient(config.ExerciseDBConfig{
		APIKey:  "rapid-key",
		BaseURL: url,
		Host:    "exercisedb.p.rapidapi.com",
		Timeout: timeout,
	})
}

func TestSearchByName_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/exercises/name/push up", r.URL.Path)
		assert.Equal(t, "rapid-key", r.Header.Get("X-RapidAPI-Key"))
		assert.Equal(t, "exercisedb.p.rapidapi.com", r.Header.Get("X-RapidAPI-Host"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"name":"push up","target":"pectorals","equipment":"body weight","bodyPart":"chest","gifUrl":"https://example.com/0662.gif","id":"0662"}]`))
	}))
	defer srv.Close()

	exercises, err := newTestClient(srv.URL, time.Second).SearchByName(context.Background(), "push up")
	require.NoError(t, err)
	require.Len(t, exercises, 1)
	require.NotNil(t, exercises[0].Name)
	assert.Equal(t, "push up", *exercises[0].Name)
	assert.Equal(t, "pectorals", *exercises[0].Target)
	assert.Equal(t, "body weight", *exercises[0].Equipment)
	assert.Equal(t, "chest", *exercises[0].BodyPart)
	assert.Equal(t, "https://example.com/0662.gif", *exercises[0].GifURL)
}

func TestSearchByName_MissingFieldsAreNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"name":"plank","target":null}]`))
	}))
	defer srv.Close()

	exercises, err := newTestClient(srv.URL, time.Second).SearchByName(context.Background(), "plank")
	require.NoError(t, err)
	require.Len(t, exercises, 1)
	assert.Nil(t, exercises[0].Target)
	assert.Nil(t, exercises[0].Equipment)
	assert.Nil(t, exercises[0].BodyPart)
	assert.Nil(t, exercises[0].GifURL)
}

func TestSearchByName_InvalidJSONIsPlainError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html>maintenance</html>`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL, time.Second).SearchByName(context.Background(), "squat")
	assert.ErrorContains(t, err, "decode exercisedb name search")

	var upstream *UpstreamError
	assert.False(t, errors.As(err, &upstream))
}

func TestSearchByName_NonOKIsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"message":"You have exceeded the rate limit per second for your plan"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL, time.Second).SearchByName(context.Background(), "squat")

	var upstream *UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, http.StatusTooManyRequests, upstream.StatusCode)
	assert.Contains(t, upstream.Message, "rate limit")
}

func TestSearchByName_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestClient(url, time.Second).SearchByName(context.Background(), "squat")
	require.Error(t, err)

	var upstream *UpstreamError
	assert.False(t, errors.As(err, &upstream))
}
