package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/fittrack/internal/domain/models"
	"github.com/mamadbah2/fittrack/internal/repository"
	"github.com/mamadbah2/fittrack/internal/repository/sqlite"
	"github.com/mamadbah2/fittrack/internal/server/handlers"
	"github.com/mamadbah2/fittrack/internal/service/diagnostics"
	"github.com/mamadbah2/fittrack/internal/service/diary"
	"github.com/mamadbah2/fittrack/internal/service/search"
)

func newTestEngine(t *testing.T, repo repository.DiaryRepository) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	return New(Handlers{
		System: handlers.NewSystemHandler(diagnostics.NewService(repo, false, nil)),
		Search: handlers.NewSearchHandler(search.NewFoodService(nil, nil), search.NewExerciseService(nil, nil), nil),
		Diary:  handlers.NewDiaryHandler(diary.NewService(repo, nil), nil),
	}, nil)
}

func newSQLiteStore(t *testing.T) *sqlite.SQLiteRepository {
	t.Helper()
	repo, err := sqlite.NewSQLiteRepository(context.Background(), filepath.Join(t.TempDir(), "fittrack.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close(context.Background()) })
	return repo
}

func serve(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestFoodSearchWithoutCredentials(t *testing.T) {
	r := newTestEngine(t, nil)

	w := serve(r, http.MethodGet, "/api/food/search?q=pollo", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.FoodSearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Items)
	assert.Equal(t, "Petto di pollo", resp.Items[0].FoodName)

	w = serve(r, http.MethodGet, "/api/food/search?q=sushi", "")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Items, 3)
}

func TestExerciseSearchEmptyQuery(t *testing.T) {
	r := newTestEngine(t, nil)

	w := serve(r, http.MethodGet, "/api/exercises/search?q=", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ExerciseSearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Items, 3)
}

func TestDiagnosticsWithoutStore(t *testing.T) {
	r := newTestEngine(t, nil)

	w := serve(r, http.MethodGet, "/test", "")
	require.Equal(t, http.StatusOK, w.Code)

	var diag models.Diagnostics
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &diag))
	assert.Contains(t, diag.Database, "not initialized")
	assert.Equal(t, "Not Connected", diag.ConnectionStatus)
	assert.Equal(t, "Running", diag.Backend)
}

func TestDiaryWithoutStore(t *testing.T) {
	r := newTestEngine(t, nil)

	w := serve(r, http.MethodPost, "/api/diary/food", `{"food_name":"Apple","calories":95}`)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestDiaryRoundTrip(t *testing.T) {
	r := newTestEngine(t, newSQLiteStore(t))

	w := serve(r, http.MethodPost, "/api/diary/food", `{"food_name":"Apple","calories":95,"protein_g":0.5,"consumed_at":"2024-03-01"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var created models.DiaryFoodCreated
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.InsertedID)
	assert.Equal(t, 95.0, created.Summary.Totals.Calories)

	w = serve(r, http.MethodPost, "/api/diary/food", `{"food_name":"Pizza","calories":800,"consumed_at":"2024-03-02"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = serve(r, http.MethodGet, "/api/diary/summary?day=2024-03-01", "")
	require.Equal(t, http.StatusOK, w.Code)

	var summary models.DaySummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, "2024-03-01", summary.Day)
	assert.Equal(t, models.MacroTotals{Calories: 95, ProteinG: 0.5}, summary.Totals)
	require.Len(t, summary.Entries, 1)
	assert.Equal(t, created.InsertedID, summary.Entries[0].ID)
}

func TestDiaryDefaultsToToday(t *testing.T) {
	r := newTestEngine(t, newSQLiteStore(t))
	today := time.Now().Format(models.DayLayout)

	w := serve(r, http.MethodPost, "/api/diary/food", `{"food_name":"Apple","calories":95}`)
	require.Equal(t, http.StatusOK, w.Code)

	var created models.DiaryFoodCreated
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	// A midnight rollover between the request and the check would shift the day.
	if created.Summary.Day != today {
		t.Skipf("day rolled over during the test: %s != %s", created.Summary.Day, today)
	}
	assert.GreaterOrEqual(t, created.Summary.Totals.Calories, 95.0)
}

func TestDiagnosticsWithStore(t *testing.T) {
	r := newTestEngine(t, newSQLiteStore(t))

	w := serve(r, http.MethodGet, "/test", "")
	require.Equal(t, http.StatusOK, w.Code)

	var diag models.Diagnostics
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &diag))
	assert.Equal(t, "Connected & Working", diag.Database)
	assert.Equal(t, "Connected", diag.ConnectionStatus)
	assert.Equal(t, []string{"foodentry"}, diag.Collections)
	require.NotNil(t, diag.DatabaseName)
	assert.Equal(t, "fittrack", *diag.DatabaseName)
}

func TestCORSAndRequestID(t *testing.T) {
	r := newTestEngine(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestCORSPreflight(t *testing.T) {
	r := newTestEngine(t, nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/diary/food", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}
