package diagnostics

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/fittrack/internal/domain/models"
)

type probeRepository struct {
	names []string
	err   error
	limit int
}

func (p *probeRepository) InsertFoodEntry(context.Context, models.FoodEntry) (string, error) {
	return "", nil
}

func (p *probeRepository) FindFoodEntriesByDay(context.Context, string) ([]models.FoodEntry, error) {
	return nil, nil
}

func (p *probeRepository) ListCollectionNames(_ context.Context, limit int) ([]string, error) {
	p.limit = limit
	return p.names, p.err
}

func (p *probeRepository) Name() string                { return "fittrack" }
func (p *probeRepository) Close(context.Context) error { return nil }

func TestReport_WithoutStore(t *testing.T) {
	diag := NewService(nil, true, nil).Report(context.Background())

	assert.Equal(t, models.Diagnostics{
		Backend:          "Running",
		Database:         "Available but not initialized",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}, diag)
	assert.Contains(t, diag.Database, "not initialized")
}

func TestReport_StoreWorking(t *testing.T) {
	repo := &probeRepository{names: []string{"foodentry"}}

	diag := NewService(repo, true, nil).Report(context.Background())

	assert.Equal(t, "Connected & Working", diag.Database)
	assert.Equal(t, "Connected", diag.ConnectionStatus)
	require.NotNil(t, diag.DatabaseURL)
	assert.Equal(t, "Set", *diag.DatabaseURL)
	require.NotNil(t, diag.DatabaseName)
	assert.Equal(t, "fittrack", *diag.DatabaseName)
	assert.Equal(t, []string{"foodentry"}, diag.Collections)
	assert.Equal(t, 10, repo.limit)
}

func TestReport_EmptyStore(t *testing.T) {
	diag := NewService(&probeRepository{}, false, nil).Report(context.Background())

	assert.Equal(t, "Connected & Working", diag.Database)
	require.NotNil(t, diag.DatabaseURL)
	assert.Equal(t, "Not Set", *diag.DatabaseURL)
	assert.NotNil(t, diag.Collections)
	assert.Empty(t, diag.Collections)
}

func TestReport_ProbeErrorTruncated(t *testing.T) {
	repo := &probeRepository{err: errors.New(strings.Repeat("e", 80))}

	diag := NewService(repo, true, nil).Report(context.Background())

	assert.Equal(t, "Connected but Error: "+strings.Repeat("e", 50), diag.Database)
	assert.Equal(t, "Connected", diag.ConnectionStatus)
	assert.Empty(t, diag.Collections)
}
