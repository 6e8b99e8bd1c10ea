package repository

import (
	"context"
	"errors"

	"github.com/mamadbah2/fittrack/internal/domain/models"
)

// FoodEntryCollection is the collection (or table) holding diary records.
const FoodEntryCollection = "foodentry"

// ErrStoreNotConfigured is returned when no diary store was opened at startup.
var ErrStoreNotConfigured = errors.New("diary store not configured")

// DiaryRepository defines the persistence operations for diary records.
type DiaryRepository interface {
	// InsertFoodEntry stores the entry and returns the store-assigned identifier.
	InsertFoodEntry(ctx context.Context, entry models.FoodEntry) (string, error)
	// FindFoodEntriesByDay returns every entry whose day matches exactly, in insertion order.
	FindFoodEntriesByDay(ctx context.Context, day string) ([]models.FoodEntry, error)
	// ListCollectionNames returns at most limit collection names.
	ListCollectionNames(ctx context.Context, limit int) ([]string, error)
	// Name returns the database name.
	Name() string
	Close(ctx context.Context) error
}
