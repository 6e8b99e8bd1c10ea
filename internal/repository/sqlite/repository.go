package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/mamadbah2/fittrack/internal/domain/models"
	"github.com/mamadbah2/fittrack/internal/repository"
)

const schema = `
CREATE TABLE IF NOT EXISTS foodentry (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    food_name TEXT NOT NULL,
    calories REAL NOT NULL DEFAULT 0,
    protein_g REAL NOT NULL DEFAULT 0,
    carbohydrates_total_g REAL NOT NULL DEFAULT 0,
    fat_total_g REAL NOT NULL DEFAULT 0,
    day TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_foodentry_day ON foodentry(day);
`

// SQLiteRepository implements repository.DiaryRepository on an embedded SQLite file.
type SQLiteRepository struct {
	db   *sql.DB
	path string
}

var _ repository.DiaryRepository = (*SQLiteRepository)(nil)

// NewSQLiteRepository opens (or creates) the database file and ensures the schema.
func NewSQLiteRepository(ctx context.Context, path string) (*SQLiteRepository, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path must not be empty")
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// SQLite allows a single writer.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &SQLiteRepository{db: db, path: path}, nil
}

// InsertFoodEntry stores a diary record and returns its rowid.
func (r *SQLiteRepository) InsertFoodEntry(ctx context.Context, entry models.FoodEntry) (string, error) {
	res, err := r.db.ExecContext(ctx, `
        INSERT INTO foodentry (food_name, calories, protein_g, carbohydrates_total_g, fat_total_g, day)
        VALUES (?, ?, ?, ?, ?, ?)
    `, entry.FoodName, entry.Calories, entry.ProteinG, entry.CarbohydratesTotalG, entry.FatTotalG, entry.Day)
	if err != nil {
		return "", fmt.Errorf("failed to insert food entry: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return "", fmt.Errorf("failed to read inserted id: %w", err)
	}
	return strconv.FormatInt(id, 10), nil
}

// FindFoodEntriesByDay loads the records of a single day ordered by insertion.
func (r *SQLiteRepository) FindFoodEntriesByDay(ctx context.Context, day string) ([]models.FoodEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT id, food_name, calories, protein_g, carbohydrates_total_g, fat_total_g, day
        FROM foodentry
        WHERE day = ?
        ORDER BY id
    `, day)
	if err != nil {
		return nil, fmt.Errorf("failed to query food entries for %s: %w", day, err)
	}
	defer rows.Close()

	entries := make([]models.FoodEntry, 0)
	for rows.Next() {
		var (
			id    int64
			entry models.FoodEntry
		)
		if err := rows.Scan(&id, &entry.FoodName, &entry.Calories, &entry.ProteinG,
			&entry.CarbohydratesTotalG, &entry.FatTotalG, &entry.Day); err != nil {
			return nil, fmt.Errorf("failed to scan food entry: %w", err)
		}
		entry.ID = strconv.FormatInt(id, 10)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate food entries: %w", err)
	}

	return entries, nil
}

// ListCollectionNames lists up to limit user table names.
func (r *SQLiteRepository) ListCollectionNames(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := r.db.QueryContext(ctx, `
        SELECT name FROM sqlite_master
        WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
        ORDER BY name
        LIMIT ?
    `, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan table name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Name returns the database file name without extension.
func (r *SQLiteRepository) Name() string {
	base := filepath.Base(r.path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Close releases the database handle.
func (r *SQLiteRepository) Close(_ context.Context) error {
	return r.db.Close()
}
