package mongodb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/mamadbah2/fittrack/internal/domain/models"
)

func TestMongoDBRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("insert returns hex object id", func(mt *mtest.T) {
		repo := NewMongoDBRepositoryWithClient(mt.Client, "fittrack")
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		id, err := repo.InsertFoodEntry(context.Background(), models.FoodEntry{
			FoodName: "Apple",
			Calories: 95,
			Day:      "2024-03-01",
		})
		require.NoError(mt, err)

		_, err = primitive.ObjectIDFromHex(id)
		assert.NoError(mt, err)
	})

	mt.Run("insert surfaces write errors", func(mt *mtest.T) {
		repo := NewMongoDBRepositoryWithClient(mt.Client, "fittrack")
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		_, err := repo.InsertFoodEntry(context.Background(), models.FoodEntry{FoodName: "Apple", Day: "2024-03-01"})
		assert.ErrorContains(mt, err, "failed to insert food entry")
	})

	mt.Run("find decodes entries and defaults missing macros", func(mt *mtest.T) {
		repo := NewMongoDBRepositoryWithClient(mt.Client, "fittrack")
		first := primitive.NewObjectID()
		second := primitive.NewObjectID()

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "fittrack.foodentry", mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: first},
				{Key: "food_name", Value: "Apple"},
				{Key: "calories", Value: 95.0},
				{Key: "protein_g", Value: 0.5},
				{Key: "carbohydrates_total_g", Value: 25.0},
				{Key: "fat_total_g", Value: 0.3},
				{Key: "day", Value: "2024-03-01"},
			},
			bson.D{
				{Key: "_id", Value: second},
				{Key: "food_name", Value: "Water"},
				{Key: "day", Value: "2024-03-01"},
			},
		))

		entries, err := repo.FindFoodEntriesByDay(context.Background(), "2024-03-01")
		require.NoError(mt, err)
		require.Len(mt, entries, 2)

		assert.Equal(mt, first.Hex(), entries[0].ID)
		assert.Equal(mt, "Apple", entries[0].FoodName)
		assert.Equal(mt, 95.0, entries[0].Calories)
		assert.Equal(mt, 25.0, entries[0].CarbohydratesTotalG)

		assert.Equal(mt, second.Hex(), entries[1].ID)
		assert.Zero(mt, entries[1].Calories)
		assert.Zero(mt, entries[1].FatTotalG)
	})

	mt.Run("find with no matches returns empty slice", func(mt *mtest.T) {
		repo := NewMongoDBRepositoryWithClient(mt.Client, "fittrack")
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "fittrack.foodentry", mtest.FirstBatch))

		entries, err := repo.FindFoodEntriesByDay(context.Background(), "1999-01-01")
		require.NoError(mt, err)
		assert.NotNil(mt, entries)
		assert.Empty(mt, entries)
	})

	mt.Run("list collection names truncates to limit", func(mt *mtest.T) {
		repo := NewMongoDBRepositoryWithClient(mt.Client, "fittrack")

		docs := make([]bson.D, 0, 12)
		for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"} {
			docs = append(docs, bson.D{{Key: "name", Value: name}, {Key: "type", Value: "collection"}})
		}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "fittrack.$cmd.listCollections", mtest.FirstBatch, docs...))

		names, err := repo.ListCollectionNames(context.Background(), 10)
		require.NoError(mt, err)
		assert.Len(mt, names, 10)
		assert.Equal(mt, "a", names[0])
	})

	mt.Run("list collection names surfaces command errors", func(mt *mtest.T) {
		repo := NewMongoDBRepositoryWithClient(mt.Client, "fittrack")
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    13,
			Name:    "Unauthorized",
			Message: "not authorized on fittrack",
		}))

		_, err := repo.ListCollectionNames(context.Background(), 10)
		assert.ErrorContains(mt, err, "failed to list collections")
	})

	mt.Run("name reports database", func(mt *mtest.T) {
		repo := NewMongoDBRepositoryWithClient(mt.Client, "fittrack")
		assert.Equal(mt, "fittrack", repo.Name())
	})
}
