package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mamadbah2/fittrack/internal/domain/models"
	"github.com/mamadbah2/fittrack/internal/repository"
)

// MongoDBRepository implements repository.DiaryRepository for MongoDB.
type MongoDBRepository struct {
	client   *mongo.Client
	dbName   string
	collName string
}

var _ repository.DiaryRepository = (*MongoDBRepository)(nil)

type foodEntryDocument struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty"`
	FoodName            string             `bson:"food_name"`
	Calories            float64            `bson:"calories"`
	ProteinG            float64            `bson:"protein_g"`
	CarbohydratesTotalG float64            `bson:"carbohydrates_total_g"`
	FatTotalG           float64            `bson:"fat_total_g"`
	Day                 string             `bson:"day"`
}

// NewMongoDBRepository connects to MongoDB and verifies the connection.
func NewMongoDBRepository(ctx context.Context, uri string, dbName string) (*MongoDBRepository, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return NewMongoDBRepositoryWithClient(client, dbName), nil
}

// NewMongoDBRepositoryWithClient wraps an already connected client.
func NewMongoDBRepositoryWithClient(client *mongo.Client, dbName string) *MongoDBRepository {
	return &MongoDBRepository{
		client:   client,
		dbName:   dbName,
		collName: repository.FoodEntryCollection,
	}
}

func (r *MongoDBRepository) collection() *mongo.Collection {
	return r.client.Database(r.dbName).Collection(r.collName)
}

// InsertFoodEntry saves a diary record and returns its ObjectID in hex form.
func (r *MongoDBRepository) InsertFoodEntry(ctx context.Context, entry models.FoodEntry) (string, error) {
	doc := foodEntryDocument{
		FoodName:            entry.FoodName,
		Calories:            entry.Calories,
		ProteinG:            entry.ProteinG,
		CarbohydratesTotalG: entry.CarbohydratesTotalG,
		FatTotalG:           entry.FatTotalG,
		Day:                 entry.Day,
	}

	res, err := r.collection().InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("failed to insert food entry: %w", err)
	}

	return stringifyID(res.InsertedID), nil
}

// FindFoodEntriesByDay loads the records of a single day ordered by insertion.
func (r *MongoDBRepository) FindFoodEntriesByDay(ctx context.Context, day string) ([]models.FoodEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.collection().Find(ctx, bson.M{"day": day}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query food entries for %s: %w", day, err)
	}

	var docs []foodEntryDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode food entries for %s: %w", day, err)
	}

	entries := make([]models.FoodEntry, 0, len(docs))
	for _, doc := range docs {
		entries = append(entries, models.FoodEntry{
			ID:                  doc.ID.Hex(),
			FoodName:            doc.FoodName,
			Calories:            doc.Calories,
			ProteinG:            doc.ProteinG,
			CarbohydratesTotalG: doc.CarbohydratesTotalG,
			FatTotalG:           doc.FatTotalG,
			Day:                 doc.Day,
		})
	}
	return entries, nil
}

// ListCollectionNames lists up to limit collection names of the database.
func (r *MongoDBRepository) ListCollectionNames(ctx context.Context, limit int) ([]string, error) {
	names, err := r.client.Database(r.dbName).ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}
	return names, nil
}

// Name returns the database name.
func (r *MongoDBRepository) Name() string {
	return r.dbName
}

// Close closes the MongoDB connection.
func (r *MongoDBRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

func stringifyID(id interface{}) string {
	switch v := id.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
