package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/yassirrachad97/DepotSmart/internal/domain/models"
)

const snapshotsCollection = "statistics_snapshots"

// Repository defines the interface for statistics snapshot storage.
type Repository interface {
	SaveSnapshot(ctx context.Context, snapshot models.StatisticsSnapshot) error
	ListSnapshots(ctx context.Context, limit int) ([]models.StatisticsSnapshot, error)
}

// MongoDBRepository implements the Repository interface for MongoDB.
type MongoDBRepository struct {
	client   *mongo.Client
	dbName   string
	collName string
}

// NewMongoDBRepository creates a new MongoDB repository.
func NewMongoDBRepository(ctx context.Context, uri string, dbName string) (*MongoDBRepository, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	repo := &MongoDBRepository{
		client:   client,
		dbName:   dbName,
		collName: snapshotsCollection,
	}

	index := mongo.IndexModel{Keys: bson.D{{Key: "taken_at", Value: -1}}}
	if _, err := repo.collection().Indexes().CreateOne(ctx, index); err != nil {
		return nil, fmt.Errorf("failed to create taken_at index: %w", err)
	}

	return repo, nil
}

// SaveSnapshot stores one statistics snapshot.
func (r *MongoDBRepository) SaveSnapshot(ctx context.Context, snapshot models.StatisticsSnapshot) error {
	if _, err := r.collection().InsertOne(ctx, snapshot); err != nil {
		return fmt.Errorf("failed to insert statistics snapshot: %w", err)
	}
	return nil
}

// ListSnapshots returns up to limit snapshots, newest first.
func (r *MongoDBRepository) ListSnapshots(ctx context.Context, limit int) ([]models.StatisticsSnapshot, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "taken_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection().Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query statistics snapshots: %w", err)
	}
	defer cursor.Close(ctx)

	snapshots := make([]models.StatisticsSnapshot, 0, limit)
	if err := cursor.All(ctx, &snapshots); err != nil {
		return nil, fmt.Errorf("failed to decode statistics snapshots: %w", err)
	}

	// trend slices are not stored
	for i := range snapshots {
		snapshots[i].Statistics.MostAddedProducts = []models.Product{}
		snapshots[i].Statistics.MostRemovedProducts = []models.Product{}
	}
	return snapshots, nil
}

// Close closes the MongoDB connection.
func (r *MongoDBRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

func (r *MongoDBRepository) collection() *mongo.Collection {
	return r.client.Database(r.dbName).Collection(r.collName)
}
