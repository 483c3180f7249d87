package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rentalhub/backoffice/internal/domain/models"
)

// Repository defines the interface for the report snapshot archive.
type Repository interface {
	SaveSnapshot(ctx context.Context, snapshot models.ReportSnapshot) error
	RecentSnapshots(ctx context.Context, limit int64) ([]models.ReportSnapshot, error)
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

	// Ping the database to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoDBRepository{
		client:   client,
		dbName:   dbName,
		collName: "report_snapshots",
	}, nil
}

// SaveSnapshot archives a generated report snapshot.
func (r *MongoDBRepository) SaveSnapshot(ctx context.Context, snapshot models.ReportSnapshot) error {
	collection := r.client.Database(r.dbName).Collection(r.collName)
	_, err := collection.InsertOne(ctx, snapshot)
	if err != nil {
		return fmt.Errorf("failed to insert report snapshot: %w", err)
	}
	return nil
}

// RecentSnapshots returns the latest archived snapshots, newest first.
func (r *MongoDBRepository) RecentSnapshots(ctx context.Context, limit int64) ([]models.ReportSnapshot, error) {
	collection := r.client.Database(r.dbName).Collection(r.collName)

	findOptions := options.Find().
		SetSort(bson.D{{Key: "generated_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := collection.Find(ctx, bson.D{}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to query report snapshots: %w", err)
	}
	defer cursor.Close(ctx)

	var snapshots []models.ReportSnapshot
	if err := cursor.All(ctx, &snapshots); err != nil {
		return nil, fmt.Errorf("failed to decode report snapshots: %w", err)
	}
	return snapshots, nil
}

// Close closes the MongoDB connection.
func (r *MongoDBRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
