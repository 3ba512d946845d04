package db

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"quizhub/models"
)

const stateDocumentID = "quizhub"

// MongoStore keeps the quiz state as a single document in MongoDB, for
// deployments where a local JSON file is not an option
type MongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// extractDBName parses the database name from the URI, defaulting to "quizhub"
func extractDBName(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return "quizhub"
	}
	if u.Path != "" && u.Path != "/" {
		return u.Path[1:]
	}
	return "quizhub"
}

// ConnectMongoStore establishes a connection to MongoDB and verifies it with a ping
func ConnectMongoStore(uri string) (*MongoStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	dbName := extractDBName(uri)
	log.Printf("Using database: %s", dbName)

	return &MongoStore{
		client:     client,
		collection: client.Database(dbName).Collection("store"),
	}, nil
}

// Read loads the state document. No document or a read failure yields the
// empty default document.
func (s *MongoStore) Read(ctx context.Context) (*models.StoreDocument, error) {
	var wrapper struct {
		State *models.StoreDocument `bson:"state"`
	}
	err := s.collection.FindOne(ctx, bson.M{"_id": stateDocumentID}).Decode(&wrapper)
	if err != nil {
		if err != mongo.ErrNoDocuments {
			log.Printf("Failed to read store document, starting from empty state: %v", err)
		}
		return models.NewStoreDocument(), nil
	}
	if wrapper.State == nil {
		return models.NewStoreDocument(), nil
	}
	ensureDefaults(wrapper.State)
	return wrapper.State, nil
}

// Write replaces the state document, creating it if needed
func (s *MongoStore) Write(ctx context.Context, doc *models.StoreDocument) error {
	opts := options.Replace().SetUpsert(true)
	_, err := s.collection.ReplaceOne(ctx,
		bson.M{"_id": stateDocumentID},
		bson.M{"_id": stateDocumentID, "state": doc},
		opts,
	)
	if err != nil {
		return fmt.Errorf("failed to write store document: %w", err)
	}
	return nil
}

// Disconnect closes the underlying client
func (s *MongoStore) Disconnect(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
