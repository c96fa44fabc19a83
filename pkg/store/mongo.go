package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore is a MongoDB-backed store for shared deployments. Records
// live in one collection, keyed by the name field.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// MongoConfig holds connection settings for the MongoDB store.
type MongoConfig struct {
	URI        string // e.g. "mongodb://localhost:27017"
	Database   string // defaults to "egraph"
	Collection string // defaults to "graphs"
}

// NewMongoStore connects to MongoDB, verifies the connection with a ping,
// and ensures a unique index on the name field.
func NewMongoStore(ctx context.Context, cfg MongoConfig) (*MongoStore, error) {
	if cfg.Database == "" {
		cfg.Database = "egraph"
	}
	if cfg.Collection == "" {
		cfg.Collection = "graphs"
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb at %s: %w", cfg.URI, err)
	}

	coll := client.Database(cfg.Database).Collection(cfg.Collection)
	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("create name index: %w", err)
	}

	return &MongoStore{client: client, coll: coll}, nil
}

// Save upserts a record under name.
func (s *MongoStore) Save(ctx context.Context, name, notation string) (Record, error) {
	var prev *Record
	if existing, err := s.Get(ctx, name); err == nil {
		prev = &existing
	} else if !errors.Is(err, ErrNotFound) {
		return Record{}, err
	}
	rec := updated(prev, name, notation)

	opts := options.Replace().SetUpsert(true)
	if _, err := s.coll.ReplaceOne(ctx, bson.M{"name": name}, rec, opts); err != nil {
		return Record{}, fmt.Errorf("save record: %w", err)
	}
	return rec, nil
}

// Get returns the record stored under name.
func (s *MongoStore) Get(ctx context.Context, name string) (Record, error) {
	var rec Record
	err := s.coll.FindOne(ctx, bson.M{"name": name}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("get record: %w", err)
	}
	return rec, nil
}

// List returns all records sorted by name.
func (s *MongoStore) List(ctx context.Context) ([]Record, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cur, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	var recs []Record
	if err := cur.All(ctx, &recs); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}
	return recs, nil
}

// Delete removes the record stored under name.
func (s *MongoStore) Delete(ctx context.Context, name string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"name": name})
	if err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
