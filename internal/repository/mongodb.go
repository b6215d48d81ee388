// Package repository provides the MongoDB data access layer.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

// MongoConfig holds MongoDB connection pool configuration.
type MongoConfig struct {
	// MaxPoolSize is the maximum number of connections in the pool.
	MaxPoolSize uint64
	// MinPoolSize is the minimum number of connections to keep in the pool.
	MinPoolSize uint64
	// MaxConnIdleTime is how long a connection can remain idle before being closed.
	MaxConnIdleTime time.Duration
	// ConnectTimeout is the timeout for establishing a connection.
	ConnectTimeout time.Duration
	// ServerSelectionTimeout is how long to wait for server selection.
	ServerSelectionTimeout time.Duration
	// SocketTimeout is the timeout for socket read/write operations.
	SocketTimeout time.Duration
	// EnableCompression enables wire protocol compression.
	EnableCompression bool
}

// DefaultMongoConfig returns production-oriented MongoDB configuration.
func DefaultMongoConfig() MongoConfig {
	return MongoConfig{
		MaxPoolSize:            50,
		MinPoolSize:            10,
		MaxConnIdleTime:        10 * time.Minute,
		ConnectTimeout:         10 * time.Second,
		ServerSelectionTimeout: 5 * time.Second,
		SocketTimeout:          30 * time.Second,
		EnableCompression:      true,
	}
}

// MongoDB is the storage handle: one client constructed at process start,
// injected into repositories, closed on shutdown.
type MongoDB struct {
	Client     *mongo.Client
	Database   *mongo.Database
	Shipments  *mongo.Collection
	Boxes      *mongo.Collection
	Racks      *mongo.Collection
	Activities *mongo.Collection
	Settings   *mongo.Collection
	Logs       *mongo.Collection
}

// NewMongoDB creates a new MongoDB connection with default configuration.
func NewMongoDB(uri, databaseName string) (*MongoDB, error) {
	return NewMongoDBWithConfig(uri, databaseName, DefaultMongoConfig())
}

// NewMongoDBWithConfig creates a new MongoDB connection with custom configuration.
func NewMongoDBWithConfig(uri, databaseName string, cfg MongoConfig) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout).
		SetSocketTimeout(cfg.SocketTimeout)

	if cfg.EnableCompression {
		clientOptions.SetCompressors([]string{"zstd", "snappy", "zlib"})
	}

	clientOptions.SetRetryWrites(true)
	clientOptions.SetRetryReads(true)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	db := client.Database(databaseName)
	mongoDB := &MongoDB{
		Client:     client,
		Database:   db,
		Shipments:  db.Collection("shipments"),
		Boxes:      db.Collection("shipment_boxes"),
		Racks:      db.Collection("racks"),
		Activities: db.Collection("rack_activities"),
		Settings:   db.Collection("shipment_settings"),
		Logs:       db.Collection("logs"),
	}

	if err := mongoDB.createIndexes(ctx); err != nil {
		return nil, err
	}

	return mongoDB, nil
}

// createIndexes creates the indexes the invariants rely on.
func (m *MongoDB) createIndexes(ctx context.Context) error {
	// Shipments: unique human-facing reference, company-scoped listing.
	refIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "reference_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := m.Shipments.Indexes().CreateOne(ctx, refIndex); err != nil {
		return err
	}
	companyIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "company_id", Value: 1}, {Key: "status", Value: 1}},
	}
	_, _ = m.Shipments.Indexes().CreateOne(ctx, companyIndex)

	// Boxes: box numbers are unique within a shipment; rack lookup for
	// capacity reconciliation.
	boxNumberIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "shipment_id", Value: 1}, {Key: "box_number", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := m.Boxes.Indexes().CreateOne(ctx, boxNumberIndex); err != nil {
		return err
	}
	boxRackIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "rack_id", Value: 1}, {Key: "status", Value: 1}},
	}
	_, _ = m.Boxes.Indexes().CreateOne(ctx, boxRackIndex)

	// Racks: unique code per company.
	rackCodeIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "company_id", Value: 1}, {Key: "code", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := m.Racks.Indexes().CreateOne(ctx, rackCodeIndex); err != nil {
		return err
	}

	// Activities: newest-first audit pages per rack.
	activityIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "rack_id", Value: 1}, {Key: "timestamp", Value: -1}},
	}
	_, _ = m.Activities.Indexes().CreateOne(ctx, activityIndex)

	// Settings: one document per company.
	settingsIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "company_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := m.Settings.Indexes().CreateOne(ctx, settingsIndex); err != nil {
		return err
	}

	// Logs: request_id lookup; TTL index is managed by SetLogsTTL.
	requestIDIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "request_id", Value: 1}},
	}
	_, _ = m.Logs.Indexes().CreateOne(ctx, requestIDIndex)

	return nil
}

// SetLogsTTL updates the TTL index for the logs collection.
func (m *MongoDB) SetLogsTTL(ctx context.Context, ttlDays int) error {
	// Drop the previous TTL index if present; it may have different options.
	_, _ = m.Logs.Indexes().DropOne(ctx, "timestamp_1")

	ttlSeconds := int32(ttlDays * 24 * 60 * 60)
	ttlIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "timestamp", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(ttlSeconds),
	}
	_, err := m.Logs.Indexes().CreateOne(ctx, ttlIndex)
	return err
}

// WithTransaction runs fn inside a multi-document transaction with majority
// read/write concerns. Every capacity-affecting operation goes through here:
// the ledger update, the box transitions, the audit append and the shipment
// recompute either all commit or all roll back.
func (m *MongoDB) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := m.Client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	txOpts := options.Transaction().
		SetReadConcern(readconcern.Majority()).
		SetWriteConcern(writeconcern.Majority())

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	}, txOpts)
	return err
}

// Close closes the MongoDB connection.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

// HealthCheck verifies the MongoDB connection is healthy.
func (m *MongoDB) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return m.Client.Ping(ctx, nil)
}
