package mongodb

import (
	"context"
	"time"

	"github.com/tripondo/tripondo-backend/internal/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Client wraps the driver client with the application database selected
// at connect time.
type Client struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewClient dials MongoDB at the configured URI and verifies the
// connection within the configured timeout.
func NewClient(cfg *config.Config) (*Client, error) {
	timeout := time.Duration(cfg.MongoDB.ConnectTimeout) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoDB.URI))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}

	return &Client{
		client: client,
		db:     client.Database(cfg.MongoDB.Database),
	}, nil
}

// Database returns the application database
func (c *Client) Database() *mongo.Database {
	return c.db
}

// Disconnect disconnects from MongoDB
func (c *Client) Disconnect(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}
