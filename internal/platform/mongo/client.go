package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Client wraps the mongo driver client so ownership of the connection stays
// explicit: opened once at startup, released at shutdown.
type Client struct {
	*mongo.Client
}

// Connect opens and pings a Mongo connection.
func Connect(ctx context.Context, url string) (*Client, error) {
	cli, err := mongo.Connect(ctx, options.Client().ApplyURI(url))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	if err := cli.Ping(ctx, readpref.Primary()); err != nil {
		_ = cli.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping failed: %w", err)
	}

	return &Client{Client: cli}, nil
}

// Close releases the connection.
func (c *Client) Close(ctx context.Context) error {
	return c.Disconnect(ctx)
}
