package db

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const defaultDatabase = "photoshare"

// Connect establishes the MongoDB client and selects the database named in the
// connection URI path (falling back to "photoshare" when the URI carries none).
// The connection is verified with a ping bound to the caller's context.
func Connect(ctx context.Context, uri string) (*mongo.Client, *mongo.Database, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("unable to create mongo client: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("unable to ping database: %w", err)
	}

	return client, client.Database(databaseName(uri)), nil
}

// databaseName extracts the database from the URI path, e.g.
// mongodb://host:27017/photoshare -> photoshare.
func databaseName(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return defaultDatabase
	}
	name := strings.TrimPrefix(u.Path, "/")
	if name == "" {
		return defaultDatabase
	}
	return name
}
