package health

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	config "gitlab.com/proyectorfid1/rfid.readings_server/src/production/RFID.Config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ConnectStoreWithTimeout creates a document store connection with a
// timeout context using the configured endpoint and access key
func ConnectStoreWithTimeout(cfg *config.Config, timeout time.Duration) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	clientOptions := options.Client().ApplyURI(cfg.GetStoreURI())

	// Managed stores terminate TLS themselves; pin a floor
	clientOptions.SetTLSConfig(&tls.Config{
		MinVersion: tls.VersionTLS12,
	})

	clientOptions.SetServerSelectionTimeout(30 * time.Second)
	clientOptions.SetConnectTimeout(30 * time.Second)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to document store: %v", err)
	}

	// Test the connection
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("unable to ping document store: %v", err)
	}

	return client, nil
}

// GetReadingCollection returns the configured reading container
func GetReadingCollection(client *mongo.Client, cfg *config.Config) *mongo.Collection {
	return client.Database(cfg.Store.Database).Collection(cfg.Store.Container)
}
