package container

import (
	"context"
	"fmt"
	"sync"
	"time"

	"gitlab.com/proyectorfid1/rfid.readings_server/src/production/RFID.ApiService/health"
	config "gitlab.com/proyectorfid1/rfid.readings_server/src/production/RFID.Config"
	logger "gitlab.com/proyectorfid1/rfid.readings_server/src/production/RFID.Logger"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container manages dependencies and their lifecycle
type Container struct {
	config *config.Config
	logger *logger.Logger
	client *mongo.Client

	// Mutex for thread-safe access
	mu sync.Mutex

	// Cleanup functions
	cleanupFuncs []func() error
}

// NewContainer creates a new dependency injection container
func NewContainer() (*Container, error) {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	log := logger.NewLogger(&cfg.Logging)

	return &Container{
		config: cfg,
		logger: log,
	}, nil
}

// GetConfig returns the configuration
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetLogger returns the logger
func (c *Container) GetLogger() *logger.Logger {
	return c.logger
}

// GetStoreClient returns the document store client, connecting on
// first use
func (c *Container) GetStoreClient() (*mongo.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client == nil {
		client, err := health.ConnectStoreWithTimeout(c.config, 20*time.Second)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to document store: %w", err)
		}
		c.client = client
	}

	return c.client, nil
}

// GetReadingCollection returns the configured reading container
func (c *Container) GetReadingCollection() (*mongo.Collection, error) {
	client, err := c.GetStoreClient()
	if err != nil {
		return nil, err
	}
	return health.GetReadingCollection(client, c.config), nil
}

// AddCleanupFunc adds a cleanup function
func (c *Container) AddCleanupFunc(fn func() error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cleanupFuncs = append(c.cleanupFuncs, fn)
}

// Shutdown gracefully shuts down the container and all its dependencies
func (c *Container) Shutdown(ctx context.Context) error {
	c.logger.Info("Shutting down container...")

	c.mu.Lock()
	defer c.mu.Unlock()

	// Execute cleanup functions in reverse order
	for i := len(c.cleanupFuncs) - 1; i >= 0; i-- {
		if err := c.cleanupFuncs[i](); err != nil {
			c.logger.ErrorWithError(err, "Error during cleanup")
		}
	}

	// Disconnect the store client
	if c.client != nil {
		if err := c.client.Disconnect(ctx); err != nil {
			c.logger.ErrorWithError(err, "Error disconnecting store client")
		}
	}

	c.logger.Info("Container shutdown complete")
	return nil
}
