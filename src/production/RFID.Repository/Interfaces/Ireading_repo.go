package interfaces

import (
	"context"
	"errors"

	rfidmodels "gitlab.com/proyectorfid1/rfid.readings_server/src/production/RFID.Models"
)

// ErrNoReadings is returned when the container holds no documents at all.
var ErrNoReadings = errors.New("no readings available")

// ErrContainerNotFound is returned when the configured database or
// container does not exist on the store. Distinct from ErrNoReadings:
// this is a deployment problem, not an empty container.
var ErrContainerNotFound = errors.New("store database or container not found")

// ReadingQueryParams represents parameters for reading queries
type ReadingQueryParams struct {
	Limit int
	Page  int
}

// ReadingQueryResult represents the result of a reading query with pagination
type ReadingQueryResult struct {
	Items []rfidmodels.Document `json:"items"`
	Total int64                 `json:"total"`
}

// SummaryStats represents aggregate statistics over the container
type SummaryStats struct {
	Count          int64  `json:"count"`
	FirstTimestamp string `json:"first_timestamp,omitempty"`
	LastTimestamp  string `json:"last_timestamp,omitempty"`
}

type ReadingRepository interface {
	// CreateReading inserts one document. The document's id is used as
	// the store-level key; inserting a duplicate id fails.
	CreateReading(ctx context.Context, doc rfidmodels.Document) error

	// GetLatestReading returns the document with the greatest timestamp,
	// or ErrNoReadings when the container is empty.
	GetLatestReading(ctx context.Context) (rfidmodels.Document, error)

	// GetReadings returns documents newest first, paged.
	GetReadings(ctx context.Context, params ReadingQueryParams) (*ReadingQueryResult, error)

	// GetSummaryStats returns the document count and timestamp bounds.
	GetSummaryStats(ctx context.Context) (*SummaryStats, error)

	// Ping verifies the store is reachable.
	Ping(ctx context.Context) error
}
