package implementation

import (
	"context"
	"fmt"
	"time"

	rfidmodels "gitlab.com/proyectorfid1/rfid.readings_server/src/production/RFID.Models"
	interfaces "gitlab.com/proyectorfid1/rfid.readings_server/src/production/RFID.Repository/Interfaces"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type MongoReadingRepository struct {
	coll *mongo.Collection
}

func NewMongoReadingRepository(coll *mongo.Collection) *MongoReadingRepository {
	return &MongoReadingRepository{coll: coll}
}

func (r *MongoReadingRepository) CreateReading(ctx context.Context, doc rfidmodels.Document) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	// The document id doubles as the store key so that inserting the
	// same explicit id twice raises a store-level conflict.
	body := make(bson.M, len(doc)+1)
	for k, v := range doc {
		body[k] = v
	}
	body["_id"] = doc[rfidmodels.FieldID]

	if _, err := r.coll.InsertOne(ctx, body); err != nil {
		if isNamespaceNotFound(err) {
			return interfaces.ErrContainerNotFound
		}
		return fmt.Errorf("failed to insert reading: %w", err)
	}
	return nil
}

func (r *MongoReadingRepository) GetLatestReading(ctx context.Context) (rfidmodels.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	// Timestamps are zero-padded "YYYY-MM-DD HH:MM:SS" strings, so the
	// lexicographic descending sort yields the most recent document.
	opts := options.FindOne().
		SetSort(bson.D{{Key: rfidmodels.FieldTimestamp, Value: -1}}).
		SetProjection(bson.M{"_id": 0})

	var doc rfidmodels.Document
	err := r.coll.FindOne(ctx, bson.D{}, opts).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, interfaces.ErrNoReadings
	}
	if err != nil {
		if isNamespaceNotFound(err) {
			return nil, interfaces.ErrContainerNotFound
		}
		return nil, fmt.Errorf("failed to query latest reading: %w", err)
	}
	return doc, nil
}

func (r *MongoReadingRepository) GetReadings(ctx context.Context, params interfaces.ReadingQueryParams) (*interfaces.ReadingQueryResult, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	limit := params.Limit
	if limit <= 0 {
		limit = 100
	}
	page := params.Page
	if page <= 0 {
		page = 1
	}

	opts := options.Find().
		SetSort(bson.D{{Key: rfidmodels.FieldTimestamp, Value: -1}}).
		SetProjection(bson.M{"_id": 0}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		if isNamespaceNotFound(err) {
			return nil, interfaces.ErrContainerNotFound
		}
		return nil, fmt.Errorf("failed to query readings: %w", err)
	}
	defer cursor.Close(ctx)

	items := make([]rfidmodels.Document, 0, limit)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode readings: %w", err)
	}

	total, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to count readings: %w", err)
	}

	return &interfaces.ReadingQueryResult{Items: items, Total: total}, nil
}

func (r *MongoReadingRepository) GetSummaryStats(ctx context.Context) (*interfaces.SummaryStats, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		if isNamespaceNotFound(err) {
			return nil, interfaces.ErrContainerNotFound
		}
		return nil, fmt.Errorf("failed to count readings: %w", err)
	}

	stats := &interfaces.SummaryStats{Count: count}
	if count == 0 {
		return stats, nil
	}

	first, err := r.findByTimestamp(ctx, 1)
	if err != nil {
		return nil, err
	}
	last, err := r.findByTimestamp(ctx, -1)
	if err != nil {
		return nil, err
	}
	stats.FirstTimestamp = first.Timestamp()
	stats.LastTimestamp = last.Timestamp()

	return stats, nil
}

func (r *MongoReadingRepository) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return r.coll.Database().Client().Ping(ctx, readpref.Primary())
}

func (r *MongoReadingRepository) findByTimestamp(ctx context.Context, order int) (rfidmodels.Document, error) {
	opts := options.FindOne().
		SetSort(bson.D{{Key: rfidmodels.FieldTimestamp, Value: order}}).
		SetProjection(bson.M{"_id": 0})

	var doc rfidmodels.Document
	if err := r.coll.FindOne(ctx, bson.D{}, opts).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to query timestamp bound: %w", err)
	}
	return doc, nil
}
