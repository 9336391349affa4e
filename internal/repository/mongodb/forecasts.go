package mongodb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"weather-cache/internal/config"
	"weather-cache/internal/outcome"
	"weather-cache/internal/types"
)

// uniqueIndexName is the unique compound index on (timestamp, latitude,
// longitude). It is the store-level uniqueness guarantee and the sole
// guard against concurrent inserts for the same cache key.
const uniqueIndexName = "timestamp_lat_lon_unique"

// ForecastRepository is the durable forecast cache, keyed by
// (timestamp, latitude, longitude) with exact-match lookups.
type ForecastRepository struct {
	collection *mongo.Collection
	logger     *slog.Logger
}

func NewForecastRepository(client *mongo.Client, cfg config.MongoConfig, logger *slog.Logger) *ForecastRepository {
	return &ForecastRepository{
		collection: client.Database(cfg.Database).Collection(cfg.Collection),
		logger:     logger.With("component", "forecast-repository"),
	}
}

// EnsureIndexes asserts the unique compound index exists. Creation is a
// no-op when an identical index is already present.
func (r *ForecastRepository) EnsureIndexes(ctx context.Context) error {
	model := mongo.IndexModel{
		Keys: bson.D{
			{Key: "timestamp", Value: 1},
			{Key: "latitude", Value: 1},
			{Key: "longitude", Value: 1},
		},
		Options: options.Index().SetUnique(true).SetName(uniqueIndexName),
	}

	if _, err := r.collection.Indexes().CreateOne(ctx, model); err != nil {
		return fmt.Errorf("failed to ensure index %s: %w", uniqueIndexName, err)
	}

	r.logger.Debug("forecast store index ensured", "index", uniqueIndexName)
	return nil
}

// Insert writes a new forecast record. A duplicate-key conflict is
// surfaced as a failure with the underlying reason.
func (r *ForecastRepository) Insert(ctx context.Context, record types.ForecastRecord) outcome.Outcome[outcome.Void] {
	if _, err := r.collection.InsertOne(ctx, record); err != nil {
		r.logger.Warn("failed to insert forecast",
			"timestamp", record.Timestamp,
			"latitude", record.Latitude,
			"longitude", record.Longitude,
			"error", err,
		)
		return outcome.Failf[outcome.Void]("failed to insert forecast: %v", err)
	}

	return outcome.Done()
}

// FindByTimeAndLocation looks up the record for the exact cache key. A
// missing record is a "not found" failure, distinct from storage errors.
func (r *ForecastRepository) FindByTimeAndLocation(ctx context.Context, timestamp time.Time, latitude, longitude float64) outcome.Outcome[types.ForecastRecord] {
	var record types.ForecastRecord
	err := r.collection.FindOne(ctx, keyFilter(timestamp, latitude, longitude)).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// Expected on a cache miss, not an error condition
			r.logger.Debug("forecast not found",
				"timestamp", timestamp,
				"latitude", latitude,
				"longitude", longitude,
			)
			return outcome.Fail[types.ForecastRecord]("forecast not found")
		}

		r.logger.Error("failed to query forecast store", "error", err)
		return outcome.Failf[types.ForecastRecord]("failed to query forecast store: %v", err)
	}

	return outcome.Ok(record)
}

// Update replaces an existing record matched by its cache key. Not used
// by the primary cache-aside path.
func (r *ForecastRepository) Update(ctx context.Context, record types.ForecastRecord) outcome.Outcome[outcome.Void] {
	result, err := r.collection.ReplaceOne(ctx, keyFilter(record.Timestamp, record.Latitude, record.Longitude), record)
	if err != nil {
		r.logger.Warn("failed to update forecast",
			"timestamp", record.Timestamp,
			"latitude", record.Latitude,
			"longitude", record.Longitude,
			"error", err,
		)
		return outcome.Failf[outcome.Void]("failed to update forecast: %v", err)
	}

	if result.MatchedCount == 0 {
		return outcome.Fail[outcome.Void]("forecast not found")
	}

	return outcome.Done()
}

func keyFilter(timestamp time.Time, latitude, longitude float64) bson.D {
	return bson.D{
		{Key: "timestamp", Value: timestamp},
		{Key: "latitude", Value: latitude},
		{Key: "longitude", Value: longitude},
	}
}
